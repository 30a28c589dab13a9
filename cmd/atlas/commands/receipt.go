package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"atlas/internal/domain"
)

func receiptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipt",
		Short: "Create or verify anchor receipts",
	}

	var (
		sessionID string
		from      string
		to        string
		stateHash string
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Sign an anchor receipt and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			rcpt, err := wire.Handoff.Handoff(passphrase,
				domain.SessionID(sessionID), domain.DeviceID(from), domain.DeviceID(to), stateHash)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(rcpt, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))
			return nil
		},
	}
	create.Flags().StringVar(&sessionID, "session", "", "session id being handed off")
	create.Flags().StringVar(&from, "from", "", "device id handing off")
	create.Flags().StringVar(&to, "to", "", "device id receiving")
	create.Flags().StringVar(&stateHash, "state-hash", "", "optional hash of the transferred state")
	_ = create.MarkFlagRequired("session")
	_ = create.MarkFlagRequired("from")
	_ = create.MarkFlagRequired("to")

	var peer string
	verify := &cobra.Command{
		Use:   "verify <receipt.json>",
		Short: "Verify a receipt against a known peer device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var rcpt domain.AnchorReceipt
			if err := json.Unmarshal(b, &rcpt); err != nil {
				return err
			}
			res, err := wire.Handoff.VerifyReceipt(rcpt, domain.DeviceID(peer))
			if err != nil {
				return err
			}
			if !res.Valid {
				return fmt.Errorf("invalid receipt: %s", res.Reason)
			}
			cmd.Println("Receipt valid.")
			return nil
		},
	}
	verify.Flags().StringVar(&peer, "peer", "", "device id of the issuing peer")
	_ = verify.MarkFlagRequired("peer")

	cmd.AddCommand(create, verify)
	return cmd
}
