package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"atlas/internal/domain"
)

func attestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attest",
		Short: "Create or verify proximity attestations",
	}

	var meters float64
	create := &cobra.Command{
		Use:   "create",
		Short: "Sign a proximity attestation and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			att, err := wire.Handoff.Attest(passphrase, meters)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(att, "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(out))
			return nil
		},
	}
	create.Flags().Float64Var(&meters, "meters", 0.5, "declared proximity in meters")

	var peer string
	verify := &cobra.Command{
		Use:   "verify <attestation.json>",
		Short: "Verify an attestation against a known peer device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var att domain.ProximityAttestation
			if err := json.Unmarshal(b, &att); err != nil {
				return err
			}
			res, err := wire.Handoff.VerifyAttestation(att, domain.DeviceID(peer))
			if err != nil {
				return err
			}
			if !res.Valid {
				return fmt.Errorf("invalid attestation: %s", res.Reason)
			}
			cmd.Println("Attestation valid.")
			return nil
		},
	}
	verify.Flags().StringVar(&peer, "peer", "", "device id of the attesting peer")
	_ = verify.MarkFlagRequired("peer")

	cmd.AddCommand(create, verify)
	return cmd
}
