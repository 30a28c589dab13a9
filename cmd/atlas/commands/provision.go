package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func provisionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "provision",
		Short: "Generate a device identity and store it securely",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, err := wire.IDs.Provision(passphrase)
			if err != nil {
				return err
			}
			cmd.Printf("Device provisioned.\nDevice ID:   %s\nFingerprint: %s\n", id.DeviceID, id.KeyPair.Fingerprint)
			return nil
		},
	}
}
