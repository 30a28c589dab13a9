package commands

import (
	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the device fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := wire.IDs.Fingerprint(passphrase)
			if err != nil {
				return err
			}
			cmd.Printf("Fingerprint: %s\n", fp)
			return nil
		},
	}
}
