package commands

import (
	"github.com/spf13/cobra"

	"atlas/internal/domain"
)

func devicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Manage known peer devices",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List known device ids and fingerprints",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := wire.Devices.List()
			if err != nil {
				return err
			}
			for id, rec := range recs {
				cmd.Printf("%s  %s\n", id, rec.Fingerprint)
			}
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <device-id>",
		Short: "Forget a peer device key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.Devices.Remove(domain.DeviceID(args[0]))
		},
	}

	cmd.AddCommand(list, remove)
	return cmd
}
