package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"atlas/internal/app"
)

var (
	home       string
	passphrase string
	configPath string
	storeName  string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "atlas",
		Short: "Wallet-rooted device identity and handoff attestation CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config{}
			if err := app.LoadConfig(configPath, &cfg); err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if cfg.Home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.Home = filepath.Join(dir, ".atlas")
			}
			if storeName != "" {
				cfg.Store = storeName
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if wire == nil {
				return nil
			}
			return wire.Close()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.atlas)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the device identity")
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional TOML config file")
	root.PersistentFlags().StringVar(&storeName, "store", "", "device key store backend: json or sqlite")

	root.AddCommand(provisionCmd(), fingerprintCmd(), devicesCmd(), attestCmd(), receiptCmd())
	return root.Execute()
}
