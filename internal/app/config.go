package app

import (
	"errors"
	"os"

	"github.com/BurntSushi/toml"
)

// Store backends for the device key store.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the config directory, e.g. $HOME/.atlas.
	Home string `toml:"home"`

	// Store selects the device key store backend: "json" or "sqlite".
	Store string `toml:"store"`

	// AttestWindowMS overrides the attestation freshness window.
	AttestWindowMS int64 `toml:"attest_window_ms"`

	// ReceiptWindowMS overrides the receipt freshness window.
	ReceiptWindowMS int64 `toml:"receipt_window_ms"`

	// MaxProximityMeters overrides the proximity bound.
	MaxProximityMeters float64 `toml:"max_proximity_meters"`
}

// LoadConfig reads a TOML config file into cfg. A missing file leaves cfg
// untouched so flags and defaults apply.
func LoadConfig(path string, cfg *Config) error {
	if path == "" {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}
