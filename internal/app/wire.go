package app

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"atlas/internal/domain"
	"atlas/internal/protocol/attest"
	"atlas/internal/protocol/receipt"
	handoffsvc "atlas/internal/services/handoff"
	identitysvc "atlas/internal/services/identity"
	"atlas/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Identity domain.IdentityStore
	Devices  domain.DeviceKeyStore
	IDs      domain.IdentityService
	Handoff  domain.HandoffService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	identityStore := store.NewIdentityFileStore(cfg.Home)

	var devices domain.DeviceKeyStore
	switch cfg.Store {
	case StoreSQLite:
		s, err := store.OpenDeviceKeySQLiteStore(filepath.Join(cfg.Home, "device_keys.db"))
		if err != nil {
			return nil, err
		}
		devices = s
	case StoreJSON, "":
		devices = store.NewDeviceKeyFileStore(cfg.Home)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}

	ao := attest.Options{
		FreshnessWindow:    time.Duration(cfg.AttestWindowMS) * time.Millisecond,
		MaxProximityMeters: cfg.MaxProximityMeters,
	}
	ro := receipt.Options{
		FreshnessWindow: time.Duration(cfg.ReceiptWindowMS) * time.Millisecond,
	}

	return &Wire{
		Identity: identityStore,
		Devices:  devices,
		IDs:      identitysvc.New(identityStore, devices),
		Handoff:  handoffsvc.NewWithOptions(identityStore, devices, ao, ro),
	}, nil
}

// Close releases any store resources (the SQLite backend holds a handle).
func (w *Wire) Close() error {
	if c, ok := w.Devices.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
