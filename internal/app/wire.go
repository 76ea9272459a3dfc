package app

import (
	"fmt"
	"os"

	"ecieskem/internal/domain"
	"ecieskem/internal/log"
	keysvc "ecieskem/internal/services/keys"
	"ecieskem/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Config Config
	Store  domain.KeyStore
	Keys   *keysvc.Service
}

// NewWire constructs the dependency graph from cfg and applies its log
// level to the global logger.
func NewWire(cfg Config, storeOpts ...store.Option) (*Wire, error) {
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetGlobalLevel(lvl)

	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("create home %s: %w", cfg.Home, err)
	}

	keyStore := store.NewKeyFileStore(cfg.Home, storeOpts...)
	return &Wire{
		Config: cfg,
		Store:  keyStore,
		Keys:   keysvc.New(keyStore),
	}, nil
}
