package main

import (
	"fmt"

	"github.com/at-ishikawa/flashpapers/internal/config"
	"github.com/at-ishikawa/flashpapers/internal/store"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func openStore(cfg *config.Config) (*store.Store, error) {
	paperStore, err := store.Open(cfg.Data.FilePath(), cfg.SRS.Parameters())
	if err != nil {
		return nil, fmt.Errorf("store.Open(%s) > %w", cfg.Data.FilePath(), err)
	}
	return paperStore, nil
}
