package main

import (
	"fmt"
	"log"

	"github.com/spf13/viper"

	"github.com/nhath/docseek/internal/config"
	"github.com/nhath/docseek/internal/search"
)

// apiKeySource is anything that can hand out the stored API key
type apiKeySource interface {
	APIKey() (string, error)
}

// loadConfig reads the config file, layers flag/env overrides on top and
// validates the result. The keyring is only consulted when neither a flag
// nor the environment supplied an API key.
func loadConfig(v *viper.Viper, ring func() (apiKeySource, error)) (*config.Config, error) {
	cfg, err := loadSettings(v)
	if err != nil {
		return nil, err
	}
	cfg.Search.APIKey = resolveAPIKey(v, cfg.Search.APIKey, ring)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSettings is loadConfig without the key lookup and validation, for
// commands that never talk to the search backend.
func loadSettings(v *viper.Viper) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := v.GetString("config"); path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	applyOverrides(cfg, v)
	return cfg, nil
}

// applyOverrides copies non-empty flag/env values over the file config
func applyOverrides(cfg *config.Config, v *viper.Viper) {
	if s := v.GetString("backend"); s != "" {
		cfg.Search.Backend = s
	}
	if s := v.GetString("endpoint"); s != "" {
		cfg.Search.Endpoint = s
	}
	if s := v.GetString("index"); s != "" {
		cfg.Search.IndexPath = s
	}
}

// resolveAPIKey picks the key by precedence: flag, env, keyring, file
func resolveAPIKey(v *viper.Viper, fromFile string, ring func() (apiKeySource, error)) string {
	if s := v.GetString("api-key"); s != "" {
		return s
	}
	if ring != nil {
		if src, err := ring(); err == nil {
			if key, err := src.APIKey(); err == nil && key != "" {
				return key
			}
		} else {
			log.Printf("keyring unavailable: %v", err)
		}
	}
	return fromFile
}

// buildClient creates the configured search backend. The returned close
// function is always safe to call.
func buildClient(cfg *config.Config) (search.Client, func(), error) {
	switch cfg.Search.Backend {
	case config.BackendLocal:
		path, err := indexPath(cfg)
		if err != nil {
			return nil, nil, err
		}
		local, err := search.OpenLocal(path)
		if err != nil {
			return nil, nil, fmt.Errorf("%w (build it with 'docseek index <dir>')", err)
		}
		return local, func() { _ = local.Close() }, nil

	default:
		remote := search.NewRemoteClient(cfg.Search.Endpoint, cfg.Search.APIKey, cfg.Search.Timeout())
		return remote, func() {}, nil
	}
}

// indexPath is the configured local index location or the xdg default
func indexPath(cfg *config.Config) (string, error) {
	if cfg.Search.IndexPath != "" {
		return cfg.Search.IndexPath, nil
	}
	return config.DefaultIndexPath()
}
