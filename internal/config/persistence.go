// file: internal/config/persistence.go
// version: 2.1.0
// guid: 9c8d7e6f-5a4b-3c2d-1e0f-9a8b7c6d5e4f

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jdfalk/folio/internal/fileops"
)

// DefaultConfigName is the config file looked up in the home directory.
const DefaultConfigName = ".folio.yaml"

// DefaultConfigPath returns $HOME/.folio.yaml, or "" when home is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultConfigName)
}

// Marshal renders cfg as the YAML viper reads back.
// Durations are written as strings ("15s") so the file stays hand-editable.
func Marshal(cfg Config) ([]byte, error) {
	fileConfig := map[string]any{
		"content_dir":      cfg.ContentDir,
		"default_language": string(cfg.DefaultLanguage),
		"watch_content":    cfg.WatchContent,
		"server": map[string]any{
			"host":          cfg.Server.Host,
			"port":          cfg.Server.Port,
			"read_timeout":  cfg.Server.ReadTimeout.String(),
			"write_timeout": cfg.Server.WriteTimeout.String(),
			"idle_timeout":  cfg.Server.IdleTimeout.String(),
		},
		"search": map[string]any{
			"cache_ttl":             cfg.Search.CacheTTL.String(),
			"cache_size":            cfg.Search.CacheSize,
			"rate_limit_per_minute": cfg.Search.RateLimitPerMinute,
			"rate_limit_burst":      cfg.Search.RateLimitBurst,
			"default_limit":         cfg.Search.DefaultLimit,
		},
	}

	data, err := yaml.Marshal(fileConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// SaveConfigToFile writes cfg to path. An existing file is only replaced
// when overwrite is set.
func SaveConfigToFile(cfg Config, path string, overwrite bool) error {
	if path == "" {
		return fmt.Errorf("cannot determine config file path")
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	// replaced files keep a timestamped .backup next to them
	if err := fileops.SafeWrite(path, data, fileops.DefaultWriteConfig()); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.Printf("[INFO] Configuration saved to file: %s", path)
	return nil
}
