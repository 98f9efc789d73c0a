package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config

	if err := Read(os.Getenv("CONFIG_PATH"), "./config.yaml", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Read fills dst using cleanenv. An explicit path must exist. When path is
// empty the fallback file is used if present, otherwise only ENV and
// defaults are read. An empty fallback skips the file lookup.
func Read(path, fallback string, dst any) error {
	explicitPath := path != ""
	if !explicitPath {
		path = fallback
	}

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(path, dst); err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			return nil
		case explicitPath:
			return fmt.Errorf("file %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(dst); err != nil {
		return fmt.Errorf("read env: %w", err)
	}
	return nil
}
