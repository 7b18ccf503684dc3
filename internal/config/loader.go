package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
//
// The file is path when non-empty, else $CONFIG_PATH, else ./config.yaml. A
// missing file is an error only when it was named explicitly; otherwise the
// configuration comes from ENV and defaults alone.
func Load(path string) (*Config, error) {
	path, explicit := resolvePath(path)

	var cfg Config
	switch _, statErr := os.Stat(path); {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func resolvePath(path string) (string, bool) {
	if path != "" {
		return path, true
	}
	if env := os.Getenv(pathEnv); env != "" {
		return env, true
	}
	return defaultPath, false
}
