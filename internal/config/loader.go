package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/faizmokh/amigos/internal/logging"
)

// ErrInvalidConfig is returned when a loaded value is not recognised.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	userConfigDir  = ".config/amigos"
	configFileName = "config.yaml"

	envStorage  = "AMIGOS_STORAGE"
	envLogLevel = "AMIGOS_LOG_LEVEL"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

var getUserConfigPath = func() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, userConfigDir, configFileName), nil
}

// Load layers the defaults, the user config file and environment variables.
// Flag overrides are applied by the caller via Merge.
func Load() (Config, error) {
	cfg := Default()

	path, err := getUserConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not determine user config path: %v\n", err)
	} else if _, statErr := os.Stat(path); statErr == nil {
		fileCfg, err := loadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config from %s: %w", path, err)
		}
		cfg = Merge(cfg, fileCfg)
	}

	cfg = Merge(cfg, fromEnv())

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Merge overlays the non-empty fields of overlay onto base.
func Merge(base, overlay Config) Config {
	merged := base
	if overlay.DataDir != "" {
		merged.DataDir = overlay.DataDir
	}
	if overlay.Storage != "" {
		merged.Storage = strings.ToLower(overlay.Storage)
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	return merged
}

// Validate checks the storage backend and log level.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageMarkdown, StorageSQLite:
	default:
		return fmt.Errorf("%w: storage %q (expected %s|%s)", ErrInvalidConfig, c.Storage, StorageMarkdown, StorageSQLite)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// fromEnv reads overrides from the environment. AMIGOS_HOME is honoured by
// files.ResolveBasePath, so it is not copied here.
func fromEnv() Config {
	return Config{
		Storage:  strings.TrimSpace(os.Getenv(envStorage)),
		LogLevel: strings.TrimSpace(os.Getenv(envLogLevel)),
	}
}
