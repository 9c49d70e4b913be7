package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds user preferences for the vmac binary.
type Config struct {
	Theme       string `json:"theme"`        // "light" or "dark"
	StoreDriver string `json:"store_driver"` // "file" or "sqlite"
	DataDir     string `json:"data_dir"`     // overrides the default data location
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:       "light",
		StoreDriver: "file",
	}
}

// ConfigDir returns the directory where config and site data live.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".vmac"), nil
}

// ConfigFile returns the full path to the config file.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// StorePath resolves where the configured store driver keeps its data.
func (c Config) StorePath() (string, error) {
	if c.DataDir != "" {
		return c.resolveStorePath(c.DataDir), nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return c.resolveStorePath(dir), nil
}

func (c Config) resolveStorePath(dir string) string {
	if c.StoreDriver == "sqlite" {
		return filepath.Join(dir, "vmac.db")
	}
	return filepath.Join(dir, "data")
}

// Load reads the configuration from disk, falling back to defaults
// when the file is absent or unreadable.
func Load() (Config, error) {
	path, err := ConfigFile()
	if err != nil {
		return DefaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	if cfg.Theme == "" {
		cfg.Theme = "light"
	}
	if cfg.StoreDriver == "" {
		cfg.StoreDriver = "file"
	}
	return cfg, nil
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	path, err := ConfigFile()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
