package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

func getConfigFilePath() string {
	// useful during development or other non-standard setups.
	if dir := os.Getenv("DERMA_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "dermadesigner", "config.toml")
	}
	return ""
}

func loadDefaultConfig() (*Config, error) {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		return nil, fmt.Errorf("no embedded default config found: %w", err)
	}
	config := &Config{}
	if err := config.Load(string(data)); err != nil {
		return nil, fmt.Errorf("failed to load embedded default config: %w", err)
	}
	return config, nil
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	return loadDefaultConfig()
}

// Load returns the defaults overlaid with the user's config file. path
// overrides the file location; an empty path uses $DERMA_CONFIG_DIR or the
// user config directory. A missing default-location file is not an error.
func Load(path string) (*Config, error) {
	config, err := loadDefaultConfig()
	if err != nil {
		return nil, err
	}
	explicit := path != ""
	if !explicit {
		path = getConfigFilePath()
		if path == "" {
			return config, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := config.Load(string(data)); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return config, nil
}
