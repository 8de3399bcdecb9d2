package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabrieluxcam/mcp-uxcam-android/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/uxcam-mcp"
	configFileName = "config.yaml"
)

// UserConfigPath returns the per-user configuration directory
// (~/.config/uxcam-mcp).
func UserConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user home directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// LoadConfig loads configuration using the default layering: built-in
// defaults overridden by the per-user config.yaml, when present.
func LoadConfig() (Config, error) {
	userPath, err := UserConfigPath()
	if err != nil {
		logging.Warn("ConfigLoader", "Skipping user configuration: %v", err)
		return GetDefaultConfig(), nil
	}
	return LoadConfigFromPath(userPath)
}

// LoadConfigFromPath loads configuration from a single specified directory.
// The directory should contain config.yaml; a missing file yields the
// built-in defaults, a malformed file is an error.
func LoadConfigFromPath(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		logging.Info("ConfigLoader", "Error loading config.yaml from %s: %s", configFilePath, err)
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}
