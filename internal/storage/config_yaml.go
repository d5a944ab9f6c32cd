package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"deskwatch/internal/core/model"
)

const configFileName = "settings.yaml"

type yamlConfig struct {
	// Pointers distinguish an absent threshold (keep default) from an
	// explicit zero (highlighting disabled).
	WarnAfterMinutes   *int      `yaml:"warn_after_minutes"`
	DangerAfterMinutes *int      `yaml:"danger_after_minutes"`
	WindowSize         []float32 `yaml:"window_size"`
	WindowPosition     []float32 `yaml:"window_position"`
	AlwaysOnTop        bool      `yaml:"always_on_top"`
	StartUnpaused      bool      `yaml:"start_unpaused"`
	StoreLastSession   bool      `yaml:"store_last_session"`
}

// LoadConfig reads the widget configuration from YAML. If the config file
// does not exist yet, defaults are written out and returned. A file that
// exists but cannot be parsed is an error; the caller treats it as fatal.
func LoadConfig(path string) (model.Config, error) {
	config := model.DefaultConfig()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if saveErr := SaveConfig(path, config); saveErr != nil {
				return config, saveErr
			}
			return config, nil
		}
		return config, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse config yaml: %w", err)
	}

	applyYamlConfig(&config, fileData)
	return config, nil
}

// SaveConfig writes the widget configuration to YAML.
func SaveConfig(path string, config model.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlConfig{
		WarnAfterMinutes:   &config.WarnAfterMinutes,
		DangerAfterMinutes: &config.DangerAfterMinutes,
		WindowSize:         config.WindowSize[:],
		WindowPosition:     config.WindowPosition[:],
		AlwaysOnTop:        config.AlwaysOnTop,
		StartUnpaused:      config.StartUnpaused,
		StoreLastSession:   config.StoreLastSession,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// ConfigPath returns the well-known location of the settings file.
func ConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, configFileName), nil
}

func applyYamlConfig(config *model.Config, fileData yamlConfig) {
	if fileData.WarnAfterMinutes != nil && *fileData.WarnAfterMinutes >= 0 {
		config.WarnAfterMinutes = *fileData.WarnAfterMinutes
	}
	if fileData.DangerAfterMinutes != nil && *fileData.DangerAfterMinutes >= 0 {
		config.DangerAfterMinutes = *fileData.DangerAfterMinutes
	}
	if len(fileData.WindowSize) == 2 && fileData.WindowSize[0] > 0 && fileData.WindowSize[1] > 0 {
		config.WindowSize = [2]float32{fileData.WindowSize[0], fileData.WindowSize[1]}
	}
	if len(fileData.WindowPosition) == 2 {
		config.WindowPosition = [2]float32{fileData.WindowPosition[0], fileData.WindowPosition[1]}
	}

	config.AlwaysOnTop = fileData.AlwaysOnTop
	config.StartUnpaused = fileData.StartUnpaused
	config.StoreLastSession = fileData.StoreLastSession
}
