package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/piwi3910/QuickCalc/internal/model"
)

const envPrefix = "QUICKCALC"

// Config keys, matching the JSON field names of model.AppConfig.
const (
	KeyTheme        = "theme"
	KeyLogLevel     = "log_level"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.quickcalc/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".quickcalc")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LoadAppConfig reads an AppConfig using the precedence
// defaults < config file < QUICKCALC_* environment variables.
// A missing or empty file is not an error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	return loadAppConfig(path, true)
}

// LoadAppConfigFile reads an AppConfig from defaults and the file only,
// ignoring the environment.
func LoadAppConfigFile(path string) (model.AppConfig, error) {
	return loadAppConfig(path, false)
}

// SaveTheme updates the theme in the config file and keeps every other value
// the file holds. A file that cannot be parsed is left untouched.
func SaveTheme(path, theme string) error {
	config, err := LoadAppConfigFile(path)
	if err != nil {
		return fmt.Errorf("keep existing config: %w", err)
	}
	config.Theme = theme
	config.Normalize()
	return SaveAppConfig(path, config)
}

func loadAppConfig(path string, withEnv bool) (model.AppConfig, error) {
	v := viper.New()
	v.SetConfigType("json")
	setDefaults(v)
	if withEnv {
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()
	}

	if err := mergeConfigFile(v, path); err != nil {
		return model.AppConfig{}, err
	}

	var config model.AppConfig
	if err := v.Unmarshal(&config); err != nil {
		return model.AppConfig{}, fmt.Errorf("decode config: %w", err)
	}
	config.Normalize()
	return config, nil
}

func setDefaults(v *viper.Viper) {
	defaults := model.DefaultAppConfig()
	v.SetDefault(KeyTheme, defaults.Theme)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyWindowWidth, defaults.WindowWidth)
	v.SetDefault(KeyWindowHeight, defaults.WindowHeight)
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
