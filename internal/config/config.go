// Copyright (c) 2026 Coresolver Team
// Coresolver - four-number core puzzle solver
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config provides configuration loading, validation and persistence
// for Coresolver. It uses Viper for file/env/flag parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the effective application configuration.
type Config struct {
	Language    string    `mapstructure:"language" yaml:"language" validate:"oneof=en de"`
	LogLevel    string    `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	Prompt      string    `mapstructure:"prompt" yaml:"prompt"`
	ShowLetters bool      `mapstructure:"show_letters" yaml:"show_letters"`
	TUI         TUIConfig `mapstructure:"tui" yaml:"tui"`
}

// TUIConfig holds settings for the interactive solver.
type TUIConfig struct {
	// History is the number of answers kept on screen.
	History int `mapstructure:"history" yaml:"history" validate:"min=1,max=500"`
}

// Defaults returns the built-in value for every config key.
func Defaults() map[string]any {
	return map[string]any{
		"language":     "en",
		"log_level":    "warn",
		"prompt":       "> ",
		"show_letters": true,
		"tui.history":  50,
	}
}

// FlagKeys maps command-line flag names to the config keys they override.
var FlagKeys = map[string]string{
	"language":     "language",
	"log-level":    "log_level",
	"prompt":       "prompt",
	"show-letters": "show_letters",
	"history":      "tui.history",
}

// validate is shared; validator caches struct metadata per instance.
var validate = validator.New()

// Validate checks c against its struct tags.
func Validate(c Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Coresolver")
		default: // Linux, macOS, etc.
			configDir = "/etc/coresolver"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "coresolver")
	}

	return filepath.Join(configDir, "coresolver.yaml"), nil
}

// LoadConfig reads configuration in increasing precedence: defaults, config
// file, CORESOLVER_* environment, then flags of cmd named in FlagKeys. A
// missing config file is not an error. explicitPath, when set, is the only
// file considered.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, string, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. File search paths
	v.SetConfigName("coresolver")
	v.SetConfigType("yaml")
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	} else {
		if userConfigPath, err := GetConfigPath(false); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		if systemConfigPath, err := GetConfigPath(true); err == nil {
			v.AddConfigPath(filepath.Dir(systemConfigPath))
		}
		v.AddConfigPath(".")
	}

	// 3. Read the config file; only "not found" is tolerated.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, "", err
		}
	}

	// 4. Environment
	v.SetEnvPrefix("coresolver")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 5. Flags
	if cmd != nil {
		for flag, key := range FlagKeys {
			if f := cmd.Flags().Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, "", err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", err
	}

	return c, v.ConfigFileUsed(), nil
}

// Load is LoadConfig for Config followed by Validate.
func Load(cmd *cobra.Command, explicitPath *string) (Config, string, error) {
	c, used, err := LoadConfig[Config](cmd, Defaults(), explicitPath)
	if err != nil {
		return c, used, err
	}
	if err := Validate(c); err != nil {
		return c, used, err
	}
	return c, used, nil
}

// Render returns c in the on-disk YAML format.
func Render[T any](c *T) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteConfigFile writes c to the user or system config path and returns the
// path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := Render(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	return path, nil
}
