// SPDX-License-Identifier: MPL-2.0

// Package config loads scriptpick's user configuration through viper,
// following platform conventions for the config directory. Every key has
// a default, so a missing config file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name used for directories and env vars.
	AppName = "scriptpick"
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
	// EnvPrefix prefixes environment variable overrides (SCRIPTPICK_*).
	EnvPrefix = "SCRIPTPICK"
)

// configDirOverride lets tests point config loading at a fixture
// directory.
var configDirOverride string

type (
	// ScriptsConfig covers the script file conventions.
	ScriptsConfig struct {
		// Extension is the file-extension convention the reconciler uses
		// to decide which directory entries must be documented.
		Extension string
	}

	// UIConfig covers terminal presentation.
	UIConfig struct {
		// Theme is the glamour style used for rendered Markdown.
		Theme string
		// Verbose enables debug logging.
		Verbose bool
	}

	// InjectConfig covers the invocation-injection collaborator.
	InjectConfig struct {
		// Command is the external typing tool; the invocation is appended
		// as its final argument.
		Command []string
		// Delay is the settle time before the injector is dispatched.
		Delay time.Duration
	}

	// WatchConfig covers validate --watch.
	WatchConfig struct {
		// Debounce is the quiet window coalescing filesystem events.
		Debounce time.Duration
	}

	// Config is the full user configuration.
	Config struct {
		Scripts ScriptsConfig
		UI      UIConfig
		Inject  InjectConfig
		Watch   WatchConfig
	}
)

// SetConfigDirOverride forces config loading to use dir. Pass "" to
// restore the platform default. Intended for tests.
func SetConfigDirOverride(dir string) { configDirOverride = dir }

// Default returns the built-in configuration, used as the base layer of
// Load and as the fallback when loading fails.
func Default() *Config {
	return &Config{
		Scripts: ScriptsConfig{Extension: ".sh"},
		UI:      UIConfig{Theme: "auto"},
		Inject: InjectConfig{
			Command: []string{"xdotool", "type", "--clearmodifiers"},
			Delay:   250 * time.Millisecond,
		},
		Watch: WatchConfig{Debounce: 400 * time.Millisecond},
	}
}

// ConfigDir returns the scriptpick configuration directory using
// platform conventions: %APPDATA% on Windows, ~/Library/Application
// Support on macOS, and $XDG_CONFIG_HOME (default ~/.config) elsewhere.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string
	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load reads the configuration. Precedence: defaults, then the config
// file (if present), then SCRIPTPICK_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("scripts.extension", def.Scripts.Extension)
	v.SetDefault("ui.theme", def.UI.Theme)
	v.SetDefault("ui.verbose", def.UI.Verbose)
	v.SetDefault("inject.command", def.Inject.Command)
	v.SetDefault("inject.delay", def.Inject.Delay)
	v.SetDefault("watch.debounce", def.Watch.Debounce)

	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	v.SetConfigName(ConfigFileName)
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Scripts: ScriptsConfig{
			Extension: v.GetString("scripts.extension"),
		},
		UI: UIConfig{
			Theme:   v.GetString("ui.theme"),
			Verbose: v.GetBool("ui.verbose"),
		},
		Inject: InjectConfig{
			Command: v.GetStringSlice("inject.command"),
			Delay:   v.GetDuration("inject.delay"),
		},
		Watch: WatchConfig{
			Debounce: v.GetDuration("watch.debounce"),
		},
	}

	if ok, errs := cfg.IsValid(); !ok {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// IsValid reports whether the configuration is usable.
func (c *Config) IsValid() (bool, []error) {
	var errs []error
	if c.Scripts.Extension == "" {
		errs = append(errs, errors.New("scripts.extension must not be empty"))
	}
	if len(c.Inject.Command) == 0 {
		errs = append(errs, errors.New("inject.command must not be empty"))
	}
	if c.Inject.Delay < 0 {
		errs = append(errs, errors.New("inject.delay must not be negative"))
	}
	if c.Watch.Debounce < 0 {
		errs = append(errs, errors.New("watch.debounce must not be negative"))
	}
	return len(errs) == 0, errs
}
