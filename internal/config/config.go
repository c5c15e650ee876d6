// Package config loads zjnav configuration from file and environment.
//
// Precedence (highest to lowest):
//  1. Environment variables (ZJNAV_*)
//  2. Config file
//  3. Built-in defaults
//
// Config file search order:
//  1. .zjnav.yaml in current directory
//  2. ~/.config/zjnav/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjnav/zjnav/internal/keybind"
	"github.com/zjnav/zjnav/internal/trigger"
)

// Config holds all zjnav configuration.
type Config struct {
	// Keybinding modifiers for editor keystroke injection.
	MoveMod   string `yaml:"move_mod"`   // ctrl or alt, case-insensitive
	ResizeMod string `yaml:"resize_mod"` // ctrl or alt, case-insensitive

	// Editors is the set of occupant names routed via keystrokes
	// instead of native actions.
	Editors []string `yaml:"editors"`

	// Socket is the trigger socket path.
	Socket string `yaml:"socket"`

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint"`
	OTELHeaders  string `yaml:"otel_headers"` // Comma-separated key=value pairs

	// Parsed modifiers (not from YAML, set after loading).
	MoveModifier   keybind.Mod `yaml:"-"`
	ResizeModifier keybind.Mod `yaml:"-"`

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		MoveMod:   "ctrl",
		ResizeMod: "alt",
		Editors:   []string{"vim", "nvim"},
		Socket:    trigger.DefaultSocketPath(),
	}
}

// Load reads configuration from file and environment variables.
// Environment variables always override file values. An unrecognized
// modifier value is an error — startup must refuse to continue.
func Load() (*Config, error) {
	cfg := Defaults()

	// Try to load config file
	if path, data, err := findConfigFile(); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
		mergeFile(cfg, &fileCfg)
	}

	// Environment variables override everything
	mergeEnv(cfg)

	// Parse modifiers
	var err error
	cfg.MoveModifier, err = keybind.ParseMod(cfg.MoveMod)
	if err != nil {
		return nil, fmt.Errorf("invalid move_mod: %w", err)
	}
	cfg.ResizeModifier, err = keybind.ParseMod(cfg.ResizeMod)
	if err != nil {
		return nil, fmt.Errorf("invalid resize_mod: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file and returns its path and contents.
func findConfigFile() (string, []byte, error) {
	// 1. Current directory
	if data, err := os.ReadFile(".zjnav.yaml"); err == nil {
		return ".zjnav.yaml", data, nil
	}

	// 2. XDG config dir / ~/.config
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "zjnav", "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			return path, data, nil
		}
	}

	return "", nil, fmt.Errorf("no config file found")
}

// mergeFile applies non-zero file values onto cfg.
func mergeFile(cfg *Config, file *Config) {
	if file.MoveMod != "" {
		cfg.MoveMod = file.MoveMod
	}
	if file.ResizeMod != "" {
		cfg.ResizeMod = file.ResizeMod
	}
	if len(file.Editors) > 0 {
		cfg.Editors = file.Editors
	}
	if file.Socket != "" {
		cfg.Socket = file.Socket
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config) {
	if v := os.Getenv("ZJNAV_MOVE_MOD"); v != "" {
		cfg.MoveMod = v
	}
	if v := os.Getenv("ZJNAV_RESIZE_MOD"); v != "" {
		cfg.ResizeMod = v
	}
	if v := os.Getenv("ZJNAV_EDITORS"); v != "" {
		cfg.Editors = splitList(v)
	}
	if v := os.Getenv("ZJNAV_SOCKET"); v != "" {
		cfg.Socket = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}
}

// splitList parses a comma-separated list, trimming whitespace and
// dropping empty entries.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
