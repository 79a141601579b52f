package core

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hubastard/thicket/engine/colors"
	"github.com/hubastard/thicket/engine/theme"
)

// Config for the engine run.
type Config struct {
	Title      string    `yaml:"title"`
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	VSync      bool      `yaml:"vsync"`
	ClearColor theme.Hex `yaml:"clear_color"`

	LogLevel  string `yaml:"log_level"` // debug, info, warn or error
	ThemePath string `yaml:"theme"`
	FontPath  string `yaml:"font"` // empty means the built-in bitmap face

	// Storage entries untouched for this many frames are swept; 0, the
	// default, keeps every entry for the life of the UI.
	StorageMaxIdle uint64 `yaml:"storage_max_idle"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "Thicket",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: theme.Hex(colors.DarkGray),
		LogLevel:   "info",
	}
}

// LoadConfig decodes a YAML file over DefaultConfig. A missing file yields
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("config %q: invalid window size %dx%d", path, cfg.Width, cfg.Height)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// ParseLevel maps a config log level to slog. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
