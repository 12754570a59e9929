// Package config loads and saves the editor's JSON configuration.
// A missing file is not an error; it yields the defaults.
package config

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Config holds the user-tunable settings.
type Config struct {
	// TabStop is the column interval tabs expand to on screen.
	TabStop int

	// ScrollMargin is how many rows to keep visible above and below
	// the cursor when the viewport follows it.
	ScrollMargin int

	// LogLevel selects the minimum level written to the log.
	LogLevel string

	// LogFile is the log destination path. Empty disables logging.
	LogFile string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TabStop:      4,
		ScrollMargin: 0,
		LogLevel:     "info",
		LogFile:      "",
	}
}

// Load reads settings from a JSON file, filling absent keys from the
// defaults. A missing file returns the defaults with no error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return cfg, fmt.Errorf("parse config %s: invalid JSON", path)
	}

	if v := gjson.GetBytes(data, "editor.tabStop"); v.Exists() {
		cfg.TabStop = int(v.Int())
	}
	if v := gjson.GetBytes(data, "editor.scrollMargin"); v.Exists() {
		cfg.ScrollMargin = int(v.Int())
	}
	if v := gjson.GetBytes(data, "log.level"); v.Exists() {
		cfg.LogLevel = v.String()
	}
	if v := gjson.GetBytes(data, "log.file"); v.Exists() {
		cfg.LogFile = v.String()
	}

	return cfg.normalize(), nil
}

// Save writes the settings to a JSON file.
func (c Config) Save(path string) error {
	var (
		out []byte
		err error
	)
	for _, field := range []struct {
		key   string
		value any
	}{
		{"editor.tabStop", c.TabStop},
		{"editor.scrollMargin", c.ScrollMargin},
		{"log.level", c.LogLevel},
		{"log.file", c.LogFile},
	} {
		out, err = sjson.SetBytes(out, field.key, field.value)
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// normalize clamps out-of-range values back to usable ones.
func (c Config) normalize() Config {
	if c.TabStop < 1 {
		c.TabStop = Default().TabStop
	}
	if c.ScrollMargin < 0 {
		c.ScrollMargin = 0
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = Default().LogLevel
	}
	return c
}
