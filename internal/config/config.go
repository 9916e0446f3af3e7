// Package config loads mapranks settings from an INI file layered over the
// built-in defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

//go:embed default.ini
var defaultConfig []byte

// Config holds the settings a command starts from. Command-line flags take
// precedence over every field.
type Config struct {
	Source struct {
		URL string `ini:"url"`
	} `ini:"source"`
	Storage struct {
		DB string `ini:"db"`
	} `ini:"storage"`
	Display struct {
		Rows        int `ini:"rows"`
		SearchLimit int `ini:"search_limit"`
	} `ini:"display"`

	// Path is the user file that was layered over the defaults, or "" if none was found.
	Path string `ini:"-"`
}

// Dir returns the per-user state directory (~/.mapranks).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mapranks"
	}
	return filepath.Join(home, ".mapranks")
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string { return filepath.Join(Dir(), "config.ini") }

// Load reads the defaults, then the file at path if it exists. A missing file
// is not an error; an unreadable or malformed one is.
func Load(path string) (*Config, error) {
	options := ini.LoadOptions{
		SkipUnrecognizableLines: true,
		IgnoreInlineComment:     false,
	}

	sources := []any{defaultConfig}
	var used string
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			sources = append(sources, path)
			used = path
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat config: %w", err)
		}
	}

	f, err := ini.LoadSources(options, sources[0], sources[1:]...)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := f.MapTo(&c); err != nil {
		return nil, fmt.Errorf("map config: %w", err)
	}
	c.Path = used
	c.normalize()
	return &c, nil
}

func (c *Config) normalize() {
	if c.Storage.DB == "" {
		c.Storage.DB = filepath.Join(Dir(), "mapranks.db")
	}
	if c.Display.Rows < 0 {
		c.Display.Rows = 0
	}
	if c.Display.SearchLimit < 0 {
		c.Display.SearchLimit = 0
	}
}
