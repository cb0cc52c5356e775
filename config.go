package ggui

import (
	"github.com/gogpu/ggui/atlas"
)

// Config holds frame configuration.
type Config struct {
	// Atlas configures the glyph atlas cache.
	Atlas atlas.Config `yaml:"atlas"`

	// LineHeight is the distance between text lines in pixels.
	// Zero means: ask the rasterizer, or fall back to the atlas font size.
	// Default: 0
	LineHeight float64 `yaml:"line_height"`

	// Clear is the background color, as a hex string.
	// Default: "#000000"
	Clear string `yaml:"clear"`
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Atlas: atlas.DefaultConfig(),
		Clear: "#000000",
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Atlas.Validate(); err != nil {
		return err
	}
	if c.LineHeight < 0 {
		return &ConfigError{Field: "LineHeight", Reason: "must be non-negative"}
	}
	if c.Clear != "" {
		if _, err := ParseHex(c.Clear); err != nil {
			return &ConfigError{Field: "Clear", Reason: err.Error()}
		}
	}
	return nil
}

// ClearColor returns the parsed background color.
func (c *Config) ClearColor() RGBA {
	if c.Clear == "" {
		return Black
	}
	return Hex(c.Clear)
}
