package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggui"
)

// fileConfig is the YAML document read with -config. Every field is
// optional; unset fields keep their defaults.
type fileConfig struct {
	ggui.Config `yaml:",inline"`

	// Width and Height are the viewport size in layout units.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// UI is the path of the UI declaration file.
	UI string `yaml:"ui"`

	// Font is the path of a TrueType or OpenType font. Empty means Go Regular.
	Font string `yaml:"font"`

	// Output is the path of the PDF snapshot.
	Output string `yaml:"output"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Config:   ggui.DefaultConfig(),
		Width:    800,
		Height:   600,
		Output:   "frame.pdf",
		LogLevel: "info",
	}
}

// loadConfig reads path over the defaults. A missing path yields the
// defaults unchanged.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := decodeConfig(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(data []byte, cfg *fileConfig) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *fileConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport %gx%g must be positive", c.Width, c.Height)
	}
	if c.Output == "" {
		return errors.New("output path is empty")
	}
	return c.Config.Validate()
}
