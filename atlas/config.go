package atlas

// Config holds atlas configuration.
type Config struct {
	// Width is the atlas texture width in pixels.
	// Default: 1024
	Width int `yaml:"width"`

	// Height is the atlas texture height in pixels.
	// Default: 1024
	Height int `yaml:"height"`

	// Padding is the number of empty pixels kept around each glyph on every
	// edge, so bilinear filtering never samples a neighbour.
	// Default: 1
	Padding int `yaml:"padding"`

	// FontSize is the rasterization size in pixels per em.
	// Default: 48
	FontSize float64 `yaml:"font_size"`
}

// Default atlas settings.
const (
	DefaultSize     = 1024
	DefaultPadding  = 1
	DefaultFontSize = 48.0

	// MaxSize is the largest supported atlas dimension.
	MaxSize = 8192
)

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Width:    DefaultSize,
		Height:   DefaultSize,
		Padding:  DefaultPadding,
		FontSize: DefaultFontSize,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Width < 1 {
		return &ConfigError{Field: "Width", Reason: "must be positive"}
	}
	if c.Width > MaxSize {
		return &ConfigError{Field: "Width", Reason: "must be at most 8192"}
	}
	if c.Height < 1 {
		return &ConfigError{Field: "Height", Reason: "must be positive"}
	}
	if c.Height > MaxSize {
		return &ConfigError{Field: "Height", Reason: "must be at most 8192"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	if 2*c.Padding >= c.Width || 2*c.Padding >= c.Height {
		return &ConfigError{Field: "Padding", Reason: "leaves no room for glyphs"}
	}
	if c.FontSize <= 0 {
		return &ConfigError{Field: "FontSize", Reason: "must be positive"}
	}
	return nil
}
