package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for atlas package.
var (
	// ErrGlyphTooLarge is returned when a glyph, including padding, cannot fit
	// even in an empty atlas.
	ErrGlyphTooLarge = errors.New("atlas: glyph does not fit in an empty atlas")

	// ErrRegionNotAllocated is returned when deallocating a region the
	// allocator does not track.
	ErrRegionNotAllocated = errors.New("atlas: region is not allocated")

	// ErrRegionOutOfBounds is returned when an upload falls outside the texture.
	ErrRegionOutOfBounds = errors.New("atlas: region is outside atlas bounds")

	// ErrNilRasterizer is returned by NewCache when no rasterizer is provided.
	ErrNilRasterizer = errors.New("atlas: rasterizer is nil")

	// ErrNilTexture is returned by NewCache when no texture is provided.
	ErrNilTexture = errors.New("atlas: texture is nil")
)

// GlyphError reports a failure to cache a single rune.
// Err is ErrGlyphTooLarge or the error returned by the rasterizer or texture.
type GlyphError struct {
	Rune rune
	Op   string
	Err  error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("atlas: %s %q: %v", e.Op, e.Rune, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}
