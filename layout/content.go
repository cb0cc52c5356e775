package layout

// Color is a straight-alpha RGBA color with components in [0, 1], laid out
// the way vertex attributes expect it.
type Color [4]float32

// Common colors.
var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{}
)

// Content is what a Leaf draws. The set of implementations is closed:
// *Text, *SolidRect and *Image.
type Content interface {
	isContent()
}

// Text is one or more lines of text drawn from the top-left of the leaf box.
type Text struct {
	Lines []string

	// Wrap wraps the lines against the leaf box. Without it each line is a
	// single run that may leave the box.
	Wrap bool

	TextColor Color

	// Background, if set, is drawn behind the text over the whole leaf box.
	Background *Color
}

// SolidRect fills the leaf box with a color.
type SolidRect struct {
	Color Color
}

// Image draws the whole glyph atlas stretched over the leaf box.
type Image struct{}

func (*Text) isContent()      {}
func (*SolidRect) isContent() {}
func (*Image) isContent()     {}

// NewText returns white text content.
func NewText(lines ...string) *Text {
	return &Text{Lines: lines, TextColor: White}
}
