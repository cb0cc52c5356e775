package dsl

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#[0-9A-Fa-f]+\b`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Keyword", Pattern: `(?:hbox|vbox|text|rect|image)\b`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
		{Name: "Symbol", Pattern: `[;,]`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment"),
		participle.Unquote("String"),
	)
)

// Document is the root AST node of a UI file.
type Document struct {
	Pos      lexer.Position `parser:""`
	Elements []*Element     `parser:"@@*"`
}

// Element is one node of the tree.
type Element struct {
	Pos       lexer.Position `parser:""`
	Container *Container     `parser:"(  @@"`
	Text      *TextElement   `parser:" | @@"`
	Rect      *RectElement   `parser:" | @@"`
	Image     *ImageElement  `parser:" | @@ ) ';'?"`
}

// Kind returns the element keyword.
func (e *Element) Kind() string {
	switch {
	case e == nil:
		return "unknown"
	case e.Container != nil:
		return e.Container.Kind
	case e.Text != nil:
		return "text"
	case e.Rect != nil:
		return "rect"
	case e.Image != nil:
		return "image"
	default:
		return "unknown"
	}
}

// Container is an hbox or vbox with its children.
type Container struct {
	Pos      lexer.Position `parser:""`
	Kind     string         `parser:"@( 'hbox' | 'vbox' )"`
	Children []*Element     `parser:"'{' @@* '}'"`
}

// TextElement is a text leaf.
type TextElement struct {
	Pos   lexer.Position `parser:""`
	Lines []string       `parser:"'text' @String+"`
	Attrs []*Attribute   `parser:"@@*"`
}

// RectElement is a solid rectangle leaf.
type RectElement struct {
	Pos   lexer.Position `parser:""`
	Color *string        `parser:"'rect' @Color?"`
	Attrs []*Attribute   `parser:"@@*"`
}

// ImageElement draws the glyph atlas.
type ImageElement struct {
	Pos lexer.Position `parser:""`
	Tag string         `parser:"@'image'"`
}

// Attribute is a named flag with an optional color value, eg `wrap` or
// `color #fff`. Names are checked when the tree is built.
type Attribute struct {
	Pos   lexer.Position `parser:""`
	Name  string         `parser:"@Ident"`
	Value *string        `parser:"@Color?"`
}

// Parse parses a UI document from r.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseFile parses the UI document at path. Error positions carry the path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dsl: %w", err)
	}
	defer f.Close()
	return documentParser.Parse(path, f)
}

// ParseString parses a UI document from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
