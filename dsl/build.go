package dsl

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/layout"
)

// ErrNoRoot is returned for a document without elements.
var ErrNoRoot = errors.New("dsl: document has no root element")

// Error is a semantic error at a source position.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("dsl: %s: %s", e.Pos, e.Msg)
}

func errorf(pos lexer.Position, format string, args ...any) error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Build converts a parsed document to a layout tree.
// The document must hold exactly one root element.
func Build(doc *Document) (*layout.Node, error) {
	if doc == nil || len(doc.Elements) == 0 {
		return nil, ErrNoRoot
	}
	if len(doc.Elements) > 1 {
		extra := doc.Elements[1]
		return nil, errorf(extra.Pos, "unexpected %s after the root element", extra.Kind())
	}
	return buildElement(doc.Elements[0])
}

// Load parses and builds a tree in one step.
func Load(input string) (*layout.Node, error) {
	doc, err := ParseString(input)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

func buildElement(e *Element) (*layout.Node, error) {
	switch {
	case e.Container != nil:
		return buildContainer(e.Container)
	case e.Text != nil:
		return buildText(e.Text)
	case e.Rect != nil:
		return buildRect(e.Rect)
	case e.Image != nil:
		return layout.NewLeaf(&layout.Image{}), nil
	}
	return nil, errorf(e.Pos, "empty element")
}

func buildContainer(c *Container) (*layout.Node, error) {
	children := make([]*layout.Node, 0, len(c.Children))
	for _, child := range c.Children {
		n, err := buildElement(child)
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	if c.Kind == "vbox" {
		return layout.NewVbox(children...), nil
	}
	return layout.NewHbox(children...), nil
}

func buildText(t *TextElement) (*layout.Node, error) {
	content := layout.NewText(t.Lines...)
	for _, a := range t.Attrs {
		switch a.Name {
		case "wrap":
			if a.Value != nil {
				return nil, errorf(a.Pos, "wrap takes no value")
			}
			content.Wrap = true
		case "color":
			c, err := attrColor(a)
			if err != nil {
				return nil, err
			}
			content.TextColor = c
		case "background":
			c, err := attrColor(a)
			if err != nil {
				return nil, err
			}
			content.Background = &c
		default:
			return nil, errorf(a.Pos, "unknown text attribute %q", a.Name)
		}
	}
	return layout.NewLeaf(content), nil
}

func buildRect(r *RectElement) (*layout.Node, error) {
	fill := layout.White
	if r.Color != nil {
		c, err := parseColor(r.Pos, *r.Color)
		if err != nil {
			return nil, err
		}
		fill = c
	}
	for _, a := range r.Attrs {
		if a.Name != "color" {
			return nil, errorf(a.Pos, "unknown rect attribute %q", a.Name)
		}
		c, err := attrColor(a)
		if err != nil {
			return nil, err
		}
		fill = c
	}
	return layout.NewLeaf(&layout.SolidRect{Color: fill}), nil
}

func attrColor(a *Attribute) (layout.Color, error) {
	if a.Value == nil {
		return layout.Color{}, errorf(a.Pos, "%s needs a #hex color", a.Name)
	}
	return parseColor(a.Pos, *a.Value)
}

func parseColor(pos lexer.Position, s string) (layout.Color, error) {
	c, err := ggui.ParseHex(s)
	if err != nil {
		return layout.Color{}, &Error{Pos: pos, Msg: err.Error()}
	}
	return c.Vertex(), nil
}
