// Command ggui renders a UI declaration file to a PDF snapshot.
//
// Usage:
//
//	ggui -ui panel.ggui -output panel.pdf
//	ggui -config ggui.yaml -width 1280 -height 720
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/atlas"
	"github.com/gogpu/ggui/dsl"
	"github.com/gogpu/ggui/layout"
	"github.com/gogpu/ggui/snapshot"
	"github.com/gogpu/ggui/text"
)

// defaultUI is drawn when no UI file is given.
const defaultUI = `
vbox {
  hbox {
    text "Glyph atlas" background #203040
    rect #4080c0
  }
  hbox {
    text "The quick brown fox jumps over the lazy dog." wrap color #ffe080
    image
  }
}
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "ggui:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("ggui", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "YAML configuration file")
		uiPath     = fs.String("ui", "", "UI declaration file (default: built-in demo)")
		output     = fs.String("output", "", "output PDF file")
		fontPath   = fs.String("font", "", "TrueType/OpenType font (default: Go Regular)")
		width      = fs.Float64("width", 0, "viewport width")
		height     = fs.Float64("height", 0, "viewport height")
		fontSize   = fs.Float64("font-size", 0, "glyph size in pixels")
		atlasSize  = fs.Int("atlas", 0, "atlas width and height in pixels")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	// Flags override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ui":
			cfg.UI = *uiPath
		case "output":
			cfg.Output = *output
		case "font":
			cfg.Font = *fontPath
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "font-size":
			cfg.Atlas.FontSize = *fontSize
		case "atlas":
			cfg.Atlas.Width, cfg.Atlas.Height = *atlasSize, *atlasSize
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		}
	})
	if err := cfg.validate(); err != nil {
		return err
	}

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ggui.SetLogger(logger)

	root, err := loadUI(cfg.UI)
	if err != nil {
		return err
	}

	raster, err := newRasterizer(cfg.Font)
	if err != nil {
		return err
	}
	defer raster.Close()

	tex := atlas.NewImageTexture(cfg.Atlas.Width, cfg.Atlas.Height)
	viewport := layout.NewBbox(0, 0, cfg.Width, cfg.Height)

	snap, err := snapshot.New(tex, viewport)
	if err != nil {
		return err
	}
	snap.SetClearColor(cfg.ClearColor().Vertex())

	frame, err := ggui.NewFrame(cfg.Config, raster, tex, snap)
	if err != nil {
		return err
	}
	if err := frame.Draw(root, viewport); err != nil {
		return err
	}
	if err := snap.Save(cfg.Output); err != nil {
		return err
	}

	st := frame.Stats()
	cs := frame.Cache().Stats()
	logger.Info("frame drawn",
		"glyph_quads", st.GlyphQuads,
		"rect_quads", st.RectQuads,
		"evictions", st.Evictions,
		"skipped", st.Skipped,
		"truncated", st.Truncated,
		"atlas_glyphs", cs.Glyphs,
		"atlas_utilization", fmt.Sprintf("%.1f%%", cs.Utilization*100),
	)
	return nil
}

func loadUI(path string) (*layout.Node, error) {
	if path == "" {
		return dsl.Load(defaultUI)
	}
	doc, err := dsl.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return dsl.Build(doc)
}

func newRasterizer(path string) (*text.OpenTypeRasterizer, error) {
	if path == "" {
		return text.NewDefaultRasterizer()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return text.NewOpenTypeRasterizer(data)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}
