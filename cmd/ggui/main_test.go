package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("viewport = %gx%g, want 800x600", cfg.Width, cfg.Height)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, cfg fileConfig)
	}{
		{
			name: "overrides",
			yaml: "width: 320\nheight: 240\nline_height: 30\nclear: \"#102030\"\natlas:\n  width: 256\n  height: 128\n  font_size: 24\n",
			check: func(t *testing.T, cfg fileConfig) {
				if cfg.Width != 320 || cfg.Height != 240 {
					t.Errorf("viewport = %gx%g", cfg.Width, cfg.Height)
				}
				if cfg.LineHeight != 30 || cfg.Clear != "#102030" {
					t.Errorf("frame config = %+v", cfg.Config)
				}
				if cfg.Atlas.Width != 256 || cfg.Atlas.Height != 128 || cfg.Atlas.FontSize != 24 {
					t.Errorf("atlas config = %+v", cfg.Atlas)
				}
				if cfg.Atlas.Padding != 1 {
					t.Errorf("padding = %d, want default 1", cfg.Atlas.Padding)
				}
			},
		},
		{
			name: "empty document keeps defaults",
			yaml: "",
			check: func(t *testing.T, cfg fileConfig) {
				if cfg.Output != "frame.pdf" {
					t.Errorf("output = %q", cfg.Output)
				}
			},
		},
		{name: "unknown field", yaml: "colour: red\n", wantErr: true},
		{name: "bad type", yaml: "width: wide\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultFileConfig()
			err := decodeConfig([]byte(tt.yaml), &cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := defaultFileConfig()
	cfg.Width = 0
	if err := cfg.validate(); err == nil {
		t.Error("expected error for zero width")
	}

	cfg = defaultFileConfig()
	cfg.Clear = "#12"
	if err := cfg.validate(); err == nil {
		t.Error("expected error for bad clear color")
	}
}

func TestParseLevel(t *testing.T) {
	for s, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := parseLevel(s)
		if err != nil || got != want {
			t.Errorf("parseLevel(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
	if _, err := parseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	ui := filepath.Join(dir, "panel.ggui")
	out := filepath.Join(dir, "panel.pdf")
	if err := os.WriteFile(ui, []byte(`hbox { text "ok" color #00ff00; rect #ff0000 }`), 0o644); err != nil {
		t.Fatal(err)
	}

	args := []string{"-ui", ui, "-output", out, "-width", "200", "-height", "100", "-atlas", "256", "-font-size", "16"}
	if err := run(args); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestRunDefaultUI(t *testing.T) {
	out := filepath.Join(t.TempDir(), "demo.pdf")
	if err := run([]string{"-output", out, "-atlas", "512", "-font-size", "20"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatal(err)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.ggui")
	if err := os.WriteFile(bad, []byte(`hbox { text "a" bold }`), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, args := range [][]string{
		{"-ui", bad},
		{"-ui", filepath.Join(dir, "missing.ggui")},
		{"-config", filepath.Join(dir, "missing.yaml")},
		{"-width", "-1"},
		{"-font", filepath.Join(dir, "missing.ttf")},
	} {
		args = append(args, "-output", filepath.Join(dir, "out.pdf"))
		if err := run(args); err == nil {
			t.Errorf("run(%q) succeeded, want error", args)
		}
	}
}
