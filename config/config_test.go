package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PIXELED_CONFIG", "")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Preset.Path != "" || !c.Preset.Watch {
		t.Fatalf("unexpected preset defaults %+v", c.Preset)
	}
	if c.UI.Width != 1280 || c.UI.Height != 800 || !c.UI.Clipboard {
		t.Fatalf("unexpected ui defaults %+v", c.UI)
	}
	if c.Canvas != (CanvasConfig{Width: 64, Height: 64, Zoom: 8}) {
		t.Fatalf("unexpected canvas defaults %+v", c.Canvas)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pixeled.yaml")
	src := `
preset:
  path: /tmp/tools.yaml
  watch: false
hook:
  script: hooks/auto.tengo
ui:
  initial_mode: pencil
  width: 1024
canvas:
  width: 32
  zoom: 12
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("PIXELED_CONFIG", path)
	t.Setenv("PIXELED_UI_HEIGHT", "600")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Preset.Path != "/tmp/tools.yaml" || c.Preset.Watch {
		t.Fatalf("preset = %+v", c.Preset)
	}
	if c.Hook.Script != "hooks/auto.tengo" {
		t.Fatalf("hook = %+v", c.Hook)
	}
	if c.UI.InitialMode != "pencil" || c.UI.Width != 1024 || c.UI.Height != 600 {
		t.Fatalf("ui = %+v", c.UI)
	}
	if c.Canvas.Width != 32 || c.Canvas.Height != 64 || c.Canvas.Zoom != 12 {
		t.Fatalf("canvas = %+v", c.Canvas)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	t.Setenv("PIXELED_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoadRejectsBadWindowSize(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PIXELED_CONFIG", "")
	t.Setenv("PIXELED_UI_WIDTH", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestLoadRejectsBadCanvas(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PIXELED_CONFIG", "")
	t.Setenv("PIXELED_CANVAS_ZOOM", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero zoom")
	}
}
