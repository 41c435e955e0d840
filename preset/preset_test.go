package preset

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/pixeled/mode"
	"github.com/milk9111/pixeled/paint"
	"github.com/milk9111/pixeled/palette"
)

func TestDefaultPreset(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	v, err := p.Mode()
	if err != nil || v != mode.Cursor {
		t.Fatalf("initial mode = %v, %v", v, err)
	}
	pal, err := p.BuildPalette()
	if err != nil {
		t.Fatalf("BuildPalette: %v", err)
	}
	if pal.Primary() != paint.Black || pal.Secondary() != paint.Transparent {
		t.Fatalf("unexpected colors %v / %v", pal.Primary(), pal.Secondary())
	}
	if blue, ok := pal.Swatch(0, 3); !ok || blue != (color.NRGBA{B: 255, A: 255}) {
		t.Fatalf("swatch (0,3) = %v,%v", blue, ok)
	}
	if pal.Free() != palette.Cols {
		t.Fatalf("expected empty second row, free=%d", pal.Free())
	}
	s := p.Settings()
	if s.Pencil.Brush != paint.Round || s.Pencil.Radius != 5 {
		t.Fatalf("unexpected pencil defaults %+v", s.Pencil)
	}
}

func TestLoadEmptyPathUsesEmbedded(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if p.Name != "default" {
		t.Fatalf("expected embedded preset, got %q", p.Name)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	src := `
initial_mode: magic-wand
tools:
  pencil:
    radius: 12
  shape:
    type: ellipse
`
	p, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v, _ := p.Mode(); v != mode.MagicWand {
		t.Fatalf("initial mode = %v", v)
	}
	s := p.Settings()
	if s.Pencil.Radius != 12 || s.Pencil.Brush != paint.Round {
		t.Fatalf("pencil = %+v", s.Pencil)
	}
	if s.Shape.Type != paint.Ellipse || s.Shape.BorderWidth != 1 {
		t.Fatalf("shape = %+v", s.Shape)
	}
	if s.Fill.Tolerance != 0.1 {
		t.Fatalf("fill tolerance default lost: %v", s.Fill.Tolerance)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"bad_mode", "initial_mode: pencl\n", "did you mean"},
		{"bad_primary", "palette:\n  primary: nope\n", "palette.primary"},
		{"bad_swatch", "palette:\n  swatches:\n    - [\"#zzzzzz\"]\n", "palette.swatches[0][0]"},
		{"too_many_rows", "palette:\n  swatches: [[], [], []]\n", "palette.swatches"},
		{"bad_enum", "tools:\n  pencil:\n    brush: spray\n", "unknown brush type"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.src))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("error %q does not mention %q", err.Error(), c.want)
			}
		})
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tools.yaml")
	if err := os.WriteFile(path, []byte("name: disk\ninitial_mode: fill\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Name != "disk" {
		t.Fatalf("name = %q", p.Name)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tools.yaml")
	if err := os.WriteFile(path, []byte("name: a\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}
	if err := os.WriteFile(path, []byte("name: b\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "tools.yaml" {
			t.Fatalf("unexpected event for %s", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for preset change")
	}
}

func TestWatcherReportsAfterLastSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tools.yaml")
	if err := os.WriteFile(path, []byte("name: a\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	for _, name := range []string{"b", "c"} {
		if err := os.WriteFile(path, []byte("name: "+name+"\n"), 0o644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
	}

	select {
	case <-w.Events:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for preset change")
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load after change: %v", err)
	}
	if p.Name != "c" {
		t.Fatalf("reload saw %q, want the last save", p.Name)
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(filepath.Join(dir, "tools.yaml"))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("events channel should be closed")
	}
}
