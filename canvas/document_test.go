package canvas

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/milk9111/pixeled/mode"
	"github.com/milk9111/pixeled/paint"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

var _ mode.Canvas = (*Document)(nil)

func countColor(d *Document, c color.NRGBA) int {
	n := 0
	b := d.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if d.At(image.Pt(x, y)) == c {
				n++
			}
		}
	}
	return n
}

func TestSelectClipsToBounds(t *testing.T) {
	d := NewDocument(10, 10)
	if _, ok := d.Selection(); ok {
		t.Fatalf("new document must have no selection")
	}
	d.Select(image.Rect(8, 8, -3, 4))
	got, ok := d.Selection()
	if !ok || got != image.Rect(0, 4, 8, 8) {
		t.Fatalf("selection = %v %v", got, ok)
	}
	d.Select(image.Rect(20, 20, 30, 30))
	if _, ok := d.Selection(); ok {
		t.Fatalf("selection outside the document must clear")
	}
}

func TestStampUsesFootprintAndColor(t *testing.T) {
	cases := []struct {
		name      string
		typ       paint.BrushType
		radius    int
		secondary bool
		want      int
		c         color.NRGBA
	}{
		{"single_pixel", paint.Round, 1, false, 1, red},
		{"square_3", paint.Square, 3, false, 25, red},
		{"round_secondary", paint.Round, 2, true, 9, blue},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := NewDocument(16, 16)
			b := paint.NewBrush(red, blue, c.typ, c.radius)
			d.Stamp(b, image.Pt(8, 8), paint.Overwrite, c.secondary)
			if got := countColor(d, c.c); got != c.want {
				t.Fatalf("painted %d pixels, want %d", got, c.want)
			}
			if !d.Dirty() || d.Dirty() {
				t.Fatalf("Dirty must report once")
			}
		})
	}
}

func TestStrokeCoversBothEnds(t *testing.T) {
	d := NewDocument(16, 16)
	b := paint.NewBrush(red, blue, paint.Round, 1)
	d.Stroke(b, image.Pt(1, 1), image.Pt(10, 4), paint.Overwrite, false)
	if d.At(image.Pt(1, 1)) != red || d.At(image.Pt(10, 4)) != red {
		t.Fatalf("stroke must include both ends")
	}
	if got := countColor(d, red); got != 10 {
		t.Fatalf("stroke painted %d pixels, want 10", got)
	}
}

func TestBlendModes(t *testing.T) {
	half := color.NRGBA{B: 255, A: 128}
	cases := []struct {
		name  string
		blend paint.BlendingMode
		check func(color.NRGBA) bool
	}{
		{"paint_composites", paint.Paint, func(c color.NRGBA) bool { return c.A == 255 && c.R > 0 && c.B > 0 }},
		{"overwrite_replaces", paint.Overwrite, func(c color.NRGBA) bool { return c == half }},
		{"erase_clears", paint.Erase, func(c color.NRGBA) bool { return c.A == 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := NewDocument(4, 4)
			d.Image().SetNRGBA(1, 1, red)
			d.Stamp(paint.NewBrush(half, half, paint.Round, 1), image.Pt(1, 1), c.blend, false)
			if got := d.At(image.Pt(1, 1)); !c.check(got) {
				t.Fatalf("pixel = %+v", got)
			}
		})
	}
}

func TestFill(t *testing.T) {
	d := NewDocument(8, 8)
	// vertical wall at x=4
	for y := 0; y < 8; y++ {
		d.Image().SetNRGBA(4, y, blue)
	}
	n := d.Fill(image.Pt(0, 0), red, 0, false, paint.Overwrite)
	if n != 32 {
		t.Fatalf("filled %d pixels, want 32", n)
	}
	if d.At(image.Pt(5, 0)) == red {
		t.Fatalf("fill leaked through the wall")
	}
}

func TestFillTolerance(t *testing.T) {
	d := NewDocument(4, 1)
	for x := 0; x < 4; x++ {
		d.Image().SetNRGBA(x, 0, color.NRGBA{R: uint8(x * 20), A: 255})
	}
	if n := d.Fill(image.Pt(0, 0), blue, 0.1, false, paint.Overwrite); n != 2 {
		t.Fatalf("absolute tolerance filled %d, want 2", n)
	}

	d = NewDocument(4, 1)
	for x := 0; x < 4; x++ {
		d.Image().SetNRGBA(x, 0, color.NRGBA{R: uint8(x * 20), A: 255})
	}
	if n := d.Fill(image.Pt(0, 0), blue, 0.1, true, paint.Overwrite); n != 4 {
		t.Fatalf("relative tolerance filled %d, want 4", n)
	}
}

func TestFillStaysInSelection(t *testing.T) {
	d := NewDocument(8, 8)
	d.Select(image.Rect(2, 2, 4, 4))
	if n := d.Fill(image.Pt(3, 3), red, 0, false, paint.Overwrite); n != 4 {
		t.Fatalf("filled %d, want 4", n)
	}
	if n := d.Fill(image.Pt(0, 0), red, 0, false, paint.Overwrite); n != 0 {
		t.Fatalf("seed outside selection filled %d", n)
	}
}

func TestMagicSelect(t *testing.T) {
	d := NewDocument(8, 8)
	for y := 2; y < 5; y++ {
		for x := 1; x < 6; x++ {
			d.Image().SetNRGBA(x, y, red)
		}
	}
	got := d.MagicSelect(image.Pt(3, 3), 0, false)
	if got != image.Rect(1, 2, 6, 5) {
		t.Fatalf("box = %v", got)
	}
	if sel, ok := d.Selection(); !ok || sel != got {
		t.Fatalf("selection = %v %v", sel, ok)
	}
}

func TestDrawShape(t *testing.T) {
	cases := []struct {
		name   string
		typ    paint.ShapeType
		border uint8
		want   int
	}{
		// 5x5 inclusive box: 25 - 9 interior
		{"rectangle", paint.Rectangle, 1, 16},
		{"rectangle_thick", paint.Rectangle, 2, 24},
		{"line", paint.Line, 1, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := NewDocument(16, 16)
			d.DrawShape(c.typ, c.border, image.Pt(2, 2), image.Pt(6, 6), red, paint.Overwrite)
			if got := countColor(d, red); got != c.want {
				t.Fatalf("painted %d, want %d", got, c.want)
			}
		})
	}
}

func TestEllipseIsHollow(t *testing.T) {
	d := NewDocument(32, 32)
	d.DrawShape(paint.Ellipse, 1, image.Pt(4, 4), image.Pt(24, 24), red, paint.Overwrite)
	if d.At(image.Pt(14, 14)) == red {
		t.Fatalf("ellipse centre must stay empty")
	}
	if countColor(d, red) == 0 {
		t.Fatalf("ellipse drew nothing")
	}
}

func TestLiftAndPlace(t *testing.T) {
	d := NewDocument(16, 16)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			d.Image().SetNRGBA(x, y, red)
		}
	}
	px := d.Lift(image.Rect(0, 0, 2, 2))
	if countColor(d, red) != 0 {
		t.Fatalf("Lift must clear the source")
	}
	area := d.Place(px, Placement{Offset: image.Pt(4, 4), Scale: 2}, paint.NearestNeighbor)
	if area != image.Rect(4, 4, 8, 8) {
		t.Fatalf("area = %v", area)
	}
	if got := countColor(d, red); got != 16 {
		t.Fatalf("placed %d red pixels, want 16", got)
	}
}

func TestPlaceQuarterTurnKeepsPixelCount(t *testing.T) {
	d := NewDocument(16, 16)
	src := image.NewNRGBA(image.Rect(2, 2, 6, 4))
	for y := 2; y < 4; y++ {
		for x := 2; x < 6; x++ {
			src.SetNRGBA(x, y, red)
		}
	}
	area := d.Place(src, Placement{Scale: 1, Rotation: math.Pi / 2}, paint.NearestNeighbor)
	if area.Dx() != 2 || area.Dy() != 4 {
		t.Fatalf("rotated area = %v", area)
	}
	if got := countColor(d, red); got != 8 {
		t.Fatalf("rotated %d red pixels, want 8", got)
	}
}

func TestConstrain(t *testing.T) {
	bounds := image.Rect(0, 0, 10, 10)
	src := image.Rect(0, 0, 4, 4)
	cases := []struct {
		name string
		in   Placement
		c    Constraints
		want Placement
	}{
		{"none", Placement{Offset: image.Pt(9, 9), Scale: 1.4, Rotation: 0.3}, Constraints{}, Placement{Offset: image.Pt(9, 9), Scale: 1.4, Rotation: 0.3}},
		{"translate", Placement{Offset: image.Pt(9, -2), Scale: 1}, Constraints{Translate: true}, Placement{Offset: image.Pt(6, 0), Scale: 1}},
		{"scale_up", Placement{Scale: 1.6}, Constraints{Scale: true}, Placement{Scale: 2}},
		{"scale_down", Placement{Scale: 0.3}, Constraints{Scale: true}, Placement{Scale: 1.0 / 3}},
		{"rotate", Placement{Scale: 1, Rotation: 1.2}, Constraints{Rotate: true}, Placement{Scale: 1, Rotation: math.Pi / 2}},
		{"zero_scale", Placement{}, Constraints{}, Placement{Scale: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Constrain(c.in, src, bounds, c.c)
			if got.Offset != c.want.Offset || math.Abs(got.Scale-c.want.Scale) > 1e-9 || math.Abs(got.Rotation-c.want.Rotation) > 1e-9 {
				t.Fatalf("got %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestDrawText(t *testing.T) {
	d := NewDocument(64, 32)
	area := d.DrawText(image.Pt(2, 2), "hi\nyo", red)
	if area.Empty() || area.Min != image.Pt(2, 2) {
		t.Fatalf("area = %v", area)
	}
	if countColor(d, red) == 0 {
		t.Fatalf("no text pixels drawn")
	}
	if got := d.DrawText(image.Pt(2, 2), "", red); !got.Empty() {
		t.Fatalf("empty body drew %v", got)
	}
}
