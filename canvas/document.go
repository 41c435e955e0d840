package canvas

import (
	"image"
	"image/color"

	"github.com/milk9111/pixeled/paint"
	"golang.org/x/image/draw"
)

// Document is the editable image plus the focus state the toolbar reads
// when it builds a mode.
type Document struct {
	img       *image.NRGBA
	selection image.Rectangle
	cursor    image.Point
	dirty     bool
}

// NewDocument returns a transparent w x h document.
func NewDocument(w, h int) *Document {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Document{img: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

func (d *Document) Image() *image.NRGBA { return d.img }

func (d *Document) Bounds() image.Rectangle { return d.img.Bounds() }

// Selection reports the current selection. ok is false when nothing is selected.
func (d *Document) Selection() (image.Rectangle, bool) {
	return d.selection, !d.selection.Empty()
}

func (d *Document) Cursor() image.Point { return d.cursor }

func (d *Document) SetCursor(p image.Point) { d.cursor = p }

// Select sets the selection to r clipped to the document. An empty result
// clears the selection.
func (d *Document) Select(r image.Rectangle) {
	d.selection = r.Canon().Intersect(d.img.Bounds())
}

func (d *Document) ClearSelection() { d.selection = image.Rectangle{} }

// Dirty reports whether pixels changed since the last call and resets the flag.
func (d *Document) Dirty() bool {
	was := d.dirty
	d.dirty = false
	return was
}

func (d *Document) At(p image.Point) color.NRGBA {
	if !p.In(d.img.Bounds()) {
		return paint.Transparent
	}
	return d.img.NRGBAAt(p.X, p.Y)
}

func (d *Document) plot(x, y int, c color.NRGBA, blend paint.BlendingMode) {
	if !image.Pt(x, y).In(d.img.Bounds()) {
		return
	}
	switch blend {
	case paint.Overwrite:
		d.img.SetNRGBA(x, y, c)
	case paint.Erase:
		d.img.SetNRGBA(x, y, paint.Transparent)
	default:
		draw.Draw(d.img, image.Rect(x, y, x+1, y+1), image.NewUniform(c), image.Point{}, draw.Over)
	}
	d.dirty = true
}

// Stamp applies the brush footprint centred on at. secondary selects the
// brush's secondary color.
func (d *Document) Stamp(b paint.Brush, at image.Point, blend paint.BlendingMode, secondary bool) {
	c := b.Primary
	if secondary {
		c = b.Secondary
	}
	r := b.Radius
	if r < 1 {
		r = 1
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if b.Footprint(dx, dy) {
				d.plot(at.X+dx, at.Y+dy, c, blend)
			}
		}
	}
}

// Stroke stamps the brush along the line from -> to, both ends included.
func (d *Document) Stroke(b paint.Brush, from, to image.Point, blend paint.BlendingMode, secondary bool) {
	line(from, to, func(p image.Point) {
		d.Stamp(b, p, blend, secondary)
	})
}

// line walks the Bresenham line from a to b.
func line(a, b image.Point, fn func(image.Point)) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	p := a
	for {
		fn(p)
		if p == b {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
