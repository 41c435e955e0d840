package canvas

import (
	"image"
	"math"

	"github.com/milk9111/pixeled/paint"
	"golang.org/x/image/draw"
)

const rotateStep = math.Pi / 2

// Placement is where a lifted region lands: moved by Offset, scaled
// about its top-left corner, then rotated about its centre by Rotation
// radians.
type Placement struct {
	Offset   image.Point
	Scale    float64
	Rotation float64
}

// Constraints are the free transform clamp switches.
type Constraints struct {
	Translate bool
	Scale     bool
	Rotate    bool
}

// Lift copies r out of the document and clears it. The returned image
// keeps r's coordinates.
func (d *Document) Lift(r image.Rectangle) *image.NRGBA {
	r = r.Intersect(d.img.Bounds())
	out := image.NewNRGBA(r)
	draw.Draw(out, r, d.img, r.Min, draw.Src)
	draw.Draw(d.img, r, image.Transparent, image.Point{}, draw.Src)
	if !r.Empty() {
		d.dirty = true
	}
	return out
}

// Constrain applies c to p for a region src being placed in bounds.
// Translation keeps the scaled region inside bounds, scale snaps to
// whole multiples and rotation snaps to quarter turns.
func Constrain(p Placement, src, bounds image.Rectangle, c Constraints) Placement {
	if p.Scale <= 0 || math.IsNaN(p.Scale) {
		p.Scale = 1
	}
	if c.Scale {
		if p.Scale >= 1 {
			p.Scale = math.Round(p.Scale)
		} else {
			p.Scale = 1 / math.Round(1/p.Scale)
		}
	}
	if c.Rotate {
		p.Rotation = math.Round(p.Rotation/rotateStep) * rotateStep
	}
	if c.Translate {
		dst := placedRect(src, p)
		if dst.Max.X > bounds.Max.X {
			p.Offset.X -= dst.Max.X - bounds.Max.X
		}
		if dst.Max.Y > bounds.Max.Y {
			p.Offset.Y -= dst.Max.Y - bounds.Max.Y
		}
		dst = placedRect(src, p)
		if dst.Min.X < bounds.Min.X {
			p.Offset.X += bounds.Min.X - dst.Min.X
		}
		if dst.Min.Y < bounds.Min.Y {
			p.Offset.Y += bounds.Min.Y - dst.Min.Y
		}
	}
	return p
}

// placedRect is the unrotated destination of src under p.
func placedRect(src image.Rectangle, p Placement) image.Rectangle {
	w := int(math.Round(float64(src.Dx()) * p.Scale))
	h := int(math.Round(float64(src.Dy()) * p.Scale))
	at := src.Min.Add(p.Offset)
	return image.Rect(at.X, at.Y, at.X+max(w, 1), at.Y+max(h, 1))
}

// Place draws src into the document under p and returns the touched area.
func (d *Document) Place(src *image.NRGBA, p Placement, method paint.ScaleMethod) image.Rectangle {
	if src == nil || src.Bounds().Empty() {
		return image.Rectangle{}
	}
	if p.Scale <= 0 {
		p.Scale = 1
	}
	dst := placedRect(src.Bounds(), p)
	scaled := image.NewNRGBA(dst)
	interpolator(method).Scale(scaled, dst, src, src.Bounds(), draw.Src, nil)

	if p.Rotation != 0 {
		scaled = rotate(scaled, p.Rotation)
		dst = scaled.Bounds()
	}
	draw.Draw(d.img, dst, scaled, dst.Min, draw.Over)
	d.dirty = true
	return dst.Intersect(d.img.Bounds())
}

func interpolator(m paint.ScaleMethod) draw.Interpolator {
	if m == paint.Bilinear {
		return draw.BiLinear
	}
	return draw.NearestNeighbor
}

// rotate turns src about its centre by theta radians, sampling nearest
// source pixels. The result grows to hold the rotated corners.
func rotate(src *image.NRGBA, theta float64) *image.NRGBA {
	b := src.Bounds()
	cx := float64(b.Min.X) + float64(b.Dx())/2
	cy := float64(b.Min.Y) + float64(b.Dy())/2
	sin, cos := math.Sincos(theta)
	// quarter turns must stay pixel exact
	if math.Abs(sin) < 1e-9 {
		sin = 0
	}
	if math.Abs(cos) < 1e-9 {
		cos = 0
	}

	hw := (math.Abs(float64(b.Dx())*cos) + math.Abs(float64(b.Dy())*sin)) / 2
	hh := (math.Abs(float64(b.Dx())*sin) + math.Abs(float64(b.Dy())*cos)) / 2
	out := image.NewNRGBA(image.Rect(
		int(math.Floor(cx-hw)), int(math.Floor(cy-hh)),
		int(math.Ceil(cx+hw)), int(math.Ceil(cy+hh)),
	))
	ob := out.Bounds()
	for y := ob.Min.Y; y < ob.Max.Y; y++ {
		for x := ob.Min.X; x < ob.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			sx := int(math.Floor(cx + dx*cos + dy*sin))
			sy := int(math.Floor(cy - dx*sin + dy*cos))
			if image.Pt(sx, sy).In(b) {
				out.SetNRGBA(x, y, src.NRGBAAt(sx, sy))
			}
		}
	}
	return out
}
