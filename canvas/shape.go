package canvas

import (
	"image"
	"image/color"

	"github.com/milk9111/pixeled/paint"
)

// DrawShape outlines the shape spanned by start and end with the given
// border width.
func (d *Document) DrawShape(typ paint.ShapeType, border uint8, start, end image.Point, c color.NRGBA, blend paint.BlendingMode) {
	bw := int(border)
	if bw < 1 {
		bw = 1
	}
	switch typ {
	case paint.Line:
		pen := paint.NewBrush(c, c, paint.Square, (bw+1)/2)
		d.Stroke(pen, start, end, blend, false)
	case paint.Ellipse:
		d.ellipse(image.Rectangle{Min: start, Max: end}.Canon(), bw, c, blend)
	default:
		d.rectangle(image.Rectangle{Min: start, Max: end}.Canon(), bw, c, blend)
	}
}

// rectangle draws the outline of r, whose Max corner is inclusive.
func (d *Document) rectangle(r image.Rectangle, bw int, c color.NRGBA, blend paint.BlendingMode) {
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			if x-r.Min.X < bw || r.Max.X-x < bw || y-r.Min.Y < bw || r.Max.Y-y < bw {
				d.plot(x, y, c, blend)
			}
		}
	}
}

// ellipse draws the ring of width bw inside the ellipse inscribed in r.
func (d *Document) ellipse(r image.Rectangle, bw int, c color.NRGBA, blend paint.BlendingMode) {
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	if rx == 0 || ry == 0 {
		line(r.Min, r.Max, func(p image.Point) { d.plot(p.X, p.Y, c, blend) })
		return
	}
	cx := float64(r.Min.X) + rx
	cy := float64(r.Min.Y) + ry
	irx := rx - float64(bw)
	iry := ry - float64(bw)
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx/(rx*rx)+dy*dy/(ry*ry) > 1 {
				continue
			}
			if irx > 0 && iry > 0 && dx*dx/(irx*irx)+dy*dy/(iry*iry) < 1 {
				continue
			}
			d.plot(x, y, c, blend)
		}
	}
}
