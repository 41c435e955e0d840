package canvas

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawText renders body with its top-left corner at origin. Lines are
// split on newlines. It returns the area text was drawn into.
func (d *Document) DrawText(origin image.Point, body string, c color.NRGBA) image.Rectangle {
	face := basicfont.Face7x13
	drawer := &font.Drawer{Dst: d.img, Src: image.NewUniform(c), Face: face}

	var area image.Rectangle
	lineHeight := face.Metrics().Height.Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	for i, ln := range strings.Split(body, "\n") {
		top := origin.Y + i*lineHeight
		drawer.Dot = fixed.P(origin.X, top+ascent)
		width := drawer.MeasureString(ln).Ceil()
		drawer.DrawString(ln)
		if width > 0 {
			area = area.Union(image.Rect(origin.X, top, origin.X+width, top+lineHeight))
		}
	}
	area = area.Intersect(d.img.Bounds())
	if !area.Empty() {
		d.dirty = true
	}
	return area
}
