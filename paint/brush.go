package paint

import "image/color"

// Brush is the drawing parameter set handed to pixel tools.
type Brush struct {
	Primary   color.NRGBA
	Secondary color.NRGBA
	Type      BrushType
	Radius    int
}

func NewBrush(primary, secondary color.NRGBA, typ BrushType, radius int) Brush {
	return Brush{Primary: primary, Secondary: secondary, Type: typ, Radius: radius}
}

// Modify overwrites every field in place.
func (b *Brush) Modify(primary, secondary color.NRGBA, typ BrushType, radius int) {
	if b == nil {
		return
	}
	b.Primary = primary
	b.Secondary = secondary
	b.Type = typ
	b.Radius = radius
}

// Footprint reports whether the offset (dx, dy) from the brush center is
// covered by a stamp of this brush.
func (b Brush) Footprint(dx, dy int) bool {
	r := b.Radius
	if r < 1 {
		r = 1
	}
	// radius 1 is a single pixel for every shape
	if r == 1 {
		return dx == 0 && dy == 0
	}
	switch b.Type {
	case Square:
		return abs(dx) < r && abs(dy) < r
	case Dither:
		return dx*dx+dy*dy < r*r && (dx+dy)%2 == 0
	default:
		return dx*dx+dy*dy < r*r
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
