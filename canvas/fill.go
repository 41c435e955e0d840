package canvas

import (
	"image"
	"image/color"

	"github.com/milk9111/pixeled/paint"
)

// Fill floods the region around seed with c and returns the number of
// pixels written. The region stays inside the selection when there is one.
func (d *Document) Fill(seed image.Point, c color.NRGBA, tolerance float64, relative bool, blend paint.BlendingMode) int {
	limit := d.img.Bounds()
	if sel, ok := d.Selection(); ok {
		limit = sel
	}
	pts := d.region(seed, limit, tolerance, relative)
	for _, p := range pts {
		d.plot(p.X, p.Y, c, blend)
	}
	return len(pts)
}

// MagicSelect selects the bounding box of the region around seed and returns it.
func (d *Document) MagicSelect(seed image.Point, tolerance float64, relative bool) image.Rectangle {
	var box image.Rectangle
	for _, p := range d.region(seed, d.img.Bounds(), tolerance, relative) {
		box = box.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))
	}
	d.Select(box)
	return box
}

// region collects the 4-connected pixels around seed inside limit. A pixel
// joins when its distance to the seed color is within tolerance, or to the
// neighbour it was reached from when relative is set.
func (d *Document) region(seed image.Point, limit image.Rectangle, tolerance float64, relative bool) []image.Point {
	if !seed.In(limit) {
		return nil
	}
	w := limit.Dx()
	visited := make([]bool, w*limit.Dy())
	index := func(p image.Point) int { return (p.Y-limit.Min.Y)*w + (p.X - limit.Min.X) }

	origin := d.At(seed)
	var out []image.Point
	stack := []image.Point{seed}
	visited[index(seed)] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, p)

		ref := origin
		if relative {
			ref = d.At(p)
		}
		for _, n := range [4]image.Point{{p.X + 1, p.Y}, {p.X - 1, p.Y}, {p.X, p.Y + 1}, {p.X, p.Y - 1}} {
			if !n.In(limit) || visited[index(n)] {
				continue
			}
			if distance(ref, d.At(n)) > tolerance {
				continue
			}
			visited[index(n)] = true
			stack = append(stack, n)
		}
	}
	return out
}

// distance is the largest per-channel difference scaled to [0,1].
func distance(a, b color.NRGBA) float64 {
	m := 0
	for _, diff := range [4]int{
		int(a.R) - int(b.R),
		int(a.G) - int(b.G),
		int(a.B) - int(b.B),
		int(a.A) - int(b.A),
	} {
		if diff = abs(diff); diff > m {
			m = diff
		}
	}
	return float64(m) / 255
}
