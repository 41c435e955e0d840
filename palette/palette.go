package palette

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/pixeled/paint"
)

const (
	Rows = 2
	Cols = 5
)

var (
	ErrFull      = errors.New("palette: no free swatch")
	ErrDuplicate = errors.New("palette: color already in palette")
	ErrGridShape = errors.New("palette: swatch grid has wrong shape")
)

// Palette holds the primary/secondary colors and a fixed grid of optional
// swatches.
type Palette struct {
	primary   color.NRGBA
	secondary color.NRGBA
	swatches  [Rows][Cols]*color.NRGBA

	onChange func()
}

// Default is opaque black over transparent with the first swatch row
// seeded with black, red, green, blue and transparent.
func Default() *Palette {
	p := &Palette{primary: paint.Black, secondary: paint.Transparent}
	row := []color.NRGBA{
		paint.Black,
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
		paint.Transparent,
	}
	for col, c := range row {
		p.swatches[0][col] = &c
	}
	return p
}

// New builds a palette from an explicit swatch grid. swatches may have
// fewer rows or columns than the grid; missing cells are empty.
func New(primary, secondary color.NRGBA, swatches [][]*color.NRGBA) (*Palette, error) {
	if len(swatches) > Rows {
		return nil, fmt.Errorf("%w: %d rows, max %d", ErrGridShape, len(swatches), Rows)
	}
	p := &Palette{primary: primary, secondary: secondary}
	for r, row := range swatches {
		if len(row) > Cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, max %d", ErrGridShape, r, len(row), Cols)
		}
		for c, sw := range row {
			if sw == nil {
				continue
			}
			v := *sw
			p.swatches[r][c] = &v
		}
	}
	return p, nil
}

// SetChangeHandler registers fn to run after any color or swatch change.
func (p *Palette) SetChangeHandler(fn func()) {
	p.onChange = fn
}

func (p *Palette) Primary() color.NRGBA { return p.primary }

func (p *Palette) Secondary() color.NRGBA { return p.secondary }

func (p *Palette) SetPrimary(c color.NRGBA) {
	p.primary = c
	p.changed()
}

func (p *Palette) SetSecondary(c color.NRGBA) {
	p.secondary = c
	p.changed()
}

// Swap exchanges primary and secondary.
func (p *Palette) Swap() {
	p.primary, p.secondary = p.secondary, p.primary
	p.changed()
}

// Swatch returns the color at (row, col) if that cell is filled.
func (p *Palette) Swatch(row, col int) (color.NRGBA, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return color.NRGBA{}, false
	}
	sw := p.swatches[row][col]
	if sw == nil {
		return color.NRGBA{}, false
	}
	return *sw, true
}

// Swatches returns a copy of the grid.
func (p *Palette) Swatches() [Rows][Cols]*color.NRGBA {
	var out [Rows][Cols]*color.NRGBA
	for r := range p.swatches {
		for c, sw := range p.swatches[r] {
			if sw == nil {
				continue
			}
			v := *sw
			out[r][c] = &v
		}
	}
	return out
}

// SelectSwatch copies the swatch at (row, col) into the primary color, or
// the secondary when secondary is set. Empty cells are ignored.
func (p *Palette) SelectSwatch(row, col int, secondary bool) bool {
	c, ok := p.Swatch(row, col)
	if !ok {
		return false
	}
	if secondary {
		p.SetSecondary(c)
	} else {
		p.SetPrimary(c)
	}
	return true
}

// AddColor stores c in the first empty swatch in row-major order. The grid
// is left untouched on error.
func (p *Palette) AddColor(c color.NRGBA) error {
	free := -1
	for i := 0; i < Rows*Cols; i++ {
		sw := p.swatches[i/Cols][i%Cols]
		if sw == nil {
			if free < 0 {
				free = i
			}
			continue
		}
		if *sw == c {
			return fmt.Errorf("%w: %s", ErrDuplicate, paint.FormatHex(c))
		}
	}
	if free < 0 {
		return ErrFull
	}
	v := c
	p.swatches[free/Cols][free%Cols] = &v
	p.changed()
	return nil
}

// RemoveSwatch clears the cell at (row, col).
func (p *Palette) RemoveSwatch(row, col int) bool {
	if _, ok := p.Swatch(row, col); !ok {
		return false
	}
	p.swatches[row][col] = nil
	p.changed()
	return true
}

// Free reports how many empty swatch cells remain.
func (p *Palette) Free() int {
	n := 0
	for r := range p.swatches {
		for _, sw := range p.swatches[r] {
			if sw == nil {
				n++
			}
		}
	}
	return n
}

func (p *Palette) changed() {
	if p.onChange != nil {
		p.onChange()
	}
}
