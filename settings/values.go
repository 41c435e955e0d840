package settings

import (
	"math"

	"github.com/milk9111/pixeled/paint"
)

const (
	MinRadius      = 1
	MaxRadius      = 64
	MinBorderWidth = 1
	MaxBorderWidth = 32
)

type Pencil struct {
	Brush  paint.BrushType    `yaml:"brush"`
	Blend  paint.BlendingMode `yaml:"blend"`
	Radius int                `yaml:"radius"`
}

// Tolerance configures the magic wand and fill tools. Tolerance is in [0,1];
// Relative compares against the neighbouring pixel instead of the seed.
type Tolerance struct {
	Tolerance float64 `yaml:"tolerance"`
	Relative  bool    `yaml:"relative"`
}

type Shape struct {
	Type        paint.ShapeType `yaml:"type"`
	BorderWidth uint8           `yaml:"border_width"`
}

type FreeTransform struct {
	ClampTranslate bool              `yaml:"clamp_translate"`
	ClampScale     bool              `yaml:"clamp_scale"`
	ClampRotate    bool              `yaml:"clamp_rotate"`
	Scale          paint.ScaleMethod `yaml:"scale_method"`
}

// Values is the full set of per-tool settings.
type Values struct {
	Pencil        Pencil        `yaml:"pencil"`
	MagicWand     Tolerance     `yaml:"magic_wand"`
	Fill          Tolerance     `yaml:"fill"`
	Shape         Shape         `yaml:"shape"`
	FreeTransform FreeTransform `yaml:"free_transform"`
}

func DefaultValues() Values {
	return Values{
		Pencil:        Pencil{Brush: paint.Round, Blend: paint.Paint, Radius: 5},
		MagicWand:     Tolerance{Tolerance: 0.1},
		Fill:          Tolerance{Tolerance: 0.1},
		Shape:         Shape{Type: paint.Rectangle, BorderWidth: 1},
		FreeTransform: FreeTransform{Scale: paint.NearestNeighbor},
	}
}

// Clamped returns v with every numeric field forced into range.
func (v Values) Clamped() Values {
	v.Pencil.Radius = clampInt(v.Pencil.Radius, MinRadius, MaxRadius)
	v.MagicWand.Tolerance = clampFloat(v.MagicWand.Tolerance, 0, 1)
	v.Fill.Tolerance = clampFloat(v.Fill.Tolerance, 0, 1)
	v.Shape.BorderWidth = uint8(clampInt(int(v.Shape.BorderWidth), MinBorderWidth, MaxBorderWidth))
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
