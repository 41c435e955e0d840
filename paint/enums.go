package paint

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type BrushType int

const (
	Round BrushType = iota
	Square
	Dither
)

func (t BrushType) String() string {
	switch t {
	case Round:
		return "Round"
	case Square:
		return "Square"
	case Dither:
		return "Dither"
	default:
		return "Unknown"
	}
}

func (t *BrushType) UnmarshalYAML(node *yaml.Node) error {
	v, err := parseEnum(node, "brush type", BrushTypes())
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// BlendingMode controls how brush pixels combine with the canvas.
type BlendingMode int

const (
	Paint BlendingMode = iota
	Overwrite
	Erase
)

func (m BlendingMode) String() string {
	switch m {
	case Paint:
		return "Paint"
	case Overwrite:
		return "Overwrite"
	case Erase:
		return "Erase"
	default:
		return "Unknown"
	}
}

func (m *BlendingMode) UnmarshalYAML(node *yaml.Node) error {
	v, err := parseEnum(node, "blending mode", BlendingModes())
	if err != nil {
		return err
	}
	*m = v
	return nil
}

type ShapeType int

const (
	Rectangle ShapeType = iota
	Ellipse
	Line
)

func (s ShapeType) String() string {
	switch s {
	case Rectangle:
		return "Rectangle"
	case Ellipse:
		return "Ellipse"
	case Line:
		return "Line"
	default:
		return "Unknown"
	}
}

func (s *ShapeType) UnmarshalYAML(node *yaml.Node) error {
	v, err := parseEnum(node, "shape type", ShapeTypes())
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ScaleMethod is the resampling used by free transform.
type ScaleMethod int

const (
	NearestNeighbor ScaleMethod = iota
	Bilinear
)

func (s ScaleMethod) String() string {
	switch s {
	case NearestNeighbor:
		return "Nearest Neighbor"
	case Bilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

func (s *ScaleMethod) UnmarshalYAML(node *yaml.Node) error {
	v, err := parseEnum(node, "scale method", ScaleMethods())
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func parseEnum[T fmt.Stringer](node *yaml.Node, what string, values []T) (T, error) {
	var zero T
	var raw string
	if err := node.Decode(&raw); err != nil {
		return zero, fmt.Errorf("paint: decode %s: %w", what, err)
	}
	key := foldName(raw)
	for _, v := range values {
		if foldName(v.String()) == key {
			return v, nil
		}
	}
	return zero, fmt.Errorf("paint: line %d: unknown %s %q", node.Line, what, raw)
}

func foldName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}

func BrushTypes() []BrushType { return []BrushType{Round, Square, Dither} }

func BlendingModes() []BlendingMode { return []BlendingMode{Paint, Overwrite, Erase} }

func ShapeTypes() []ShapeType { return []ShapeType{Rectangle, Ellipse, Line} }

func ScaleMethods() []ScaleMethod { return []ScaleMethod{NearestNeighbor, Bilinear} }
