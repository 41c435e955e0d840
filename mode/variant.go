package mode

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Variant identifies an editing tool. Declaration order is toolbar order.
type Variant int

const (
	Cursor Variant = iota
	Pencil
	Eyedropper
	RectangleSelect
	MagicWand
	Fill
	FreeTransform
	Shape
	Text

	variantCount
)

var variantNames = [variantCount]string{
	Cursor:          "Cursor",
	Pencil:          "Pencil",
	Eyedropper:      "Eyedropper",
	RectangleSelect: "Rectangle Select",
	MagicWand:       "Magic Wand",
	Fill:            "Fill",
	FreeTransform:   "Free Transform",
	Shape:           "Shape",
	Text:            "Text",
}

var variantTooltips = [variantCount]string{
	Cursor:          "Move the canvas",
	Pencil:          "Draw with the primary or secondary brush",
	Eyedropper:      "Pick a color from the canvas",
	RectangleSelect: "Select a rectangular region",
	MagicWand:       "Select a region of similar color",
	Fill:            "Fill a region of similar color",
	FreeTransform:   "Move, scale and rotate the selection",
	Shape:           "Draw rectangles, ellipses and lines",
	Text:            "Place text on the canvas",
}

func (v Variant) String() string {
	if !v.Valid() {
		return "Unknown"
	}
	return variantNames[v]
}

// Tooltip is the hover text shown on the variant's button.
func (v Variant) Tooltip() string {
	if !v.Valid() {
		return ""
	}
	return variantTooltips[v]
}

func (v Variant) Valid() bool {
	return v >= 0 && v < variantCount
}

// Variants returns every variant in toolbar order.
func Variants() []Variant {
	out := make([]Variant, 0, variantCount)
	for v := Cursor; v < variantCount; v++ {
		out = append(out, v)
	}
	return out
}

// ParseVariant accepts display names as well as snake_case and kebab-case
// spellings, case-insensitively.
func ParseVariant(name string) (Variant, error) {
	key := normalizeName(name)
	if key == "" {
		return Cursor, fmt.Errorf("mode: empty tool name")
	}
	for v := Cursor; v < variantCount; v++ {
		if normalizeName(variantNames[v]) == key {
			return v, nil
		}
	}
	if s, ok := suggest(key); ok {
		return Cursor, fmt.Errorf("mode: unknown tool %q (did you mean %q?)", name, s)
	}
	return Cursor, fmt.Errorf("mode: unknown tool %q", name)
}

// UnmarshalText lets variants be used directly as yaml/viper values.
func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("mode: invalid variant %d", int(v))
	}
	return []byte(strings.ReplaceAll(strings.ToLower(variantNames[v]), " ", "_")), nil
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}

func suggest(key string) (string, bool) {
	best := ""
	bestDist := -1
	for v := Cursor; v < variantCount; v++ {
		d := levenshtein.ComputeDistance(key, normalizeName(variantNames[v]))
		if bestDist < 0 || d < bestDist {
			best, bestDist = variantNames[v], d
		}
	}
	if bestDist < 0 || bestDist > 3 {
		return "", false
	}
	return best, true
}
