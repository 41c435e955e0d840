package mode

import "image"

// Payload is transient data owned by a single variant.
type Payload interface {
	Variant() Variant
	payload()
}

// Mode is the current tool: a variant tag plus optional payload. Two modes
// are considered the same tool when their variants match; the payload never
// takes part in that comparison.
type Mode struct {
	variant Variant
	payload Payload
}

// Of returns a payload-free mode for v.
func Of(v Variant) Mode {
	return Mode{variant: v}
}

// With returns a mode carrying p. The mode's variant is p's.
func With(p Payload) Mode {
	if p == nil {
		return Mode{}
	}
	return Mode{variant: p.Variant(), payload: p}
}

func (m Mode) Variant() Variant { return m.variant }

func (m Mode) Payload() Payload { return m.payload }

func (m Mode) SameVariant(o Mode) bool { return m.variant == o.variant }

func (m Mode) String() string { return m.variant.String() }

// WithPayload returns m with its payload replaced. Payloads belonging to
// another variant are rejected and m is returned unchanged.
func (m Mode) WithPayload(p Payload) (Mode, bool) {
	if p == nil {
		m.payload = nil
		return m, true
	}
	if p.Variant() != m.variant {
		return m, false
	}
	m.payload = p
	return m, true
}

// Stroke tracks an in-progress pencil stroke.
type Stroke struct {
	Last    image.Point
	Drawing bool
}

func (Stroke) Variant() Variant { return Pencil }
func (Stroke) payload() {}

// Hover is the eyedropper sample position.
type Hover struct {
	At image.Point
}

func (Hover) Variant() Variant { return Eyedropper }
func (Hover) payload() {}

// Selection is a rectangle selection in canvas coordinates.
type Selection struct {
	Rect     image.Rectangle
	Dragging bool
}

func (Selection) Variant() Variant { return RectangleSelect }
func (Selection) payload() {}

// Transform is the free transform gizmo state.
type Transform struct {
	Bounds   image.Rectangle
	Offset   image.Point
	Scale    float64
	Rotation float64
}

func (Transform) Variant() Variant { return FreeTransform }
func (Transform) payload() {}

// ShapeDraft is a shape being dragged out.
type ShapeDraft struct {
	Start, End image.Point
	Dragging   bool
}

func (ShapeDraft) Variant() Variant { return Shape }
func (ShapeDraft) payload() {}

// TextDraft is where new text will be placed.
type TextDraft struct {
	Origin image.Point
}

func (TextDraft) Variant() Variant { return Text }
func (TextDraft) payload() {}
