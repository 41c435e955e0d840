package mode

import (
	"image"
	"reflect"
)

// Canvas is the part of the focused canvas that mode constructors read.
type Canvas interface {
	Bounds() image.Rectangle
	Selection() (image.Rectangle, bool)
	Cursor() image.Point
}

type constructor struct {
	fromCanvas func(Canvas) Mode
	def        func() Mode
}

var constructors = [variantCount]constructor{
	Cursor: {
		fromCanvas: func(Canvas) Mode { return Of(Cursor) },
		def:        func() Mode { return Of(Cursor) },
	},
	Pencil: {
		fromCanvas: func(c Canvas) Mode { return With(Stroke{Last: c.Cursor()}) },
		def:        func() Mode { return With(Stroke{}) },
	},
	Eyedropper: {
		fromCanvas: func(c Canvas) Mode { return With(Hover{At: c.Cursor()}) },
		def:        func() Mode { return With(Hover{}) },
	},
	RectangleSelect: {
		fromCanvas: func(c Canvas) Mode {
			sel, _ := c.Selection()
			return With(Selection{Rect: sel})
		},
		def: func() Mode { return With(Selection{}) },
	},
	MagicWand: {
		fromCanvas: func(Canvas) Mode { return Of(MagicWand) },
		def:        func() Mode { return Of(MagicWand) },
	},
	Fill: {
		fromCanvas: func(Canvas) Mode { return Of(Fill) },
		def:        func() Mode { return Of(Fill) },
	},
	FreeTransform: {
		fromCanvas: func(c Canvas) Mode {
			bounds, ok := c.Selection()
			if !ok || bounds.Empty() {
				bounds = c.Bounds()
			}
			return With(Transform{Bounds: bounds, Scale: 1})
		},
		def: func() Mode { return With(Transform{Scale: 1}) },
	},
	Shape: {
		fromCanvas: func(c Canvas) Mode {
			p := c.Cursor()
			return With(ShapeDraft{Start: p, End: p})
		},
		def: func() Mode { return With(ShapeDraft{}) },
	},
	Text: {
		fromCanvas: func(c Canvas) Mode {
			if sel, ok := c.Selection(); ok && !sel.Empty() {
				return With(TextDraft{Origin: sel.Min})
			}
			return With(TextDraft{Origin: c.Cursor()})
		},
		def: func() Mode { return With(TextDraft{}) },
	},
}

// New builds the mode for v, reading initial payload from c when a canvas
// is focused. A nil c, including a typed nil pointer, falls back to Default.
func New(v Variant, c Canvas) Mode {
	if !v.Valid() {
		return Of(Cursor)
	}
	if noCanvas(c) {
		return constructors[v].def()
	}
	return constructors[v].fromCanvas(c)
}

// Default builds the canvas-independent mode for v.
func Default(v Variant) Mode {
	if !v.Valid() {
		return Of(Cursor)
	}
	return constructors[v].def()
}

func noCanvas(c Canvas) bool {
	if c == nil {
		return true
	}
	rv := reflect.ValueOf(c)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
