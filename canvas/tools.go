package canvas

import (
	"image"
	"image/color"
	"log"

	"github.com/milk9111/pixeled/mode"
	"github.com/milk9111/pixeled/paint"
	"github.com/milk9111/pixeled/toolbar"
)

// Tools applies pointer input to the document according to the
// toolbar's current mode.
type Tools struct {
	doc *Document
	tb  *toolbar.Toolbar

	anchor    image.Point
	pressAt   image.Point
	pressFrom image.Point
	secondary bool

	onText func(origin image.Point)
}

func NewTools(doc *Document, tb *toolbar.Toolbar) *Tools {
	return &Tools{doc: doc, tb: tb}
}

func (t *Tools) Document() *Document { return t.doc }

// SetTextHandler installs fn, called when the text tool picks an origin
// and the body needs editing.
func (t *Tools) SetTextHandler(fn func(origin image.Point)) {
	t.onText = fn
}

// Hover moves the canvas cursor.
func (t *Tools) Hover(at image.Point) {
	t.doc.SetCursor(at)
	if t.tb.MouseMode().Variant() == mode.Eyedropper {
		t.tb.UpdatePayload(mode.Hover{At: at})
	}
}

// Press starts a pointer interaction. secondary is the right button.
func (t *Tools) Press(at image.Point, secondary bool) {
	t.doc.SetCursor(at)
	t.secondary = secondary
	t.pressAt = at

	switch t.tb.MouseMode().Variant() {
	case mode.Pencil:
		t.doc.Stamp(t.brush(), at, t.tb.BlendingMode(), false)
		t.tb.UpdatePayload(mode.Stroke{Last: at, Drawing: true})
	case mode.Eyedropper:
		c := t.doc.At(at)
		if secondary {
			t.tb.SetSecondaryColor(c)
		} else {
			t.tb.SetPrimaryColor(c)
		}
		t.tb.UpdatePayload(mode.Hover{At: at})
	case mode.RectangleSelect:
		t.anchor = at
		t.tb.UpdatePayload(mode.Selection{Rect: spanRect(at, at), Dragging: true})
	case mode.MagicWand:
		sel := t.doc.MagicSelect(at, t.tb.MagicWandTolerance(), t.tb.MagicWandRelativity())
		log.Printf("canvas: magic wand selected %v", sel)
	case mode.Fill:
		n := t.doc.Fill(at, t.color(), t.tb.FillTolerance(), t.tb.FillRelativity(), t.tb.BlendingMode())
		log.Printf("canvas: filled %d pixels", n)
	case mode.Shape:
		t.tb.UpdatePayload(mode.ShapeDraft{Start: at, End: at, Dragging: true})
	case mode.Text:
		t.beginText(at)
	case mode.FreeTransform:
		t.beginTransform()
	}
}

// Drag continues the interaction started by Press.
func (t *Tools) Drag(at image.Point) {
	t.doc.SetCursor(at)
	m := t.tb.MouseMode()
	switch p := m.Payload().(type) {
	case mode.Stroke:
		if !p.Drawing {
			return
		}
		t.doc.Stroke(t.brush(), p.Last, at, t.tb.BlendingMode(), false)
		t.tb.UpdatePayload(mode.Stroke{Last: at, Drawing: true})
	case mode.Selection:
		if p.Dragging {
			t.tb.UpdatePayload(mode.Selection{Rect: spanRect(t.anchor, at), Dragging: true})
		}
	case mode.ShapeDraft:
		if p.Dragging {
			t.tb.UpdatePayload(mode.ShapeDraft{Start: p.Start, End: at, Dragging: true})
		}
	case mode.Transform:
		t.moveTransform(at)
	}
}

// Release ends the interaction.
func (t *Tools) Release(at image.Point) {
	t.doc.SetCursor(at)
	m := t.tb.MouseMode()
	switch p := m.Payload().(type) {
	case mode.Stroke:
		t.tb.UpdatePayload(mode.Stroke{Last: at})
	case mode.Selection:
		if !p.Dragging {
			return
		}
		r := spanRect(t.anchor, at)
		if at == t.anchor {
			t.doc.ClearSelection()
		} else {
			t.doc.Select(r)
		}
		sel, _ := t.doc.Selection()
		t.tb.UpdatePayload(mode.Selection{Rect: sel})
	case mode.ShapeDraft:
		if !p.Dragging {
			return
		}
		t.doc.DrawShape(t.tb.ShapeType(), t.tb.ShapeBorderWidth(), p.Start, at, t.color(), paint.Paint)
		t.tb.UpdatePayload(mode.ShapeDraft{Start: p.Start, End: at})
	}
}

// Settle finishes edits whose tool is no longer active. A lifted region
// is stamped back down and an open text edit is dropped.
func (t *Tools) Settle() {
	st, ok := t.tb.PeekToolState()
	if !ok || st.Owner == t.tb.MouseMode().Variant() {
		return
	}
	switch st.Owner {
	case mode.FreeTransform:
		t.placeTransform(st)
	case mode.Text:
		t.tb.CloseActiveDialog()
	}
	t.tb.TakeToolStateFor(st.Owner)
}

// brush is the primary brush, or the secondary one for a right-button stroke.
func (t *Tools) brush() paint.Brush {
	if t.secondary {
		return t.tb.SecondaryBrush()
	}
	return t.tb.PrimaryBrush()
}

func (t *Tools) color() color.NRGBA {
	if t.secondary {
		return t.tb.SecondaryColor()
	}
	return t.tb.PrimaryColor()
}

// spanRect is the rectangle covering both a and b inclusively.
func spanRect(a, b image.Point) image.Rectangle {
	r := image.Rectangle{Min: a, Max: b}.Canon()
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r
}
