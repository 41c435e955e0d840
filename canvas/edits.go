package canvas

import (
	"image"
	"log"

	"github.com/milk9111/pixeled/mode"
	"github.com/milk9111/pixeled/toolbar"
)

func (t *Tools) beginText(at image.Point) {
	t.tb.UpdatePayload(mode.TextDraft{Origin: at})
	if old, ok := t.tb.ReplaceToolState(toolbar.NewTextState(toolbar.TextEdit{Origin: at})); ok {
		log.Printf("canvas: discarding unfinished %s edit %s", old.Owner, old.ID)
	}
	if t.onText != nil {
		t.onText(at)
	}
}

// CommitText draws body at the pending text origin. It reports false when
// no text edit is pending.
func (t *Tools) CommitText(body string) bool {
	st, ok := t.tb.TakeToolStateFor(mode.Text)
	if !ok {
		return false
	}
	if body == "" {
		return true
	}
	st.Text.Body = body
	t.doc.DrawText(st.Text.Origin, st.Text.Body, t.tb.PrimaryColor())
	return true
}

// CancelText drops the pending text edit.
func (t *Tools) CancelText() {
	t.tb.TakeToolStateFor(mode.Text)
}

// beginTransform lifts the transform bounds on the first press and
// remembers where the drag started.
func (t *Tools) beginTransform() {
	st, ok := t.tb.PeekToolState()
	if !ok || st.Owner != mode.FreeTransform {
		p, _ := t.tb.MouseMode().Payload().(mode.Transform)
		bounds := p.Bounds
		if bounds.Empty() {
			bounds = t.doc.Bounds()
		}
		st = toolbar.NewTransformState(toolbar.TransformEdit{
			Source: bounds,
			Pixels: t.doc.Lift(bounds),
			Scale:  1,
		})
		t.tb.SetToolState(st)
		t.tb.UpdatePayload(mode.Transform{Bounds: bounds, Scale: 1})
	}
	t.pressFrom = st.Transform.Offset
}

func (t *Tools) moveTransform(at image.Point) {
	t.editTransform(func(e *toolbar.TransformEdit) {
		e.Offset = t.pressFrom.Add(at.Sub(t.pressAt))
	})
}

// ScaleTransform multiplies the lifted region's scale by factor.
func (t *Tools) ScaleTransform(factor float64) {
	t.editTransform(func(e *toolbar.TransformEdit) {
		e.Scale *= factor
	})
}

// RotateTransform turns the lifted region by delta radians.
func (t *Tools) RotateTransform(delta float64) {
	t.editTransform(func(e *toolbar.TransformEdit) {
		e.Rotation += delta
	})
}

// editTransform applies fn to the pending transform, then the clamp
// settings, and mirrors the result into the mode payload.
func (t *Tools) editTransform(fn func(e *toolbar.TransformEdit)) {
	st, ok := t.tb.PeekToolState()
	if !ok || st.Owner != mode.FreeTransform {
		return
	}
	e := *st.Transform
	fn(&e)
	p := Constrain(Placement{Offset: e.Offset, Scale: e.Scale, Rotation: e.Rotation}, e.Source, t.doc.Bounds(), t.constraints())
	e.Offset, e.Scale, e.Rotation = p.Offset, p.Scale, p.Rotation

	st.Transform = &e
	t.tb.ReplaceToolState(st)
	t.tb.UpdatePayload(mode.Transform{Bounds: e.Source, Offset: e.Offset, Scale: e.Scale, Rotation: e.Rotation})
}

func (t *Tools) constraints() Constraints {
	return Constraints{
		Translate: t.tb.ClampTranslate(),
		Scale:     t.tb.ClampScale(),
		Rotate:    t.tb.ClampRotate(),
	}
}

// CommitTransform stamps the lifted region down and asks the toolbar to
// return to the previous tool.
func (t *Tools) CommitTransform() bool {
	st, ok := t.tb.TakeToolStateFor(mode.FreeTransform)
	if !ok {
		return false
	}
	t.placeTransform(st)
	t.tb.RequestPrevious()
	return true
}

// CancelTransform puts the lifted region back where it came from.
func (t *Tools) CancelTransform() bool {
	st, ok := t.tb.TakeToolStateFor(mode.FreeTransform)
	if !ok {
		return false
	}
	t.doc.Place(st.Transform.Pixels, Placement{Scale: 1}, t.tb.FreeTransformScaleMethod())
	t.tb.UpdatePayload(mode.Transform{Bounds: st.Transform.Source, Scale: 1})
	return true
}

func (t *Tools) placeTransform(st toolbar.ToolState) {
	e := st.Transform
	area := t.doc.Place(e.Pixels, Placement{Offset: e.Offset, Scale: e.Scale, Rotation: e.Rotation}, t.tb.FreeTransformScaleMethod())
	if !area.Empty() {
		t.doc.Select(area)
	}
}

// Preview returns the lifted region and where it would land, for drawing
// over the canvas.
func (t *Tools) Preview() (*image.NRGBA, Placement, bool) {
	st, ok := t.tb.PeekToolState()
	if !ok || st.Owner != mode.FreeTransform {
		return nil, Placement{}, false
	}
	e := st.Transform
	return e.Pixels, Placement{Offset: e.Offset, Scale: e.Scale, Rotation: e.Rotation}, true
}
