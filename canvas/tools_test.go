package canvas

import (
	"image"
	"testing"

	"github.com/milk9111/pixeled/mode"
	"github.com/milk9111/pixeled/paint"
	"github.com/milk9111/pixeled/palette"
	"github.com/milk9111/pixeled/settings"
	"github.com/milk9111/pixeled/toolbar"
)

type fixture struct {
	doc   *Document
	panel *settings.Panel
	tb    *toolbar.Toolbar
	tools *Tools
}

func newFixture(v mode.Variant) *fixture {
	doc := NewDocument(16, 16)
	panel := settings.NewPanel(mode.Cursor, settings.DefaultValues())
	tb := toolbar.New(mode.Of(mode.Cursor), palette.Default(), panel)
	if v != mode.Cursor {
		tb.SetMouseMode(mode.New(v, doc))
	}
	return &fixture{doc: doc, panel: panel, tb: tb, tools: NewTools(doc, tb)}
}

func (f *fixture) fillRect(r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			f.doc.Image().SetNRGBA(x, y, red)
		}
	}
}

func TestPencilStroke(t *testing.T) {
	f := newFixture(mode.Pencil)
	f.panel.SetPencil(settings.Pencil{Brush: paint.Round, Blend: paint.Overwrite, Radius: 1})

	f.tools.Press(image.Pt(1, 1), false)
	f.tools.Drag(image.Pt(4, 1))
	f.tools.Release(image.Pt(4, 1))

	if got := countColor(f.doc, paint.Black); got != 4 {
		t.Fatalf("stroke painted %d pixels, want 4", got)
	}
	p, ok := f.tb.MouseMode().Payload().(mode.Stroke)
	if !ok || p.Drawing || p.Last != image.Pt(4, 1) {
		t.Fatalf("payload = %+v", f.tb.MouseMode().Payload())
	}

	// drags after release do nothing
	f.tools.Drag(image.Pt(8, 8))
	if got := countColor(f.doc, paint.Black); got != 4 {
		t.Fatalf("drag after release painted")
	}
}

func TestPencilSecondaryButtonUsesSecondaryColor(t *testing.T) {
	f := newFixture(mode.Pencil)
	f.panel.SetPencil(settings.Pencil{Brush: paint.Round, Blend: paint.Overwrite, Radius: 1})
	f.tb.SetSecondaryColor(red)

	f.tools.Press(image.Pt(2, 2), true)
	if f.doc.At(image.Pt(2, 2)) != red {
		t.Fatalf("pixel = %+v, want secondary color", f.doc.At(image.Pt(2, 2)))
	}
}

func TestEyedropper(t *testing.T) {
	f := newFixture(mode.Eyedropper)
	f.doc.Image().SetNRGBA(3, 3, red)
	f.doc.Image().SetNRGBA(4, 4, blue)

	f.tools.Press(image.Pt(3, 3), false)
	f.tools.Press(image.Pt(4, 4), true)
	if f.tb.PrimaryColor() != red || f.tb.SecondaryColor() != blue {
		t.Fatalf("colors = %+v %+v", f.tb.PrimaryColor(), f.tb.SecondaryColor())
	}

	f.tools.Hover(image.Pt(7, 8))
	if p, _ := f.tb.MouseMode().Payload().(mode.Hover); p.At != image.Pt(7, 8) {
		t.Fatalf("hover payload = %+v", p)
	}
}

func TestRectangleSelect(t *testing.T) {
	f := newFixture(mode.RectangleSelect)
	f.tools.Press(image.Pt(5, 6), false)
	f.tools.Drag(image.Pt(3, 3))
	if p, _ := f.tb.MouseMode().Payload().(mode.Selection); !p.Dragging || p.Rect != image.Rect(3, 3, 6, 7) {
		t.Fatalf("drag payload = %+v", p)
	}
	f.tools.Release(image.Pt(2, 2))

	want := image.Rect(2, 2, 6, 7)
	if sel, ok := f.doc.Selection(); !ok || sel != want {
		t.Fatalf("selection = %v %v", sel, ok)
	}
	if p, _ := f.tb.MouseMode().Payload().(mode.Selection); p.Dragging || p.Rect != want {
		t.Fatalf("release payload = %+v", p)
	}

	// a click without a drag clears
	f.tools.Press(image.Pt(1, 1), false)
	f.tools.Release(image.Pt(1, 1))
	if _, ok := f.doc.Selection(); ok {
		t.Fatalf("click must clear the selection")
	}
}

func TestMagicWandUsesToleranceSettings(t *testing.T) {
	f := newFixture(mode.MagicWand)
	f.fillRect(image.Rect(0, 0, 4, 4))
	f.tools.Press(image.Pt(1, 1), false)
	if sel, ok := f.doc.Selection(); !ok || sel != image.Rect(0, 0, 4, 4) {
		t.Fatalf("selection = %v %v", sel, ok)
	}

	f.panel.SetMagicWand(settings.Tolerance{Tolerance: 1})
	f.tools.Press(image.Pt(1, 1), false)
	if sel, _ := f.doc.Selection(); sel != f.doc.Bounds() {
		t.Fatalf("full tolerance selection = %v", sel)
	}
}

func TestFillTool(t *testing.T) {
	f := newFixture(mode.Fill)
	f.fillRect(image.Rect(0, 0, 16, 1))
	f.panel.SetFill(settings.Tolerance{Tolerance: 0})

	f.tools.Press(image.Pt(5, 5), false)
	if got := countColor(f.doc, paint.Black); got != 16*15 {
		t.Fatalf("filled %d, want %d", got, 16*15)
	}
}

func TestShapeTool(t *testing.T) {
	f := newFixture(mode.Shape)
	f.tools.Press(image.Pt(1, 1), false)
	f.tools.Drag(image.Pt(2, 2))
	if p, _ := f.tb.MouseMode().Payload().(mode.ShapeDraft); p.End != image.Pt(2, 2) || !p.Dragging {
		t.Fatalf("draft = %+v", p)
	}
	f.tools.Release(image.Pt(3, 3))
	if got := countColor(f.doc, paint.Black); got != 8 {
		t.Fatalf("rectangle painted %d, want 8", got)
	}
}

func TestTextTool(t *testing.T) {
	f := newFixture(mode.Text)
	var opened []image.Point
	f.tools.SetTextHandler(func(origin image.Point) { opened = append(opened, origin) })

	f.tools.Press(image.Pt(2, 3), false)
	if len(opened) != 1 || opened[0] != image.Pt(2, 3) {
		t.Fatalf("text handler calls = %v", opened)
	}
	if st, ok := f.tb.PeekToolState(); !ok || st.Owner != mode.Text || st.Text.Origin != image.Pt(2, 3) {
		t.Fatalf("tool state = %+v %v", st, ok)
	}

	if !f.tools.CommitText("a") {
		t.Fatalf("CommitText must succeed with a pending edit")
	}
	if countColor(f.doc, paint.Black) == 0 {
		t.Fatalf("no text drawn")
	}
	if f.tools.CommitText("b") {
		t.Fatalf("second CommitText must report no pending edit")
	}
}

func TestFreeTransformMoveAndCommit(t *testing.T) {
	f := newFixture(mode.Cursor)
	f.fillRect(image.Rect(0, 0, 2, 2))
	f.doc.Select(image.Rect(0, 0, 2, 2))
	f.tb.SetMouseMode(mode.New(mode.FreeTransform, f.doc))

	f.tools.Press(image.Pt(0, 0), false)
	if countColor(f.doc, red) != 0 {
		t.Fatalf("press must lift the selection")
	}
	f.tools.Drag(image.Pt(3, 0))
	if p, _ := f.tb.MouseMode().Payload().(mode.Transform); p.Offset != image.Pt(3, 0) {
		t.Fatalf("payload = %+v", p)
	}
	if px, pl, ok := f.tools.Preview(); !ok || px == nil || pl.Offset != image.Pt(3, 0) {
		t.Fatalf("preview = %v %+v %v", px, pl, ok)
	}

	if !f.tools.CommitTransform() {
		t.Fatalf("CommitTransform must succeed")
	}
	if f.doc.At(image.Pt(3, 0)) != red || f.doc.At(image.Pt(4, 1)) != red || f.doc.At(image.Pt(0, 0)) == red {
		t.Fatalf("region not moved")
	}
	if f.tb.Pending() != 1 {
		t.Fatalf("commit must request the previous tool")
	}
	f.tb.Update(f.doc)
	if f.tb.MouseMode().Variant() != mode.Cursor {
		t.Fatalf("current = %v, want Cursor", f.tb.MouseMode().Variant())
	}
}

func TestFreeTransformClampTranslate(t *testing.T) {
	f := newFixture(mode.Cursor)
	f.panel.SetFreeTransform(settings.FreeTransform{ClampTranslate: true})
	f.fillRect(image.Rect(0, 0, 2, 2))
	f.doc.Select(image.Rect(0, 0, 2, 2))
	f.tb.SetMouseMode(mode.New(mode.FreeTransform, f.doc))

	f.tools.Press(image.Pt(0, 0), false)
	f.tools.Drag(image.Pt(100, 0))
	if p, _ := f.tb.MouseMode().Payload().(mode.Transform); p.Offset != image.Pt(14, 0) {
		t.Fatalf("offset = %v, want (14,0)", p.Offset)
	}
}

func TestFreeTransformCancel(t *testing.T) {
	f := newFixture(mode.Cursor)
	f.fillRect(image.Rect(4, 4, 6, 6))
	f.doc.Select(image.Rect(4, 4, 6, 6))
	f.tb.SetMouseMode(mode.New(mode.FreeTransform, f.doc))

	f.tools.Press(image.Pt(4, 4), false)
	f.tools.Drag(image.Pt(8, 8))
	if !f.tools.CancelTransform() {
		t.Fatalf("CancelTransform must succeed")
	}
	if f.doc.At(image.Pt(4, 4)) != red || countColor(f.doc, red) != 4 {
		t.Fatalf("cancel must restore the region")
	}
	if f.tools.CancelTransform() {
		t.Fatalf("second cancel must report nothing pending")
	}
}

func TestSettleStampsLiftedRegionOnModeChange(t *testing.T) {
	f := newFixture(mode.Cursor)
	f.fillRect(image.Rect(0, 0, 2, 2))
	f.doc.Select(image.Rect(0, 0, 2, 2))
	f.tb.SetMouseMode(mode.New(mode.FreeTransform, f.doc))
	f.tools.Press(image.Pt(0, 0), false)

	// same tool: nothing settles
	f.tools.Settle()
	if _, ok := f.tb.PeekToolState(); !ok {
		t.Fatalf("Settle must keep the edit while its tool is active")
	}

	f.tb.SetMouseMode(mode.Default(mode.Pencil))
	f.tools.Settle()
	if _, ok := f.tb.PeekToolState(); ok {
		t.Fatalf("Settle must clear the edit")
	}
	if countColor(f.doc, red) != 4 {
		t.Fatalf("lifted pixels lost")
	}
}
