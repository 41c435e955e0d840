package settings

import (
	"github.com/milk9111/pixeled/mode"
	"github.com/milk9111/pixeled/paint"
)

// Panel holds the per-tool settings and which tool's controls are shown.
// Values for every tool persist while another tool's controls are on screen.
type Panel struct {
	values Values
	shown  mode.Variant

	onShow   func(mode.Variant)
	onChange func(Values)
}

func NewPanel(initial mode.Variant, values Values) *Panel {
	return &Panel{values: values.Clamped(), shown: initial}
}

// SetShowHandler registers the view callback run when the shown tool
// changes.
func (p *Panel) SetShowHandler(fn func(mode.Variant)) {
	p.onShow = fn
}

// SetChangeHandler registers the view callback run when any value changes.
func (p *Panel) SetChangeHandler(fn func(Values)) {
	p.onChange = fn
}

// SetToVariant swaps the displayed controls to v's.
func (p *Panel) SetToVariant(v mode.Variant) {
	if p.shown == v {
		return
	}
	p.shown = v
	if p.onShow != nil {
		p.onShow(v)
	}
}

func (p *Panel) Shown() mode.Variant { return p.shown }

// HasControls reports whether v has a settings panel at all.
func HasControls(v mode.Variant) bool {
	switch v {
	case mode.Pencil, mode.MagicWand, mode.Fill, mode.Shape, mode.FreeTransform:
		return true
	default:
		return false
	}
}

func (p *Panel) Values() Values { return p.values }

// Load replaces every value, e.g. after a preset reload.
func (p *Panel) Load(v Values) {
	p.values = v.Clamped()
	p.changed()
}

func (p *Panel) PencilSettings() (paint.BrushType, paint.BlendingMode, int) {
	s := p.values.Pencil
	return s.Brush, s.Blend, s.Radius
}

func (p *Panel) MagicWandSettings() (float64, bool) {
	return p.values.MagicWand.Tolerance, p.values.MagicWand.Relative
}

func (p *Panel) FillSettings() (float64, bool) {
	return p.values.Fill.Tolerance, p.values.Fill.Relative
}

func (p *Panel) ShapeSettings() (paint.ShapeType, uint8) {
	return p.values.Shape.Type, p.values.Shape.BorderWidth
}

func (p *Panel) FreeTransformSettings() (translate, scale, rotate bool, method paint.ScaleMethod) {
	s := p.values.FreeTransform
	return s.ClampTranslate, s.ClampScale, s.ClampRotate, s.Scale
}

func (p *Panel) SetPencil(s Pencil) {
	p.values.Pencil = s
	p.values = p.values.Clamped()
	p.changed()
}

func (p *Panel) SetMagicWand(s Tolerance) {
	p.values.MagicWand = s
	p.values = p.values.Clamped()
	p.changed()
}

func (p *Panel) SetFill(s Tolerance) {
	p.values.Fill = s
	p.values = p.values.Clamped()
	p.changed()
}

func (p *Panel) SetShape(s Shape) {
	p.values.Shape = s
	p.values = p.values.Clamped()
	p.changed()
}

func (p *Panel) SetFreeTransform(s FreeTransform) {
	p.values.FreeTransform = s
	p.changed()
}

func (p *Panel) changed() {
	if p.onChange != nil {
		p.onChange(p.values)
	}
}
