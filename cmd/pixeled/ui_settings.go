package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pixeled/mode"
	"github.com/milk9111/pixeled/paint"
	"github.com/milk9111/pixeled/settings"
)

// SettingsView holds one section of controls per tool and shows the one
// the panel selects.
type SettingsView struct {
	Container *widget.Container

	panel    *settings.Panel
	sections map[mode.Variant]*widget.Container
	empty    *widget.Container
	title    *widget.Label

	// setters push values into the controls without touching the panel
	setters []func(settings.Values)
}

type settingsBuilder struct {
	theme *widget.Theme
	face  *text.Face
}

func buildSettingsView(theme *widget.Theme, fontFace *text.Face, panel *settings.Panel) *SettingsView {
	b := settingsBuilder{theme: theme, face: fontFace}
	v := &SettingsView{panel: panel, sections: map[mode.Variant]*widget.Container{}}

	v.Container = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 200),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			),
		),
	)
	v.title = widget.NewLabel(widget.LabelOpts.Text("", fontFace, theme.LabelTheme.Color))
	v.Container.AddChild(v.title)

	v.empty = b.section()
	v.empty.AddChild(b.label("No settings for this tool"))
	v.Container.AddChild(v.empty)

	vals := panel.Values()
	v.add(mode.Pencil, b.pencilSection(panel, vals, &v.setters))
	v.add(mode.MagicWand, b.toleranceSection(vals.MagicWand, &v.setters,
		func(s settings.Values) settings.Tolerance { return s.MagicWand },
		func(t settings.Tolerance) { panel.SetMagicWand(t) },
		func() settings.Tolerance { return panel.Values().MagicWand },
	))
	v.add(mode.Fill, b.toleranceSection(vals.Fill, &v.setters,
		func(s settings.Values) settings.Tolerance { return s.Fill },
		func(t settings.Tolerance) { panel.SetFill(t) },
		func() settings.Tolerance { return panel.Values().Fill },
	))
	v.add(mode.Shape, b.shapeSection(panel, vals, &v.setters))
	v.add(mode.FreeTransform, b.transformSection(panel, vals, &v.setters))

	panel.SetShowHandler(v.Show)
	v.Show(panel.Shown())
	return v
}

func (v *SettingsView) add(variant mode.Variant, c *widget.Container) {
	v.sections[variant] = c
	v.Container.AddChild(c)
}

// Show makes variant's section the visible one.
func (v *SettingsView) Show(variant mode.Variant) {
	v.title.Label = variant.String()
	_, has := v.sections[variant]
	setVisible(v.empty, !has)
	for sv, c := range v.sections {
		setVisible(c, sv == variant)
	}
	v.Container.RequestRelayout()
}

// Refresh pushes the panel's values into the controls, e.g. after a
// preset reload.
func (v *SettingsView) Refresh() {
	vals := v.panel.Values()
	for _, set := range v.setters {
		set(vals)
	}
}

func setVisible(c *widget.Container, visible bool) {
	if visible {
		c.GetWidget().Visibility = widget.Visibility_Show
	} else {
		c.GetWidget().Visibility = widget.Visibility_Hide
	}
}

func (b settingsBuilder) section() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
}

func (b settingsBuilder) label(s string) *widget.Label {
	return widget.NewLabel(widget.LabelOpts.Text(s, b.face, b.theme.LabelTheme.Color))
}

func (b settingsBuilder) pencilSection(panel *settings.Panel, vals settings.Values, setters *[]func(settings.Values)) *widget.Container {
	sec := b.section()

	brush, setBrush := choiceGroup(b, paint.BrushTypes(), vals.Pencil.Brush, func(t paint.BrushType) {
		s := panel.Values().Pencil
		s.Brush = t
		panel.SetPencil(s)
	})
	blend, setBlend := choiceGroup(b, paint.BlendingModes(), vals.Pencil.Blend, func(m paint.BlendingMode) {
		s := panel.Values().Pencil
		s.Blend = m
		panel.SetPencil(s)
	})
	radius, setRadius := b.slider("Radius", settings.MinRadius, settings.MaxRadius, vals.Pencil.Radius, strconvInt, func(r int) {
		s := panel.Values().Pencil
		s.Radius = r
		panel.SetPencil(s)
	})

	sec.AddChild(b.label("Brush"))
	sec.AddChild(brush)
	sec.AddChild(b.label("Blending"))
	sec.AddChild(blend)
	sec.AddChild(radius)

	*setters = append(*setters, func(v settings.Values) {
		setBrush(v.Pencil.Brush)
		setBlend(v.Pencil.Blend)
		setRadius(v.Pencil.Radius)
	})
	return sec
}

func (b settingsBuilder) toleranceSection(initial settings.Tolerance, setters *[]func(settings.Values), pick func(settings.Values) settings.Tolerance, store func(settings.Tolerance), load func() settings.Tolerance) *widget.Container {
	sec := b.section()

	tol, setTol := b.slider("Tolerance", 0, 100, int(initial.Tolerance*100+0.5), percent, func(p int) {
		s := load()
		s.Tolerance = float64(p) / 100
		store(s)
	})
	rel, setRel := b.checkbox("Relative", initial.Relative, func(on bool) {
		s := load()
		s.Relative = on
		store(s)
	})
	sec.AddChild(tol)
	sec.AddChild(rel)

	*setters = append(*setters, func(v settings.Values) {
		t := pick(v)
		setTol(int(t.Tolerance*100 + 0.5))
		setRel(t.Relative)
	})
	return sec
}

func (b settingsBuilder) shapeSection(panel *settings.Panel, vals settings.Values, setters *[]func(settings.Values)) *widget.Container {
	sec := b.section()

	typ, setType := choiceGroup(b, paint.ShapeTypes(), vals.Shape.Type, func(t paint.ShapeType) {
		s := panel.Values().Shape
		s.Type = t
		panel.SetShape(s)
	})
	border, setBorder := b.slider("Border", settings.MinBorderWidth, settings.MaxBorderWidth, int(vals.Shape.BorderWidth), strconvInt, func(w int) {
		s := panel.Values().Shape
		s.BorderWidth = uint8(w)
		panel.SetShape(s)
	})
	sec.AddChild(b.label("Shape"))
	sec.AddChild(typ)
	sec.AddChild(border)

	*setters = append(*setters, func(v settings.Values) {
		setType(v.Shape.Type)
		setBorder(int(v.Shape.BorderWidth))
	})
	return sec
}

func (b settingsBuilder) transformSection(panel *settings.Panel, vals settings.Values, setters *[]func(settings.Values)) *widget.Container {
	sec := b.section()

	update := func(fn func(*settings.FreeTransform)) {
		s := panel.Values().FreeTransform
		fn(&s)
		panel.SetFreeTransform(s)
	}
	translate, setTranslate := b.checkbox("Clamp translate", vals.FreeTransform.ClampTranslate, func(on bool) {
		update(func(s *settings.FreeTransform) { s.ClampTranslate = on })
	})
	scale, setScale := b.checkbox("Clamp scale", vals.FreeTransform.ClampScale, func(on bool) {
		update(func(s *settings.FreeTransform) { s.ClampScale = on })
	})
	rotate, setRotate := b.checkbox("Clamp rotate", vals.FreeTransform.ClampRotate, func(on bool) {
		update(func(s *settings.FreeTransform) { s.ClampRotate = on })
	})
	method, setMethod := choiceGroup(b, paint.ScaleMethods(), vals.FreeTransform.Scale, func(m paint.ScaleMethod) {
		update(func(s *settings.FreeTransform) { s.Scale = m })
	})

	sec.AddChild(translate)
	sec.AddChild(scale)
	sec.AddChild(rotate)
	sec.AddChild(b.label("Scaling"))
	sec.AddChild(method)

	*setters = append(*setters, func(v settings.Values) {
		setTranslate(v.FreeTransform.ClampTranslate)
		setScale(v.FreeTransform.ClampScale)
		setRotate(v.FreeTransform.ClampRotate)
		setMethod(v.FreeTransform.Scale)
	})
	return sec
}

// choiceGroup lays out one toggle button per option in a radio group. The
// returned setter selects an option without calling onPick for an
// unchanged value.
func choiceGroup[T comparable](b settingsBuilder, options []T, initial T, onPick func(T)) (*widget.Container, func(T)) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(4),
			),
		),
	)
	buttons := make([]*widget.Button, len(options))
	elements := make([]widget.RadioGroupElement, len(options))
	initialIdx := 0
	for i, opt := range options {
		buttons[i] = widget.NewButton(
			widget.ButtonOpts.Image(b.theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(fmt.Sprint(opt), b.face, b.theme.ButtonTheme.TextColor),
			widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(4)),
		)
		elements[i] = buttons[i]
		row.AddChild(buttons[i])
		if opt == initial {
			initialIdx = i
		}
	}

	current := initial
	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.InitialElement(buttons[initialIdx]),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for i, btn := range buttons {
				if args.Active == btn && options[i] != current {
					current = options[i]
					onPick(current)
					return
				}
			}
		}),
	)
	set := func(v T) {
		for i, opt := range options {
			if opt == v {
				current = v
				group.SetActive(buttons[i])
				return
			}
		}
	}
	return row, set
}

func (b settingsBuilder) slider(name string, lo, hi, initial int, format func(int) string, onChange func(int)) (*widget.Container, func(int)) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	value := b.label(fmt.Sprintf("%s: %s", name, format(initial)))
	last := initial
	s := widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(lo, hi),
		widget.SliderOpts.InitialCurrent(initial),
		widget.SliderOpts.Images(b.theme.SliderTheme.TrackImage, b.theme.SliderTheme.HandleImage),
		widget.SliderOpts.FixedHandleSize(10),
		widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 16)),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			value.Label = fmt.Sprintf("%s: %s", name, format(args.Current))
			if args.Current != last {
				last = args.Current
				onChange(args.Current)
			}
		}),
	)
	row.AddChild(s)
	row.AddChild(value)

	set := func(v int) {
		last = v
		s.Current = v
		value.Label = fmt.Sprintf("%s: %s", name, format(v))
	}
	return row, set
}

func (b settingsBuilder) checkbox(label string, initial bool, onChange func(bool)) (*widget.Checkbox, func(bool)) {
	state := widget.WidgetUnchecked
	if initial {
		state = widget.WidgetChecked
	}
	last := initial
	cb := widget.NewCheckbox(
		widget.CheckboxOpts.Text(label, b.face, b.theme.LabelTheme.Color),
		widget.CheckboxOpts.Image(b.theme.CheckboxTheme.Image),
		widget.CheckboxOpts.Spacing(6),
		widget.CheckboxOpts.InitialState(state),
		widget.CheckboxOpts.StateChangedHandler(func(args *widget.CheckboxChangedEventArgs) {
			on := args.State == widget.WidgetChecked
			if on != last {
				last = on
				onChange(on)
			}
		}),
	)
	set := func(on bool) {
		last = on
		if on {
			cb.SetState(widget.WidgetChecked)
		} else {
			cb.SetState(widget.WidgetUnchecked)
		}
	}
	return cb, set
}

func strconvInt(v int) string { return fmt.Sprint(v) }

func percent(v int) string { return fmt.Sprintf("%d%%", v) }
