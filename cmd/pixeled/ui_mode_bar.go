package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pixeled/mode"
	"github.com/milk9111/pixeled/toolbar"
)

// modeButton adapts a toggle-mode widget button to the toolbar.
type modeButton struct {
	btn *widget.Button
}

func (b modeButton) IsActive() bool { return b.btn.State() == widget.WidgetChecked }

func (b modeButton) SetActive(active bool) {
	state := widget.WidgetUnchecked
	if active {
		state = widget.WidgetChecked
	}
	b.btn.SetState(state)
}

// buildModeBar lays out one toggle button per tool. Exclusivity is owned
// by the toolbar, so the buttons are not in a radio group. focused returns
// the canvas new modes read from, or nil.
func buildModeBar(theme *widget.Theme, fontFace *text.Face, tb *toolbar.Toolbar, focused func() mode.Canvas) *widget.Container {
	bar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 48),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(barColor)),
	)

	for _, v := range mode.Variants() {
		tip := widget.NewTextToolTip(v.Tooltip(), fontFace, color.Black, solidNineSlice(tooltipColor))
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(v.String(), fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(6)),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(48, 40),
				widget.WidgetOpts.ToolTip(tip),
			),
			// clicked handlers run deferred, after the toggle flipped
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				tb.HandleClick(v, focused())
			}),
		)
		tb.AttachButton(v, modeButton{btn: btn})
		bar.AddChild(btn)
	}
	return bar
}
