package main

import (
	"errors"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pixeled/paint"
	"github.com/milk9111/pixeled/palette"
)

var emptySwatchColor = color.RGBA{70, 70, 70, 255}

// PaletteView shows the primary and secondary colors and the swatch grid.
// Shift-click picks a swatch as the secondary color, ctrl-click removes it.
type PaletteView struct {
	Container *widget.Container

	pal       *palette.Palette
	primary   *widget.Button
	secondary *widget.Button
	swatches  [palette.Rows][palette.Cols]*widget.Button
	hexInput  *widget.TextInput
}

func swatchImage(c color.Color) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    solidNineSlice(c),
		Hover:   solidNineSlice(c),
		Pressed: solidNineSlice(c),
	}
}

func buildPaletteView(theme *widget.Theme, fontFace *text.Face, pal *palette.Palette) *PaletteView {
	v := &PaletteView{pal: pal}

	v.Container = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 200),
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

	v.Container.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Palette", fontFace, theme.LabelTheme.Color),
	))

	current := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	v.primary = widget.NewButton(
		widget.ButtonOpts.Image(swatchImage(pal.Primary())),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(40, 40)),
	)
	v.secondary = widget.NewButton(
		widget.ButtonOpts.Image(swatchImage(pal.Secondary())),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(28, 28)),
	)
	swap := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Swap", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(4)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			pal.Swap()
		}),
	)
	current.AddChild(v.primary)
	current.AddChild(v.secondary)
	current.AddChild(swap)
	v.Container.AddChild(current)

	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(palette.Cols),
				widget.GridLayoutOpts.Spacing(4, 4),
			),
		),
	)
	for r := 0; r < palette.Rows; r++ {
		for c := 0; c < palette.Cols; c++ {
			btn := widget.NewButton(
				widget.ButtonOpts.Image(swatchImage(emptySwatchColor)),
				widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(28, 28)),
				widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
					v.swatchClicked(r, c)
				}),
			)
			v.swatches[r][c] = btn
			grid.AddChild(btn)
		}
	}
	v.Container.AddChild(grid)

	add := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Add primary", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(4)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			v.addColor(pal.Primary())
		}),
	)
	v.Container.AddChild(add)

	v.hexInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 28),
		),
		widget.TextInputOpts.Image(theme.TextInputTheme.Image),
		widget.TextInputOpts.Color(theme.TextInputTheme.Color),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.Placeholder("#rrggbbaa"),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			c, err := paint.ParseHex(args.InputText)
			if err != nil {
				log.Printf("palette: %v", err)
				return
			}
			pal.SetPrimary(c)
		}),
	)
	v.Container.AddChild(v.hexInput)

	v.Refresh()
	return v
}

func (v *PaletteView) swatchClicked(r, c int) {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyControl):
		v.pal.RemoveSwatch(r, c)
	case ebiten.IsKeyPressed(ebiten.KeyShift):
		v.pal.SelectSwatch(r, c, true)
	default:
		v.pal.SelectSwatch(r, c, false)
	}
}

func (v *PaletteView) addColor(c color.NRGBA) {
	err := v.pal.AddColor(c)
	switch {
	case err == nil:
	case errors.Is(err, palette.ErrFull), errors.Is(err, palette.ErrDuplicate):
		log.Printf("palette: not adding %s: %v", paint.FormatHex(c), err)
	default:
		log.Printf("palette: add color: %v", err)
	}
}

// Refresh repaints the view from the palette.
func (v *PaletteView) Refresh() {
	v.primary.SetImage(swatchImage(v.pal.Primary()))
	v.secondary.SetImage(swatchImage(v.pal.Secondary()))
	grid := v.pal.Swatches()
	for r := range grid {
		for c, sw := range grid[r] {
			fill := color.Color(emptySwatchColor)
			if sw != nil {
				fill = *sw
			}
			v.swatches[r][c].SetImage(swatchImage(fill))
		}
	}
	if !v.hexInput.IsFocused() {
		v.hexInput.SetText(paint.FormatHex(v.pal.Primary()))
	}
}
