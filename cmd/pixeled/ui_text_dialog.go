package main

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	textDialogW = 320
	textDialogH = 130
)

// textDialog edits the body of a pending text tool edit. It closes itself
// on OK or Cancel; closing without OK cancels the edit.
type textDialog struct {
	ui     *ebitenui.UI
	window *widget.Window
	input  *widget.TextInput

	submitted bool
	onSubmit  func(body string)
	onClosed  func(d *textDialog, submitted bool)
}

func newTextDialog(ui *ebitenui.UI, theme *widget.Theme, fontFace *text.Face, onSubmit func(body string), onClosed func(d *textDialog, submitted bool)) *textDialog {
	d := &textDialog{ui: ui, onSubmit: onSubmit, onClosed: onClosed}

	contents := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 220, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			),
		),
	)

	contents.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Text", fontFace, &widget.LabelColor{Idle: color.Black, Disabled: color.Gray{Y: 140}}),
	))
	d.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(280, 28),
		),
		widget.TextInputOpts.Image(theme.TextInputTheme.Image),
		widget.TextInputOpts.Color(theme.TextInputTheme.Color),
		widget.TextInputOpts.Face(fontFace),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			d.submit(args.InputText)
		}),
	)
	contents.AddChild(d.input)

	buttonsRow := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	okBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("OK", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(4)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			d.submit(d.input.GetText())
		}),
	)
	cancelBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Cancel", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(4)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			d.Close()
		}),
	)
	buttonsRow.AddChild(okBtn)
	buttonsRow.AddChild(cancelBtn)
	contents.AddChild(buttonsRow)

	d.window = widget.NewWindow(
		widget.WindowOpts.Contents(contents),
		widget.WindowOpts.CloseMode(widget.NONE),
		widget.WindowOpts.MinSize(textDialogW, textDialogH),
		widget.WindowOpts.ClosedHandler(func(args *widget.WindowClosedEventArgs) {
			if d.onClosed != nil {
				d.onClosed(d, d.submitted)
			}
		}),
	)
	return d
}

// Open shows the dialog with its top-left corner near at.
func (d *textDialog) Open(at image.Point) {
	d.submitted = false
	d.input.SetText("")
	d.window.SetLocation(image.Rect(at.X, at.Y, at.X+textDialogW, at.Y+textDialogH))
	if !d.ui.IsWindowOpen(d.window) {
		d.ui.AddWindow(d.window)
	}
	d.input.Focus(true)
}

func (d *textDialog) IsOpen() bool { return d.ui.IsWindowOpen(d.window) }

// Close removes the dialog. It does nothing when the dialog is not shown.
func (d *textDialog) Close() {
	if d.IsOpen() {
		d.window.Close()
	}
}

func (d *textDialog) submit(body string) {
	d.submitted = true
	if d.onSubmit != nil {
		d.onSubmit(body)
	}
	d.Close()
}
