package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

// buildUI lays out the mode bar across the top, the palette on the left
// and tool settings on the right. The canvas is drawn by the editor in
// the space left between them.
func (e *Editor) buildUI() error {
	ui := &ebitenui.UI{}

	fontFace, err := loadFace(14)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	ui.PrimaryTheme = newEditorTheme(fontFace)

	modeBar := buildModeBar(ui.PrimaryTheme, fontFace, e.tb, e.focusedCanvas)
	e.paletteView = buildPaletteView(ui.PrimaryTheme, fontFace, e.pal)
	e.settingsView = buildSettingsView(ui.PrimaryTheme, fontFace, e.panel)
	e.textDialog = newTextDialog(ui, ui.PrimaryTheme, fontFace, e.textSubmitted, e.textDialogClosed)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	e.paletteView.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	e.settingsView.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	// Mode bar: top center
	modeBar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(e.paletteView.Container)
	root.AddChild(e.settingsView.Container)
	root.AddChild(modeBar)

	ui.Container = root
	e.ui = ui
	return nil
}
