package main

import (
	"image"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pixeled/canvas"
	"github.com/milk9111/pixeled/config"
	"github.com/milk9111/pixeled/mode"
	"github.com/milk9111/pixeled/paint"
	"github.com/milk9111/pixeled/palette"
	"github.com/milk9111/pixeled/preset"
	"github.com/milk9111/pixeled/settings"
	"github.com/milk9111/pixeled/toolbar"
)

const (
	leftPanelWidth  = 220
	rightPanelWidth = 240
	modeBarHeight   = 56
)

var (
	backgroundColor = color.RGBA{30, 30, 34, 255}
	checkerA        = color.RGBA{200, 200, 200, 255}
	checkerB        = color.RGBA{160, 160, 160, 255}
	selectionColor  = color.RGBA{80, 160, 255, 255}
)

// Editor is the ebiten game: the toolbar UI around a single canvas.
type Editor struct {
	ui    *ebitenui.UI
	tb    *toolbar.Toolbar
	pal   *palette.Palette
	panel *settings.Panel
	doc   *canvas.Document
	tools *canvas.Tools

	paletteView  *PaletteView
	settingsView *SettingsView
	textDialog   *textDialog

	clipboard  palette.Clipboard
	watcher    *preset.Watcher
	presetPath string

	zoom       int
	origin     image.Point
	pressed    bool
	canvasImg  *ebiten.Image
	previewImg *ebiten.Image
	preview    *canvas.Document
	backdrop   *ebiten.Image
	pixBuf     []byte
}

func NewEditor(cfg config.Config, tb *toolbar.Toolbar, pal *palette.Palette, panel *settings.Panel) (*Editor, error) {
	e := &Editor{
		tb:         tb,
		pal:        pal,
		panel:      panel,
		doc:        canvas.NewDocument(cfg.Canvas.Width, cfg.Canvas.Height),
		preview:    canvas.NewDocument(cfg.Canvas.Width, cfg.Canvas.Height),
		zoom:       cfg.Canvas.Zoom,
		presetPath: cfg.Preset.Path,
	}
	e.tools = canvas.NewTools(e.doc, tb)

	if err := e.buildUI(); err != nil {
		return nil, err
	}

	pal.SetChangeHandler(e.paletteView.Refresh)
	e.tools.SetTextHandler(e.openTextDialog)
	return e, nil
}

func (e *Editor) focusedCanvas() mode.Canvas {
	return e.doc
}

func (e *Editor) openTextDialog(origin image.Point) {
	e.textDialog.Open(e.toScreen(origin).Add(image.Pt(e.zoom, e.zoom)))
	e.tb.SetActiveDialog(e.textDialog)
}

func (e *Editor) textSubmitted(body string) {
	if !e.tools.CommitText(body) {
		log.Printf("text: no pending text edit")
	}
}

func (e *Editor) textDialogClosed(d *textDialog, submitted bool) {
	if !submitted {
		e.tools.CancelText()
	}
	e.tb.ForgetActiveDialog(d)
}

func (e *Editor) Update() error {
	e.ui.Update()
	e.drainPresetEvents()

	// typing into a text field must not trigger shortcuts
	typing := false
	if fw := e.ui.GetFocusedWidget(); fw != nil {
		if _, ok := fw.(*widget.TextInput); ok {
			typing = true
		}
	}
	if !typing {
		e.handleHotkeys()
	}

	e.handlePointer()
	e.tb.Update(e.focusedCanvas())
	e.tools.Settle()
	return nil
}

func (e *Editor) handlePointer() {
	mx, my := ebiten.CursorPosition()
	at := e.toCanvas(image.Pt(mx, my))
	onCanvas := at.In(e.doc.Bounds())

	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !e.pressed && (left || right) && onCanvas && !ebuiinput.UIHovered {
		e.pressed = true
		e.tools.Press(at, right)
		return
	}
	if e.pressed {
		held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
		if !held {
			e.pressed = false
			e.tools.Release(at)
			return
		}
		e.tools.Drag(at)
		return
	}
	if onCanvas && !ebuiinput.UIHovered {
		e.tools.Hover(at)
	}
}

// drainPresetEvents reloads tool settings when the preset file changes.
func (e *Editor) drainPresetEvents() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-e.watcher.Events:
			if !ok {
				e.watcher = nil
				return
			}
			e.reloadPreset()
		case err, ok := <-e.watcher.Errors:
			if !ok {
				e.watcher = nil
				return
			}
			log.Printf("preset: watch %s: %v", e.presetPath, err)
		default:
			return
		}
	}
}

func (e *Editor) reloadPreset() {
	p, err := preset.Load(e.presetPath)
	if err != nil {
		log.Printf("preset: reload failed, keeping current settings: %v", err)
		return
	}
	e.panel.Load(p.Settings())
	e.settingsView.Refresh()
	log.Printf("preset: reloaded tool settings from %s", e.presetPath)
}

func (e *Editor) toCanvas(p image.Point) image.Point {
	return image.Pt(floorDiv(p.X-e.origin.X, e.zoom), floorDiv(p.Y-e.origin.Y, e.zoom))
}

func (e *Editor) toScreen(p image.Point) image.Point {
	return e.origin.Add(p.Mul(e.zoom))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	b := e.doc.Bounds()
	if e.canvasImg == nil {
		e.canvasImg = ebiten.NewImage(b.Dx(), b.Dy())
		e.previewImg = ebiten.NewImage(b.Dx(), b.Dy())
		e.backdrop = checkerboard(b.Dx(), b.Dy())
		e.upload(e.canvasImg, e.doc.Image())
	}
	if e.doc.Dirty() {
		e.upload(e.canvasImg, e.doc.Image())
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(e.zoom), float64(e.zoom))
	op.GeoM.Translate(float64(e.origin.X), float64(e.origin.Y))
	screen.DrawImage(e.backdrop, op)
	screen.DrawImage(e.canvasImg, op)

	if e.renderPreview() {
		e.upload(e.previewImg, e.preview.Image())
		screen.DrawImage(e.previewImg, op)
	}

	if sel, ok := e.selectionOutline(); ok {
		tl := e.toScreen(sel.Min)
		br := e.toScreen(sel.Max)
		vector.StrokeRect(screen, float32(tl.X), float32(tl.Y), float32(br.X-tl.X), float32(br.Y-tl.Y), 1, selectionColor, false)
	}

	e.ui.Draw(screen)
}

// renderPreview draws in-progress tool output into the preview document
// and reports whether there is anything to show.
func (e *Editor) renderPreview() bool {
	pix := e.preview.Image().Pix
	for i := range pix {
		pix[i] = 0
	}

	if px, pl, ok := e.tools.Preview(); ok {
		e.preview.Place(px, pl, e.tb.FreeTransformScaleMethod())
		return true
	}
	if d, ok := e.tb.MouseMode().Payload().(mode.ShapeDraft); ok && d.Dragging {
		e.preview.DrawShape(e.tb.ShapeType(), e.tb.ShapeBorderWidth(), d.Start, d.End, e.tb.PrimaryColor(), paint.Overwrite)
		return true
	}
	if h, ok := e.tb.MouseMode().Payload().(mode.Hover); ok && h.At.In(e.doc.Bounds()) {
		e.preview.Stamp(*e.tb.EyedropperBrush(), h.At, paint.Overwrite, false)
		return true
	}
	return false
}

func (e *Editor) selectionOutline() (image.Rectangle, bool) {
	if s, ok := e.tb.MouseMode().Payload().(mode.Selection); ok && s.Dragging {
		return s.Rect, true
	}
	return e.doc.Selection()
}

// upload copies src into dst, premultiplying alpha as ebiten expects.
func (e *Editor) upload(dst *ebiten.Image, src *image.NRGBA) {
	if len(e.pixBuf) != len(src.Pix) {
		e.pixBuf = make([]byte, len(src.Pix))
	}
	for i := 0; i+3 < len(src.Pix); i += 4 {
		a := uint32(src.Pix[i+3])
		e.pixBuf[i] = uint8(uint32(src.Pix[i]) * a / 255)
		e.pixBuf[i+1] = uint8(uint32(src.Pix[i+1]) * a / 255)
		e.pixBuf[i+2] = uint8(uint32(src.Pix[i+2]) * a / 255)
		e.pixBuf[i+3] = uint8(a)
	}
	dst.WritePixels(e.pixBuf)
}

func checkerboard(w, h int) *ebiten.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := checkerA
			if (x/4+y/4)%2 == 1 {
				c = checkerB
			}
			img.Set(x, y, c)
		}
	}
	return ebiten.NewImageFromImage(img)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := e.doc.Bounds()
	areaW := outsideWidth - leftPanelWidth - rightPanelWidth
	areaH := outsideHeight - modeBarHeight
	e.origin = image.Pt(
		leftPanelWidth+(areaW-b.Dx()*e.zoom)/2,
		modeBarHeight+(areaH-b.Dy()*e.zoom)/2,
	)
	return outsideWidth, outsideHeight
}

// Close releases the preset watcher.
func (e *Editor) Close() {
	if e.watcher != nil {
		_ = e.watcher.Close()
		e.watcher = nil
	}
}
