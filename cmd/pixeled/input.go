package main

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pixeled/mode"
)

const (
	transformScaleStep  = 1.25
	transformRotateStep = math.Pi / 12
)

var toolKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// hotkeyVariant maps the digit keys to tools in button order.
func hotkeyVariant(k ebiten.Key) (mode.Variant, bool) {
	vs := mode.Variants()
	for i, tk := range toolKeys {
		if tk == k && i < len(vs) {
			return vs[i], true
		}
	}
	return mode.Cursor, false
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// handleHotkeys runs keyboard shortcuts. Tool switches are queued and
// applied by the toolbar's Update like any other request.
func (e *Editor) handleHotkeys() {
	for _, k := range toolKeys {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		if v, ok := hotkeyVariant(k); ok {
			e.tb.RequestMode(v)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyX) && !ctrlPressed() {
		e.pal.Swap()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) && ctrlPressed() {
		if err := e.pal.CopyPrimary(e.clipboard); err != nil {
			log.Printf("clipboard: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) && ctrlPressed() {
		if err := e.pal.PasteSwatch(e.clipboard); err != nil {
			log.Printf("clipboard: %v", err)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if !e.tools.CancelTransform() {
			e.tb.RequestPrevious()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		e.tools.CommitTransform()
	}

	if e.tb.MouseMode().Variant() == mode.FreeTransform {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
			e.tools.ScaleTransform(transformScaleStep)
		case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
			e.tools.ScaleTransform(1 / transformScaleStep)
		case inpututil.IsKeyJustPressed(ebiten.KeyQ):
			e.tools.RotateTransform(-transformRotateStep)
		case inpututil.IsKeyJustPressed(ebiten.KeyE):
			e.tools.RotateTransform(transformRotateStep)
		}
	}
}
