package palette

import (
	"fmt"

	"github.com/milk9111/pixeled/paint"
)

// Clipboard is the system clipboard, text only.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// CopyPrimary writes the primary color to cb as #rrggbbaa.
func (p *Palette) CopyPrimary(cb Clipboard) error {
	if cb == nil {
		return fmt.Errorf("palette: copy: no clipboard")
	}
	return cb.WriteText(paint.FormatHex(p.primary))
}

// PasteSwatch parses the clipboard as a hex color and adds it as a swatch.
func (p *Palette) PasteSwatch(cb Clipboard) error {
	if cb == nil {
		return fmt.Errorf("palette: paste: no clipboard")
	}
	s, err := cb.ReadText()
	if err != nil {
		return fmt.Errorf("palette: paste: %w", err)
	}
	c, err := paint.ParseHex(s)
	if err != nil {
		return fmt.Errorf("palette: paste: %w", err)
	}
	return p.AddColor(c)
}
