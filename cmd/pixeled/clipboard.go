package main

import (
	"errors"
	"strings"

	"golang.design/x/clipboard"
)

var errClipboardEmpty = errors.New("clipboard holds no text")

// systemClipboard is the OS clipboard, text format only.
type systemClipboard struct{}

func newSystemClipboard() (systemClipboard, error) {
	if err := clipboard.Init(); err != nil {
		return systemClipboard{}, err
	}
	return systemClipboard{}, nil
}

func (systemClipboard) ReadText() (string, error) {
	b := clipboard.Read(clipboard.FmtText)
	if len(b) == 0 {
		return "", errClipboardEmpty
	}
	return strings.TrimSpace(string(b)), nil
}

func (systemClipboard) WriteText(s string) error {
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}
