package toolbar

import (
	"log"
	"reflect"
)

// Window is a toolkit window the toolbar can close.
type Window interface {
	Close()
}

// SetActiveDialog stores w as the active modal dialog. A different dialog
// that is still held is closed first.
func (t *Toolbar) SetActiveDialog(w Window) {
	if t.dialog != nil && !sameWindow(t.dialog, w) {
		log.Printf("toolbar: closing replaced dialog")
		t.dialog.Close()
	}
	t.dialog = w
}

func (t *Toolbar) ActiveDialog() (Window, bool) {
	return t.dialog, t.dialog != nil
}

// CloseActiveDialog closes and forgets the active dialog, if any.
func (t *Toolbar) CloseActiveDialog() {
	if t.dialog == nil {
		return
	}
	w := t.dialog
	t.dialog = nil
	w.Close()
}

// ForgetActiveDialog drops w without closing it, for dialogs that closed
// themselves. It does nothing if w is not the active dialog.
func (t *Toolbar) ForgetActiveDialog(w Window) {
	if t.dialog != nil && sameWindow(t.dialog, w) {
		t.dialog = nil
	}
}

// sameWindow reports whether a and b are the same window. Values of
// uncomparable types are never the same window.
func sameWindow(a, b Window) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
