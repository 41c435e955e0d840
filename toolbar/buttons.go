package toolbar

import "github.com/milk9111/pixeled/mode"

// ToggleButton is a two-state toolkit button.
type ToggleButton interface {
	IsActive() bool
	SetActive(active bool)
}

type modeButton struct {
	variant mode.Variant
	button  ToggleButton
}

// ButtonSet is the ordered row of mode buttons. Independent toggles are
// kept mutually exclusive by Sync and by Toolbar.HandleClick.
type ButtonSet struct {
	buttons []modeButton
}

func (s *ButtonSet) Add(v mode.Variant, b ToggleButton) {
	s.buttons = append(s.buttons, modeButton{variant: v, button: b})
}

func (s *ButtonSet) Len() int { return len(s.buttons) }

// Sync makes v's buttons active and every other button inactive.
func (s *ButtonSet) Sync(v mode.Variant) {
	for _, mb := range s.buttons {
		mb.button.SetActive(mb.variant == v)
	}
}

// Button returns the first button registered for v.
func (s *ButtonSet) Button(v mode.Variant) (ToggleButton, bool) {
	for _, mb := range s.buttons {
		if mb.variant == v {
			return mb.button, true
		}
	}
	return nil, false
}

// Active returns the variants whose buttons currently report active.
func (s *ButtonSet) Active() []mode.Variant {
	var out []mode.Variant
	for _, mb := range s.buttons {
		if mb.button.IsActive() {
			out = append(out, mb.variant)
		}
	}
	return out
}
