package toolbar

import (
	"image"

	"github.com/google/uuid"
	"github.com/milk9111/pixeled/mode"
)

// TextEdit is the in-progress text tool edit.
type TextEdit struct {
	Origin image.Point
	Body   string
}

// TransformEdit is a lifted selection being moved by free transform.
type TransformEdit struct {
	Source   image.Rectangle
	Pixels   *image.NRGBA
	Offset   image.Point
	Scale    float64
	Rotation float64
}

// ToolState is state a tool hands to the toolbar across mode changes. It
// is a tagged union keyed by Owner; the zero value is the empty state.
type ToolState struct {
	ID        uuid.UUID
	Owner     mode.Variant
	Text      *TextEdit
	Transform *TransformEdit
}

func NewTextState(e TextEdit) ToolState {
	return ToolState{ID: uuid.New(), Owner: mode.Text, Text: &e}
}

func NewTransformState(e TransformEdit) ToolState {
	return ToolState{ID: uuid.New(), Owner: mode.FreeTransform, Transform: &e}
}

func (s ToolState) Empty() bool {
	return s.ID == uuid.Nil
}

// toolSlot holds at most one ToolState. Taking leaves it empty.
type toolSlot struct {
	state ToolState
}

func (s *toolSlot) set(st ToolState) {
	s.state = withID(st)
}

// withID gives a hand-built state an ownership token so the slot does not
// mistake it for the empty state. Only the zero value stays empty.
func withID(st ToolState) ToolState {
	if st.ID == uuid.Nil && st != (ToolState{}) {
		st.ID = uuid.New()
	}
	return st
}

func (s *toolSlot) peek() (ToolState, bool) {
	if s.state.Empty() {
		return ToolState{}, false
	}
	return s.state, true
}

func (s *toolSlot) replace(st ToolState) (ToolState, bool) {
	old, ok := s.peek()
	s.state = withID(st)
	return old, ok
}

func (s *toolSlot) take() (ToolState, bool) {
	old, ok := s.peek()
	s.state = ToolState{}
	return old, ok
}

func (s *toolSlot) takeFor(v mode.Variant) (ToolState, bool) {
	if s.state.Empty() || s.state.Owner != v {
		return ToolState{}, false
	}
	return s.take()
}
