package toolbar

import (
	"image/color"
	"log"

	"github.com/milk9111/pixeled/mode"
	"github.com/milk9111/pixeled/paint"
)

// Palette is the color source the toolbar reads brushes from.
type Palette interface {
	Primary() color.NRGBA
	Secondary() color.NRGBA
	SetPrimary(c color.NRGBA)
	SetSecondary(c color.NRGBA)
	AddColor(c color.NRGBA) error
}

// Settings is the per-tool settings panel.
type Settings interface {
	SetToVariant(v mode.Variant)
	PencilSettings() (paint.BrushType, paint.BlendingMode, int)
	MagicWandSettings() (float64, bool)
	FillSettings() (float64, bool)
	ShapeSettings() (paint.ShapeType, uint8)
	FreeTransformSettings() (translate, scale, rotate bool, method paint.ScaleMethod)
}

// ModeChangeHook runs after a click or request actually changed the tool.
type ModeChangeHook func(tb *Toolbar, prev, next mode.Mode)

const (
	defaultBrushRadius = 5
	maxRequestRounds   = 8
)

// Toolbar owns the current mode and keeps the mode buttons, settings panel
// and derived brushes consistent with it. It is not safe for concurrent
// use; every method is meant to run on the UI update loop.
type Toolbar struct {
	current mode.Mode
	history [2]mode.Variant

	buttons  ButtonSet
	palette  Palette
	settings Settings

	primaryBrush    paint.Brush
	secondaryBrush  paint.Brush
	eyedropperBrush paint.Brush

	hook     ModeChangeHook
	tool     toolSlot
	dialog   Window
	requests requestQueue
}

func New(initial mode.Mode, pal Palette, panel Settings) *Toolbar {
	primary, secondary := pal.Primary(), pal.Secondary()
	t := &Toolbar{
		current:         initial,
		history:         [2]mode.Variant{initial.Variant(), initial.Variant()},
		palette:         pal,
		settings:        panel,
		primaryBrush:    paint.NewBrush(primary, secondary, paint.Round, defaultBrushRadius),
		secondaryBrush:  paint.NewBrush(secondary, primary, paint.Round, defaultBrushRadius),
		eyedropperBrush: paint.NewBrush(primary, secondary, paint.Square, 1),
	}
	panel.SetToVariant(initial.Variant())
	return t
}

// AttachButton registers the toolkit button for v and syncs it with the
// current mode.
func (t *Toolbar) AttachButton(v mode.Variant, b ToggleButton) {
	t.buttons.Add(v, b)
	b.SetActive(v == t.current.Variant())
}

func (t *Toolbar) Buttons() *ButtonSet { return &t.buttons }

func (t *Toolbar) MouseMode() mode.Mode { return t.current }

// UpdatePayload swaps the current mode's payload in place. It reports false
// when p belongs to another variant.
func (t *Toolbar) UpdatePayload(p mode.Payload) bool {
	next, ok := t.current.WithPayload(p)
	if ok {
		t.current = next
	}
	return ok
}

// LastTwoVariants returns the two-slot mode history.
func (t *Toolbar) LastTwoVariants() (mode.Variant, mode.Variant) {
	return t.history[0], t.history[1]
}

// PreviousVariant is the tool that was active before the current one.
func (t *Toolbar) PreviousVariant() mode.Variant {
	if t.history[1] != t.current.Variant() {
		return t.history[1]
	}
	return t.history[0]
}

// SetMouseMode commits next as the current mode and returns the displaced
// mode. changed is false when next has the same variant as the mode it
// replaced. The hook is not run here; see HandleClick and Update.
func (t *Toolbar) SetMouseMode(next mode.Mode) (prev mode.Mode, changed bool) {
	cur := t.current.Variant()
	if t.history[1] != cur {
		t.history = [2]mode.Variant{t.history[1], cur}
	}

	t.buttons.Sync(next.Variant())

	prev, t.current = t.current, next
	t.settings.SetToVariant(next.Variant())

	return prev, prev.Variant() != t.current.Variant()
}

// SetModeChangeHook installs fn, replacing any previous hook. nil removes it.
func (t *Toolbar) SetModeChangeHook(fn ModeChangeHook) {
	t.hook = fn
}

// HandleClick is the click handler for v's mode button. It expects to be
// called after the toolkit flipped the button. A click that switched the
// only active button off is undone. Otherwise the mode for v is built,
// from canvas when one is focused, and committed.
func (t *Toolbar) HandleClick(v mode.Variant, canvas mode.Canvas) bool {
	if b, ok := t.buttons.Button(v); ok && !b.IsActive() {
		b.SetActive(true)
		return false
	}
	return t.commit(mode.New(v, canvas))
}

func (t *Toolbar) commit(next mode.Mode) bool {
	prev, changed := t.SetMouseMode(next)
	if !changed {
		return false
	}
	log.Printf("toolbar: mode %s -> %s", prev.Variant(), next.Variant())
	if t.hook != nil {
		t.hook(t, prev, t.current)
	}
	return true
}

// RequestMode queues a switch to v, applied by the next Update.
func (t *Toolbar) RequestMode(v mode.Variant) {
	t.requests.push(Request{Kind: RequestSelect, Variant: v})
}

// RequestPrevious queues a switch back to PreviousVariant, resolved when
// the request is applied.
func (t *Toolbar) RequestPrevious() {
	t.requests.push(Request{Kind: RequestPrevious})
}

func (t *Toolbar) Pending() int { return t.requests.len() }

// Update applies queued requests in order. Requests queued by hooks during
// Update are applied in the same call, up to maxRequestRounds rounds.
func (t *Toolbar) Update(canvas mode.Canvas) {
	for round := 0; ; round++ {
		reqs := t.requests.drain()
		if len(reqs) == 0 {
			return
		}
		if round == maxRequestRounds {
			log.Printf("toolbar: dropping %d mode requests, hooks keep requesting changes", len(reqs))
			return
		}
		for _, r := range reqs {
			v := r.Variant
			if r.Kind == RequestPrevious {
				v = t.PreviousVariant()
			}
			if !v.Valid() {
				log.Printf("toolbar: ignoring request for invalid mode %d", int(v))
				continue
			}
			t.commit(mode.New(v, canvas))
		}
	}
}

func (t *Toolbar) PrimaryColor() color.NRGBA { return t.palette.Primary() }

func (t *Toolbar) SecondaryColor() color.NRGBA { return t.palette.Secondary() }

func (t *Toolbar) SetPrimaryColor(c color.NRGBA) { t.palette.SetPrimary(c) }

func (t *Toolbar) SetSecondaryColor(c color.NRGBA) { t.palette.SetSecondary(c) }

func (t *Toolbar) AddColorToPalette(c color.NRGBA) error {
	return t.palette.AddColor(c)
}

// PrimaryBrush recomputes the primary brush from the palette and pencil
// settings.
func (t *Toolbar) PrimaryBrush() paint.Brush {
	return *t.PrimaryBrushMut()
}

// SecondaryBrush is PrimaryBrush with the colors swapped.
func (t *Toolbar) SecondaryBrush() paint.Brush {
	typ, _, radius := t.settings.PencilSettings()
	t.secondaryBrush.Modify(t.palette.Secondary(), t.palette.Primary(), typ, radius)
	return t.secondaryBrush
}

// PrimaryBrushMut recomputes the primary brush and returns the owned value.
func (t *Toolbar) PrimaryBrushMut() *paint.Brush {
	typ, _, radius := t.settings.PencilSettings()
	t.primaryBrush.Modify(t.palette.Primary(), t.palette.Secondary(), typ, radius)
	return &t.primaryBrush
}

// EyedropperBrush is the single pixel highlight brush. It is never
// recomputed.
func (t *Toolbar) EyedropperBrush() *paint.Brush {
	return &t.eyedropperBrush
}

func (t *Toolbar) BlendingMode() paint.BlendingMode {
	_, blend, _ := t.settings.PencilSettings()
	return blend
}

func (t *Toolbar) MagicWandTolerance() float64 {
	tol, _ := t.settings.MagicWandSettings()
	return tol
}

func (t *Toolbar) MagicWandRelativity() bool {
	_, rel := t.settings.MagicWandSettings()
	return rel
}

func (t *Toolbar) FillTolerance() float64 {
	tol, _ := t.settings.FillSettings()
	return tol
}

func (t *Toolbar) FillRelativity() bool {
	_, rel := t.settings.FillSettings()
	return rel
}

func (t *Toolbar) ShapeType() paint.ShapeType {
	typ, _ := t.settings.ShapeSettings()
	return typ
}

func (t *Toolbar) ShapeBorderWidth() uint8 {
	_, w := t.settings.ShapeSettings()
	return w
}

func (t *Toolbar) ClampTranslate() bool {
	tr, _, _, _ := t.settings.FreeTransformSettings()
	return tr
}

func (t *Toolbar) ClampScale() bool {
	_, sc, _, _ := t.settings.FreeTransformSettings()
	return sc
}

func (t *Toolbar) ClampRotate() bool {
	_, _, rot, _ := t.settings.FreeTransformSettings()
	return rot
}

func (t *Toolbar) FreeTransformScaleMethod() paint.ScaleMethod {
	_, _, _, m := t.settings.FreeTransformSettings()
	return m
}

// SetToolState stores s, dropping whatever was held.
func (t *Toolbar) SetToolState(s ToolState) { t.tool.set(s) }

// PeekToolState returns the held state without taking it. Use
// ReplaceToolState to change it.
func (t *Toolbar) PeekToolState() (ToolState, bool) { return t.tool.peek() }

// ReplaceToolState stores s and returns what it displaced.
func (t *Toolbar) ReplaceToolState(s ToolState) (ToolState, bool) { return t.tool.replace(s) }

// TryTakeToolState removes and returns the held state.
func (t *Toolbar) TryTakeToolState() (ToolState, bool) { return t.tool.take() }

// TakeToolStateFor takes the held state only when v owns it.
func (t *Toolbar) TakeToolStateFor(v mode.Variant) (ToolState, bool) { return t.tool.takeFor(v) }
