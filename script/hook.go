package script

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pixeled/mode"
	"github.com/milk9111/pixeled/paint"
	"github.com/milk9111/pixeled/toolbar"
)

const entryPoint = "on_mode_change"

const dispatchScript = `
if __phase == "change" {
	on_mode_change(__toolbar, __prev, __next)
}
`

// Hook runs a tengo script's on_mode_change(tb, prev, next) after every
// tool change. prev and next are tool display names. tb exposes
// request_mode(name), request_previous(), history(), primary_color(),
// secondary_color() and log(msg).
type Hook struct {
	name     string
	compiled *tengo.Compiled
	logf     func(format string, args ...any)
}

// Load compiles the script at path.
func Load(path string) (*Hook, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	return Compile(path, src)
}

// Compile compiles src and checks that it defines on_mode_change.
func Compile(name string, src []byte) (*Hook, error) {
	full := string(src) + "\n" + dispatchScript
	s := tengo.NewScript([]byte(full))
	_ = s.Add("__phase", "")
	_ = s.Add("__toolbar", map[string]any{})
	_ = s.Add("__prev", "")
	_ = s.Add("__next", "")
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	h := &Hook{name: name, compiled: compiled, logf: log.Printf}

	// run top level once so definitions can be checked
	if err := h.run("load", nil, "", ""); err != nil {
		return nil, fmt.Errorf("script: %s: %w", name, err)
	}
	if !compiled.IsDefined(entryPoint) {
		return nil, fmt.Errorf("script: %s does not define %s", name, entryPoint)
	}
	return h, nil
}

func (h *Hook) Name() string { return h.name }

// Run calls on_mode_change for the prev -> next transition.
func (h *Hook) Run(tb *toolbar.Toolbar, prev, next mode.Mode) error {
	return h.run("change", h.engine(tb), prev.Variant().String(), next.Variant().String())
}

// ModeChangeHook adapts h to the toolbar's hook signature. Script errors
// are logged, not propagated.
func (h *Hook) ModeChangeHook() toolbar.ModeChangeHook {
	return func(tb *toolbar.Toolbar, prev, next mode.Mode) {
		if err := h.Run(tb, prev, next); err != nil {
			h.logf("script: %s: on_mode_change error: %v", h.name, err)
		}
	}
}

func (h *Hook) run(phase string, engine *tengo.ImmutableMap, prev, next string) error {
	if h == nil || h.compiled == nil {
		return fmt.Errorf("nil script hook")
	}
	if engine == nil {
		engine = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := h.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := h.compiled.Set("__toolbar", engine); err != nil {
		return err
	}
	if err := h.compiled.Set("__prev", prev); err != nil {
		return err
	}
	if err := h.compiled.Set("__next", next); err != nil {
		return err
	}
	return h.compiled.Run()
}

func (h *Hook) engine(tb *toolbar.Toolbar) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["request_mode"] = &tengo.UserFunction{Name: "request_mode", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if tb == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		v, err := mode.ParseVariant(objectAsString(args[0]))
		if err != nil {
			h.logf("script: %s: %v", h.name, err)
			return tengo.FalseValue, nil
		}
		tb.RequestMode(v)
		return tengo.TrueValue, nil
	}}

	values["request_previous"] = &tengo.UserFunction{Name: "request_previous", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if tb == nil {
			return tengo.FalseValue, nil
		}
		tb.RequestPrevious()
		return tengo.TrueValue, nil
	}}

	values["history"] = &tengo.UserFunction{Name: "history", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if tb == nil {
			return &tengo.Array{}, nil
		}
		h0, h1 := tb.LastTwoVariants()
		return &tengo.Array{Value: []tengo.Object{
			&tengo.String{Value: h0.String()},
			&tengo.String{Value: h1.String()},
		}}, nil
	}}

	values["primary_color"] = &tengo.UserFunction{Name: "primary_color", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if tb == nil {
			return tengo.UndefinedValue, nil
		}
		return &tengo.String{Value: paint.FormatHex(tb.PrimaryColor())}, nil
	}}

	values["secondary_color"] = &tengo.UserFunction{Name: "secondary_color", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if tb == nil {
			return tengo.UndefinedValue, nil
		}
		return &tengo.String{Value: paint.FormatHex(tb.SecondaryColor())}, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		h.logf("script: %s: %s", h.name, strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
