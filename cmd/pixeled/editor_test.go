package main

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixeled/mode"
)

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{7, 4, 1},
		{8, 4, 2},
		{0, 4, 0},
		{-1, 4, -1},
		{-4, 4, -1},
		{-5, 4, -2},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.want {
			t.Fatalf("floorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestScreenCanvasMapping(t *testing.T) {
	e := &Editor{zoom: 8, origin: image.Pt(100, 50)}

	if got := e.toCanvas(image.Pt(100, 50)); got != image.Pt(0, 0) {
		t.Fatalf("origin maps to %v", got)
	}
	if got := e.toCanvas(image.Pt(115, 73)); got != image.Pt(1, 2) {
		t.Fatalf("inside pixel maps to %v", got)
	}
	if got := e.toCanvas(image.Pt(99, 49)); got != image.Pt(-1, -1) {
		t.Fatalf("left of origin maps to %v", got)
	}
	if got := e.toScreen(image.Pt(3, 4)); got != image.Pt(124, 82) {
		t.Fatalf("toScreen = %v", got)
	}
}

func TestHotkeyVariant(t *testing.T) {
	vs := mode.Variants()
	for i, k := range toolKeys {
		v, ok := hotkeyVariant(k)
		if i >= len(vs) {
			if ok {
				t.Fatalf("key %d mapped to %v past the last tool", i+1, v)
			}
			continue
		}
		if !ok || v != vs[i] {
			t.Fatalf("key %d = (%v, %v), want %v", i+1, v, ok, vs[i])
		}
	}
	if _, ok := hotkeyVariant(ebiten.KeyA); ok {
		t.Fatalf("KeyA should not select a tool")
	}
}
