package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pixeled/config"
	"github.com/milk9111/pixeled/mode"
	"github.com/milk9111/pixeled/preset"
	"github.com/milk9111/pixeled/script"
	"github.com/milk9111/pixeled/settings"
	"github.com/milk9111/pixeled/toolbar"
)

func main() {
	presetPath := flag.String("preset", "", "Tool preset YAML file (overrides config)")
	hookPath := flag.String("hook", "", "Tengo script run on every tool change (overrides config)")
	initialMode := flag.String("mode", "", "Initial tool, e.g. pencil (overrides config and preset)")
	flag.Parse()

	log.Println("Pixeled starting...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *presetPath != "" {
		cfg.Preset.Path = *presetPath
	}
	if *hookPath != "" {
		cfg.Hook.Script = *hookPath
	}
	if *initialMode != "" {
		cfg.UI.InitialMode = *initialMode
	}

	p, err := preset.Load(cfg.Preset.Path)
	if err != nil {
		log.Fatalf("Failed to load preset: %v", err)
	}
	pal, err := p.BuildPalette()
	if err != nil {
		log.Fatalf("Failed to build palette: %v", err)
	}
	initial, err := p.Mode()
	if err != nil {
		log.Fatalf("Failed to read preset: %v", err)
	}
	if cfg.UI.InitialMode != "" {
		if initial, err = mode.ParseVariant(cfg.UI.InitialMode); err != nil {
			log.Fatalf("Invalid initial mode: %v", err)
		}
	}

	panel := settings.NewPanel(initial, p.Settings())
	tb := toolbar.New(mode.Default(initial), pal, panel)

	if cfg.Hook.Script != "" {
		h, err := script.Load(cfg.Hook.Script)
		if err != nil {
			log.Fatalf("Failed to load hook script: %v", err)
		}
		tb.SetModeChangeHook(h.ModeChangeHook())
		log.Printf("Loaded mode change hook %s", h.Name())
	}

	editor, err := NewEditor(cfg, tb, pal, panel)
	if err != nil {
		log.Fatalf("Failed to build editor: %v", err)
	}
	defer editor.Close()

	if cfg.Preset.Watch && cfg.Preset.Path != "" {
		w, err := preset.NewWatcher(cfg.Preset.Path)
		if err != nil {
			log.Printf("Preset watch disabled: %v", err)
		} else {
			editor.watcher = w
		}
	}
	if cfg.UI.Clipboard {
		cb, err := newSystemClipboard()
		if err != nil {
			log.Printf("Clipboard unavailable: %v", err)
		} else {
			editor.clipboard = cb
		}
	}

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("pixeled")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}
