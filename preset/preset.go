package preset

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/pixeled/mode"
	"github.com/milk9111/pixeled/paint"
	"github.com/milk9111/pixeled/palette"
	"github.com/milk9111/pixeled/settings"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Preset is the startup state of the toolbar: which tool is selected, the
// palette and every tool's settings.
type Preset struct {
	Name        string          `yaml:"name"`
	InitialMode string          `yaml:"initial_mode"`
	Palette     PaletteSpec     `yaml:"palette"`
	Tools       settings.Values `yaml:"tools"`
}

// PaletteSpec uses hex strings; an empty swatch string is an empty cell.
type PaletteSpec struct {
	Primary   string     `yaml:"primary"`
	Secondary string     `yaml:"secondary"`
	Swatches  [][]string `yaml:"swatches"`
}

// Default returns the embedded preset.
func Default() (*Preset, error) {
	p, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("preset: embedded default: %w", err)
	}
	return p, nil
}

// Load reads the preset at path. An empty path yields the embedded default.
func Load(path string) (*Preset, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("preset: load %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset: %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a preset document. Fields the document omits keep their
// built-in defaults.
func Parse(data []byte) (*Preset, error) {
	p := &Preset{
		InitialMode: mode.Cursor.String(),
		Palette: PaletteSpec{
			Primary:   paint.FormatHex(paint.Black),
			Secondary: paint.FormatHex(paint.Transparent),
		},
		Tools: settings.DefaultValues(),
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks everything Build would reject.
func (p *Preset) Validate() error {
	if _, err := p.Mode(); err != nil {
		return err
	}
	if _, err := p.BuildPalette(); err != nil {
		return err
	}
	return nil
}

func (p *Preset) Mode() (mode.Variant, error) {
	v, err := mode.ParseVariant(p.InitialMode)
	if err != nil {
		return mode.Cursor, fmt.Errorf("initial_mode: %w", err)
	}
	return v, nil
}

func (p *Preset) Settings() settings.Values {
	return p.Tools.Clamped()
}

// BuildPalette returns a fresh palette for the preset's colors.
func (p *Preset) BuildPalette() (*palette.Palette, error) {
	primary, err := paint.ParseHex(p.Palette.Primary)
	if err != nil {
		return nil, fmt.Errorf("palette.primary: %w", err)
	}
	secondary, err := paint.ParseHex(p.Palette.Secondary)
	if err != nil {
		return nil, fmt.Errorf("palette.secondary: %w", err)
	}

	grid := make([][]*color.NRGBA, len(p.Palette.Swatches))
	for r, row := range p.Palette.Swatches {
		grid[r] = make([]*color.NRGBA, len(row))
		for c, s := range row {
			if strings.TrimSpace(s) == "" {
				continue
			}
			col, err := paint.ParseHex(s)
			if err != nil {
				return nil, fmt.Errorf("palette.swatches[%d][%d]: %w", r, c, err)
			}
			grid[r][c] = &col
		}
	}
	pal, err := palette.New(primary, secondary, grid)
	if err != nil {
		return nil, fmt.Errorf("palette.swatches: %w", err)
	}
	return pal, nil
}
