package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	panelColor   = color.RGBA{40, 40, 40, 255}
	barColor     = color.RGBA{220, 220, 240, 255}
	tooltipColor = color.RGBA{250, 250, 210, 255}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func loadFace(size float64) (*text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	var face text.Face = &text.GoTextFace{Source: s, Size: size}
	return &face, nil
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		DefaultFace:      fontFace,
		DefaultTextColor: color.White,
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:         solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:        solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed:      solidNineSlice(color.RGBA{120, 140, 200, 255}),
				PressedHover: solidNineSlice(color.RGBA{140, 160, 220, 255}),
				Disabled:     solidNineSlice(color.RGBA{90, 90, 90, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     color.Black,
				Hover:    color.Black,
				Pressed:  color.RGBA{0, 0, 200, 255},
				Disabled: color.Gray{Y: 128},
			},
		},
		LabelTheme: &widget.LabelParams{
			Face:  fontFace,
			Color: &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}},
		},
		CheckboxTheme: &widget.CheckboxParams{
			Image: &widget.CheckboxImage{
				Unchecked: solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Checked:   solidNineSlice(color.RGBA{120, 140, 200, 255}),
				Greyed:    solidNineSlice(color.RGBA{90, 90, 90, 255}),
			},
		},
		SliderTheme: &widget.SliderParams{
			TrackImage: &widget.SliderTrackImage{
				Idle:  solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover: solidNineSlice(color.RGBA{200, 200, 200, 255}),
			},
			HandleImage: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{120, 120, 120, 255}),
				Hover:   solidNineSlice(color.RGBA{160, 160, 160, 255}),
				Pressed: solidNineSlice(color.RGBA{100, 100, 100, 255}),
			},
		},
		TextInputTheme: &widget.TextInputParams{
			Face: fontFace,
			Image: &widget.TextInputImage{
				Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
				Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
			},
			Color: &widget.TextInputColor{
				Idle:     color.Black,
				Disabled: color.Gray{Y: 120},
				Caret:    color.Black,
			},
		},
	}
}
