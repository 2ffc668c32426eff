// Package ui builds the page widgets: tab bar, panels with their viewports,
// the shared player and the background switcher.
package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	panelColor     = color.RGBA{0xff, 0xff, 0xff, 0xe6}
	textColor      = color.RGBA{0x1f, 0x29, 0x37, 0xff}
	mutedTextColor = color.RGBA{0x6b, 0x72, 0x80, 0xff}
	accentColor    = color.RGBA{0x4f, 0x46, 0xe5, 0xff}
	trackColor     = color.RGBA{0xd1, 0xd5, 0xdb, 0xff}
	disabledColor  = color.RGBA{0xe5, 0xe7, 0xeb, 0xff}
)

func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newFace(size float64) (text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ui: load font: %w", err)
	}
	return &text.GoTextFace{Source: s, Size: size}, nil
}

func newTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:     solidNineSlice(color.RGBA{0xee, 0xf2, 0xff, 0xff}),
				Hover:    solidNineSlice(color.RGBA{0xe0, 0xe7, 0xff, 0xff}),
				Pressed:  solidNineSlice(color.RGBA{0xc7, 0xd2, 0xfe, 0xff}),
				Disabled: solidNineSlice(disabledColor),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     textColor,
				Hover:    textColor,
				Pressed:  accentColor,
				Disabled: mutedTextColor,
			},
		},
	}
}

func newButton(theme *widget.Theme, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, theme.ButtonTheme.TextFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func newText(fontFace *text.Face, label string, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, fontFace, c),
	)
}
