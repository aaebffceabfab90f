package color

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

const (
	Empty = ""

	// Defaults used when a glyph or connection does not set a color.
	GlyphFill       = "#ffffff"
	GlyphStroke     = "#222222"
	Text            = "#222222"
	TextOnDark      = "#ffffff"
	ConnectionLine  = "#f87171"
	ConnectionLabel = "#334155"
	Port            = "#ffffff"
	Background      = "#ffffff"
)

// Valid reports whether colorString is a CSS color csscolorparser understands.
func Valid(colorString string) bool {
	if colorString == Empty {
		return false
	}
	_, err := csscolorparser.Parse(colorString)
	return err == nil
}

// Or returns colorString when it is a valid CSS color and fallback otherwise.
func Or(colorString, fallback string) string {
	if Valid(colorString) {
		return colorString
	}
	return fallback
}

func Darken(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	// decrease luminance by 10%
	return colorful.Hsl(h, s, l-.1).Clamped().Hex(), nil
}

func Luminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, err
	}

	l := float64(
		float64(0.299)*float64(c.R) +
			float64(0.587)*float64(c.G) +
			float64(0.114)*float64(c.B),
	)
	return l, nil
}

// TextOn picks a readable text color for the given fill.
func TextOn(fill string) string {
	l, err := Luminance(fill)
	if err != nil || l >= .3 {
		return Text
	}
	return TextOnDark
}

// NRGBA converts a CSS color for raster renderers.
func NRGBA(colorString string) (color.NRGBA, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}, nil
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
