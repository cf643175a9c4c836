// File: color.go
// Title: Random Colors
// Description: Random RGB colors and their hex notation.
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package randx

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor returns a color with random 8-bit red, green and blue channels
func RGBColor() colorful.Color {
	return colorFrom(global)
}

// HexColor returns a random color as "#rrggbb"
func HexColor() string {
	return RGBColor().Hex()
}

// RGBColor is the generator bound variant of the package function RGBColor
func (g *Generator) RGBColor() colorful.Color {
	return colorFrom(g)
}

// HexColor is the generator bound variant of the package function HexColor
func (g *Generator) HexColor() string {
	return g.RGBColor().Hex()
}

func colorFrom(src source) colorful.Color {
	v := src.Uint64()
	return colorful.Color{
		R: float64(byte(v)) / 255,
		G: float64(byte(v>>8)) / 255,
		B: float64(byte(v>>16)) / 255,
	}
}
