package core

import "fmt"

// Color is a 24-bit RGB color.
// Platforms map it to whatever their output supports (true color, 256 colors, pixels).
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colors shared by games and platforms.
var (
	ColorWhite  = RGB(255, 255, 255)
	ColorBlack  = RGB(0, 0, 0)
	ColorRed    = RGB(220, 20, 60)
	ColorGreen  = RGB(50, 205, 50)
	ColorOrange = RGB(255, 140, 0)
	ColorYellow = RGB(255, 215, 0)
	ColorGray   = RGB(200, 200, 200)
)

// Hex returns the color as a "#rrggbb" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend mixes over into c with the given opacity (0 keeps c, 1 yields over).
func (c Color) Blend(over Color, alpha float64) Color {
	alpha = ClampF(alpha, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-alpha) + float64(b)*alpha + 0.5)
	}
	return Color{
		R: mix(c.R, over.R),
		G: mix(c.G, over.G),
		B: mix(c.B, over.B),
	}
}

// RGBA returns the components normalized to [0, 1] with full opacity.
func (c Color) RGBA() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, 1
}
