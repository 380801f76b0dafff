package core

// FontSize selects one of the two text styles a Canvas offers.
type FontSize int

const (
	FontSmall FontSize = iota // HUD text (~20pt)
	FontLarge                 // Titles (~40pt)
)

// Points returns the nominal point size of the font style.
func (f FontSize) Points() float64 {
	if f == FontLarge {
		return 40
	}
	return 20
}

// Canvas is the drawing surface games render into.
// Coordinates are logical canvas units with the origin at the top-left.
// Implementations decide how a logical frame maps to the output device.
type Canvas interface {
	// Size returns the logical canvas dimensions.
	Size() (w, h float64)

	// Fill paints the whole canvas.
	Fill(c Color)

	// FillRect paints a filled rectangle.
	FillRect(r Rect, c Color)

	// FillEllipse paints the ellipse inscribed in r.
	FillEllipse(r Rect, c Color)

	// FillCircle paints a filled circle.
	FillCircle(cx, cy, radius float64, c Color)

	// Dim blends c over everything drawn so far with the given opacity.
	Dim(c Color, alpha float64)

	// DrawText draws text with its top-left corner at (x, y).
	DrawText(s string, x, y float64, size FontSize, c Color)

	// DrawTextCentered draws text centered on (cx, cy).
	DrawTextCentered(s string, cx, cy float64, size FontSize, c Color)
}
