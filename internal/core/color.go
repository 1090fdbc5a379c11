package core

import "fmt"

// Color is an 8-bit RGBA color as understood by every renderer backend.
type Color struct {
	R, G, B, A uint8
}

// Opaque is the alpha value of a fully opaque color.
const Opaque uint8 = 255

// Predefined colors used by the loop.
var (
	ColorWhite = RGB(255, 255, 255)
	ColorRed   = RGB(255, 0, 0)
	ColorBlack = RGB(0, 0, 0)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: Opaque}
}

// String returns the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
