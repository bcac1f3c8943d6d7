// Package color parses textual color codes into [Color] values.
//
// Accepted forms:
//
//	#RGB  #RGBA  #RRGGBB  #RRGGBBAA     hex, "#" optional for the 6 and 8 digit forms
//	rgb(R, G, B)  rgba(R, G, B, A)      CSS functional notation
//	hsl(...)  hsla(...)  hwb(...)       CSS functional notation
//	cornflowerblue                      CSS/SVG color names
//
// Parsing never trims its input; callers that accept padded text must trim it
// themselves before calling [Parse].
package color

import (
	"fmt"
	stdcolor "image/color"
	"strconv"
)

// Color is a parsed sRGB color with 8-bit channels.
//
// A is only meaningful when HasAlpha is set; colors parsed from three-channel
// forms leave it zero and report full opacity through [Color.Alpha].
type Color struct {
	R, G, B uint8
	// A is the alpha channel, 0 (transparent) to 255 (opaque).
	A uint8
	// HasAlpha reports whether the source text carried an alpha channel.
	HasAlpha bool
}

// New returns an opaque three-channel color.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// NewAlpha returns a four-channel color.
func NewAlpha(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a, HasAlpha: true}
}

// Alpha returns the effective alpha channel: A when present, 255 otherwise.
func (c Color) Alpha() uint8 {
	if c.HasAlpha {
		return c.A
	}
	return 0xFF
}

// Hex returns the canonical form: "#RRGGBB", or "#RRGGBBAA" when the color
// has an alpha channel. Digits are upper case. Parsing the result yields c.
func (c Color) Hex() string {
	if c.HasAlpha {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns [Color.Hex].
func (c Color) String() string {
	return c.Hex()
}

// CSS returns the color in rgb() notation, or rgba() with a 0..1 alpha when
// the color has an alpha channel, e.g. "rgb(26, 43, 60)".
func (c Color) CSS() string {
	if c.HasAlpha {
		a := strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64)
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, a)
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// NRGBA converts c to the standard library's non-premultiplied color type.
func (c Color) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.Alpha()}
}

// RGBA implements [image/color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}
