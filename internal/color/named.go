package color

import (
	"strings"

	"golang.org/x/image/colornames"
)

// lookupName resolves a CSS/SVG color name, ignoring case. Named colors are
// always opaque three-channel values.
func lookupName(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return New(c.R, c.G, c.B), true
}

// Name returns the CSS name of c, if it has one. Colors with alpha never do.
func Name(c Color) (string, bool) {
	if c.HasAlpha {
		return "", false
	}
	for _, name := range colornames.Names {
		v := colornames.Map[name]
		if v.R == c.R && v.G == c.G && v.B == c.B {
			return name, true
		}
	}
	return "", false
}
