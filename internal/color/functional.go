package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// functions lists the recognized functional notations, longest first so
// "rgba(" is not mistaken for "rgb(".
var functions = []string{"rgba", "rgb", "hsla", "hsl", "hwb"}

// functionName reports which functional notation input starts with.
func functionName(input string) (string, bool) {
	lower := strings.ToLower(input)
	for _, fn := range functions {
		if strings.HasPrefix(lower, fn+"(") {
			return fn, true
		}
	}
	return "", false
}

func parseFunctional(input, fn string) (Color, error) {
	switch fn {
	case "rgb", "rgba":
		return parseRGB(input, fn)
	default:
		return parseCSS(input, fn)
	}
}

// ///////////////////////////////////////////////
// rgb() / rgba()
// ///////////////////////////////////////////////

// parseRGB handles rgb(R, G, B) and rgba(R, G, B, A). Components are decimal
// integers 0..255; whitespace around them is allowed. The rgba alpha is a
// CSS alpha value: a number in [0,1] or a percentage.
func parseRGB(input, fn string) (Color, error) {
	open := len(fn)
	if !strings.HasSuffix(input, ")") || len(input) <= open+2 {
		return Color{}, newError(input, InvalidFormat, fmt.Sprintf("expected %s(...)", fn), nil)
	}
	inner := input[open+1 : len(input)-1]
	parts := strings.Split(inner, ",")

	want := 3
	if fn == "rgba" {
		want = 4
	}
	if len(parts) != want {
		return Color{}, newError(input, InvalidFormat,
			fmt.Sprintf("%s() takes %d components, got %d", fn, want, len(parts)), nil)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		p := strings.TrimSpace(parts[i])
		n, err := strconv.Atoi(p)
		if err != nil {
			return Color{}, newError(input, InvalidComponent, fmt.Sprintf("%q is not an integer", p), err)
		}
		if n < 0 || n > 255 {
			return Color{}, newError(input, ComponentOutOfRange, fmt.Sprintf("%d is outside 0..255", n), nil)
		}
		ch[i] = uint8(n)
	}
	if want == 3 {
		return New(ch[0], ch[1], ch[2]), nil
	}

	a, err := parseAlpha(input, strings.TrimSpace(parts[3]))
	if err != nil {
		return Color{}, err
	}
	return NewAlpha(ch[0], ch[1], ch[2], a), nil
}

// parseAlpha converts "0.5" or "50%" to an 8-bit alpha.
func parseAlpha(input, s string) (uint8, error) {
	num, pct := strings.CutSuffix(s, "%")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) {
		return 0, newError(input, InvalidComponent, fmt.Sprintf("%q is not a number", s), err)
	}
	if pct {
		v /= 100
	}
	if v < 0 || v > 1 {
		return 0, newError(input, ComponentOutOfRange, fmt.Sprintf("alpha %s is outside 0..1", s), nil)
	}
	return uint8(math.Round(v * 255)), nil
}

// ///////////////////////////////////////////////
// hsl() / hsla() / hwb()
// ///////////////////////////////////////////////

// parseCSS delegates the cylindrical notations to csscolorparser. The result
// carries alpha when the notation names it (hsla) or the value is translucent.
func parseCSS(input, fn string) (Color, error) {
	if !strings.HasSuffix(input, ")") {
		return Color{}, newError(input, InvalidFormat, fmt.Sprintf("expected %s(...)", fn), nil)
	}
	c, err := csscolorparser.Parse(input)
	if err != nil {
		return Color{}, newError(input, InvalidFormat, err.Error(), err)
	}
	r, g, b, a := c.RGBA255()
	if fn == "hsla" || a != 0xFF {
		return NewAlpha(r, g, b, a), nil
	}
	return New(r, g, b), nil
}
