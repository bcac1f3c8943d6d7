package color

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parser holds the parsing policy. The zero value accepts hex only, with an
// optional "#"; use [DefaultParser] for the full set of forms.
type Parser struct {
	// RequireHash rejects bare hex codes with [MissingPrefix].
	RequireHash bool
	// AllowNamed accepts CSS/SVG color names such as "teal".
	AllowNamed bool
	// AllowFunctional accepts rgb(), rgba(), hsl(), hsla() and hwb().
	AllowFunctional bool
}

// DefaultParser accepts every supported form and an optional "#".
var DefaultParser = Parser{AllowNamed: true, AllowFunctional: true}

// Parse parses input with [DefaultParser].
func Parse(input string) (Color, error) {
	return DefaultParser.Parse(input)
}

// Parse decodes a single color string. Failures are always a *[ParseError].
func (p Parser) Parse(input string) (Color, error) {
	if input == "" {
		return Color{}, newError(input, EmptyInput, "", nil)
	}
	if digits, ok := strings.CutPrefix(input, "#"); ok {
		return parseHex(input, digits, true)
	}
	if p.AllowFunctional {
		if fn, ok := functionName(input); ok {
			return parseFunctional(input, fn)
		}
	}
	if p.AllowNamed {
		if c, ok := lookupName(input); ok {
			return c, nil
		}
	}
	if p.RequireHash {
		return Color{}, newError(input, MissingPrefix, "hex colors must start with '#'", nil)
	}
	return parseHex(input, input, false)
}

// ///////////////////////////////////////////////
// Hex
// ///////////////////////////////////////////////

// parseHex validates and decodes the digit region of a hex code. Characters
// are checked before length so a string with a stray character always reports
// [InvalidCharacter].
func parseHex(input, digits string, prefixed bool) (Color, error) {
	if i := firstNonHex(digits); i >= 0 {
		r, _ := utf8.DecodeRuneInString(digits[i:])
		offset := i
		if prefixed {
			offset++
		}
		return Color{}, newError(input, InvalidCharacter,
			fmt.Sprintf("%q at position %d is not a hex digit", r, offset+1), nil)
	}

	switch n := len(digits); {
	case n == 3 || n == 4:
		if !prefixed {
			return Color{}, newError(input, InvalidLength,
				fmt.Sprintf("shorthand %d-digit codes need a '#' prefix", n), nil)
		}
		return decodeHex(input, expandShorthand(digits))
	case n == 6 || n == 8:
		return decodeHex(input, digits)
	case n == 0:
		return Color{}, newError(input, InvalidLength, "no hex digits after '#'", nil)
	default:
		return Color{}, newError(input, InvalidLength,
			fmt.Sprintf("%d hex digits, want 3, 4, 6 or 8", n), nil)
	}
}

// decodeHex decodes 6 or 8 validated hex digits.
func decodeHex(input, digits string) (Color, error) {
	var ch [4]uint8
	for i := 0; i < len(digits)/2; i++ {
		v, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, newError(input, InvalidCharacter, digits[2*i:2*i+2], err)
		}
		ch[i] = uint8(v)
	}
	if len(digits) == 8 {
		return NewAlpha(ch[0], ch[1], ch[2], ch[3]), nil
	}
	return New(ch[0], ch[1], ch[2]), nil
}

// expandShorthand duplicates each digit: "1AB" -> "11AABB".
func expandShorthand(digits string) string {
	var b strings.Builder
	b.Grow(len(digits) * 2)
	for i := 0; i < len(digits); i++ {
		b.WriteByte(digits[i])
		b.WriteByte(digits[i])
	}
	return b.String()
}

// firstNonHex returns the byte index of the first non-hex character, or -1.
func firstNonHex(s string) int {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return i
		}
	}
	return -1
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}
