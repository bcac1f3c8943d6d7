// Tests for [Parse] and [Parser.Parse]: hex forms, shorthand expansion,
// functional and named forms, reason classification, and the round trip
// through [Color.Hex].
package color

import (
	"errors"
	"strings"
	"testing"
)

// ///////////////////////////////////////////////
// Hex
// ///////////////////////////////////////////////

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"#1A2B3C", New(0x1A, 0x2B, 0x3C)},
		{"#1a2b3c", New(0x1A, 0x2B, 0x3C)},
		{"1A2B3C", New(0x1A, 0x2B, 0x3C)}, // no # prefix
		{"#FFFFFF", New(0xFF, 0xFF, 0xFF)},
		{"#000000", New(0, 0, 0)},
		{"#1AB", New(0x11, 0xAA, 0xBB)},
		{"#FA0", New(255, 170, 0)},
		{"#fa0", New(255, 170, 0)},
		{"#1AB8", NewAlpha(0x11, 0xAA, 0xBB, 0x88)},
		{"#1A2B3C80", NewAlpha(0x1A, 0x2B, 0x3C, 0x80)},
		{"1A2B3C00", NewAlpha(0x1A, 0x2B, 0x3C, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason Reason
	}{
		{"empty", "", EmptyInput},
		{"hash only", "#", InvalidLength},
		{"one digit", "#1", InvalidLength},
		{"two digits", "#12", InvalidLength},
		{"five digits", "#12345", InvalidLength},
		{"seven digits", "#1234567", InvalidLength},
		{"nine digits", "#123456789", InvalidLength},
		{"bare shorthand", "bad", InvalidLength},
		{"bare shorthand alpha", "face", InvalidLength},
		{"bare five digits", "12345", InvalidLength},
		{"non-hex digit", "#1A2B3G", InvalidCharacter},
		{"non-hex short", "#GGG", InvalidCharacter},
		{"non-hex wrong length", "#XY", InvalidCharacter},
		{"double hash", "##123456", InvalidCharacter},
		{"0x prefix", "0x1A2B3C", InvalidCharacter},
		{"leading space", " #1A2B3C", InvalidCharacter},
		{"trailing space", "#1A2B3C ", InvalidCharacter},
		{"unknown word", "notacolor", InvalidCharacter},
		{"unicode", "#ÄÄÄ", InvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.input)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error %T is not *ParseError", tt.input, err)
			}
			if pe.Reason != tt.reason {
				t.Errorf("Parse(%q) reason = %v, want %v (%v)", tt.input, pe.Reason, tt.reason, err)
			}
			if pe.Input != tt.input {
				t.Errorf("ParseError.Input = %q, want %q", pe.Input, tt.input)
			}
		})
	}
}

func TestParseInvalidLengthForAllOtherCounts(t *testing.T) {
	for n := 0; n <= 12; n++ {
		switch n {
		case 3, 4, 6, 8:
			continue
		}
		input := "#" + strings.Repeat("a", n)
		_, err := Parse(input)
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("Parse(%q) = %v, want InvalidLength", input, err)
		}
	}
}

func TestParseInvalidCharacterPosition(t *testing.T) {
	_, err := Parse("#1A2B3G")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "position 7") {
		t.Errorf("error %q should name position 7", err)
	}
}

// ///////////////////////////////////////////////
// Parser Policy
// ///////////////////////////////////////////////

func TestParserRequireHash(t *testing.T) {
	p := Parser{RequireHash: true, AllowNamed: true, AllowFunctional: true}

	for _, input := range []string{"1A2B3C", "1A2B3C80", "zzz"} {
		_, err := p.Parse(input)
		if !errors.Is(err, ErrMissingPrefix) {
			t.Errorf("Parse(%q) = %v, want MissingPrefix", input, err)
		}
	}

	// Prefixed, named and functional forms are unaffected.
	for _, input := range []string{"#1A2B3C", "red", "rgb(1, 2, 3)"} {
		if _, err := p.Parse(input); err != nil {
			t.Errorf("Parse(%q) error: %v", input, err)
		}
	}
}

func TestParserZeroValueIsHexOnly(t *testing.T) {
	var p Parser
	if _, err := p.Parse("#123"); err != nil {
		t.Errorf("Parse(#123) error: %v", err)
	}
	if _, err := p.Parse("red"); !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("Parse(red) = %v, want InvalidCharacter with names disabled", err)
	}
	if _, err := p.Parse("rgb(1, 2, 3)"); !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("Parse(rgb) = %v, want InvalidCharacter with functions disabled", err)
	}
}

// ///////////////////////////////////////////////
// Functional Forms
// ///////////////////////////////////////////////

func TestParseRGB(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"rgb(255, 170, 0)", New(255, 170, 0)},
		{"rgb( 26 , 43 , 60 )", New(26, 43, 60)},
		{"RGB(26,43,60)", New(26, 43, 60)},
		{"rgba(26, 43, 60, 1)", NewAlpha(26, 43, 60, 255)},
		{"rgba(26, 43, 60, 0)", NewAlpha(26, 43, 60, 0)},
		{"rgba(26, 43, 60, 0.5)", NewAlpha(26, 43, 60, 128)},
		{"rgba(26, 43, 60, 50%)", NewAlpha(26, 43, 60, 128)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRGBErrors(t *testing.T) {
	tests := []struct {
		input  string
		reason Reason
	}{
		{"rgb(255, 170)", InvalidFormat},
		{"rgb(1, 2, 3, 4)", InvalidFormat},
		{"rgb()", InvalidFormat},
		{"rgb(1, 2, 3", InvalidFormat},
		{"rgb(1, 2, 3) extra", InvalidFormat},
		{"rgba(1, 2, 3)", InvalidFormat},
		{"rgb(aa, 0, 0)", InvalidComponent},
		{"rgb(1.5, 0, 0)", InvalidComponent},
		{"rgb(256, 0, 0)", ComponentOutOfRange},
		{"rgb(-1, 0, 0)", ComponentOutOfRange},
		{"rgba(0, 0, 0, x)", InvalidComponent},
		{"rgba(0, 0, 0, 1.5)", ComponentOutOfRange},
		{"rgba(0, 0, 0, 150%)", ComponentOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			got, ok := ReasonOf(err)
			if !ok {
				t.Fatalf("Parse(%q) = %v, want ParseError", tt.input, err)
			}
			if got != tt.reason {
				t.Errorf("Parse(%q) reason = %v, want %v", tt.input, got, tt.reason)
			}
		})
	}
}

func TestParseHSL(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"hsl(0, 100%, 50%)", New(255, 0, 0)},
		{"hsl(120, 100%, 50%)", New(0, 255, 0)},
		{"hsla(240, 100%, 50%, 1)", NewAlpha(0, 0, 255, 255)},
		{"hwb(0, 0%, 0%)", New(255, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}

	if _, err := Parse("hsl(nope)"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Parse(hsl(nope)) = %v, want InvalidFormat", err)
	}
}

// ///////////////////////////////////////////////
// Named Colors
// ///////////////////////////////////////////////

func TestParseNamed(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"red", New(255, 0, 0)},
		{"Teal", New(0, 128, 128)},
		{"CornflowerBlue", New(100, 149, 237)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	if name, ok := Name(New(255, 0, 0)); !ok || name != "red" {
		t.Errorf("Name(red) = %q, %v", name, ok)
	}
	if _, ok := Name(New(1, 2, 3)); ok {
		t.Error("Name(#010203) should not resolve")
	}
	if _, ok := Name(NewAlpha(255, 0, 0, 255)); ok {
		t.Error("colors with alpha should have no name")
	}
}

// ///////////////////////////////////////////////
// Round Trip
// ///////////////////////////////////////////////

func TestHexRoundTrip(t *testing.T) {
	for v := 0; v < 256; v += 5 {
		b := uint8(v)
		for _, c := range []Color{
			New(b, 255-b, b/2),
			NewAlpha(255-b, b, b/3, b),
		} {
			got, err := Parse(c.Hex())
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", c.Hex(), err)
			}
			if got != c {
				t.Fatalf("Parse(%q) = %+v, want %+v", c.Hex(), got, c)
			}
		}
	}
}

func TestCanonicalForms(t *testing.T) {
	c, err := Parse("#1ab")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := c.Hex(); got != "#11AABB" {
		t.Errorf("Hex() = %q, want #11AABB", got)
	}
	if got := c.CSS(); got != "rgb(17, 170, 187)" {
		t.Errorf("CSS() = %q", got)
	}
	if got := NewAlpha(1, 2, 3, 0xFF).Hex(); got != "#010203FF" {
		t.Errorf("Hex() with alpha = %q, want #010203FF", got)
	}
	if got := NewAlpha(1, 2, 3, 0).CSS(); got != "rgba(1, 2, 3, 0.000)" {
		t.Errorf("CSS() with alpha = %q", got)
	}
}

// ///////////////////////////////////////////////
// Error Formatting
// ///////////////////////////////////////////////

func TestParseErrorFormatting(t *testing.T) {
	_, err := Parse("#12345")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse error = %v, want *ParseError", err)
	}
	if got, want := pe.Message(), "invalid length: 5 hex digits, want 3, 4, 6 or 8"; got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
	if got, want := pe.Error(), `invalid color "#12345": invalid length: 5 hex digits, want 3, 4, 6 or 8`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	lined := pe.WithLine(4)
	if !strings.HasPrefix(lined.Error(), "line 4: ") {
		t.Errorf("WithLine(4).Error() = %q, want line prefix", lined.Error())
	}
	if pe.Line != 0 {
		t.Errorf("WithLine modified the original: Line = %d", pe.Line)
	}
	if !errors.Is(lined, ErrInvalidLength) {
		t.Error("errors.Is(lined, ErrInvalidLength) = false")
	}
	if r, ok := ReasonOf(lined); !ok || r != InvalidLength {
		t.Errorf("ReasonOf = %v, %v; want InvalidLength", r, ok)
	}

	empty := &ParseError{Reason: EmptyInput}
	if got := empty.Message(); got != "empty input" {
		t.Errorf("Message() without detail = %q", got)
	}
	unknown := &ParseError{Reason: Reason(99), Detail: "x"}
	if got := unknown.Message(); got != "Reason(99): x" {
		t.Errorf("Message() for unknown reason = %q", got)
	}
}
