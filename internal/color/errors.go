package color

import (
	"errors"
	"fmt"
)

// ///////////////////////////////////////////////
// Reasons
// ///////////////////////////////////////////////

// Reason classifies why an input failed to parse.
type Reason int

const (
	// EmptyInput is reported for the empty string.
	EmptyInput Reason = iota + 1
	// InvalidLength is reported when the hex digit count is not 3, 4, 6 or 8,
	// or a bare (unprefixed) code uses a shorthand length.
	InvalidLength
	// InvalidCharacter is reported for a character outside [0-9A-Fa-f] where a
	// hex digit is expected.
	InvalidCharacter
	// MissingPrefix is reported for bare hex input when "#" is required.
	MissingPrefix
	// InvalidFormat is reported for a malformed functional form: missing
	// parentheses, wrong component count, trailing text.
	InvalidFormat
	// InvalidComponent is reported for a non-numeric functional component.
	InvalidComponent
	// ComponentOutOfRange is reported for a functional component outside its range.
	ComponentOutOfRange
)

var reasonNames = map[Reason]string{
	EmptyInput:          "EmptyInput",
	InvalidLength:       "InvalidLength",
	InvalidCharacter:    "InvalidCharacter",
	MissingPrefix:       "MissingPrefix",
	InvalidFormat:       "InvalidFormat",
	InvalidComponent:    "InvalidComponent",
	ComponentOutOfRange: "ComponentOutOfRange",
}

// String returns the reason's identifier, e.g. "InvalidLength".
func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Sentinels for matching a [ParseError] reason with [errors.Is].
var (
	ErrEmptyInput          = errors.New("empty input")
	ErrInvalidLength       = errors.New("invalid length")
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrMissingPrefix       = errors.New("missing '#' prefix")
	ErrInvalidFormat       = errors.New("invalid format")
	ErrInvalidComponent    = errors.New("invalid component")
	ErrComponentOutOfRange = errors.New("component out of range")
)

var reasonSentinels = map[Reason]error{
	EmptyInput:          ErrEmptyInput,
	InvalidLength:       ErrInvalidLength,
	InvalidCharacter:    ErrInvalidCharacter,
	MissingPrefix:       ErrMissingPrefix,
	InvalidFormat:       ErrInvalidFormat,
	InvalidComponent:    ErrInvalidComponent,
	ComponentOutOfRange: ErrComponentOutOfRange,
}

// ///////////////////////////////////////////////
// ParseError
// ///////////////////////////////////////////////

// ParseError describes why one input string is not a valid color.
type ParseError struct {
	// Input is the offending text exactly as given to the parser.
	Input string
	// Reason classifies the failure.
	Reason Reason
	// Detail is a human-readable explanation, e.g. "5 hex digits, want 3, 4, 6 or 8".
	Detail string
	// Line is the 1-based line number in file mode, 0 otherwise.
	Line int
	// Err is the underlying cause, if any (e.g. a strconv error).
	Err error
}

func newError(input string, reason Reason, detail string, cause error) *ParseError {
	return &ParseError{Input: input, Reason: reason, Detail: detail, Err: cause}
}

// Error formats the failure as `line N: invalid color "X": reason: detail`.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("invalid color %q: %s", e.Input, e.Message())
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

// Message returns the reason and detail without the input or line number,
// e.g. "invalid length: 5 hex digits, want 3, 4, 6 or 8".
func (e *ParseError) Message() string {
	msg := e.Reason.String()
	if sentinel, ok := reasonSentinels[e.Reason]; ok {
		msg = sentinel.Error()
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's reason.
func (e *ParseError) Is(target error) bool {
	return reasonSentinels[e.Reason] == target
}

// WithLine returns a copy of e annotated with a 1-based line number.
func (e *ParseError) WithLine(line int) *ParseError {
	cp := *e
	cp.Line = line
	return &cp
}

// ReasonOf returns the reason of the first [ParseError] in err's chain.
func ReasonOf(err error) (Reason, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Reason, true
	}
	return 0, false
}
