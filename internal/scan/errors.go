package scan

import (
	"errors"
	"fmt"
	"io/fs"
)

// IOReason classifies why a source could not be read.
type IOReason int

const (
	// NotFound is reported for a missing file, an HTTP 404/410, or a glob
	// pattern without matches.
	NotFound IOReason = iota + 1
	// PermissionDenied is reported for an unreadable file or an HTTP 401/403.
	PermissionDenied
	// NotReadable covers every other read failure: directories, over-long
	// lines, network errors, unexpected HTTP statuses.
	NotReadable
)

// String returns the reason's identifier, e.g. "NotFound".
func (r IOReason) String() string {
	switch r {
	case NotFound:
		return "NotFound"
	case PermissionDenied:
		return "PermissionDenied"
	case NotReadable:
		return "NotReadable"
	default:
		return fmt.Sprintf("IOReason(%d)", int(r))
	}
}

// Sentinels for matching an [IOError] reason with [errors.Is].
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotReadable      = errors.New("not readable")
)

func (r IOReason) sentinel() error {
	switch r {
	case NotFound:
		return ErrNotFound
	case PermissionDenied:
		return ErrPermissionDenied
	default:
		return ErrNotReadable
	}
}

// IOError reports a source that could not be opened or read. It aborts the
// scan and is never mixed with per-line parse failures.
type IOError struct {
	// Source is the path, URL or "-" that failed.
	Source string
	// Reason classifies the failure.
	Reason IOReason
	// Err is the underlying OS, network or HTTP error.
	Err error
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Source, e.Reason.sentinel())
	}
	return fmt.Sprintf("%s: %s: %v", e.Source, e.Reason.sentinel(), e.Err)
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's reason.
func (e *IOError) Is(target error) bool {
	return e.Reason.sentinel() == target
}

// classify wraps an OS error into an [IOError] with the matching reason.
func classify(source string, err error) *IOError {
	reason := NotReadable
	switch {
	case errors.Is(err, fs.ErrNotExist):
		reason = NotFound
	case errors.Is(err, fs.ErrPermission):
		reason = PermissionDenied
	}
	return &IOError{Source: source, Reason: reason, Err: err}
}
