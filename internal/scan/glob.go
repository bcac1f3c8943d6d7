package scan

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand resolves a command-line location into the sources to scan.
//
// "-", URLs and plain paths are returned unchanged; a missing plain path is
// reported later by [Scanner.Scan]. Patterns containing glob metacharacters
// are matched with doublestar ("**" crosses directories) against regular
// files, sorted; no match is an *[IOError] with [NotFound].
func Expand(pattern string) ([]string, error) {
	if pattern == StdinSource || IsRemote(pattern) || !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}, nil
	}
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, &IOError{Source: pattern, Reason: NotReadable, Err: err}
	}
	if len(matches) == 0 {
		return nil, &IOError{Source: pattern, Reason: NotFound, Err: errors.New("no files match")}
	}
	sort.Strings(matches)
	return matches, nil
}

// ExpandAll expands each location in order, keeping the first occurrence of
// any source named twice.
func ExpandAll(locations []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, loc := range locations {
		sources, err := Expand(loc)
		if err != nil {
			return nil, err
		}
		for _, src := range sources {
			if seen[src] {
				continue
			}
			seen[src] = true
			out = append(out, src)
		}
	}
	return out, nil
}
