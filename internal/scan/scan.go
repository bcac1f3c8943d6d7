// Package scan applies the color parser to every line of a file, standard
// input or an HTTP(S) resource and aggregates the outcomes.
//
// Per-line parse failures are recorded in the [BatchResult] and never stop the
// scan. Failing to open or read the source aborts it with an *[IOError] and no
// result.
package scan

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"tools.zach/dev/palette/internal/color"
	"tools.zach/dev/palette/internal/logger"
)

// ///////////////////////////////////////////////
// Types
// ///////////////////////////////////////////////

// Entry is the outcome for one non-blank, non-comment line.
type Entry struct {
	// Line is the 1-based line number in the source.
	Line int
	// Input is the trimmed line text that was parsed.
	Input string
	// Color is the parsed value; zero when Err is set.
	Color color.Color
	// Err is the parse failure, annotated with Line; nil on success.
	Err *color.ParseError
}

// OK reports whether the line parsed.
func (e Entry) OK() bool {
	return e.Err == nil
}

// BatchResult aggregates the outcomes of one source in line order.
type BatchResult struct {
	// Source is the location that was scanned.
	Source string
	// Entries holds one outcome per scanned line, in input order.
	Entries []Entry
	// Succeeded counts entries that parsed.
	Succeeded int
	// Failed counts entries that did not.
	Failed int
}

// Failures returns the failed entries in line order.
func (b *BatchResult) Failures() []Entry {
	var out []Entry
	for _, e := range b.Entries {
		if !e.OK() {
			out = append(out, e)
		}
	}
	return out
}

func (b *BatchResult) add(line int, input string, c color.Color, err error) {
	e := Entry{Line: line, Input: input}
	if err != nil {
		var pe *color.ParseError
		if !errors.As(err, &pe) {
			pe = &color.ParseError{Input: input, Reason: color.InvalidFormat, Err: err}
		}
		e.Err = pe.WithLine(line)
		b.Failed++
	} else {
		e.Color = c
		b.Succeeded++
	}
	b.Entries = append(b.Entries, e)
}

// ///////////////////////////////////////////////
// Options
// ///////////////////////////////////////////////

// DefaultCommentPrefix marks lines that are skipped. It cannot be "#", which
// starts every hex color.
const DefaultCommentPrefix = "//"

// DefaultMaxLineBytes bounds a single input line.
const DefaultMaxLineBytes = 64 * 1024

// Options configures a [Scanner].
type Options struct {
	// Parser decodes each line.
	Parser color.Parser
	// CommentPrefix marks lines to skip; empty disables comments.
	CommentPrefix string
	// MaxLineBytes is the longest accepted line; longer lines abort the scan.
	MaxLineBytes int
	// HTTPClient fetches http:// and https:// sources. Nil uses [NewHTTPClient]
	// with a 10 second timeout and 2 retries.
	HTTPClient *retryablehttp.Client
	// Stdin is read for the "-" source. Nil uses [os.Stdin].
	Stdin io.Reader
}

// DefaultOptions returns the options used by [Scan].
func DefaultOptions() Options {
	return Options{
		Parser:        color.DefaultParser,
		CommentPrefix: DefaultCommentPrefix,
		MaxLineBytes:  DefaultMaxLineBytes,
	}
}

// ///////////////////////////////////////////////
// Scanner
// ///////////////////////////////////////////////

// Scanner scans sources line by line. It holds no per-scan state and may be
// reused.
type Scanner struct {
	opts Options
}

// New creates a Scanner, filling unset options with defaults.
func New(opts Options) *Scanner {
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = DefaultMaxLineBytes
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = NewHTTPClient(10*time.Second, 2)
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	return &Scanner{opts: opts}
}

// Scan scans a local path with [DefaultOptions].
func Scan(path string) (*BatchResult, error) {
	return New(DefaultOptions()).Scan(context.Background(), path)
}

// Scan opens location (a path, "-" or an http(s) URL) and parses every line.
// On an *[IOError] the returned result is nil.
func (s *Scanner) Scan(ctx context.Context, location string) (*BatchResult, error) {
	rc, err := s.open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return s.ScanReader(rc, location)
}

// ScanReader parses every line of r, labelling the result with source.
func (s *Scanner) ScanReader(r io.Reader, source string) (*BatchResult, error) {
	slog.Debug("scanning", "source", source)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(4096, s.opts.MaxLineBytes)), s.opts.MaxLineBytes)

	result := &BatchResult{Source: source}
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if s.skip(text) {
			continue
		}
		c, err := s.opts.Parser.Parse(text)
		result.add(line, text, c, err)
		logger.Trace(slog.Default(), "parsed line", "source", source, "line", line, "ok", err == nil)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = fmt.Errorf("line %d exceeds %d bytes: %w", line+1, s.opts.MaxLineBytes, err)
		}
		return nil, &IOError{Source: source, Reason: NotReadable, Err: err}
	}

	slog.Debug("scan complete", "source", source,
		"entries", len(result.Entries), "succeeded", result.Succeeded, "failed", result.Failed)
	return result, nil
}

// skip reports whether a trimmed line produces no entry.
func (s *Scanner) skip(text string) bool {
	if text == "" {
		return true
	}
	return s.opts.CommentPrefix != "" && strings.HasPrefix(text, s.opts.CommentPrefix)
}
