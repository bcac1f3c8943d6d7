// Package report renders parse and scan results as text, JSON or YAML.
//
// Text output is line oriented and stable for scripting; a colored swatch is
// appended only when the destination is a color-capable terminal. JSON and
// YAML share one set of view types so both formats carry the same fields.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	yaml "github.com/goccy/go-yaml"
	"github.com/muesli/termenv"
	"tools.zach/dev/palette/internal/color"
	"tools.zach/dev/palette/internal/scan"
)

// ///////////////////////////////////////////////
// Formats
// ///////////////////////////////////////////////

// Format selects a renderer.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates s as a [Format].
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q: must be text, json, or yaml", s)
}

// ///////////////////////////////////////////////
// Renderer
// ///////////////////////////////////////////////

// Options configures a [Renderer].
type Options struct {
	Format Format
	// Swatch requests a colored block after each text result. It has no
	// effect on non-terminal destinations or structured formats.
	Swatch bool
}

// Renderer writes results to one destination.
type Renderer struct {
	w      io.Writer
	format Format
	swatch bool
	term   *lipgloss.Renderer
}

// New returns a Renderer writing to w. The terminal color profile is
// detected from w.
func New(w io.Writer, opts Options) *Renderer {
	format := opts.Format
	if format == "" {
		format = Text
	}
	return &Renderer{
		w:      w,
		format: format,
		swatch: opts.Swatch,
		term:   lipgloss.NewRenderer(w),
	}
}

// Color renders a single parsed color.
func (r *Renderer) Color(c color.Color) error {
	switch r.format {
	case JSON:
		return r.writeJSON(newColorView(c))
	case YAML:
		return r.writeYAML(newColorView(c))
	}
	_, err := fmt.Fprintf(r.w, "%s  %s%s\n", c.Hex(), c.CSS(), r.swatchFor(c))
	return err
}

// Batches renders one or more scan results. Structured formats emit a
// single object for one result and a list otherwise; text output separates
// multiple results with a source header.
func (r *Renderer) Batches(results []*scan.BatchResult) error {
	if r.format != Text {
		views := make([]batchView, len(results))
		for i, b := range results {
			views[i] = newBatchView(b)
		}
		var v any = views
		if len(views) == 1 {
			v = views[0]
		}
		if r.format == JSON {
			return r.writeJSON(v)
		}
		return r.writeYAML(v)
	}

	for i, b := range results {
		if len(results) > 1 {
			if i > 0 {
				if _, err := io.WriteString(r.w, "\n"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(r.w, "==> %s <==\n", b.Source); err != nil {
				return err
			}
		}
		if err := r.textBatch(b); err != nil {
			return err
		}
	}
	return nil
}

// textBatch writes one line per entry followed by the summary line.
func (r *Renderer) textBatch(b *scan.BatchResult) error {
	for _, e := range b.Entries {
		var err error
		if e.OK() {
			_, err = fmt.Fprintf(r.w, "line %d: %s -> %s %s%s\n",
				e.Line, e.Input, e.Color.Hex(), e.Color.CSS(), r.swatchFor(e.Color))
		} else {
			_, err = fmt.Fprintf(r.w, "line %d: %s -> error: %s\n", e.Line, e.Input, e.Err.Message())
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.w, Summary(b))
	return err
}

// Summary returns the closing line of a text batch,
// e.g. "3 lines: 2 ok, 1 failed".
func Summary(b *scan.BatchResult) string {
	noun := "lines"
	if len(b.Entries) == 1 {
		noun = "line"
	}
	return fmt.Sprintf("%d %s: %d ok, %d failed", len(b.Entries), noun, b.Succeeded, b.Failed)
}

// swatchFor returns a two-space-separated colored block, or "" when swatches
// are off or the destination has no color support.
func (r *Renderer) swatchFor(c color.Color) string {
	if !r.swatch || r.term.ColorProfile() == termenv.Ascii {
		return ""
	}
	block := r.term.NewStyle().
		Background(lipgloss.Color(color.New(c.R, c.G, c.B).Hex())).
		Render("    ")
	return "  " + block
}

func (r *Renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) writeYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	_, err = r.w.Write(data)
	return err
}
