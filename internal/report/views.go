package report

import (
	"tools.zach/dev/palette/internal/color"
	"tools.zach/dev/palette/internal/scan"
)

// ///////////////////////////////////////////////
// Structured Views
// ///////////////////////////////////////////////

type colorView struct {
	Hex  string `json:"hex" yaml:"hex"`
	R    uint8  `json:"r" yaml:"r"`
	G    uint8  `json:"g" yaml:"g"`
	B    uint8  `json:"b" yaml:"b"`
	A    *uint8 `json:"a,omitempty" yaml:"a,omitempty"`
	CSS  string `json:"css" yaml:"css"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

func newColorView(c color.Color) *colorView {
	v := &colorView{Hex: c.Hex(), R: c.R, G: c.G, B: c.B, CSS: c.CSS()}
	if c.HasAlpha {
		a := c.A
		v.A = &a
	}
	v.Name, _ = color.Name(c)
	return v
}

type errorView struct {
	Reason  string `json:"reason" yaml:"reason"`
	Message string `json:"message" yaml:"message"`
}

type entryView struct {
	Line  int        `json:"line" yaml:"line"`
	Input string     `json:"input" yaml:"input"`
	Color *colorView `json:"color,omitempty" yaml:"color,omitempty"`
	Error *errorView `json:"error,omitempty" yaml:"error,omitempty"`
}

type batchView struct {
	Source    string      `json:"source" yaml:"source"`
	Entries   []entryView `json:"entries" yaml:"entries"`
	Succeeded int         `json:"succeeded" yaml:"succeeded"`
	Failed    int         `json:"failed" yaml:"failed"`
}

func newBatchView(b *scan.BatchResult) batchView {
	v := batchView{
		Source:    b.Source,
		Entries:   make([]entryView, 0, len(b.Entries)),
		Succeeded: b.Succeeded,
		Failed:    b.Failed,
	}
	for _, e := range b.Entries {
		ev := entryView{Line: e.Line, Input: e.Input}
		if e.OK() {
			ev.Color = newColorView(e.Color)
		} else {
			ev.Error = &errorView{Reason: e.Err.Reason.String(), Message: e.Err.Message()}
		}
		v.Entries = append(v.Entries, ev)
	}
	return v
}
