package config

// ///////////////////////////////////////////////
// Documentation Types
// ///////////////////////////////////////////////

// FieldDoc holds documentation and alternative examples for a single config field.
// [Example] uses [FieldDoc] values to annotate the rendered default config.
type FieldDoc struct {
	// Comment is shown as a header comment above the field in the example config.
	Comment string

	// Alternatives are shown as commented-out lines below the active value.
	Alternatives []string
}

// ///////////////////////////////////////////////
// Field Documentation Map
// ///////////////////////////////////////////////

// ConfigDocs maps TOML field paths (dot-separated, e.g. "output.format")
// to their [FieldDoc] entries.
var ConfigDocs = map[string]FieldDoc{
	// ── Parser ───────────────────────────────────────────────────
	"parser": {
		Comment: "Which input forms the color parser accepts.",
	},
	"parser.require_hash": {
		Comment: "Reject bare hex codes such as 1A2B3C. Named and functional forms are unaffected.",
	},
	"parser.allow_named": {
		Comment: "Accept CSS color names: red, teal, cornflowerblue, ...",
	},
	"parser.allow_functional": {
		Comment: "Accept rgb(), rgba(), hsl(), hsla() and hwb() forms.",
	},

	// ── Scan ─────────────────────────────────────────────────────
	"scan.comment_prefix": {
		Comment: "Lines starting with this prefix (after trimming) are skipped.\nMust not start with '#', which introduces hex codes.",
		Alternatives: []string{
			`comment_prefix = ";"`,
		},
	},
	"scan.max_line_bytes": {
		Comment: "Longest accepted line. A longer line makes the whole source unreadable.",
	},

	// ── Output ───────────────────────────────────────────────────
	"output.format": {
		Comment: "Result format. Options: \"text\", \"json\", \"yaml\"",
		Alternatives: []string{
			`format = "json"`,
			`format = "yaml"`,
		},
	},
	"output.swatch": {
		Comment: "Draw a colored block next to text results when stdout is a terminal.",
	},

	// ── Remote ───────────────────────────────────────────────────
	"remote.timeout_seconds": {
		Comment: "Timeout for each attempt when scanning an http(s) URL.",
	},
	"remote.retry_max": {
		Comment: "Retries after a failed attempt (connection errors and 5xx responses).",
	},

	// ── Watch ────────────────────────────────────────────────────
	"watch.poll_interval_seconds": {
		Comment: "How often to check watched files (seconds). fsnotify is primary,\nthis is the fallback interval.",
	},

	// ── Log ──────────────────────────────────────────────────────
	"log": {
		Comment: "Logging configuration",
	},
	"log.level": {
		Comment: "Minimum log level. Options: \"trace\", \"debug\", \"info\", \"warn\", \"error\"",
		Alternatives: []string{
			`level = "debug"`,
			`level = "info"`,
		},
	},
	"log.file": {
		Comment: "Write logs to this file instead of stderr. Empty means stderr.",
		Alternatives: []string{
			`file = "~/.palette/palette.log"`,
		},
	},
	"log.max_size_mb": {
		Comment: "Maximum log file size in megabytes before rotation.",
	},
}
