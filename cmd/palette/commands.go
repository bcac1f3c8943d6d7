package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"tools.zach/dev/palette/internal/atomicfile"
	"tools.zach/dev/palette/internal/config"
	"tools.zach/dev/palette/internal/logger"
	"tools.zach/dev/palette/internal/paths"
	"tools.zach/dev/palette/internal/report"
	"tools.zach/dev/palette/internal/scan"
)

// ///////////////////////////////////////////////
// Shared Flags
// ///////////////////////////////////////////////

// commonFlags are accepted by both parse and file.
type commonFlags struct {
	configPath  string
	format      string
	output      string
	logLevel    string
	requireHash bool
	noSwatch    bool
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "config file")
	fs.StringVar(&f.format, "format", "", "output format: text, json or yaml")
	fs.StringVar(&f.output, "output", "", "write results to `file` instead of stdout")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: trace, debug, info, warn or error")
	fs.BoolVar(&f.requireHash, "require-hash", false, "reject hex codes without a leading '#'")
	fs.BoolVar(&f.noSwatch, "no-swatch", false, "never draw color swatches")
}

// newFlagSet returns a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage of palette %s:\n", name)
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs parses flags that may appear before, between or after positional
// arguments. Everything after "--" is positional.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, exitError{code: exitUsage, err: err}
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// ///////////////////////////////////////////////
// Setup
// ///////////////////////////////////////////////

// env is the configured state shared by parse and file.
type env struct {
	cfg    *config.Config
	output string
	stdout io.Writer
	closer io.Closer
}

// setup loads the config, applies flag overrides, validates the result, and
// installs the logger as the slog default. Callers must call env.close.
func setup(fs *flag.FlagSet, f *commonFlags, stdout, stderr io.Writer) (*env, error) {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return nil, err
	}

	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if set["format"] {
		cfg.Output.Format = f.format
	}
	if set["log-level"] {
		cfg.Log.Level = f.logLevel
	}
	if f.requireHash {
		cfg.Parser.RequireHash = true
	}
	if f.noSwatch {
		cfg.Output.Swatch = false
	}
	if fl := fs.Lookup("comment-prefix"); fl != nil && set["comment-prefix"] {
		cfg.Scan.CommentPrefix = fl.Value.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, exitError{code: exitUsage, err: err}
	}

	log, closer := logger.New(logger.Options{
		Level:     logger.ParseLevel(cfg.Log.Level),
		File:      paths.ExpandHome(cfg.Log.File),
		MaxSizeMB: cfg.Log.MaxSizeMB,
		Stderr:    stderr,
	})
	slog.SetDefault(log)
	slog.Debug("config loaded", "format", cfg.Output.Format, "require_hash", cfg.Parser.RequireHash)

	return &env{cfg: cfg, output: f.output, stdout: stdout, closer: closer}, nil
}

func (e *env) close() {
	if err := e.closer.Close(); err != nil {
		slog.Warn("closing log file", "error", err)
	}
}

// loadConfig loads path, or the default config location when path is empty.
// An explicit path must exist; a missing default file means defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = paths.Default().Config()
	} else if _, err := os.Stat(path); err != nil {
		return nil, exitError{code: exitUsage, err: fmt.Errorf("config file: %w", err)}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, exitError{code: exitUsage, err: err}
	}
	return cfg, nil
}

// render writes through a report.Renderer to stdout, or atomically to the
// --output file.
func (e *env) render(fn func(*report.Renderer) error) error {
	format, err := report.ParseFormat(e.cfg.Output.Format)
	if err != nil {
		return exitError{code: exitUsage, err: err}
	}
	opts := report.Options{Format: format, Swatch: e.cfg.Output.Swatch}
	if e.output == "" {
		return fn(report.New(e.stdout, opts))
	}
	err = atomicfile.WriteFunc(paths.ExpandHome(e.output), 0o644, func(w io.Writer) error {
		return fn(report.New(w, opts))
	})
	if err != nil {
		return exitError{code: exitIO, err: fmt.Errorf("write %s: %w", e.output, err)}
	}
	return nil
}

// printDefaultConfig writes the annotated default config.
func printDefaultConfig(w io.Writer) error {
	data, err := config.Example(config.DefaultConfig())
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ///////////////////////////////////////////////
// parse
// ///////////////////////////////////////////////

func runParse(args []string, stdout, stderr io.Writer) error {
	var f commonFlags
	fs := newFlagSet("parse", stderr)
	f.register(fs)

	positional, err := parseArgs(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return usageErrorf("parse takes exactly one COLOR argument, got %d", len(positional))
	}

	e, err := setup(fs, &f, stdout, stderr)
	if err != nil {
		return err
	}
	defer e.close()

	c, err := e.cfg.ColorParser().Parse(positional[0])
	if err != nil {
		return exitError{code: exitFailure, err: err}
	}
	slog.Info("parsed color", "input", positional[0], "hex", c.Hex())
	return e.render(func(r *report.Renderer) error { return r.Color(c) })
}

// ///////////////////////////////////////////////
// file
// ///////////////////////////////////////////////

func runFile(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var f commonFlags
	fs := newFlagSet("file", stderr)
	f.register(fs)
	fs.String("comment-prefix", scan.DefaultCommentPrefix, "skip lines starting with `prefix`")
	watch := fs.Bool("watch", false, "rescan local files whenever they change")

	positional, err := parseArgs(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return usageErrorf("file takes at least one PATH argument")
	}
	if *watch {
		for _, loc := range positional {
			if loc == scan.StdinSource || scan.IsRemote(loc) {
				return usageErrorf("--watch only supports local files, not %q", loc)
			}
		}
	}

	e, err := setup(fs, &f, stdout, stderr)
	if err != nil {
		return err
	}
	defer e.close()

	locations, err := scan.ExpandAll(positional)
	if err != nil {
		return classifyScanError(err)
	}

	s := scan.New(scan.Options{
		Parser:        e.cfg.ColorParser(),
		CommentPrefix: e.cfg.Scan.CommentPrefix,
		MaxLineBytes:  e.cfg.Scan.MaxLineBytes,
		HTTPClient:    scan.NewHTTPClient(e.cfg.RemoteTimeout(), e.cfg.Remote.RetryMax),
		Stdin:         stdin,
	})

	err = scanAndRender(ctx, e, s, locations)
	if !*watch {
		return err
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
	}
	return watchAndRescan(ctx, e, s, locations, stderr)
}

// scanAndRender scans every location in order and renders the results. An
// I/O failure on any source aborts before anything is rendered.
func scanAndRender(ctx context.Context, e *env, s *scan.Scanner, locations []string) error {
	results := make([]*scan.BatchResult, 0, len(locations))
	total, failed := 0, 0
	for _, loc := range locations {
		b, err := s.Scan(ctx, loc)
		if err != nil {
			return classifyScanError(err)
		}
		results = append(results, b)
		total += len(b.Entries)
		failed += b.Failed
	}

	if err := e.render(func(r *report.Renderer) error { return r.Batches(results) }); err != nil {
		return err
	}
	if failed > 0 {
		return exitError{code: exitFailure, err: fmt.Errorf("%d of %d lines failed to parse", failed, total)}
	}
	return nil
}

// watchAndRescan rescans locations on every change until ctx is done.
// Errors during a rescan are reported and watching continues.
func watchAndRescan(ctx context.Context, e *env, s *scan.Scanner, locations []string, stderr io.Writer) error {
	w, err := scan.NewWatcher(locations, e.cfg.PollInterval())
	if err != nil {
		return exitError{code: exitIO, err: fmt.Errorf("watch: %w", err)}
	}
	defer w.Close()
	if w.Polling() {
		slog.Info("using polling mode for file watching")
	}

	for {
		select {
		case <-ctx.Done():
			slog.Debug("watch stopped")
			return nil
		case <-w.Events():
			slog.Debug("change detected, rescanning", "sources", len(locations))
			if err := scanAndRender(ctx, e, s, locations); err != nil {
				fmt.Fprintln(stderr, "error:", err)
			}
		}
	}
}

// classifyScanError maps scan failures to exit codes: source I/O errors are
// exitIO, anything else (a malformed glob) is a usage error.
func classifyScanError(err error) error {
	var ioErr *scan.IOError
	if errors.As(err, &ioErr) {
		return exitError{code: exitIO, err: err}
	}
	return exitError{code: exitUsage, err: err}
}
