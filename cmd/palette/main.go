// Package main implements the palette CLI, which parses color codes given on
// the command line or read line by line from files, stdin and URLs.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
)

// ///////////////////////////////////////////////
// Version
// ///////////////////////////////////////////////

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=0.1.0" ./cmd/palette
//
// When ldflags are not set (bare go build), resolveVersion reads the VCS info
// that Go embeds automatically.
var version = "dev"

// resolveVersion returns the build version string. If [version] was set via
// ldflags at build time it is returned as-is; otherwise VCS revision and dirty
// state embedded by the Go toolchain are used to construct a "dev+<hash>" tag.
func resolveVersion() string {
	if version != "dev" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return version
	}
	hash := revision[:min(7, len(revision))]
	if dirty {
		return "dev+" + hash + ".dirty"
	}
	return "dev+" + hash
}

// ///////////////////////////////////////////////
// Exit Codes
// ///////////////////////////////////////////////

const (
	exitOK      = 0
	exitFailure = 1 // an input did not parse
	exitUsage   = 2 // bad command line or config
	exitIO      = 3 // a source could not be opened or read
)

// exitError carries the process exit code for err.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }

func (e exitError) Unwrap() error { return e.err }

// ExitCode returns the process exit code.
func (e exitError) ExitCode() int { return e.code }

// usageErrorf returns an exitUsage error.
func usageErrorf(format string, args ...any) error {
	return exitError{code: exitUsage, err: fmt.Errorf(format, args...)}
}

// ///////////////////////////////////////////////
// Commands
// ///////////////////////////////////////////////

// command is the closed set of subcommands.
type command int

const (
	cmdHelp command = iota
	cmdParse
	cmdFile
	cmdAuthor
)

// commandFor selects the subcommand named by args[0]. No arguments means help.
func commandFor(args []string) (command, error) {
	if len(args) == 0 {
		return cmdHelp, nil
	}
	switch args[0] {
	case "help", "-h", "-help", "--help":
		return cmdHelp, nil
	case "parse":
		return cmdParse, nil
	case "file":
		return cmdFile, nil
	case "author":
		return cmdAuthor, nil
	}
	return cmdHelp, usageErrorf("unknown command %q", args[0])
}

const usage = `Usage: palette <command> [flags] [args]

Commands:
  parse COLOR      parse one color and print its canonical form
  file PATH...     parse every line of each file, glob, URL or "-" (stdin)
  author           print author and build information
  help [config]    print this help, or the annotated default config

Color forms:
  #RGB #RGBA #RRGGBB #RRGGBBAA (the '#' is optional for 6 and 8 digits)
  rgb(R, G, B)  rgba(R, G, B, A)  hsl(...)  hsla(...)  hwb(...)
  CSS color names such as teal or cornflowerblue

Flags for parse and file:
  --config PATH        config file (default ~/.palette/config.toml)
  --format FORMAT      text, json or yaml
  --output FILE        write results to FILE instead of stdout
  --log-level LEVEL    trace, debug, info, warn or error
  --require-hash       reject hex codes without a leading '#'
  --no-swatch          never draw color swatches

Flags for file:
  --comment-prefix STR skip lines starting with STR (default "//")
  --watch              rescan local files whenever they change

Exit codes: 0 ok, 1 parse failure, 2 usage error, 3 I/O error.
`

// ///////////////////////////////////////////////
// Main
// ///////////////////////////////////////////////

func main() {
	ctx, stop := signalContext(context.Background())
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code. Results go to
// stdout; diagnostics go to stderr.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	err := dispatch(ctx, args, stdin, stdout, stderr)
	if err == nil {
		return exitOK
	}

	code := exitFailure
	var withCode interface{ ExitCode() int }
	if errors.As(err, &withCode) {
		code = withCode.ExitCode()
	}
	fmt.Fprintln(stderr, "error:", err)
	if code == exitUsage {
		fmt.Fprintln(stderr, "run 'palette help' for usage")
	}
	return code
}

// dispatch decides the command once and runs it.
func dispatch(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd, err := commandFor(args)
	if err != nil {
		return err
	}

	switch cmd {
	case cmdAuthor:
		// Ignores every other argument and never fails.
		printAuthor(stdout)
		return nil
	case cmdParse:
		return runParse(args[1:], stdout, stderr)
	case cmdFile:
		return runFile(ctx, args[1:], stdin, stdout, stderr)
	default:
		var topic []string
		if len(args) > 1 {
			topic = args[1:]
		}
		return runHelp(topic, stdout)
	}
}

// runHelp prints usage, or the annotated default config for "help config".
func runHelp(topic []string, stdout io.Writer) error {
	switch strings.Join(topic, " ") {
	case "":
		_, err := io.WriteString(stdout, usage)
		return err
	case "config":
		return printDefaultConfig(stdout)
	}
	return usageErrorf("unknown help topic %q", strings.Join(topic, " "))
}
