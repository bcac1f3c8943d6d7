// Package config provides configuration loading and defaults for the palette CLI.
//
// Configuration is loaded from a TOML file, by default config.toml in the
// user's data directory. The package covers parser policy, file scanning,
// output rendering, remote fetching, watch mode, and logging with sensible
// defaults. Command-line flags override the loaded values.
package config

//go:generate go run ../../cmd/genconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"tools.zach/dev/palette/internal/color"
	"tools.zach/dev/palette/internal/logger"
)

// ///////////////////////////////////////////////
// Configuration Types
// ///////////////////////////////////////////////

// Config represents the top-level application configuration.
type Config struct {
	// Parser holds color parsing policy.
	Parser ParserConfig `toml:"parser"`
	// Scan holds file scanning settings.
	Scan ScanConfig `toml:"scan"`
	// Output holds result rendering settings.
	Output OutputConfig `toml:"output"`
	// Remote holds settings for http(s) scan sources.
	Remote RemoteConfig `toml:"remote"`
	// Watch holds settings for file --watch.
	Watch WatchConfig `toml:"watch"`
	// Log holds logging settings.
	Log LogConfig `toml:"log"`
}

// ParserConfig selects which input forms the color parser accepts.
type ParserConfig struct {
	// RequireHash rejects bare hex codes with a missing-prefix error.
	RequireHash bool `toml:"require_hash"`
	// AllowNamed accepts CSS/SVG color names such as "teal".
	AllowNamed bool `toml:"allow_named"`
	// AllowFunctional accepts rgb(), rgba(), hsl(), hsla() and hwb() forms.
	AllowFunctional bool `toml:"allow_functional"`
}

// ScanConfig holds file scanning settings.
type ScanConfig struct {
	// CommentPrefix marks lines that are skipped. It must not start with '#'.
	CommentPrefix string `toml:"comment_prefix"`
	// MaxLineBytes is the longest line accepted before the source is
	// reported as unreadable.
	MaxLineBytes int `toml:"max_line_bytes"`
}

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	// Format selects the renderer: "text", "json", or "yaml".
	Format string `toml:"format"`
	// Swatch draws a colored block next to text results on a terminal.
	Swatch bool `toml:"swatch"`
}

// RemoteConfig holds settings for http(s) scan sources.
type RemoteConfig struct {
	// TimeoutSeconds bounds each HTTP attempt.
	TimeoutSeconds int `toml:"timeout_seconds"`
	// RetryMax is the number of retries after a failed attempt.
	RetryMax int `toml:"retry_max"`
}

// WatchConfig holds settings for file --watch.
type WatchConfig struct {
	// PollIntervalSeconds is the polling fallback interval used when
	// filesystem notifications are unavailable.
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `toml:"level"`
	// File sends logs to a rotating file instead of stderr when set.
	File string `toml:"file"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation.
	MaxSizeMB int `toml:"max_size_mb"`
}

// ///////////////////////////////////////////////
// Default Configuration
// ///////////////////////////////////////////////

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			RequireHash:     false,
			AllowNamed:      true,
			AllowFunctional: true,
		},
		Scan: ScanConfig{
			CommentPrefix: "//",
			MaxLineBytes:  64 * 1024,
		},
		Output: OutputConfig{
			Format: "text",
			Swatch: true,
		},
		Remote: RemoteConfig{
			TimeoutSeconds: 10,
			RetryMax:       2,
		},
		Watch: WatchConfig{
			PollIntervalSeconds: 2,
		},
		Log: LogConfig{
			Level:     "warn",
			File:      "",
			MaxSizeMB: 10,
		},
	}
}

// ///////////////////////////////////////////////
// Loading
// ///////////////////////////////////////////////

// Load reads and parses the configuration file at path.
// If the file doesn't exist, returns DefaultConfig.
// Keys the file sets are layered over the defaults; unknown keys are logged
// and ignored.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	for _, key := range md.Undecoded() {
		slog.Warn("unknown config key", "key", key.String(), "path", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// ///////////////////////////////////////////////
// Validation
// ///////////////////////////////////////////////

// Validate checks that all configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output.format %q: must be text, json, or yaml", c.Output.Format)
	}

	if !logger.ValidLevel(c.Log.Level) {
		return fmt.Errorf("invalid log.level %q: must be trace, debug, info, warn, or error", c.Log.Level)
	}

	if c.Scan.CommentPrefix == "" {
		return fmt.Errorf("scan.comment_prefix must not be empty")
	}
	if strings.HasPrefix(c.Scan.CommentPrefix, "#") {
		return fmt.Errorf("invalid scan.comment_prefix %q: must not start with '#'", c.Scan.CommentPrefix)
	}

	if c.Scan.MaxLineBytes <= 0 {
		return fmt.Errorf("max_line_bytes must be > 0, got %d", c.Scan.MaxLineBytes)
	}

	if c.Remote.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be > 0, got %d", c.Remote.TimeoutSeconds)
	}

	if c.Remote.RetryMax < 0 {
		return fmt.Errorf("retry_max must be >= 0, got %d", c.Remote.RetryMax)
	}

	if c.Watch.PollIntervalSeconds <= 0 {
		return fmt.Errorf("poll_interval_seconds must be > 0, got %d", c.Watch.PollIntervalSeconds)
	}

	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("max_size_mb must be > 0, got %d", c.Log.MaxSizeMB)
	}

	return nil
}

// ///////////////////////////////////////////////
// Derived Settings
// ///////////////////////////////////////////////

// ColorParser returns the parser policy described by the [parser] section.
func (c *Config) ColorParser() color.Parser {
	return color.Parser{
		RequireHash:     c.Parser.RequireHash,
		AllowNamed:      c.Parser.AllowNamed,
		AllowFunctional: c.Parser.AllowFunctional,
	}
}

// RemoteTimeout returns the per-attempt HTTP timeout.
func (c *Config) RemoteTimeout() time.Duration {
	return time.Duration(c.Remote.TimeoutSeconds) * time.Second
}

// PollInterval returns the watch polling interval.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Watch.PollIntervalSeconds) * time.Second
}
