// Package paths centralizes file and directory names used across the project.
// All data directory file names are defined here as the single source of truth.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// ///////////////////////////////////////////////
// Constants
// ///////////////////////////////////////////////

// Data directory file names.
const (
	ConfigFile = "config.toml"
	LogFile    = "palette.log"
)

const (
	BinaryName = "palette"
	DataDirRel = ".palette" // relative to $HOME
	// EnvDataDir overrides the data directory location when set.
	EnvDataDir = "PALETTE_DATA_DIR"
)

// ///////////////////////////////////////////////
// DataDir
// ///////////////////////////////////////////////

// DataDir provides path construction methods rooted at a data directory.
type DataDir struct {
	Root string
}

// Default returns the data directory named by $PALETTE_DATA_DIR, or
// ~/.palette. Falls back to ./.palette if the home directory cannot be
// determined.
func Default() DataDir {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return DataDir{Root: dir}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DataDir{Root: filepath.Join(".", DataDirRel)}
	}
	return DataDir{Root: filepath.Join(home, DataDirRel)}
}

// Config returns the full path to the config file.
func (d DataDir) Config() string { return filepath.Join(d.Root, ConfigFile) }

// Log returns the full path to the log file.
func (d DataDir) Log() string { return filepath.Join(d.Root, LogFile) }

// ///////////////////////////////////////////////
// Home Expansion
// ///////////////////////////////////////////////

// ExpandHome replaces a leading "~" path element with the user's home
// directory. Other paths, and all paths when the home directory is unknown,
// are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
