package paths

import (
	"os"
	"path/filepath"
	"testing"
)

// ///////////////////////////////////////////////
// Constant Value Tests
// ///////////////////////////////////////////////

func TestConstantValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"DataDirRel", DataDirRel, ".palette"},
		{"ConfigFile", ConfigFile, "config.toml"},
		{"LogFile", LogFile, "palette.log"},
		{"BinaryName", BinaryName, "palette"},
		{"EnvDataDir", EnvDataDir, "PALETTE_DATA_DIR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

// ///////////////////////////////////////////////
// DataDir Method Tests
// ///////////////////////////////////////////////

func TestDataDirMethods(t *testing.T) {
	root := filepath.Join("home", "user", ".palette")
	d := DataDir{Root: root}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Config", d.Config(), filepath.Join(root, "config.toml")},
		{"Log", d.Log(), filepath.Join(root, "palette.log")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestDataDirEmptyRoot(t *testing.T) {
	d := DataDir{Root: ""}

	// With an empty root, methods should return just the filename.
	if got := d.Config(); got != ConfigFile {
		t.Errorf("Config() with empty root = %q, want %q", got, ConfigFile)
	}
	if got := d.Log(); got != LogFile {
		t.Errorf("Log() with empty root = %q, want %q", got, LogFile)
	}
}

// ///////////////////////////////////////////////
// Default
// ///////////////////////////////////////////////

func TestDefaultEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDataDir, dir)

	if got := Default().Root; got != dir {
		t.Errorf("Default().Root = %q, want %q", got, dir)
	}
}

func TestDefaultHome(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	if got, want := Default().Root, filepath.Join(home, DataDirRel); got != want {
		t.Errorf("Default().Root = %q, want %q", got, want)
	}
}

// ///////////////////////////////////////////////
// ExpandHome
// ///////////////////////////////////////////////

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/.palette/palette.log", filepath.Join(home, ".palette", "palette.log")},
		{"/var/log/palette.log", "/var/log/palette.log"},
		{"relative/palette.log", "relative/palette.log"},
		{"~user/palette.log", "~user/palette.log"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
