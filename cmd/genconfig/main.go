// Package main implements the genconfig tool that writes config.default.toml
// from config.DefaultConfig().
//
// It is invoked by go generate via the directive in internal/config/config.go.
package main

import (
	"fmt"
	"os"

	"tools.zach/dev/palette/internal/config"
)

func main() {
	data, err := config.Example(config.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	// go generate runs from the package directory (internal/config/).
	outPath := "../../config.default.toml"
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("wrote config.default.toml\n")
}
