package main

import (
	"fmt"
	"io"
)

// ///////////////////////////////////////////////
// Author
// ///////////////////////////////////////////////

const (
	appName        = "palette"
	appAuthor      = "zachthedev"
	appLicense     = "MIT"
	appDescription = "Color code parser: hex (#RRGGBB, #RGB), rgb(R, G, B), hsl(H, S%, L%) and CSS color names."
	appRepository  = "tools.zach/dev/palette"
)

// printAuthor writes the author block. It never fails; write errors on
// stdout are ignored.
func printAuthor(w io.Writer) {
	fmt.Fprintf(w, "%s (color code parser)\n", appName)
	fmt.Fprintf(w, "Author:      %s\n", appAuthor)
	fmt.Fprintf(w, "Version:     %s\n", resolveVersion())
	fmt.Fprintf(w, "License:     %s\n", appLicense)
	fmt.Fprintf(w, "Description: %s\n", appDescription)
	fmt.Fprintf(w, "Repository:  %s\n", appRepository)
}
