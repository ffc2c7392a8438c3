// Package buildinfo exposes version metadata injected at link time.
package buildinfo

import (
	"fmt"
	"io"
)

// Set via -ldflags "-X github.com/mbs-dev/blogctl/internal/buildinfo.Version=..."
var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBuildData writes the build metadata banner to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
