// Package app holds process-level helpers shared by the repository's
// commands: build metadata and signal/timeout lifecycle.
package app

import (
	"fmt"
	"io"
	"runtime"
	"slices"
)

// Build metadata, set with -ldflags, e.g.
//
//	go build -ldflags="-X github.com/agbru/computil/internal/app.Version=v0.3.0" ./cmd/generate-golden
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args request version output. The flag is
// recognized in any position.
func HasVersionFlag(args []string) bool {
	return slices.ContainsFunc(args, func(arg string) bool {
		return arg == "--version" || arg == "-version" || arg == "-V"
	})
}

// PrintVersion writes the build metadata of program to out.
func PrintVersion(out io.Writer, program string) {
	fmt.Fprintf(out, "%s %s\n", program, Version)
	fmt.Fprintf(out, "  Commit:     %s\n", Commit)
	fmt.Fprintf(out, "  Built:      %s\n", BuildDate)
	fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
