// Command generate-golden regenerates the JSON golden files read by the
// prime and progression package tests.
//
// Usage:
//
//	go run ./cmd/generate-golden [-out .] [-max 10000200] [-quiet]
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agbru/computil/internal/app"
	"github.com/agbru/computil/internal/config"
	apperrors "github.com/agbru/computil/internal/errors"
	"github.com/agbru/computil/internal/logging"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

// run parses args, generates the golden files and returns the process exit
// code. Logs, the spinner and status lines go to errOut.
func run(ctx context.Context, args []string, errOut io.Writer) int {
	if app.HasVersionFlag(args) {
		app.PrintVersion(errOut, "generate-golden")
		return apperrors.ExitSuccess
	}
	cfg, err := config.ParseConfig("generate-golden", args, errOut)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitErrorConfig
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return apperrors.HandleError(err, errOut)
	}
	if cfg.Quiet && level < zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}
	logger := logging.NewLogger(errOut, "generate-golden").WithLevel(level)

	ctx, cancels := app.SetupLifecycle(ctx, cfg.Timeout)
	defer cancels.Cleanup()

	gen := newGenerator(cfg, logger)
	if !cfg.Quiet {
		gen.spinner = newSpinner(errOut)
	}
	if err := gen.Run(ctx); err != nil {
		logger.Error("golden generation failed", err)
		return apperrors.HandleError(err, errOut)
	}
	return apperrors.ExitSuccess
}
