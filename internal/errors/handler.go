package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// HandleError prints a status line for err and returns the matching exit
// code. It distinguishes timeouts, cancellations and configuration errors
// from generic failures so scripts can react to each.
//
// Parameters:
//   - err: The error that occurred (nil means success).
//   - out: The io.Writer to which the status message will be written.
//
// Returns:
//   - int: The appropriate exit code for the error type.
func HandleError(err error, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}

	var cfgErr ConfigError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached: %v\n", err)
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(out, "Status: Canceled.")
		return ExitErrorCanceled
	case errors.As(err, &cfgErr):
		fmt.Fprintf(out, "Configuration error: %v\n", err)
		return ExitErrorConfig
	}
	fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	return ExitErrorGeneric
}
