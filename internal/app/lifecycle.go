package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// SetupLifecycle derives a context that is canceled when timeout elapses or
// when the process receives SIGINT or SIGTERM, whichever comes first.
// Callers must defer the returned Cleanup.
func SetupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, *CancelFuncs) {
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, &CancelFuncs{CancelTimeout: cancelTimeout, StopSignals: stopSignals}
}

// CancelFuncs releases the resources of SetupLifecycle.
type CancelFuncs struct {
	CancelTimeout context.CancelFunc
	StopSignals   context.CancelFunc
}

// Cleanup stops signal delivery, then cancels the timeout.
func (c *CancelFuncs) Cleanup() {
	if c.StopSignals != nil {
		c.StopSignals()
	}
	if c.CancelTimeout != nil {
		c.CancelTimeout()
	}
}
