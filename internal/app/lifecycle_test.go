package app

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSetupLifecycleTimeout(t *testing.T) {
	t.Parallel()
	ctx, cancels := SetupLifecycle(context.Background(), 10*time.Millisecond)
	defer cancels.Cleanup()

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not canceled after the timeout")
	}
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		t.Errorf("ctx.Err() = %v, want DeadlineExceeded", ctx.Err())
	}
}

func TestSetupLifecycleCleanup(t *testing.T) {
	t.Parallel()
	ctx, cancels := SetupLifecycle(context.Background(), time.Hour)
	cancels.Cleanup()
	if !errors.Is(ctx.Err(), context.Canceled) {
		t.Errorf("ctx.Err() after Cleanup = %v, want Canceled", ctx.Err())
	}

	// Zero value is safe.
	(&CancelFuncs{}).Cleanup()
}

func TestSetupLifecycleParentCanceled(t *testing.T) {
	t.Parallel()
	parent, cancel := context.WithCancel(context.Background())
	cancel()
	ctx, cancels := SetupLifecycle(parent, time.Hour)
	defer cancels.Cleanup()
	if !errors.Is(ctx.Err(), context.Canceled) {
		t.Errorf("ctx.Err() = %v, want Canceled", ctx.Err())
	}
}
