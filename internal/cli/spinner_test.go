package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner("Compiling pattern...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
}

func TestSpinnerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Rendering chart...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancellation after its context is canceled")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner("Generating instructions...")
	s.Start()
	s.Stop()
	s.Stop()
	s.Stop()
}
