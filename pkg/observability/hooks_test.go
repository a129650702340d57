package observability

import (
	"context"
	"testing"
	"time"
)

type recordingPipelineHooks struct {
	NoopPipelineHooks
	compileStarts int
	renderStarts  int
}

func (h *recordingPipelineHooks) OnCompileStart(context.Context, int) {
	h.compileStarts++
}

func (h *recordingPipelineHooks) OnRenderStart(context.Context, []string) {
	h.renderStarts++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits, misses int
}

func (h *recordingCacheHooks) OnCacheHit(context.Context, string)  { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(context.Context, string) { h.misses++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// None of these should panic.
	Pipeline().OnCompileStart(ctx, 4)
	Pipeline().OnCompileComplete(ctx, 4, 100, time.Millisecond, nil)
	Pipeline().OnRenderStart(ctx, []string{"svg"})
	Pipeline().OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)
	Pipeline().OnStepsStart(ctx, 4)
	Pipeline().OnStepsComplete(ctx, 3, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "pattern")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "pattern", 128)
}

func TestSetPipelineHooks(t *testing.T) {
	defer Reset()

	h := &recordingPipelineHooks{}
	SetPipelineHooks(h)

	ctx := context.Background()
	Pipeline().OnCompileStart(ctx, 3)
	Pipeline().OnCompileStart(ctx, 3)
	Pipeline().OnRenderStart(ctx, []string{"svg", "png"})

	if h.compileStarts != 2 {
		t.Errorf("compileStarts = %d, want 2", h.compileStarts)
	}
	if h.renderStarts != 1 {
		t.Errorf("renderStarts = %d, want 1", h.renderStarts)
	}
}

func TestSetCacheHooks(t *testing.T) {
	defer Reset()

	h := &recordingCacheHooks{}
	SetCacheHooks(h)

	ctx := context.Background()
	Cache().OnCacheHit(ctx, "pattern")
	Cache().OnCacheMiss(ctx, "pattern")
	Cache().OnCacheMiss(ctx, "artifact")

	if h.hits != 1 || h.misses != 2 {
		t.Errorf("hits=%d misses=%d, want 1/2", h.hits, h.misses)
	}
}

func TestSetNilHooksKeepsCurrent(t *testing.T) {
	defer Reset()

	h := &recordingPipelineHooks{}
	SetPipelineHooks(h)
	SetPipelineHooks(nil)

	Pipeline().OnCompileStart(context.Background(), 1)
	if h.compileStarts != 1 {
		t.Error("nil registration should not replace current hooks")
	}
}
