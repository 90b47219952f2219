package observability

import (
	"context"
	"testing"
	"time"
)

// The recording fixtures embed the no-op sets so they satisfy the full
// interfaces while overriding only what a test inspects.
type recordingPipelineHooks struct {
	NoopPipelineHooks
	events []string
}

func (r *recordingPipelineHooks) OnBuildStart(_ context.Context, dataset string) {
	r.events = append(r.events, "build "+dataset)
}

type recordingCacheHooks struct{ NoopCacheHooks }

type recordingServerHooks struct{ NoopServerHooks }

func TestNoopHooksAcceptEvents(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnBuildStart(ctx, "demo")
	p.OnBuildComplete(ctx, "demo", 80, 8, time.Second, nil)
	p.OnComposeStart(ctx, "subplots", 8)
	p.OnComposeComplete(ctx, "subplots", time.Second, nil)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "dataset")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)
	c.OnCacheError(ctx, "artifact", nil)

	s := NoopServerHooks{}
	s.OnRequest(ctx, "GET", "/api/figures")
	s.OnResponse(ctx, "GET", "/api/figures", 200, time.Millisecond)
}

func TestRegistryDefaultsAreNoop(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := Server().(NoopServerHooks); !ok {
		t.Errorf("Server() = %T, want NoopServerHooks", Server())
	}
}

func TestRegistrySwapAndReset(t *testing.T) {
	t.Cleanup(Reset)

	pipeline := &recordingPipelineHooks{}
	cache := &recordingCacheHooks{}
	server := &recordingServerHooks{}
	SetPipelineHooks(pipeline)
	SetCacheHooks(cache)
	SetServerHooks(server)

	if Pipeline() != pipeline {
		t.Errorf("Pipeline() = %T, want the registered hooks", Pipeline())
	}
	if Cache() != cache {
		t.Errorf("Cache() = %T, want the registered hooks", Cache())
	}
	if Server() != server {
		t.Errorf("Server() = %T, want the registered hooks", Server())
	}

	// Events emitted through the package reach the registered set.
	Pipeline().OnBuildStart(context.Background(), "cos-pair")
	if len(pipeline.events) != 1 || pipeline.events[0] != "build cos-pair" {
		t.Errorf("events = %v, want [build cos-pair]", pipeline.events)
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() after Reset = %T, want NoopPipelineHooks", Pipeline())
	}
}

func TestSetNilIgnored(t *testing.T) {
	t.Cleanup(Reset)

	current := &recordingPipelineHooks{}
	SetPipelineHooks(current)
	SetPipelineHooks(nil)

	if Pipeline() != current {
		t.Errorf("Pipeline() = %T, want the hooks registered before nil", Pipeline())
	}
}
