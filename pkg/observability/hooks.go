// Package observability lets a binary watch pipeline, cache, and server
// events without coupling the libraries to any metrics or tracing
// backend. The libraries emit events through small hook interfaces; by
// default every hook is a no-op, and main replaces them at startup with
// whatever backend it links in.
//
// Registration happens once, before any work runs:
//
//	observability.SetPipelineHooks(&promPipelineHooks{})
//	observability.SetCacheHooks(&promCacheHooks{})
//
// Emitting an event is a method call on the registered set:
//
//	observability.Pipeline().OnBuildStart(ctx, dataset)
//	// ... build dataset ...
//	observability.Pipeline().OnBuildComplete(ctx, dataset, rows, cols, elapsed, err)
//
// Because main registers the hooks and the libraries only call them,
// observability backends never leak into library import graphs.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline hooks
// =============================================================================

// PipelineHooks receives events from the figure pipeline, one pair per
// stage. The err on a Complete event is nil for successful stages.
type PipelineHooks interface {
	// Build events (dataset generation)
	OnBuildStart(ctx context.Context, dataset string)
	OnBuildComplete(ctx context.Context, dataset string, rows, cols int, duration time.Duration, err error)

	// Compose events (figure assembly)
	OnComposeStart(ctx context.Context, figType string, cols int)
	OnComposeComplete(ctx context.Context, figType string, duration time.Duration, err error)

	// Render events (artifact encoding)
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Cache hooks
// =============================================================================

// CacheHooks receives one event per cache operation. keyType is the key
// prefix ("dataset" or "artifact"), not the full key.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)

	// OnCacheError records a failed cache read or write. Cache failures
	// never fail the pipeline; this is how they stay visible.
	OnCacheError(ctx context.Context, keyType string, err error)
}

// =============================================================================
// Server hooks
// =============================================================================

// ServerHooks receives events from the preview server.
type ServerHooks interface {
	// OnRequest fires when a request enters the router.
	OnRequest(ctx context.Context, method, route string)

	// OnResponse fires after the handler wrote its status.
	OnResponse(ctx context.Context, method, route string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op defaults
// =============================================================================

// NoopPipelineHooks discards all pipeline events.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnBuildStart(context.Context, string) {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnComposeStart(context.Context, string, int)                      {}
func (NoopPipelineHooks) OnComposeComplete(context.Context, string, time.Duration, error)  {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks discards all cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)          {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)         {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int)     {}
func (NoopCacheHooks) OnCacheError(context.Context, string, error) {}

// NoopServerHooks discards all server events.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	serverHooks   ServerHooks   = NoopServerHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks swaps in h for all future pipeline events. Call it
// from main before the first pipeline run; nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks swaps in h for all future cache events; nil is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetServerHooks swaps in h for all future server events; nil is ignored.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Pipeline returns the hooks pipeline stages should emit to.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the hooks cache wrappers should emit to.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Server returns the hooks the HTTP middleware should emit to.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores the no-op defaults. Tests use it to undo registration.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
	serverHooks = NoopServerHooks{}
}
