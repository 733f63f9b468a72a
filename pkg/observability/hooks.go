// Package observability provides hooks for instrumenting link generation.
//
// Libraries call the registered hooks; the application decides what they do.
// The defaults are no-ops, so library code never needs a nil check and never
// depends on a logging or metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLinkStart(ctx, label, len(src))
//	// ... build link ...
//	observability.Pipeline().OnLinkComplete(ctx, label, len(url), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the generate pipeline.
type PipelineHooks interface {
	// Link events, one pair per diagram.
	OnLinkStart(ctx context.Context, label string, sourceBytes int)
	OnLinkComplete(ctx context.Context, label string, urlBytes int, duration time.Duration, err error)

	// Export events, one pair per report file.
	OnExportStart(ctx context.Context, path string, entries int)
	OnExportComplete(ctx context.Context, path string, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLinkStart(context.Context, string, int)                          {}
func (NoopPipelineHooks) OnLinkComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnExportStart(context.Context, string, int)                        {}
func (NoopPipelineHooks) OnExportComplete(context.Context, string, time.Duration, error)    {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks. A nil h is ignored.
// This should be called once at application startup before any pipeline runs.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op defaults. Mostly useful in tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
