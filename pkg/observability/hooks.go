// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline execution and board file access.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the library packages
// never import a metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetFileHooks(&myFileHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnGenerateStart(ctx, shape)
//	// ... build the grid ...
//	observability.Pipeline().OnGenerateComplete(ctx, shape, cells, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the board pipeline.
type PipelineHooks interface {
	// Generate events. source is a shape description or an input file path.
	OnGenerateStart(ctx context.Context, source string)
	OnGenerateComplete(ctx context.Context, source string, cells int, duration time.Duration, err error)

	// Layout events
	OnLayoutStart(ctx context.Context, cells int)
	OnLayoutComplete(ctx context.Context, hexagons int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// File Hooks
// =============================================================================

// FileHooks receives events for board and image files read or written.
type FileHooks interface {
	// OnFileRead records a file read. size is 0 when err is set.
	OnFileRead(ctx context.Context, path string, size int, err error)

	// OnFileWrite records a file write.
	OnFileWrite(ctx context.Context, path string, size int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnGenerateStart(context.Context, string) {}
func (NoopPipelineHooks) OnGenerateComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int)                               {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error)      {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopFileHooks is a no-op implementation of FileHooks.
type NoopFileHooks struct{}

func (NoopFileHooks) OnFileRead(context.Context, string, int, error)  {}
func (NoopFileHooks) OnFileWrite(context.Context, string, int, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	fileHooks     FileHooks     = NoopFileHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetFileHooks registers custom file hooks.
// This should be called once at application startup before any file access.
func SetFileHooks(h FileHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		fileHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Files returns the registered file hooks.
func Files() FileHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return fileHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	fileHooks = NoopFileHooks{}
}
