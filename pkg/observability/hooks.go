// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about conversion runs, artifact writes, and preview serving.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetConversionHooks(&myConversionHooks{})
//	    observability.SetArtifactHooks(&myArtifactHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Conversion().OnDecodeStart(ctx, source)
//	// ... decode the document ...
//	observability.Conversion().OnDecodeComplete(ctx, source, typeCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Conversion Hooks
// =============================================================================

// ConversionHooks receives events from the conversion pipeline.
type ConversionHooks interface {
	// Decode events: introspection JSON into the schema model
	OnDecodeStart(ctx context.Context, source string)
	OnDecodeComplete(ctx context.Context, source string, typeCount int, duration time.Duration, err error)

	// Emit events: schema model into SDL text
	OnEmitStart(ctx context.Context, typeCount int)
	OnEmitComplete(ctx context.Context, byteCount int, duration time.Duration, err error)

	// Graph events: schema model into the visualization graph
	OnGraphStart(ctx context.Context, typeCount int)
	OnGraphComplete(ctx context.Context, nodeCount, edgeCount int, duration time.Duration, err error)

	// Render events: graph into output formats
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Artifact Hooks
// =============================================================================

// ArtifactHooks receives events for files written by a conversion run.
type ArtifactHooks interface {
	// OnArtifactWritten records a completed artifact write.
	OnArtifactWritten(ctx context.Context, format, path string, size int)

	// OnArtifactFailed records an artifact that could not be written.
	OnArtifactFailed(ctx context.Context, format, path string, err error)
}

// =============================================================================
// Server Hooks
// =============================================================================

// ServerHooks receives events from the artifact preview server.
type ServerHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a served HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopConversionHooks is a no-op implementation of ConversionHooks.
type NoopConversionHooks struct{}

func (NoopConversionHooks) OnDecodeStart(context.Context, string) {}
func (NoopConversionHooks) OnDecodeComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopConversionHooks) OnEmitStart(context.Context, int)                                 {}
func (NoopConversionHooks) OnEmitComplete(context.Context, int, time.Duration, error)        {}
func (NoopConversionHooks) OnGraphStart(context.Context, int)                                {}
func (NoopConversionHooks) OnGraphComplete(context.Context, int, int, time.Duration, error)  {}
func (NoopConversionHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopConversionHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopArtifactHooks is a no-op implementation of ArtifactHooks.
type NoopArtifactHooks struct{}

func (NoopArtifactHooks) OnArtifactWritten(context.Context, string, string, int)  {}
func (NoopArtifactHooks) OnArtifactFailed(context.Context, string, string, error) {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	conversionHooks ConversionHooks = NoopConversionHooks{}
	artifactHooks   ArtifactHooks   = NoopArtifactHooks{}
	serverHooks     ServerHooks     = NoopServerHooks{}
	hooksMu         sync.RWMutex
)

// SetConversionHooks registers custom conversion hooks.
// This should be called once at application startup before any conversion runs.
func SetConversionHooks(h ConversionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		conversionHooks = h
	}
}

// SetArtifactHooks registers custom artifact hooks.
// This should be called once at application startup before any conversion runs.
func SetArtifactHooks(h ArtifactHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		artifactHooks = h
	}
}

// SetServerHooks registers custom server hooks.
// This should be called once at application startup before serving begins.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Conversion returns the registered conversion hooks.
func Conversion() ConversionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return conversionHooks
}

// Artifacts returns the registered artifact hooks.
func Artifacts() ArtifactHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return artifactHooks
}

// Server returns the registered server hooks.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	conversionHooks = NoopConversionHooks{}
	artifactHooks = NoopArtifactHooks{}
	serverHooks = NoopServerHooks{}
}
