// Package observability provides hooks for tracing and logging analysis runs.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. The command line registers
// hooks at startup to receive events about scanning and cycle detection; the
// analysis packages only ever call the hooks.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetScanHooks(&myScanHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Scan().OnScanStart(ctx, root)
//	// ... walk and extract ...
//	observability.Scan().OnScanComplete(ctx, root, files, edges, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Scan Hooks
// =============================================================================

// ScanHooks receives events while the dependency graph is built.
type ScanHooks interface {
	OnScanStart(ctx context.Context, root string)

	// OnFileScanned fires once per source file whose includes were extracted.
	// refs counts the cross-directory references the file contributed.
	OnFileScanned(ctx context.Context, path string, refs int)

	// OnFileSkipped fires when a file could not be read and was left out.
	OnFileSkipped(ctx context.Context, path string, err error)

	OnScanComplete(ctx context.Context, root string, files, edges int, duration time.Duration, err error)
}

// =============================================================================
// Detect Hooks
// =============================================================================

// DetectHooks receives events from cycle detection.
type DetectHooks interface {
	OnDetectStart(ctx context.Context, nodes int)

	// OnDetectComplete reports the witnessing path length, or 0 when the
	// graph is acyclic.
	OnDetectComplete(ctx context.Context, cycleLen int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopScanHooks is a no-op implementation of ScanHooks.
type NoopScanHooks struct{}

func (NoopScanHooks) OnScanStart(context.Context, string)          {}
func (NoopScanHooks) OnFileScanned(context.Context, string, int)   {}
func (NoopScanHooks) OnFileSkipped(context.Context, string, error) {}
func (NoopScanHooks) OnScanComplete(context.Context, string, int, int, time.Duration, error) {
}

// NoopDetectHooks is a no-op implementation of DetectHooks.
type NoopDetectHooks struct{}

func (NoopDetectHooks) OnDetectStart(context.Context, int)                  {}
func (NoopDetectHooks) OnDetectComplete(context.Context, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	scanHooks   ScanHooks   = NoopScanHooks{}
	detectHooks DetectHooks = NoopDetectHooks{}
	hooksMu     sync.RWMutex
)

// SetScanHooks registers custom scan hooks.
// This should be called once at application startup before any analysis runs.
func SetScanHooks(h ScanHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scanHooks = h
	}
}

// SetDetectHooks registers custom cycle-detection hooks.
func SetDetectHooks(h DetectHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		detectHooks = h
	}
}

// Scan returns the registered scan hooks.
func Scan() ScanHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scanHooks
}

// Detect returns the registered detect hooks.
func Detect() DetectHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return detectHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	scanHooks = NoopScanHooks{}
	detectHooks = NoopDetectHooks{}
}
