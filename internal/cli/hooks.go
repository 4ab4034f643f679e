package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/includecycle/pkg/observability"
)

// logHooks writes analysis events to the logger at debug level.
type logHooks struct {
	observability.NoopScanHooks
	observability.NoopDetectHooks
	logger *log.Logger
}

func (h *logHooks) OnFileScanned(_ context.Context, path string, refs int) {
	h.logger.Debug("scanned file", "path", path, "refs", refs)
}

func (h *logHooks) OnFileSkipped(_ context.Context, path string, err error) {
	h.logger.Debug("skipped file", "path", path, "err", err)
}

func (h *logHooks) OnDetectComplete(_ context.Context, cycleLen int, d time.Duration) {
	h.logger.Debug("cycle detection finished", "cycle_len", cycleLen, "duration", d)
}
