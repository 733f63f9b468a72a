package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mermaidlink/pkg/observability"
)

// logHooks reports pipeline events through the CLI logger at debug level.
type logHooks struct {
	observability.NoopPipelineHooks
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnLinkComplete(_ context.Context, label string, urlBytes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("link failed", "diagram", label, "err", err)
		return
	}
	h.logger.Debug("link done", "diagram", label, "url_bytes", urlBytes, "took", d)
}

func (h *logHooks) OnExportComplete(_ context.Context, path string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("export failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("export done", "path", path, "took", d)
}
