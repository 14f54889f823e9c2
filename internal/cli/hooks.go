package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports render and request events to a logger at debug level.
// A logger attached to the event's context takes precedence, so chart
// renders are logged with their chart name.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) from(ctx context.Context) *log.Logger {
	return loggerFromContext(ctx, h.logger)
}

func (h *logHooks) OnRenderStart(ctx context.Context, chartID string, nodes, edges int) {
	h.from(ctx).Debug("render started", "surface", chartID, "nodes", nodes, "edges", edges)
}

func (h *logHooks) OnLayoutComplete(ctx context.Context, chartID string, d time.Duration, err error) {
	if err != nil {
		h.from(ctx).Debug("layout failed", "surface", chartID, "err", err)
		return
	}
	h.from(ctx).Debug("layout complete", "surface", chartID, "duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnBindComplete(ctx context.Context, chartID string, nodes, listeners int) {
	h.from(ctx).Debug("bound nodes", "surface", chartID, "nodes", nodes, "listeners", listeners)
}

func (h *logHooks) OnRenderComplete(ctx context.Context, chartID string, width, height float64, d time.Duration, err error) {
	if err != nil {
		return
	}
	h.from(ctx).Debug("render complete", "surface", chartID, "width", width, "height", height, "duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnRequest(ctx context.Context, method, path string) {
	h.from(ctx).Debug("request started", "method", method, "path", path)
}

func (h *logHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
