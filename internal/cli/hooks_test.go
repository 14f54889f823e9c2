package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/flowchart/pkg/observability"
)

func TestSetLogLevelRegistersHooks(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.SetLogLevel(LogInfo)
	if _, ok := observability.Render().(*logHooks); ok {
		t.Fatal("info level should not register log hooks")
	}

	c.SetLogLevel(LogDebug)
	if _, ok := observability.Render().(*logHooks); !ok {
		t.Error("debug level should register render hooks")
	}
	if _, ok := observability.HTTP().(*logHooks); !ok {
		t.Error("debug level should register HTTP hooks")
	}
}

func TestLogHooks(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(h *logHooks)
		want string
	}{
		{"render start", func(h *logHooks) { h.OnRenderStart(ctx, "fchart", 2, 1) }, "render started"},
		{"layout", func(h *logHooks) { h.OnLayoutComplete(ctx, "fchart", time.Millisecond, nil) }, "layout complete"},
		{"layout error", func(h *logHooks) { h.OnLayoutComplete(ctx, "fchart", 0, errors.New("boom")) }, "boom"},
		{"bind", func(h *logHooks) { h.OnBindComplete(ctx, "fchart", 2, 3) }, "listeners=3"},
		{"complete", func(h *logHooks) { h.OnRenderComplete(ctx, "fchart", 220, 80, time.Millisecond, nil) }, "width=220"},
		{"request", func(h *logHooks) { h.OnRequest(ctx, "GET", "/healthz") }, "/healthz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.call(&logHooks{logger: newLogger(&buf, log.DebugLevel)})
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q should contain %q", buf.String(), tt.want)
			}
		})
	}
}
