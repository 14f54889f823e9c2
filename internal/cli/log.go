// Package cli implements the flowchart command-line interface.
//
// This package provides commands for rendering chart definitions to SVG, PDF
// or PNG, validating them, serving live previews over HTTP and inspecting
// rendered charts in the terminal. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Lay out a definition with Graphviz and write SVG, PDF or PNG
//   - validate: Check definitions without rendering them
//   - inspect: Browse rendered nodes and dispatch simulated events
//   - serve: Serve a directory of definitions as live SVG previews
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports render and request timings. Loggers are passed through
// context.Context.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger: timestamped to the hundredth of a
// second, writing to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times the phases of rendering one chart. Phases are logged at
// debug level with their own duration, and done reports the total at info.
type progress struct {
	logger *log.Logger
	start  time.Time
	last   time.Time
}

// newProgress starts timing with the chart-scoped logger from ctx.
func newProgress(ctx context.Context, fallback *log.Logger) *progress {
	now := time.Now()
	return &progress{logger: loggerFromContext(ctx, fallback), start: now, last: now}
}

// step logs a finished phase and the time since the previous one.
func (p *progress) step(phase string, keyvals ...any) {
	now := time.Now()
	keyvals = append(keyvals, "took", now.Sub(p.last).Round(time.Millisecond))
	p.logger.Debug(phase, keyvals...)
	p.last = now
}

// done logs msg with the elapsed time since the progress was created.
// Example output: "Rendered checkout.svg chart=checkout elapsed=12ms"
func (p *progress) done(msg string) {
	p.logger.Info(msg, "elapsed", time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// withChart scopes the context logger to a chart, so every line logged for
// that chart (including render hooks) carries its name.
func withChart(ctx context.Context, name string, fallback *log.Logger) context.Context {
	return withLogger(ctx, loggerFromContext(ctx, fallback).With("chart", name))
}

// loggerFromContext returns the logger attached to ctx, or fallback. A nil
// fallback means log.Default().
func loggerFromContext(ctx context.Context, fallback *log.Logger) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	if fallback == nil {
		return log.Default()
	}
	return fallback
}
