package geoviz

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that the
// intersection functions stay safe to call from any goroutine while
// SetLogger runs.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for geoviz and its sub-packages.
// By default, geoviz produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by geoviz:
//   - [slog.LevelDebug]: degenerate engine input, completed shapes
//   - [slog.LevelInfo]: surface clear and bulk load
//   - [slog.LevelWarn]: shapes that could not be indexed
//
// Example:
//
//	geoviz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by geoviz.
// The surface and loader packages call this to share the configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
