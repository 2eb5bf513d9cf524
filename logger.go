package glyphatlas

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false, so slog
// never formats the message when logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger. Stored atomically so SetLogger may
// race with a bake in progress.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger installs the logger the bake passes report to. The package
// is silent by default; everything it emits is [slog.LevelDebug]
// diagnostics (covered codepoints, fallback patch count, buffer sizes),
// so the handler must enable the debug level to see any output. Passing
// nil restores the silent default.
//
// Safe to call concurrently with Build.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger, or the silent
// default.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
