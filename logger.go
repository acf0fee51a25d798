package cub

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so disabled log calls
// return before building attributes.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// current holds the logger shared by cub, imageio and the scene renderer.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger sets the logger used by cub and its sub-packages. It is safe
// to call at any time, from any goroutine. Pass nil to silence logging
// again, which is the default.
//
// Drawing calls never log. Canvas construction, image decoding and
// encoding, and scene rendering log at [slog.LevelDebug]; failures at
// [slog.LevelWarn].
//
//	cub.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set with SetLogger. It is never nil.
func Logger() *slog.Logger {
	return current.Load()
}
