package canvas

import (
	"log/slog"
	"sync/atomic"
)

// Logging is off until SetLogger installs a logger. Messages never come
// from per-pixel loops; the levels in use are
//
//   - [slog.LevelDebug]: canvas allocation and resize, font resolution,
//     draws skipped because nothing would change
//   - [slog.LevelWarn]: font provider and image decoder failures
//
// A canvas reads the logger on every call, so installing one affects
// canvases that already exist.

// silent drops every record; Enabled is false, so no attributes are built.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger installs l for every canvas in the process. nil turns logging
// back off. It may be called while other goroutines are drawing.
//
//	canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the installed logger, never nil.
func Logger() *slog.Logger { return current.Load() }
