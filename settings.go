package dbc

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
)

var ErrConfig = errors.New("invalid dbc configuration")

var (
	settingsMux sync.RWMutex
	output      io.Writer = os.Stderr
	logger      *slog.Logger
	varFormat   = FormatInline

	writeMux sync.Mutex
)

// SetOutput changes where violation diagnostics are written.
// Passing nil restores the default of [os.Stderr].
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	settingsMux.Lock()
	defer settingsMux.Unlock()
	output = w
}

// SetLogger configures a logger that will record each violation at the error level before panicking.
// Passing nil disables violation logging, which is the default.
func SetLogger(l *slog.Logger) {
	settingsMux.Lock()
	defer settingsMux.Unlock()
	logger = l
}

// SetVarFormat changes how variables are rendered in violation diagnostics.
func SetVarFormat(format VarFormat) {
	settingsMux.Lock()
	defer settingsMux.Unlock()
	varFormat = format
}

// SetTraceback sets the amount of detail printed by the runtime when a violation panic isn't recovered.
// Levels are the same as for GOTRACEBACK, e.g. "single", "all", "system", or "crash".
// This should be called once at startup, since it changes process-wide state.
func SetTraceback(level string) {
	debug.SetTraceback(level)
}

func currentSettings() (io.Writer, *slog.Logger, VarFormat) {
	settingsMux.RLock()
	defer settingsMux.RUnlock()
	return output, logger, varFormat
}

// report writes and logs a violation, but doesn't panic.
func report(v *Violation) {
	out, log, format := currentSettings()
	diag := v.Diagnostic(format)
	writeMux.Lock()
	_, _ = io.WriteString(out, diag)
	writeMux.Unlock()

	if log == nil {
		return
	}
	attrs := make([]any, len(v.Vars))
	for i, vr := range v.Vars {
		attrs[i] = slog.String(vr.Name, render(vr.Value))
	}
	log.LogAttrs(context.Background(), slog.LevelError, "contract violation",
		slog.String("kind", v.Kind.String()),
		slog.String("file", v.File),
		slog.Int("line", v.Line),
		slog.Group("vars", attrs...),
	)
}
