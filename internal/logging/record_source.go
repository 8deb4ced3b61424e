package logging

import (
	"log/slog"
	"runtime"
)

// recordSource mirrors slog.Record.Source (added in Go 1.25) so the package
// builds with older toolchains.
func recordSource(r slog.Record) *slog.Source {
	if r.PC == 0 {
		return nil
	}
	fs := runtime.CallersFrames([]uintptr{r.PC})
	f, _ := fs.Next()
	return &slog.Source{
		Function: f.Function,
		File:     f.File,
		Line:     f.Line,
	}
}
