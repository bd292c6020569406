// Package log provides the verbose, line-oriented logger used across the
// linter.
package log

import (
	"fmt"
	"io"
	"sync"
)

// Logger writes verbose diagnostic messages when Enabled is true.
// Output goes to the configured writer (typically stderr). A Logger may
// be shared by goroutines; a nil *Logger discards everything.
type Logger struct {
	Enabled bool
	W       io.Writer

	mu sync.Mutex
}

// Printf writes a formatted message to W when Enabled is true.
// It is a no-op when Enabled is false.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || !l.Enabled || l.W == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.W, format+"\n", args...)
}
