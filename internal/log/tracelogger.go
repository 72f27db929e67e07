package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// TraceLogger records raw input samples as the polling loop observes them,
// one line per state change.
type TraceLogger interface {
	Sample(kind string, id int, value float64)
}

// traceLogger implements TraceLogger with thread-safe writes.
type traceLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewTrace creates a TraceLogger. A nil writer yields a no-op logger.
func NewTrace(w io.Writer) TraceLogger {
	return &traceLogger{w: w}
}

// Sample emits a single timestamped line for one observed control change,
// e.g. "2026/01/02 15:04:05.012 axis 1 -0.504".
func (t *traceLogger) Sample(kind string, id int, value float64) {
	if t.w == nil {
		return
	}
	line := fmt.Sprintf("%s %s %d %g\n",
		time.Now().Format("2006/01/02 15:04:05.000"), kind, id, value)
	t.mu.Lock()
	_, _ = t.w.Write([]byte(line))
	t.mu.Unlock()
}
