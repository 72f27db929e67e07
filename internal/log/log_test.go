package log_test

import (
	"bytes"
	"log/slog"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ploiu/padmap/internal/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", log.LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, log.ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestLevelFilterRouting(t *testing.T) {
	var normal, errOnly bytes.Buffer
	logger := slog.New(log.NewMulti(
		log.LevelFilter{
			Pass: func(l slog.Level) bool { return l < slog.LevelError },
			H:    slog.NewTextHandler(&normal, nil),
		},
		log.LevelFilter{
			Pass: func(l slog.Level) bool { return l >= slog.LevelError },
			H:    slog.NewTextHandler(&errOnly, nil),
		},
	))

	logger.Info("hello")
	logger.Error("boom")

	assert.Contains(t, normal.String(), "hello")
	assert.NotContains(t, normal.String(), "boom")
	assert.Contains(t, errOnly.String(), "boom")
	assert.NotContains(t, errOnly.String(), "hello")
}

func TestTraceLogger(t *testing.T) {
	var buf bytes.Buffer
	trace := log.NewTrace(&buf)

	trace.Sample("button", 3, 1)
	trace.Sample("axis", 1, -0.25)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	format := regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{3} `)
	assert.Regexp(t, format, string(lines[0]))
	assert.Contains(t, string(lines[0]), "button 3 1")
	assert.Contains(t, string(lines[1]), "axis 1 -0.25")
}

func TestTraceLoggerNilWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		log.NewTrace(nil).Sample("button", 0, 0)
	})
}
