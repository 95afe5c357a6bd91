// Copyright (c) 2024 BVK Chaitanya

package glog

import (
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSeverityOf(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  Severity
	}{
		{LevelTrace, Trace},
		{slog.LevelDebug - 1, Trace},
		{slog.LevelDebug, Debug},
		{slog.LevelInfo, Info},
		{slog.LevelInfo + 2, Info},
		{slog.LevelWarn, Warning},
		{slog.LevelError, Error},
		{LevelFatal, Fatal},
		{LevelFatal + 100, Fatal},
	}
	for _, test := range tests {
		if got := severityOf(test.level); got != test.want {
			t.Errorf("severityOf(%v) = %v, want %v", test.level, got, test.want)
		}
	}
}

func TestHandler(t *testing.T) {
	b, _ := newTestBackend(t, nil)
	logger := slog.New(b.Handler())

	logger.Info("info message", "key", "value", "one", 1)
	logger.WithGroup("g").With("a", 1).Warn("warning message", "b", 2)
	logger.Info("info message with group", slog.Group("g1", slog.Group("g2", slog.Int("a", 1))))
	logger.Debug("debug message is dropped")
	logger.Log(context.Background(), LevelFatal, "fatal message")

	_, lines := readLog(t, b.Paths()[Info])
	var got []string
	for _, line := range lines {
		if !strings.Contains(line, "] ") {
			continue // backtrace
		}
		if !strings.Contains(line, " handler_test.go:") {
			t.Fatalf("log line has wrong source location: %q", line)
		}
		_, msg, _ := strings.Cut(line, "] ")
		got = append(got, line[:1]+" "+msg)
	}
	want := []string{
		`I info message key="value" one=1`,
		`W warning message g.a=1 g.b=2`,
		`I info message with group g1.g2.a=1`,
		`F fatal message`,
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("got\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}

	if msgs := logMessages(t, b.Paths()[Fatal]); len(msgs) == 0 || msgs[0] != "fatal message" {
		t.Fatalf("FATAL log has %q", msgs)
	}
}

func TestHandlerEnabled(t *testing.T) {
	b, _ := newTestBackend(t, func(f *Flags) {
		f.MinLogLevel = Warning
	})
	h := b.Handler()

	ctx := context.Background()
	if h.Enabled(ctx, slog.LevelInfo) {
		t.Fatalf("info is enabled with minloglevel WARNING")
	}
	if !h.Enabled(ctx, slog.LevelWarn) || !h.Enabled(ctx, LevelFatal) {
		t.Fatalf("warnings are disabled with minloglevel WARNING")
	}
}
