// Copyright (c) 2024 BVK Chaitanya

package glog

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

const (
	colorRed    = "\033[0;31m"
	colorYellow = "\033[0;33m"
	colorReset  = "\033[m"
)

// stderrSink is the terminal destination. Lines are colored by severity when
// requested and supported.
type stderrSink struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte

	color bool
}

func newStderrSink(w io.Writer, color bool) *stderrSink {
	return &stderrSink{
		w:     w,
		color: color && colorSupported(w),
	}
}

// colorSupported reports whether w understands ANSI escape sequences. Writers
// other than files are assumed to be terminal emulators.
func colorSupported(w io.Writer) bool {
	fp, ok := w.(*os.File)
	if !ok {
		return true
	}
	if !term.IsTerminal(int(fp.Fd())) {
		return false
	}
	switch os.Getenv("TERM") {
	case "", "dumb":
		return false
	}
	return true
}

func severityColor(s Severity) string {
	switch {
	case s >= Error:
		return colorRed
	case s == Warning:
		return colorYellow
	}
	return ""
}

func (s *stderrSink) write(sev Severity, line, backtrace []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.buf[:0]
	if c := severityColor(sev); s.color && c != "" {
		b = append(b, c...)
		b = append(b, line...)
		b = append(b, colorReset...)
	} else {
		b = append(b, line...)
	}
	b = append(b, backtrace...)
	s.buf = b

	_, err := s.w.Write(b)
	return err
}
