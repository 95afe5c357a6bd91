// Copyright (c) 2024 BVK Chaitanya

package glog

import (
	"runtime"
	"strconv"
	"strings"
)

// maxBacktraceSize bounds the memory used for one backtrace. Longer stacks
// are truncated.
const maxBacktraceSize = 1 << 20

// captureBacktrace returns the stack of the calling goroutine as plain text
// ending with a newline. It returns nil when no stack could be captured.
func captureBacktrace() []byte {
	buf := make([]byte, 4096)
	for {
		n := runtime.Stack(buf, false)
		if n < len(buf) || len(buf) >= maxBacktraceSize {
			buf = buf[:n]
			break
		}
		buf = make([]byte, 2*len(buf))
	}
	if len(buf) == 0 {
		return nil
	}
	if buf[len(buf)-1] != '\n' {
		buf = append(buf, '\n')
	}
	return buf
}

// backtraceSite is a parsed log_backtrace_at location.
type backtraceSite struct {
	file string
	line int
}

// parseBacktraceSite parses a file:line location. The file must be a base
// name because log lines only carry base names.
func parseBacktraceSite(s string) (backtraceSite, bool) {
	file, line, ok := strings.Cut(s, ":")
	if !ok || file == "" || strings.ContainsAny(file, `/\`) {
		return backtraceSite{}, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return backtraceSite{}, false
	}
	return backtraceSite{file: file, line: n}, true
}

func (s backtraceSite) match(file string, line int) bool {
	return s.file != "" && s.file == file && s.line == line
}
