// Copyright (c) 2024 BVK Chaitanya

package glog

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"
)

// Additional slog levels for the severities that log/slog doesn't define.
const (
	LevelTrace = slog.Level(-8)
	LevelFatal = slog.Level(12)
)

// severityOf maps a slog level to the severity of the range it falls in.
func severityOf(l slog.Level) Severity {
	switch {
	case l < slog.LevelDebug:
		return Trace
	case l < slog.LevelInfo:
		return Debug
	case l < slog.LevelWarn:
		return Info
	case l < slog.LevelError:
		return Warning
	case l < LevelFatal:
		return Error
	}
	return Fatal
}

// NOTE: Most of the following code follows the slog-handler-guide from the
// golang/example repository.

// groupOrAttrs holds either a group name or a list of slog.Attrs.
type groupOrAttrs struct {
	group string      // group name if non-empty
	attrs []slog.Attr // attrs if non-empty
}

type slogHandler struct {
	backend *Backend

	goas []groupOrAttrs
}

// Handler returns a slog.Handler that logs through the backend. Attributes
// are appended to the message text as key=value pairs.
func (v *Backend) Handler() slog.Handler {
	return &slogHandler{backend: v}
}

func (h *slogHandler) withGroupOrAttrs(goa groupOrAttrs) *slogHandler {
	h2 := *h
	h2.goas = make([]groupOrAttrs, len(h.goas)+1)
	copy(h2.goas, h.goas)
	h2.goas[len(h2.goas)-1] = goa
	return &h2
}

// WithGroup implements the WithGroup method for slog.Handler interface.
func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.withGroupOrAttrs(groupOrAttrs{group: name})
}

// WithAttrs implements the WithAttrs method for slog.Handler interface.
func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.withGroupOrAttrs(groupOrAttrs{attrs: attrs})
}

// Enabled implements the Enabled method for slog.Handler interface.
func (h *slogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return severityOf(level) >= h.backend.flags.MinLogLevel
}

// Handle implements the Handle method for slog.Handler interface.
func (h *slogHandler) Handle(ctx context.Context, r slog.Record) error {
	rec := &Record{
		Severity: severityOf(r.Level),
		Time:     r.Time,
		PID:      pid,
		TID:      gettid(),
		File:     "???",
		Line:     1,
		Message:  h.message(r),
	}
	if rec.Time.IsZero() {
		rec.Time = time.Now()
	}
	if r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		if f.File != "" {
			rec.File, rec.Line = f.File, f.Line
		}
	}
	return h.backend.Log(rec)
}

func (h *slogHandler) message(r slog.Record) string {
	var sb strings.Builder
	sb.WriteString(r.Message)

	// Handle state from WithGroup and WithAttrs.
	goas := h.goas
	if r.NumAttrs() == 0 {
		// If the record has no Attrs, remove groups at the end of the list; they are empty.
		for len(goas) > 0 && goas[len(goas)-1].group != "" {
			goas = goas[:len(goas)-1]
		}
	}

	prefix := ""
	for _, goa := range goas {
		if goa.group != "" {
			prefix += goa.group + "."
		} else {
			for _, a := range goa.attrs {
				appendAttr(&sb, a, prefix)
			}
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, a, prefix)
		return true
	})
	return sb.String()
}

func appendAttr(sb *strings.Builder, a slog.Attr, prefix string) {
	// Resolve the Attr's value before doing anything else.
	a.Value = a.Value.Resolve()
	// Ignore empty Attrs.
	if a.Equal(slog.Attr{}) {
		return
	}

	switch a.Value.Kind() {
	case slog.KindString:
		// Quote string values, to make them easy to parse.
		fmt.Fprintf(sb, " %s%s=%q", prefix, a.Key, a.Value.String())

	case slog.KindTime:
		// Write times in a standard way, without the monotonic time.
		fmt.Fprintf(sb, " %s%s=%s", prefix, a.Key, a.Value.Time().Format(time.RFC3339Nano))

	case slog.KindGroup:
		attrs := a.Value.Group()
		// Ignore empty groups.
		if len(attrs) == 0 {
			return
		}
		if a.Key != "" {
			prefix = prefix + a.Key + "."
		}
		for _, ga := range attrs {
			appendAttr(sb, ga, prefix)
		}

	default:
		fmt.Fprintf(sb, " %s%s=%s", prefix, a.Key, a.Value)
	}
}
