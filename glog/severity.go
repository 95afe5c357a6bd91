// Copyright (c) 2024 BVK Chaitanya

package glog

import (
	"fmt"
	"strconv"
	"strings"
)

// Severity is the importance of a log record. Severities are ordered and the
// order drives the routing of records to log files.
type Severity int8

const (
	Trace Severity = iota - 2
	Debug
	Info
	Warning
	Error
	Fatal
)

const numSeverities = int(Fatal-Trace) + 1

// Severities lists all severities from the least to the most severe.
var Severities = []Severity{Trace, Debug, Info, Warning, Error, Fatal}

var severityNames = []string{"TRACE", "DEBUG", "INFO", "WARNING", "ERROR", "FATAL"}

const severityChars = "TDIWEF"

func (s Severity) valid() bool {
	return s >= Trace && s <= Fatal
}

// String returns the upper-case severity name used in log file names.
func (s Severity) String() string {
	if !s.valid() {
		return "Severity(" + strconv.Itoa(int(s)) + ")"
	}
	return severityNames[s-Trace]
}

// Char returns the one letter severity code that starts every log line.
func (s Severity) Char() byte {
	if !s.valid() {
		return '?'
	}
	return severityChars[s-Trace]
}

// fold maps severities that glog doesn't know about to INFO unless extended
// severities are enabled.
func (s Severity) fold(extended bool) Severity {
	if !extended && s < Info {
		return Info
	}
	return s
}

// ParseSeverity parses severity names (case-insensitive), one letter codes
// and glog's numeric severity values.
func ParseSeverity(s string) (Severity, error) {
	v := strings.TrimSpace(s)
	if n, err := strconv.Atoi(v); err == nil {
		sev := Severity(n)
		if !sev.valid() {
			return 0, fmt.Errorf("severity value %d is out of range", n)
		}
		return sev, nil
	}
	u := strings.ToUpper(v)
	if len(u) == 1 {
		if i := strings.IndexByte(severityChars, u[0]); i >= 0 {
			return Trace + Severity(i), nil
		}
	}
	switch u {
	case "WARN":
		return Warning, nil
	case "ERR":
		return Error, nil
	}
	for i, name := range severityNames {
		if u == name {
			return Trace + Severity(i), nil
		}
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}

// Set implements the flag.Value interface.
func (s *Severity) Set(v string) error {
	sev, err := ParseSeverity(v)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s Severity) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *Severity) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}
