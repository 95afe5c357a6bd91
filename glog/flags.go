// Copyright (c) 2024 BVK Chaitanya

package glog

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Flags holds the glog behavioral switches. Flags are captured once when a
// Backend is created and are never modified afterwards.
type Flags struct {
	// LogDir is the directory for the log files. Defaults to os.TempDir().
	LogDir string `toml:"log_dir"`

	// LogToStderr sends all records to the standard error and none to the log
	// files. It takes precedence over every file related flag.
	LogToStderr bool `toml:"logtostderr"`

	// AlsoLogToStderr mirrors every record to the standard error in addition
	// to the log files.
	AlsoLogToStderr bool `toml:"alsologtostderr"`

	// ColorLogToStderr colors the standard error output by severity when the
	// terminal supports it.
	ColorLogToStderr bool `toml:"colorlogtostderr"`

	// StderrThreshold is the severity at or above which records are copied to
	// the standard error even when AlsoLogToStderr is false.
	StderrThreshold Severity `toml:"stderrthreshold"`

	// MinLogLevel is the least severity that is logged at all.
	MinLogLevel Severity `toml:"minloglevel"`

	// WithYear adds the four digit year to the date in every log line.
	WithYear bool `toml:"with_year"`

	// ExtendedSeverities keeps TRACE and DEBUG records distinct instead of
	// treating them as INFO.
	ExtendedSeverities bool `toml:"extended_severities"`

	// LogBacktraceAt, when set to "file:line", appends a backtrace to records
	// logged from that source location.
	LogBacktraceAt string `toml:"log_backtrace_at"`

	// LogThreadID renders the thread id instead of the process id.
	LogThreadID bool `toml:"log_thread_id"`

	// Fingerprint is an optional application fingerprint for the file header.
	Fingerprint string `toml:"application_fingerprint"`
}

// DefaultFlags returns the glog defaults.
func DefaultFlags() Flags {
	return Flags{
		StderrThreshold: Error,
		MinLogLevel:     Info,
	}
}

// RegisterFlags binds all fields to command-line flags in the fset using
// glog's flag names.
func (f *Flags) RegisterFlags(fset *flag.FlagSet) {
	fset.StringVar(&f.LogDir, "log_dir", f.LogDir, "If non-empty, write log files in this directory")
	fset.BoolVar(&f.LogToStderr, "logtostderr", f.LogToStderr, "log to standard error instead of files")
	fset.BoolVar(&f.AlsoLogToStderr, "alsologtostderr", f.AlsoLogToStderr, "log to standard error as well as files")
	fset.BoolVar(&f.ColorLogToStderr, "colorlogtostderr", f.ColorLogToStderr, "color messages logged to stderr (if supported by terminal)")
	fset.Var(&f.StderrThreshold, "stderrthreshold", "logs at or above this threshold go to stderr")
	fset.Var(&f.MinLogLevel, "minloglevel", "Messages logged at a lower level than this don't actually get logged anywhere")
	fset.BoolVar(&f.WithYear, "with_year", f.WithYear, "include the year in the log line timestamp")
	fset.BoolVar(&f.ExtendedSeverities, "extended_severities", f.ExtendedSeverities, "keep TRACE and DEBUG as separate severities")
	fset.StringVar(&f.LogBacktraceAt, "log_backtrace_at", f.LogBacktraceAt, "when logging hits line file:N, emit a stack trace")
	fset.BoolVar(&f.LogThreadID, "log_thread_id", f.LogThreadID, "log the thread id instead of the process id")
	fset.StringVar(&f.Fingerprint, "application_fingerprint", f.Fingerprint, "application fingerprint added to the log file headers")
}

// LoadFlags reads glog flags from a TOML file. Fields missing in the file
// keep their default values.
func LoadFlags(path string) (Flags, error) {
	flags := DefaultFlags()
	file, err := os.Open(path)
	if err != nil {
		return flags, fmt.Errorf("open flags file: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&flags); err != nil {
		return flags, fmt.Errorf("parse flags file %q: %w", path, err)
	}
	return flags, nil
}

// Validate checks the flags and normalizes the log directory into an
// absolute path. Callers should start from DefaultFlags because the zero
// Severity is INFO.
func (f *Flags) Validate() error {
	if !f.StderrThreshold.valid() {
		return fmt.Errorf("stderrthreshold %d is out of range", int(f.StderrThreshold))
	}
	if !f.MinLogLevel.valid() {
		return fmt.Errorf("minloglevel %d is out of range", int(f.MinLogLevel))
	}
	if f.LogBacktraceAt != "" {
		if _, ok := parseBacktraceSite(f.LogBacktraceAt); !ok {
			return fmt.Errorf("log_backtrace_at %q must be of the form file:line", f.LogBacktraceAt)
		}
	}
	if f.LogToStderr {
		// Every record goes to stderr already.
		f.AlsoLogToStderr = false
		return nil
	}
	if f.LogDir == "" {
		f.LogDir = os.TempDir()
	}
	dir, err := filepath.Abs(f.LogDir)
	if err != nil {
		return fmt.Errorf("could not determine log_dir %q absolute path: %w", f.LogDir, err)
	}
	f.LogDir = dir
	return nil
}

// TOML returns the flags in TOML format.
func (f *Flags) TOML() ([]byte, error) {
	return toml.Marshal(f)
}
