// Copyright (c) 2024 BVK Chaitanya

package glog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Options holds the process level settings of a Backend that are not glog
// flags.
type Options struct {
	// Stderr is the terminal destination. Defaults to os.Stderr.
	Stderr io.Writer

	// Program is the program name used in log file and symlink names.
	// Defaults to the base name of os.Args[0] up to the first period.
	Program string

	// Now returns the current time for file names and headers. Defaults to
	// time.Now.
	Now func() time.Time
}

func (v *Options) setDefaults() {
	if v.Stderr == nil {
		v.Stderr = os.Stderr
	}
	if v.Program == "" {
		v.Program = program
	}
	if v.Now == nil {
		v.Now = time.Now
	}
}

// Backend renders log records in glog format and writes them to per-severity
// log files and the standard error.
type Backend struct {
	flags Flags
	opts  Options

	program string
	start   time.Time

	site backtraceSite

	files  map[Severity]*levelFile
	routes [numSeverities]route

	stderr *stderrSink

	closeOnce sync.Once
	closeErr  error
}

var (
	initMu  sync.Mutex
	current *Backend
)

// Init creates the process-wide backend and installs it as the log/slog
// default handler. Init can succeed only once; later calls return the
// existing backend with ErrAlreadyInitialized and change nothing.
func Init(flags Flags, opts *Options) (*Backend, error) {
	initMu.Lock()
	defer initMu.Unlock()

	if current != nil {
		return current, ErrAlreadyInitialized
	}
	v, err := New(flags, opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(v.Handler()))
	current = v
	return v, nil
}

// New creates a backend with the given flags. All log files are created
// eagerly with their headers and symlinks, so any failure to set up a
// destination is reported here as an *InitError.
func New(flags Flags, opts *Options) (*Backend, error) {
	if err := flags.Validate(); err != nil {
		return nil, &InitError{Err: err}
	}

	v := &Backend{
		flags: flags,
		files: make(map[Severity]*levelFile),
	}
	if opts != nil {
		v.opts = *opts
	}
	v.opts.setDefaults()
	v.program = v.opts.Program

	if v.start = processStartTime(); v.start.IsZero() {
		v.start = v.opts.Now()
	}
	if site, ok := parseBacktraceSite(flags.LogBacktraceAt); ok {
		v.site = site
	}
	v.stderr = newStderrSink(v.opts.Stderr, flags.ColorLogToStderr)

	if sevs := v.fileSeverities(); len(sevs) > 0 {
		if err := os.MkdirAll(flags.LogDir, 0755); err != nil {
			return nil, &InitError{Path: flags.LogDir, Err: err}
		}
		now := v.opts.Now()
		for _, s := range sevs {
			lf := v.newLevelFile(s)
			if err := lf.rotate(now); err != nil {
				for _, created := range v.files {
					created.remove()
				}
				return nil, &InitError{Path: flags.LogDir, Err: err}
			}
			v.files[s] = lf
		}
	}
	v.buildRoutes()
	return v, nil
}

// Flags returns the flags in effect.
func (v *Backend) Flags() Flags {
	return v.flags
}

// bufs is a pool of byte slices used in formatting log lines.
var bufs = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

// Log writes the record to all of its destinations before returning. Records
// below the minimum log level are ignored. Failed destinations are reported
// with a *WriteError, but never stop the record from reaching the others.
func (v *Backend) Log(r *Record) error {
	if r.Severity < v.flags.MinLogLevel {
		return nil
	}
	rt := v.routeOf(r.Severity)

	bufp := bufs.Get().(*[]byte)
	defer bufs.Put(bufp)
	line := AppendLine((*bufp)[:0], r, &v.flags)
	*bufp = line

	var backtrace []byte
	if r.Severity >= Fatal || v.site.match(r.location()) {
		backtrace = captureBacktrace()
	}

	var errs []error
	if rt.stderr {
		if err := v.stderr.write(r.Severity, line, backtrace); err != nil {
			errs = append(errs, fmt.Errorf("stderr: %w", err))
		}
	}
	for _, lf := range rt.files {
		if err := lf.append(line, backtrace); err != nil {
			errs = append(errs, fmt.Errorf("%s log file: %w", lf.level, err))
		}
	}
	if len(errs) > 0 {
		return &WriteError{Severity: r.Severity, Err: errors.Join(errs...)}
	}
	return nil
}

// Logf formats a message and logs it with the caller's source location.
func (v *Backend) Logf(sev Severity, format string, args ...any) error {
	return v.Log(NewRecord(sev, 1, fmt.Sprintf(format, args...)))
}

// Rotate forces a new log file for the severity. The new file gets its own
// header and the severity symlink is moved to it. Rotate fails with
// os.ErrClosed after Close.
func (v *Backend) Rotate(sev Severity) error {
	lf, ok := v.files[sev.fold(v.flags.ExtendedSeverities)]
	if !ok {
		return fmt.Errorf("no log file for severity %s: %w", sev, os.ErrNotExist)
	}
	return lf.rotate(v.opts.Now())
}

// Paths returns the current log file path for every severity that has a log
// file.
func (v *Backend) Paths() map[Severity]string {
	m := make(map[Severity]string, len(v.files))
	for s, lf := range v.files {
		m[s] = lf.Path()
	}
	return m
}

// Flush commits the log file contents to stable storage.
func (v *Backend) Flush() error {
	var errs []error
	for _, s := range Severities {
		if lf, ok := v.files[s]; ok {
			if err := lf.sync(); err != nil {
				errs = append(errs, fmt.Errorf("%s log file: %w", s, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Close flushes and closes all log files. Records logged after Close fail
// with os.ErrClosed.
func (v *Backend) Close() error {
	v.closeOnce.Do(func() {
		errs := []error{v.Flush()}
		for s, lf := range v.files {
			if err := lf.close(); err != nil {
				errs = append(errs, fmt.Errorf("%s log file: %w", s, err))
			}
		}
		v.closeErr = errors.Join(errs...)
	})
	return v.closeErr
}
