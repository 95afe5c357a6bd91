// Copyright (c) 2024 BVK Chaitanya

// Package glog implements a logging backend that writes log records in the
// format of Google's C++ glog library, so that tools built around glog log
// files keep working.
//
// A Backend owns one log file per severity in the log directory. Every file
// starts with the glog header and has a `<program>.<SEVERITY>` symlink that
// always points at the newest file for that severity. Log lines look like
//
//	I0401 12:34:56.987654   123 readme.go:6] It works!
//
// # SEVERITY CASCADE
//
// A record is written to the log file of its own severity and to the files of
// every less severe level. The INFO log has every record, the WARNING log has
// warnings, errors and fatal records, and so on. Records at or above the
// stderrthreshold flag are also copied to the standard error.
//
// All writes are synchronous. A record is on disk (and on the terminal) when
// Log returns, and concurrent records never interleave within a file.
//
// # DIFFERENCES
//
//   - TRACE and DEBUG severities are available when the extended_severities
//     flag is set. Otherwise they are logged as INFO like glog does.
//
//   - The with_year flag adds the year to the timestamp of every line.
//
//   - FATAL records get a backtrace appended, but the process is not
//     aborted. That is left to the caller.
//
//   - Log files are not rotated by size.
//
// # FRONT-END
//
// Backend.Handler adapts the backend to the log/slog package and Init
// installs it as the default slog handler for the process.
package glog
