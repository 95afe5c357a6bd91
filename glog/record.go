// Copyright (c) 2024 BVK Chaitanya

package glog

import (
	"runtime"
	"time"
)

// Record is a single log event. Records are created once per logging call
// and are not modified after they are handed to a Backend.
type Record struct {
	Severity Severity
	Time     time.Time

	PID int
	TID int

	// File is the source file name. Directory components are ignored when the
	// record is rendered.
	File string
	Line int

	Message string
}

// NewRecord creates a record located at the caller of NewRecord. Non-zero
// calldepth skips that many additional stack frames.
func NewRecord(sev Severity, calldepth int, msg string) *Record {
	r := &Record{
		Severity: sev,
		Time:     time.Now(),
		PID:      pid,
		TID:      gettid(),
		Message:  msg,
	}
	if _, file, line, ok := runtime.Caller(calldepth + 1); ok {
		r.File, r.Line = file, line
	} else {
		r.File, r.Line = "???", 1
	}
	return r
}

// location returns the short source file name and line of the record.
func (r *Record) location() (string, int) {
	file := r.File
	for i := len(file) - 1; i >= 0; i-- {
		if file[i] == '/' || file[i] == '\\' {
			file = file[i+1:]
			break
		}
	}
	if file == "" {
		file = "???"
	}
	return file, r.Line
}
