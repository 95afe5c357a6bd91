// Copyright (c) 2024 BVK Chaitanya

package glog

import (
	"errors"
	"fmt"
)

// ErrAlreadyInitialized is returned by Init when a process-wide backend is
// already registered.
var ErrAlreadyInitialized = errors.New("glog: backend is already initialized")

// InitError reports that a log destination could not be set up. Backends are
// never returned together with an InitError.
type InitError struct {
	// Path is the log directory or log file that failed, if known.
	Path string
	Err  error
}

func (e *InitError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("glog: could not initialize: %v", e.Err)
	}
	return fmt.Sprintf("glog: could not initialize %q: %v", e.Path, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// WriteError reports that a record could not be written to one or more of its
// destinations. Destinations that did not fail received the record. Err
// joins the per destination errors.
type WriteError struct {
	Severity Severity
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("glog: could not write %s record: %v", e.Severity, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
