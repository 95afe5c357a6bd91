//go:build linux

package glog

import "golang.org/x/sys/unix"

// gettid returns the id of the OS thread running the calling goroutine. The
// goroutine may migrate to another thread right after.
func gettid() int {
	return unix.Gettid()
}
