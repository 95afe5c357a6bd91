//go:build !linux

package glog

func gettid() int {
	return pid
}
