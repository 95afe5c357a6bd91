//go:build windows

package glog

import (
	"os"
	"strings"
)

func lookupUser() string {
	// user.Current is slow on domain joined machines.
	if name := os.Getenv("USERNAME"); name != "" {
		return name
	}
	return strings.TrimSpace(os.Getenv("USER"))
}
