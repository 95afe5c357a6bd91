// Copyright (c) 2024 BVK Chaitanya

package glog

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

var (
	startOnce sync.Once
	startTime time.Time
)

// processStartTime returns the creation time of the current process as
// reported by the operating system. It returns the zero time when the
// process table is unavailable.
func processStartTime() time.Time {
	startOnce.Do(func() {
		p, err := process.NewProcess(int32(pid))
		if err != nil {
			return
		}
		msecs, err := p.CreateTime()
		if err != nil {
			return
		}
		startTime = time.UnixMilli(msecs)
	})
	return startTime
}

// prettyDuration formats d in h:mm:ss form.
func prettyDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

// appendHeader appends the log file header written at the start of every log
// file.
func appendHeader(dst []byte, now, start time.Time, f *Flags) []byte {
	severities := "IWEF"
	if f.ExtendedSeverities {
		severities = "TDIWEF"
	}
	date := "mmdd"
	if f.WithYear {
		date = "yyyymmdd"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Log file created at: %s\n", now.Format("2006/01/02 15:04:05"))
	fmt.Fprintf(&sb, "Running on machine: %s\n", host)
	if f.Fingerprint != "" {
		fmt.Fprintf(&sb, "Application fingerprint: %s\n", f.Fingerprint)
	}
	fmt.Fprintf(&sb, "Running duration (h:mm:ss): %s\n", prettyDuration(now.Sub(start)))
	fmt.Fprintf(&sb, "Command line: %s\n", strings.Join(os.Args, " "))
	fmt.Fprintf(&sb, "Binary: Built with %s %s for %s/%s\n", runtime.Compiler, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&sb, "Log line format: [%s]%s hh:mm:ss.uuuuuu threadid file:line] msg\n", severities, date)
	return append(dst, sb.String()...)
}
