// Copyright (c) 2024 BVK Chaitanya

package glog

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestInitOnce(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	flags := DefaultFlags()
	flags.LogDir = t.TempDir()
	b, err := Init(flags, &Options{Program: testProgram, Stderr: new(syncBuffer)})
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()

	slog.Warn("through the default logger")

	flags2 := DefaultFlags()
	flags2.LogDir = t.TempDir()
	again, err := Init(flags2, nil)
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second Init returned %v, want ErrAlreadyInitialized", err)
	}
	if again != b {
		t.Fatalf("second Init didn't return the existing backend")
	}
	if got := again.Flags().LogDir; got != flags.LogDir {
		t.Fatalf("second Init replaced the log directory with %q", got)
	}

	msgs := logMessages(t, b.Paths()[Warning])
	if len(msgs) != 1 || !strings.HasPrefix(msgs[0], "through the default logger") {
		t.Fatalf("WARNING log has %q", msgs)
	}
}
