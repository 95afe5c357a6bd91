// Copyright (c) 2024 BVK Chaitanya

package cmdutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/bvk/cglog/glog"
)

func TestGlogFlags(t *testing.T) {
	var gf GlogFlags
	fset := flag.NewFlagSet("test", flag.ContinueOnError)
	gf.SetFlags(fset)
	if err := fset.Parse([]string{"-alsologtostderr", "-log_dir", "/tmp/x"}); err != nil {
		t.Fatal(err)
	}
	flags, err := gf.Flags()
	if err != nil {
		t.Fatal(err)
	}
	if !flags.AlsoLogToStderr || flags.LogDir != "/tmp/x" || flags.StderrThreshold != glog.Error {
		t.Fatalf("unexpected flags %+v", flags)
	}
}

func TestGlogFlagsWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glog.toml")
	data := "log_dir = \"/var/log/app\"\nwith_year = true\nstderrthreshold = \"INFO\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	var gf GlogFlags
	fset := flag.NewFlagSet("test", flag.ContinueOnError)
	gf.SetFlags(fset)
	if err := fset.Parse([]string{"-glog-config", path, "-stderrthreshold", "FATAL"}); err != nil {
		t.Fatal(err)
	}
	flags, err := gf.Flags()
	if err != nil {
		t.Fatal(err)
	}
	if flags.LogDir != "/var/log/app" || !flags.WithYear {
		t.Fatalf("file values were not used: %+v", flags)
	}
	if flags.StderrThreshold != glog.Fatal {
		t.Fatalf("command-line flag didn't override the file: %v", flags.StderrThreshold)
	}
}
