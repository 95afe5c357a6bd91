// Copyright (c) 2024 BVK Chaitanya

package cmdutil

import (
	"flag"
	"fmt"

	"github.com/bvk/cglog/glog"
)

// GlogFlags collects glog flags from the command-line and an optional TOML
// file. Flags set on the command-line override the file.
type GlogFlags struct {
	flags      glog.Flags
	configPath string

	fset *flag.FlagSet
}

func (gf *GlogFlags) SetFlags(fset *flag.FlagSet) {
	gf.flags = glog.DefaultFlags()
	gf.flags.RegisterFlags(fset)
	fset.StringVar(&gf.configPath, "glog-config", "", "path to a TOML file with glog flags")
	gf.fset = fset
}

// Flags returns the effective glog flags.
func (gf *GlogFlags) Flags() (glog.Flags, error) {
	if gf.configPath == "" {
		return gf.flags, nil
	}
	flags, err := glog.LoadFlags(gf.configPath)
	if err != nil {
		return flags, err
	}

	// Re-apply the flags given on the command-line on top of the file.
	override := flag.NewFlagSet("override", flag.ContinueOnError)
	flags.RegisterFlags(override)
	var lastErr error
	gf.fset.Visit(func(f *flag.Flag) {
		if override.Lookup(f.Name) == nil {
			return
		}
		if err := override.Set(f.Name, f.Value.String()); err != nil {
			lastErr = fmt.Errorf("could not apply flag -%s: %w", f.Name, err)
		}
	})
	if lastErr != nil {
		return flags, lastErr
	}
	return flags, nil
}
