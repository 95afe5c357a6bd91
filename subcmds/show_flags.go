// Copyright (c) 2024 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bvk/cglog/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type ShowFlags struct {
	cmdutil.GlogFlags

	validate bool
}

func (c *ShowFlags) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("show-flags", flag.ContinueOnError)
	c.GlogFlags.SetFlags(fset)
	fset.BoolVar(&c.validate, "validate", true, "when true, prints the flags as normalized by the backend")
	return "show-flags", fset, cli.CmdFunc(c.run)
}

func (c *ShowFlags) Purpose() string {
	return "Prints the effective glog flags in TOML format"
}

func (c *ShowFlags) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	flags, err := c.GlogFlags.Flags()
	if err != nil {
		return err
	}
	if c.validate {
		if err := flags.Validate(); err != nil {
			return err
		}
	}
	data, err := flags.TOML()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
