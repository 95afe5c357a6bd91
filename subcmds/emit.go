// Copyright (c) 2024 BVK Chaitanya

package subcmds

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/bvk/cglog/glog"
	"github.com/bvk/cglog/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Emit struct {
	cmdutil.GlogFlags

	severity glog.Severity
	count    int
	writers  int
	rotate   bool
}

func (c *Emit) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("emit", flag.ContinueOnError)
	c.GlogFlags.SetFlags(fset)
	c.severity = glog.Info
	fset.Var(&c.severity, "severity", "severity of the emitted records")
	fset.IntVar(&c.count, "count", 10, "number of records per writer")
	fset.IntVar(&c.writers, "writers", 1, "number of concurrent writers")
	fset.BoolVar(&c.rotate, "rotate", false, "when true, starts a new log file halfway through")
	return "emit", fset, cli.CmdFunc(c.run)
}

func (c *Emit) Purpose() string {
	return "Writes log records through the glog backend"
}

func (c *Emit) Description() string {
	return `

Command "emit" initializes the glog backend with the given flags and logs
records from one or more concurrent writers. Non-flag arguments form the
message text. Paths of the log files are printed at the end.

`
}

func (c *Emit) run(ctx context.Context, args []string) error {
	if c.count < 0 || c.writers <= 0 {
		return fmt.Errorf("count must be non-negative and writers must be positive")
	}
	flags, err := c.GlogFlags.Flags()
	if err != nil {
		return err
	}
	backend, err := glog.Init(flags, nil)
	if err != nil {
		return err
	}
	defer backend.Close()

	msg := "hello world"
	if len(args) > 0 {
		msg = strings.Join(args, " ")
	}

	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
		once sync.Once
	)
	for w := 0; w < c.writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			for i := 0; i < c.count; i++ {
				if c.rotate && i == c.count/2 {
					once.Do(func() {
						if err := backend.Rotate(c.severity); err != nil {
							slog.ErrorContext(ctx, "could not rotate log file", "severity", c.severity, "error", err)
						}
					})
				}
				r := glog.NewRecord(c.severity, 0, fmt.Sprintf("%s [writer=%d record=%d]", msg, w, i))
				if err := backend.Log(r); err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
				}
			}
		}(w)
	}
	wg.Wait()

	slog.InfoContext(ctx, "emitted log records", "writers", c.writers, "count", c.count, "errors", len(errs))
	if err := backend.Flush(); err != nil {
		errs = append(errs, err)
	}

	paths := backend.Paths()
	sevs := make([]glog.Severity, 0, len(paths))
	for s := range paths {
		sevs = append(sevs, s)
	}
	sort.Slice(sevs, func(i, j int) bool { return sevs[i] < sevs[j] })
	for _, s := range sevs {
		fmt.Printf("%-8s %s\n", s, paths[s])
	}
	return errors.Join(errs...)
}
