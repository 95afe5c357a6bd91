// Copyright (c) 2024 BVK Chaitanya

package main

import (
	"context"
	"log"
	"os"

	"github.com/bvk/cglog/subcmds"
	"github.com/visvasity/cli"
)

func main() {
	cmds := []cli.Command{
		new(subcmds.Emit),
		new(subcmds.ShowFlags),
	}
	if err := cli.Run(context.Background(), cmds, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
