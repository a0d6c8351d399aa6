package main

import (
	"fmt"
	"runtime/debug"

	"github.com/scott-cotton/cli"
)

// Version is set via -ldflags on release builds.
var Version = ""

func kerVersion(cc *cli.Context) error {
	v := Version
	if v == "" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			v = bi.Main.Version
		}
	}
	if v == "" {
		v = "(devel)"
	}
	fmt.Fprintf(cc.Out, "ker %s\n", v)
	return nil
}
