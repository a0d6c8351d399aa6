package main

import (
	"fmt"
	"io"

	ker "github.com/keiraomg0/ker-format/go-ker"

	"github.com/scott-cotton/cli"
)

func kerDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	from, err := readInput(args[0])
	if err != nil {
		return err
	}
	to, err := readInput(args[1])
	if err != nil {
		return err
	}
	return diffInputs(from, to, cc.Out)
}

// diffInputs writes the diff of two documents to w.  A nonzero exit code
// is signalled by error so the deferred output cleanup still runs.
func diffInputs(from, to []byte, w io.Writer) error {
	out, changed, err := ker.Diff(from, to)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
