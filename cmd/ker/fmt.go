package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/keiraomg0/ker-format/go-ker/encode"
	"github.com/keiraomg0/ker-format/go-ker/parse"

	"github.com/scott-cotton/cli"
)

func kerFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(args, func(file string, d []byte) error {
		var warns []parse.Warning
		node, err := parse.Parse(d, cfg.parseOpts(&warns)...)
		if err != nil {
			return err
		}
		reportWarnings(cfg.MainConfig, file, warns)
		if cfg.Write && file != "-" {
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(node, buf, cfg.baseEncOpts()...); err != nil {
				return err
			}
			return os.WriteFile(file, buf.Bytes(), 0644)
		}
		return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
	})
}

func reportWarnings(cfg *MainConfig, file string, warns []parse.Warning) {
	if !cfg.Warn {
		return
	}
	for _, w := range warns {
		fmt.Fprintf(os.Stderr, "%s: warning: %s\n", file, w)
	}
}
