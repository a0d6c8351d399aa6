package main

import (
	"github.com/keiraomg0/ker-format/go-ker/encode"
	"github.com/keiraomg0/ker-format/go-ker/parse"

	"github.com/scott-cotton/cli"
)

func kerView(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(args, func(file string, d []byte) error {
		node, err := parse.Parse(d)
		if err != nil {
			return err
		}
		opts := []encode.EncodeOption{
			encode.EncodeComments(!cfg.NoComments),
			encode.EncodeColors(encode.NewColors()),
		}
		if cfg.Indent > 0 {
			opts = append(opts, encode.EncodeIndent(cfg.Indent))
		}
		return encode.Encode(node, cc.Out, opts...)
	})
}
