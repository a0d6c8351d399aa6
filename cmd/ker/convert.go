package main

import (
	"github.com/keiraomg0/ker-format/go-ker/encode"
	"github.com/keiraomg0/ker-format/go-ker/ir"
	"github.com/keiraomg0/ker-format/go-ker/parse"
	"github.com/keiraomg0/ker-format/go-ker/plain"

	"github.com/scott-cotton/cli"
)

func kerConvert(cfg *TransformConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Transform.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(args, func(file string, d []byte) error {
		var node *ir.Node
		var err error
		switch {
		case cfg.InFormat.IsJSON():
			node, err = plain.UnmarshalJSON(d)
		case cfg.InFormat.IsYAML():
			node, err = plain.UnmarshalYAML(d)
		default:
			node, err = parse.Parse(d)
		}
		if err != nil {
			return err
		}
		switch {
		case cfg.OutFormat.IsJSON():
			indent := "  "
			if cfg.Compact {
				indent = ""
			}
			out, err := plain.MarshalJSON(node, indent)
			if err != nil {
				return err
			}
			out = append(out, '\n')
			_, err = cc.Out.Write(out)
			return err
		case cfg.OutFormat.IsYAML():
			out, err := plain.MarshalYAML(node)
			if err != nil {
				return err
			}
			_, err = cc.Out.Write(out)
			return err
		default:
			return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
		}
	})
}
func kerToJSON(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(args, func(file string, d []byte) error {
		node, err := parse.Parse(d)
		if err != nil {
			return err
		}
		indent := "  "
		if cfg.Compact {
			indent = ""
		}
		out, err := plain.MarshalJSON(node, indent)
		if err != nil {
			return err
		}
		out = append(out, '\n')
		_, err = cc.Out.Write(out)
		return err
	})
}

func kerFromJSON(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(args, func(file string, d []byte) error {
		node, err := plain.UnmarshalJSON(d)
		if err != nil {
			return err
		}
		return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
	})
}

func kerToYAML(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(args, func(file string, d []byte) error {
		node, err := parse.Parse(d)
		if err != nil {
			return err
		}
		out, err := plain.MarshalYAML(node)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(out)
		return err
	})
}

func kerFromYAML(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(args, func(file string, d []byte) error {
		node, err := plain.UnmarshalYAML(d)
		if err != nil {
			return err
		}
		return encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
