package main

import (
	"fmt"
	"io"
	"os"

	"github.com/keiraomg0/ker-format/go-ker/encode"
	"github.com/keiraomg0/ker-format/go-ker/format"
	"github.com/keiraomg0/ker-format/go-ker/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color      bool `cli:"name=color desc='encode with color'"`
	NoComments bool `cli:"name=nc aliases=no-comments desc='drop comments when encoding'"`
	Indent     int  `cli:"name=indent desc='spaces per indent level (default 4)'"`
	Warn       bool `cli:"name=warn desc='report duplicate-key warnings on stderr'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts(warns *[]parse.Warning) []parse.ParseOption {
	res := []parse.ParseOption{}
	if cfg.Warn {
		res = append(res, parse.ParseWarnings(warns))
	}
	return res
}

// baseEncOpts is encOpts without the tty color logic, for output that
// never goes to a terminal (fmt -w).
func (cfg *MainConfig) baseEncOpts() []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeComments(!cfg.NoComments),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.baseEncOpts()
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result back to the input file'"`

	Fmt *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	Compact bool `cli:"name=c desc='compact JSON output'"`

	Convert *cli.Command
}

type TransformConfig struct {
	*MainConfig
	Compact bool `cli:"name=c desc='compact JSON output'"`

	InFormat, OutFormat format.Format

	Transform *cli.Command
}

func (cfg *TransformConfig) fmtFunc(fp *format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = f
		return f, nil
	})
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
