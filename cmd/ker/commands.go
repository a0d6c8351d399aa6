package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "ker").
		WithSynopsis("ker [opts] command [opts]").
		WithDescription("ker is a tool for working with ker configuration documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kerMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			ViewCommand(cfg),
			ConvertCommand(cfg),
			ToJSONCommand(cfg),
			FromJSONCommand(cfg),
			ToYAMLCommand(cfg),
			FromYAMLCommand(cfg),
			DiffCommand(cfg),
			VersionCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] [files]").
		WithDescription("reformat ker documents canonically, preserving comments").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kerFmt(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view ker documents in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return kerView(cfg, cc, args)
		})
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TransformConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: ker/k, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: ker/k, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		})
	return cli.NewCommandAt(&cfg.Transform, "convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [-I fmt] [-O fmt] [files]").
		WithDescription("convert between ker, JSON and YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kerConvert(cfg, cc, args)
		})
}

func ToJSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Convert, "to-json").
		WithAliases("tj").
		WithSynopsis("to-json [-c] [files]").
		WithDescription("convert ker documents to JSON (comments are dropped)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kerToJSON(cfg, cc, args)
		})
}

func FromJSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "from-json").
		WithAliases("fj").
		WithSynopsis("from-json [files]").
		WithDescription("convert JSON objects to canonical ker").
		WithRun(func(cc *cli.Context, args []string) error {
			return kerFromJSON(cfg, cc, args)
		})
}

func ToYAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "to-yaml").
		WithAliases("ty").
		WithSynopsis("to-yaml [files]").
		WithDescription("convert ker documents to YAML (comments are dropped)").
		WithRun(func(cc *cli.Context, args []string) error {
			return kerToYAML(cfg, cc, args)
		})
}

func FromYAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "from-yaml").
		WithAliases("fy").
		WithSynopsis("from-yaml [files]").
		WithDescription("convert YAML mappings to canonical ker").
		WithRun(func(cc *cli.Context, args []string) error {
			return kerFromYAML(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff a.ker b.ker").
		WithDescription("diff ker documents by their canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return kerDiff(cfg, cc, args)
		})
}

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("version").
		WithSynopsis("version").
		WithDescription("print the ker tool version").
		WithRun(func(cc *cli.Context, args []string) error {
			return kerVersion(cc)
		})
}
