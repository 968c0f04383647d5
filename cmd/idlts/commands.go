package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "n",
			Aliases:     []string{"idl-type-name"},
			Description: "exported type name (default: UpperCamelCase program name)",
			Type:        cli.NamedFuncOpt(strFunc(&cfg.TypeName), "(name)"),
		},
		&cli.Opt{
			Name:        "d",
			Aliases:     []string{"description"},
			Description: "set metadata.description (current format only)",
			Type:        cli.NamedFuncOpt(strFunc(&cfg.Description), "(text)"),
		},
		&cli.Opt{
			Name:        "r",
			Aliases:     []string{"repository"},
			Description: "set metadata.repository (current format only)",
			Type:        cli.NamedFuncOpt(strFunc(&cfg.Repository), "(url)"),
		},
		&cli.Opt{
			Name:        "f",
			Aliases:     []string{"idl-version"},
			Description: "IDL format: old (anchor <= 0.29) or new (default: detect)",
			Type:        cli.NamedFuncOpt(cfg.versionFunc(), "(old|new)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y (default: from file extension)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Command, "idlts").
		WithSynopsis("idlts [opts] <path>").
		WithDescription("idlts converts an Anchor IDL file into a TypeScript type artifact.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}
