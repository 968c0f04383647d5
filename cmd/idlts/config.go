package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/idlts/format"
	"github.com/signadot/idlts/transform"
	"github.com/signadot/idlts/version"
)

type Config struct {
	*cli.Command

	Out     string `cli:"name=o desc='output file (default: <input dir>/<program name>.ts, - for stdout)'"`
	Patch   string `cli:"name=patch desc='JSON Patch or merge patch file applied to the input first'"`
	Check   bool   `cli:"name=check desc='do not write, fail if the output file is not up to date'"`
	Verbose bool   `cli:"name=v desc='print IDL version and output name'"`
	Color   bool   `cli:"name=color desc='color status output'"`

	TypeName    *string
	Description *string
	Repository  *string
	Version     *version.Version
	InFormat    *format.Format
}

func strFunc(p **string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		*p = &v
		return v, nil
	})
}

func (cfg *Config) versionFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		iv, err := version.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.Version = &iv
		return iv, nil
	})
}

func (cfg *Config) fmtFunc() cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		cfg.InFormat = &f
		return f, nil
	})
}

// options builds pipeline options for the input at path. patchDoc is the
// already decoded patch, if any.
func (cfg *Config) options(path string, patchDoc []byte) transform.Options {
	opts := transform.Options{
		Version:     cfg.Version,
		Description: cfg.Description,
		Repository:  cfg.Repository,
		Format:      inputFormat(cfg.InFormat, path),
		Patch:       patchDoc,
	}
	if cfg.TypeName != nil {
		opts.TypeName = *cfg.TypeName
	}
	return opts
}

func inputFormat(f *format.Format, path string) format.Format {
	if f != nil {
		return *f
	}
	return format.FromPath(path)
}
