package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"
	"github.com/signadot/idlts/format"
	"github.com/signadot/idlts/libdiff"
	"github.com/signadot/idlts/transform"
)

func run(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one IDL path, got %d", cli.ErrUsage, len(args))
	}
	in := args[0]
	raw, err := readInput(cc.In, in)
	if err != nil {
		return err
	}
	var patchDoc []byte
	if cfg.Patch != "" {
		patchDoc, err = readPatch(cfg.Patch)
		if err != nil {
			return err
		}
	}
	res, err := transform.Run(raw, cfg.options(in, patchDoc))
	if err != nil {
		return fmt.Errorf("%s: %w", displayPath(in), err)
	}
	out := outputPath(cfg.Out, in, res.Artifact.Name)

	st := newStatus(cc.Out, cfg.Color, cfg.colorSet())
	if out == "-" {
		// the artifact owns stdout
		st = newStatus(os.Stderr, cfg.Color, cfg.colorSet())
	}
	if cfg.Check {
		return check(st, out, res)
	}
	if out == "-" {
		if _, err := io.WriteString(cc.Out, res.Artifact.Text); err != nil {
			return err
		}
	} else if err := os.WriteFile(out, []byte(res.Artifact.Text), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", out, err)
	}
	st.created(out)
	if cfg.Verbose {
		st.details(res)
	}
	return nil
}

func (cfg *Config) colorSet() bool {
	for _, opt := range cfg.Opts {
		if opt.Name == "color" {
			return opt.Value != nil
		}
	}
	return false
}

func readInput(stdin io.Reader, p string) ([]byte, error) {
	if p == "-" {
		d, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("could not read file %s: %w", p, err)
	}
	return d, nil
}

func readPatch(p string) ([]byte, error) {
	d, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("could not read patch %s: %w", p, err)
	}
	d, err = format.ToJSON(format.FromPath(p), d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch %s: %w", p, err)
	}
	return d, nil
}

// outputPath is out when given, stdout for stdin input, and otherwise
// <dir of in>/<name>.ts.
func outputPath(out, in, name string) string {
	if out != "" {
		return out
	}
	if in == "-" {
		return "-"
	}
	return filepath.Join(filepath.Dir(in), name+".ts")
}

func displayPath(p string) string {
	if p == "-" {
		return "<stdin>"
	}
	return p
}

// check compares the artifact with what is already at out.
func check(st *status, out string, res *transform.Result) error {
	if out == "-" {
		return fmt.Errorf("%w: -check needs an output file", cli.ErrUsage)
	}
	cur, err := os.ReadFile(out)
	if errors.Is(err, fs.ErrNotExist) {
		st.missing(out)
		return cli.ExitCodeErr(1)
	}
	if err != nil {
		return fmt.Errorf("error reading %s: %w", out, err)
	}
	if bytes.Equal(cur, []byte(res.Artifact.Text)) {
		st.upToDate(out)
		return nil
	}
	st.stale(out, libdiff.Lines(string(cur), res.Artifact.Text))
	return cli.ExitCodeErr(1)
}
