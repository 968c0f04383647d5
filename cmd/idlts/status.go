package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/signadot/idlts/transform"
)

type status struct {
	w        io.Writer
	ok, bad  *color.Color
	del, ins *color.Color
}

// newStatus colors output when forced with -color, or when -color is not
// given and w is a terminal.
func newStatus(w io.Writer, force, set bool) *status {
	st := &status{
		w:   w,
		ok:  color.New(color.FgGreen),
		bad: color.New(color.FgRed, color.Bold),
		del: color.New(color.FgRed),
		ins: color.New(color.FgGreen),
	}
	on := force
	if !set {
		f, isFile := w.(*os.File)
		on = isFile && isatty.IsTerminal(f.Fd())
	}
	for _, c := range []*color.Color{st.ok, st.bad, st.del, st.ins} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return st
}

func (st *status) created(p string) {
	st.ok.Fprintf(st.w, "✓ File created at: %s\n", p)
}

func (st *status) details(res *transform.Result) {
	fmt.Fprintf(st.w, "  IDL version: %s\n", res.Version)
	fmt.Fprintf(st.w, "  Output name: %s\n", res.Artifact.Name)
}

func (st *status) upToDate(p string) {
	st.ok.Fprintf(st.w, "✓ %s is up to date\n", p)
}

func (st *status) missing(p string) {
	st.bad.Fprintf(st.w, "✗ %s does not exist\n", p)
}

func (st *status) stale(p, diff string) {
	st.bad.Fprintf(st.w, "✗ %s is out of date\n", p)
	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "- "):
			st.del.Fprint(st.w, line)
		case strings.HasPrefix(line, "+ "):
			st.ins.Fprint(st.w, line)
		default:
			fmt.Fprint(st.w, line)
		}
	}
}
