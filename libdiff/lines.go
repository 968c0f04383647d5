// Package libdiff renders line diffs between two texts.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Context is the number of unchanged lines kept around each change.
const Context = 3

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

var prefixes = map[Op]string{
	Equal:  "  ",
	Delete: "- ",
	Insert: "+ ",
}

type Line struct {
	Op   Op
	Text string
}

// Diff returns every line of from and to, tagged with how it changed.
func Diff(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, text := range splitLines(diff.Text) {
			res = append(res, Line{Op: op, Text: text})
		}
	}
	return res
}

// splitLines splits a chunk of whole lines. "\n" is one blank line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Lines renders the changed lines of from -> to with Context lines around
// them. Elided unchanged runs are shown as "  ...". The result is empty
// when from and to are equal.
func Lines(from, to string) string {
	diff := Diff(from, to)
	keep := make([]bool, len(diff))
	changed := false
	for i, l := range diff {
		if l.Op == Equal {
			continue
		}
		changed = true
		for j := max(0, i-Context); j <= min(len(diff)-1, i+Context); j++ {
			keep[j] = true
		}
	}
	if !changed {
		return ""
	}
	buf := &strings.Builder{}
	elided := false
	for i, l := range diff {
		if !keep[i] {
			if !elided {
				buf.WriteString("  ...\n")
				elided = true
			}
			continue
		}
		elided = false
		buf.WriteString(prefixes[l.Op])
		buf.WriteString(l.Text)
		buf.WriteByte('\n')
	}
	return buf.String()
}
