package libdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLinesEqual(t *testing.T) {
	for _, s := range []string{"", "a\n", "a\nb\nc\n"} {
		if got := Lines(s, s); got != "" {
			t.Errorf("%q: expected no diff, got %q", s, got)
		}
	}
}

func TestLines(t *testing.T) {
	from := "export type P = {\n  \"name\": \"a\"\n};\n"
	to := "export type P = {\n  \"name\": \"b\"\n};\n"
	want := "  export type P = {\n" +
		"-   \"name\": \"a\"\n" +
		"+   \"name\": \"b\"\n" +
		"  };\n"
	if diff := cmp.Diff(want, Lines(from, to)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLinesElides(t *testing.T) {
	var a, b []string
	for i := range 20 {
		a = append(a, strings.Repeat("x", i+1))
	}
	b = append(b, a...)
	b[10] = "changed"
	got := Lines(strings.Join(a, "\n")+"\n", strings.Join(b, "\n")+"\n")
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	// elision, 3 context, delete, insert, 3 context, elision
	if len(lines) != 10 {
		t.Fatalf("got %d lines:\n%s", len(lines), got)
	}
	if lines[0] != "  ..." || lines[len(lines)-1] != "  ..." {
		t.Errorf("expected elided ends:\n%s", got)
	}
	if lines[4] != "- "+a[10] || lines[5] != "+ changed" {
		t.Errorf("unexpected change lines:\n%s", got)
	}
}

func TestDiff(t *testing.T) {
	got := Diff("a\nb\n", "a\nc\nb\n")
	want := []Line{{Equal, "a"}, {Insert, "c"}, {Equal, "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLinesBlank(t *testing.T) {
	for _, tc := range []struct {
		from, to, want string
	}{
		{"a\nb\n", "a\n\nb\n", "  a\n+ \n  b\n"},
		{"a\n\nb\n", "a\nb\n", "  a\n- \n  b\n"},
		{"a\n", "a\n\n\n", "  a\n+ \n+ \n"},
	} {
		if diff := cmp.Diff(tc.want, Lines(tc.from, tc.to)); diff != "" {
			t.Errorf("Lines(%q, %q) (-want +got):\n%s", tc.from, tc.to, diff)
		}
	}
}
