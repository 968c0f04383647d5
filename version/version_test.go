package version

import (
	"errors"
	"testing"
)

func TestDetect(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Version
		err  error
	}{
		{in: `{"metadata": {"name": "p"}}`, want: New},
		{in: `{"name": "p", "metadata": {"name": "q"}}`, want: New},
		{in: `{"name": "p"}`, want: Old},
		{in: `{"name": "p", "metadata": {"address": "x"}}`, want: Old},
		{in: `{"name": "p", "metadata": 3}`, want: Old},
		{in: `{"name": "p", "metadata": {"name": null}}`, want: New},
		{in: `{"version": "0.1.0"}`, err: ErrAmbiguousFormat},
		{in: `{"name": null}`, want: Old},
		{in: `{"metadata": ["name"]}`, err: ErrAmbiguousFormat},
		{in: `{}`, err: ErrAmbiguousFormat},
		{in: `null`, err: ErrAmbiguousFormat},
		{in: `[1]`, err: ErrAmbiguousFormat},
		{in: `"name"`, err: ErrAmbiguousFormat},
		{in: `{"name": `, err: ErrMalformedInput},
	} {
		got, err := Detect([]byte(tc.in))
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%s: expected %v, got %v", tc.in, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestResolveOverride(t *testing.T) {
	old := Old
	got, err := Resolve([]byte(`not json`), &old)
	if err != nil {
		t.Fatal(err)
	}
	if got != Old {
		t.Errorf("got %v", got)
	}
	got, err = Resolve([]byte(`{"metadata": {"name": "p"}}`), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != New {
		t.Errorf("got %v", got)
	}
}

func TestParse(t *testing.T) {
	for in, want := range map[string]Version{
		"old": Old,
		"OLD": Old,
		"new": New,
		"New": New,
	} {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %v want %v", in, got, want)
		}
	}
	if _, err := Parse("0.30"); !errors.Is(err, ErrBadVersion) {
		t.Errorf("expected ErrBadVersion, got %v", err)
	}
}

func TestText(t *testing.T) {
	for _, v := range []Version{Old, New} {
		d, err := v.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Version
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != v {
			t.Errorf("got %v want %v", back, v)
		}
	}
	if _, err := Version(7).MarshalText(); !errors.Is(err, ErrBadVersion) {
		t.Errorf("expected ErrBadVersion, got %v", err)
	}
	if got := New.String(); got != "New" {
		t.Errorf("String: got %q", got)
	}
}
