// Package version tells the legacy and current IDL shapes apart.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/idlts/debug"
	"github.com/signadot/idlts/idl"
)

type Version int

const (
	// Old is the legacy shape, identified by a root "name".
	Old Version = iota
	// New is the current shape, identified by "metadata.name".
	New
)

var (
	ErrMalformedInput  = idl.ErrMalformedInput
	ErrAmbiguousFormat = errors.New("cannot determine IDL version")
	ErrBadVersion      = errors.New("bad IDL version")
)

func Parse(v string) (Version, error) {
	switch strings.ToLower(v) {
	case "old":
		return Old, nil
	case "new":
		return New, nil
	}
	return 0, fmt.Errorf("%w: %q (want old or new)", ErrBadVersion, v)
}

func (v Version) String() string {
	switch v {
	case Old:
		return "Old"
	case New:
		return "New"
	}
	return fmt.Sprintf("<err: %d is not a version>", int(v))
}

func (v Version) MarshalText() ([]byte, error) {
	switch v {
	case Old:
		return []byte("old"), nil
	case New:
		return []byte("new"), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrBadVersion, int(v))
}

func (v *Version) UnmarshalText(d []byte) error {
	pv, err := Parse(string(d))
	if err != nil {
		return err
	}
	*v = pv
	return nil
}

// Detect reports New when raw has a "metadata.name" key, otherwise Old
// when it has a root "name" key. A null value counts as present. Only
// invalid JSON is ErrMalformedInput; any other document without either key,
// including one that is not an object, is ErrAmbiguousFormat.
func Detect(raw []byte) (Version, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	res, err := detect(doc)
	if debug.Detect() {
		debug.Logf("detect: %v err=%v\n", res, err)
	}
	return res, err
}

func detect(doc any) (Version, error) {
	top, _ := doc.(map[string]any)
	if md, ok := top["metadata"].(map[string]any); ok {
		if _, ok := md["name"]; ok {
			return New, nil
		}
	}
	if _, ok := top["name"]; ok {
		return Old, nil
	}
	return 0, ErrAmbiguousFormat
}

// Resolve returns *override when set, or detects the version of raw.
func Resolve(raw []byte, override *Version) (Version, error) {
	if override != nil {
		if debug.Detect() {
			debug.Logf("detect: forced %v\n", *override)
		}
		return *override, nil
	}
	return Detect(raw)
}
