// Package format names the encodings an IDL document may be read in.
package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// FromPath returns YAMLFormat for .yaml and .yml files, JSONFormat
// otherwise.
func FromPath(p string) Format {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return YAMLFormat
	}
	return JSONFormat
}

// ToJSON returns raw as compact JSON. YAML mappings keep their key order.
func ToJSON(f Format, raw []byte) ([]byte, error) {
	switch f {
	case JSONFormat:
		return raw, nil
	case YAMLFormat:
		d, err := yaml.YAMLToJSON(raw)
		if err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		buf := &bytes.Buffer{}
		if err := json.Compact(buf, d); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
}
