package idl

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/idlts/internal/jsonobj"
)

var marshalJSON = jsonobj.Marshal

// requireKeys checks that d is an object holding every key with a
// non-null value.
func requireKeys(what string, d []byte, keys ...string) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(d, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	if m == nil {
		return nil, fmt.Errorf("%s: expected object, got null", what)
	}
	for _, k := range keys {
		v, ok := m[k]
		if !ok || jsonobj.IsNull(v) {
			return nil, fmt.Errorf("%s: missing field %q", what, k)
		}
	}
	return m, nil
}

// kindOf reads the "kind" tag of an internally tagged variant.
func kindOf(what string, d []byte) (map[string]json.RawMessage, string, error) {
	m, err := requireKeys(what, d, "kind")
	if err != nil {
		return nil, "", err
	}
	var kind string
	if err := json.Unmarshal(m["kind"], &kind); err != nil {
		return nil, "", fmt.Errorf("%s kind: %w", what, err)
	}
	return m, kind, nil
}

// single reads the one key of an externally tagged variant.
func single(what string, d []byte) (string, json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(d, &m); err != nil {
		return "", nil, fmt.Errorf("%s: %w", what, err)
	}
	if len(m) != 1 {
		return "", nil, fmt.Errorf("%s: expected exactly one variant key, got %d", what, len(m))
	}
	for k, v := range m {
		return k, v, nil
	}
	panic("unreachable")
}

func decodeField(what string, m map[string]json.RawMessage, key string, v any) error {
	raw, ok := m[key]
	if !ok || jsonobj.IsNull(raw) {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%s %s: %w", what, key, err)
	}
	return nil
}
