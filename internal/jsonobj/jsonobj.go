// Package jsonobj holds JSON objects whose members keep their input order.
package jsonobj

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrNotObject = errors.New("not a JSON object")

type Member struct {
	Key   string
	Value json.RawMessage
}

// Object is a JSON object. Member values are held compacted.
type Object []Member

func Parse(d []byte) (Object, error) {
	var o Object
	if err := o.decode(d, true); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Object) UnmarshalJSON(d []byte) error {
	if IsNull(d) {
		return nil
	}
	return o.decode(d, false)
}

func (o *Object) decode(d []byte, top bool) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: got %s", ErrNotObject, describe(tok))
	}
	res := Object{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("value of %q: %w", key, err)
		}
		buf := &bytes.Buffer{}
		if err := json.Compact(buf, v); err != nil {
			return fmt.Errorf("value of %q: %w", key, err)
		}
		res = append(res, Member{Key: key, Value: buf.Bytes()})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if top {
		if _, err := dec.Token(); err != io.EOF {
			return fmt.Errorf("unexpected data after top-level object")
		}
	}
	*o = res
	return nil
}

func describe(tok json.Token) string {
	switch x := tok.(type) {
	case json.Delim:
		if x == '[' {
			return "array"
		}
		return string(x)
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", tok)
}

// Get returns the value of the last member named key.
func (o Object) Get(key string) (json.RawMessage, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present with a non-null value.
func (o Object) Has(key string) bool {
	v, ok := o.Get(key)
	return ok && !IsNull(v)
}

// Set replaces the value of key in place, or appends it.
func (o *Object) Set(key string, v json.RawMessage) {
	for i := len(*o) - 1; i >= 0; i-- {
		if (*o)[i].Key == key {
			(*o)[i].Value = v
			return
		}
	}
	*o = append(*o, Member{Key: key, Value: v})
}

func (o Object) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		if len(m.Value) == 0 {
			buf.WriteString("null")
			continue
		}
		buf.Write(m.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Marshal is json.Marshal without HTML escaping.
func Marshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

func IsNull(d []byte) bool {
	return bytes.Equal(bytes.TrimSpace(d), []byte("null"))
}
