package idl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Bytes is a byte string encoded as a JSON array of integers, as used for
// discriminators and constant seeds.
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('[')
	for i, c := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Itoa(int(c)))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (b *Bytes) UnmarshalJSON(d []byte) error {
	var ns []int
	if err := json.Unmarshal(d, &ns); err != nil {
		return fmt.Errorf("bytes: %w", err)
	}
	if ns == nil {
		*b = nil
		return nil
	}
	res := make(Bytes, len(ns))
	for i, n := range ns {
		if n < 0 || n > 255 {
			return fmt.Errorf("bytes: element %d out of range: %d", i, n)
		}
		res[i] = byte(n)
	}
	*b = res
	return nil
}
