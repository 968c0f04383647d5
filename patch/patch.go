// Package patch applies a user supplied patch to a raw IDL document before
// it is interpreted.
//
// A patch that is a JSON array is an RFC 6902 JSON Patch, a JSON object is
// an RFC 7386 merge patch. The patched document comes back with its object
// keys sorted.
package patch

import (
	"bytes"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/idlts/debug"
)

var ErrPatch = errors.New("patch error")

func Apply(doc, patchDoc []byte) ([]byte, error) {
	p := bytes.TrimSpace(patchDoc)
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty patch", ErrPatch)
	}
	var (
		out []byte
		err error
	)
	switch p[0] {
	case '[':
		if debug.Patch() {
			debug.Logf("patch: json-patch %s\n", p)
		}
		var ops jsonpatch.Patch
		ops, err = jsonpatch.DecodePatch(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		out, err = ops.Apply(doc)
	case '{':
		if debug.Patch() {
			debug.Logf("patch: merge-patch %s\n", p)
		}
		out, err = jsonpatch.MergePatch(doc, p)
	default:
		return nil, fmt.Errorf("%w: expected a JSON array or object", ErrPatch)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return out, nil
}
