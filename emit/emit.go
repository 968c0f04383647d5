// Package emit renders IDL documents as TypeScript type artifacts.
package emit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/idlts/casing"
	"github.com/signadot/idlts/debug"
	"github.com/signadot/idlts/idl"
	"github.com/signadot/idlts/legacy"
)

var ErrSerialization = errors.New("serialization error")

// ConstName is the name of the value exported for legacy documents.
const ConstName = "IDL"

// Artifact is rendered output. Name is the self-declared program name of
// the document, TypeName the exported type name.
type Artifact struct {
	Name     string
	TypeName string
	Text     string
}

// Marshal encodes v as JSON indented by two spaces, without HTML escaping
// and without a trailing newline.
func Marshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// TypeName returns override when it is not empty, otherwise the
// UpperCamelCase form of selfName.
func TypeName(override, selfName string) string {
	if override != "" {
		return override
	}
	return casing.UpperCamel(selfName)
}

// New renders doc as an exported type.
func New(doc *idl.IDL, typeName string) (*Artifact, error) {
	d, err := Marshal(doc)
	if err != nil {
		return nil, err
	}
	a := &Artifact{
		Name:     doc.Metadata.Name,
		TypeName: TypeName(typeName, doc.Metadata.Name),
	}
	a.Text = fmt.Sprintf("export type %s = %s;\n", a.TypeName, d)
	logArtifact(a)
	return a, nil
}

// Old renders doc as an exported type followed by an exported value of
// that type.
func Old(doc *legacy.IDL, typeName string) (*Artifact, error) {
	d, err := Marshal(doc)
	if err != nil {
		return nil, err
	}
	a := &Artifact{
		Name:     doc.Name,
		TypeName: TypeName(typeName, doc.Name),
	}
	a.Text = fmt.Sprintf("export type %[1]s = %[2]s;\n\nexport const %[3]s: %[1]s = %[2]s;\n",
		a.TypeName, d, ConstName)
	logArtifact(a)
	return a, nil
}

func logArtifact(a *Artifact) {
	if debug.Emit() {
		debug.Logf("emit: %s as %s (%d bytes)\n", a.Name, a.TypeName, len(a.Text))
	}
}
