package idl

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/idlts/internal/jsonobj"
)

type IDL struct {
	Address      string        `json:"address,omitempty"`
	Metadata     Metadata      `json:"metadata"`
	Docs         []string      `json:"docs,omitempty"`
	Instructions []Instruction `json:"instructions"`
	Accounts     []Account     `json:"accounts,omitempty"`
	Events       []Event       `json:"events,omitempty"`
	Errors       []ErrorCode   `json:"errors,omitempty"`
	Types        []TypeDef     `json:"types,omitempty"`
	Constants    []Const       `json:"constants,omitempty"`
}

// Parse decodes a current format IDL document. Any failure wraps
// ErrMalformedInput.
func Parse(d []byte) (*IDL, error) {
	doc := &IDL{}
	if err := json.Unmarshal(d, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return doc, nil
}

func (doc IDL) MarshalJSON() ([]byte, error) {
	type plain IDL
	p := plain(doc)
	if p.Instructions == nil {
		p.Instructions = []Instruction{}
	}
	return marshalJSON(p)
}

func (doc *IDL) UnmarshalJSON(d []byte) error {
	if _, err := requireKeys("idl", d, "metadata"); err != nil {
		return err
	}
	type plain IDL
	return json.Unmarshal(d, (*plain)(doc))
}

// Metadata describes the program. Extra holds any keys beyond the known
// ones, in input order; they are encoded after the known keys.
type Metadata struct {
	Name         string       `json:"name"`
	Version      string       `json:"version,omitempty"`
	Spec         string       `json:"spec,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Repository   *string      `json:"repository,omitempty"`
	Dependencies []Dependency `json:"dependencies,omitempty"`
	Contact      *string      `json:"contact,omitempty"`
	Deployments  *Deployments `json:"deployments,omitempty"`

	Extra jsonobj.Object `json:"-"`
}

var metadataKeys = map[string]bool{
	"name":         true,
	"version":      true,
	"spec":         true,
	"description":  true,
	"repository":   true,
	"dependencies": true,
	"contact":      true,
	"deployments":  true,
}

func (md Metadata) MarshalJSON() ([]byte, error) {
	type plain Metadata
	d, err := marshalJSON(plain(md))
	if err != nil {
		return nil, err
	}
	if len(md.Extra) == 0 {
		return d, nil
	}
	obj, err := jsonobj.Parse(d)
	if err != nil {
		return nil, err
	}
	for _, m := range md.Extra {
		if metadataKeys[m.Key] {
			continue
		}
		obj = append(obj, m)
	}
	return marshalJSON(obj)
}

func (md *Metadata) UnmarshalJSON(d []byte) error {
	if _, err := requireKeys("metadata", d, "name"); err != nil {
		return err
	}
	type plain Metadata
	var res plain
	if err := json.Unmarshal(d, &res); err != nil {
		return err
	}
	obj, err := jsonobj.Parse(d)
	if err != nil {
		return fmt.Errorf("metadata: %w", err)
	}
	for _, m := range obj {
		if !metadataKeys[m.Key] {
			res.Extra = append(res.Extra, m)
		}
	}
	*md = Metadata(res)
	return nil
}

type Dependency struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Deployments struct {
	Mainnet  *string `json:"mainnet,omitempty"`
	Testnet  *string `json:"testnet,omitempty"`
	Devnet   *string `json:"devnet,omitempty"`
	Localnet *string `json:"localnet,omitempty"`
}
