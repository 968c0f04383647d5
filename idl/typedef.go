package idl

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TypeDef is a user-defined type.
type TypeDef struct {
	Name          string           `json:"name"`
	Docs          []string         `json:"docs,omitempty"`
	Serialization *Serialization   `json:"serialization,omitempty"`
	Repr          *Repr            `json:"repr,omitempty"`
	Generics      []TypeDefGeneric `json:"generics,omitempty"`
	Type          TypeDefTy        `json:"type"`
}

func (td *TypeDef) UnmarshalJSON(d []byte) error {
	if _, err := requireKeys("type definition", d, "name", "type"); err != nil {
		return err
	}
	type plain TypeDef
	return json.Unmarshal(d, (*plain)(td))
}

type TypeDefKind int

const (
	StructDef TypeDefKind = iota
	EnumDef
	AliasDef
)

func (k TypeDefKind) String() string {
	switch k {
	case StructDef:
		return "struct"
	case EnumDef:
		return "enum"
	case AliasDef:
		return "type"
	}
	return "<unknown type definition kind>"
}

// TypeDefTy is the body of a type definition. Fields is set, possibly nil,
// for StructDef, Variants for EnumDef and Alias for AliasDef.
type TypeDefTy struct {
	Kind     TypeDefKind
	Fields   *DefinedFields
	Variants []EnumVariant
	Alias    *Type
}

func (ty TypeDefTy) MarshalJSON() ([]byte, error) {
	switch ty.Kind {
	case StructDef:
		return marshalJSON(struct {
			Kind   string         `json:"kind"`
			Fields *DefinedFields `json:"fields,omitempty"`
		}{"struct", ty.Fields})
	case EnumDef:
		variants := ty.Variants
		if variants == nil {
			variants = []EnumVariant{}
		}
		return marshalJSON(struct {
			Kind     string        `json:"kind"`
			Variants []EnumVariant `json:"variants"`
		}{"enum", variants})
	case AliasDef:
		if ty.Alias == nil {
			return nil, fmt.Errorf("type alias without aliased type")
		}
		return marshalJSON(struct {
			Kind  string `json:"kind"`
			Alias *Type  `json:"alias"`
		}{"type", ty.Alias})
	}
	return nil, fmt.Errorf("unknown type definition kind %d", ty.Kind)
}

func (ty *TypeDefTy) UnmarshalJSON(d []byte) error {
	m, kind, err := kindOf("type definition body", d)
	if err != nil {
		return err
	}
	switch kind {
	case "struct":
		res := TypeDefTy{Kind: StructDef}
		if err := decodeField("struct", m, "fields", &res.Fields); err != nil {
			return err
		}
		*ty = res
	case "enum":
		if _, err := requireKeys("enum", d, "variants"); err != nil {
			return err
		}
		res := TypeDefTy{Kind: EnumDef}
		if err := decodeField("enum", m, "variants", &res.Variants); err != nil {
			return err
		}
		*ty = res
	case "type":
		if _, err := requireKeys("type alias", d, "alias"); err != nil {
			return err
		}
		res := TypeDefTy{Kind: AliasDef, Alias: &Type{}}
		if err := decodeField("type alias", m, "alias", res.Alias); err != nil {
			return err
		}
		*ty = res
	default:
		return fmt.Errorf("unknown type definition kind %q", kind)
	}
	return nil
}

type EnumVariant struct {
	Name   string         `json:"name"`
	Fields *DefinedFields `json:"fields,omitempty"`
}

func (v *EnumVariant) UnmarshalJSON(d []byte) error {
	if _, err := requireKeys("enum variant", d, "name"); err != nil {
		return err
	}
	type plain EnumVariant
	return json.Unmarshal(d, (*plain)(v))
}

type FieldsKind int

const (
	NamedFields FieldsKind = iota
	TupleFields
)

// DefinedFields are the fields of a struct or enum variant: Named holds
// named fields, Tuple the element types of a tuple.
type DefinedFields struct {
	Kind  FieldsKind
	Named []Field
	Tuple []Type
}

func (f DefinedFields) MarshalJSON() ([]byte, error) {
	if f.Kind == TupleFields {
		tuple := f.Tuple
		if tuple == nil {
			tuple = []Type{}
		}
		return marshalJSON(tuple)
	}
	named := f.Named
	if named == nil {
		named = []Field{}
	}
	return marshalJSON(named)
}

// UnmarshalJSON decodes named fields when every element is a field object,
// tuple types otherwise. The empty list is named.
func (f *DefinedFields) UnmarshalJSON(d []byte) error {
	var named []Field
	namedErr := json.Unmarshal(d, &named)
	if namedErr == nil {
		if named == nil {
			named = []Field{}
		}
		*f = DefinedFields{Kind: NamedFields, Named: named}
		return nil
	}
	var tuple []Type
	if err := json.Unmarshal(d, &tuple); err != nil {
		return fmt.Errorf("fields are neither named (%v) nor tuple (%w)", namedErr, err)
	}
	*f = DefinedFields{Kind: TupleFields, Tuple: tuple}
	return nil
}

type GenericParamKind int

const (
	TypeParam GenericParamKind = iota
	ConstParam
)

// TypeDefGeneric is a generic parameter of a type definition. Type is the
// declared type of a const parameter, such as "usize".
type TypeDefGeneric struct {
	Kind GenericParamKind
	Name string
	Type string
}

func (g TypeDefGeneric) MarshalJSON() ([]byte, error) {
	switch g.Kind {
	case TypeParam:
		return marshalJSON(struct {
			Kind string `json:"kind"`
			Name string `json:"name"`
		}{"type", g.Name})
	case ConstParam:
		return marshalJSON(struct {
			Kind string `json:"kind"`
			Name string `json:"name"`
			Type string `json:"type"`
		}{"const", g.Name, g.Type})
	}
	return nil, fmt.Errorf("unknown generic parameter kind %d", g.Kind)
}

func (g *TypeDefGeneric) UnmarshalJSON(d []byte) error {
	m, kind, err := kindOf("generic parameter", d)
	if err != nil {
		return err
	}
	switch kind {
	case "type":
		if _, err := requireKeys("generic parameter", d, "name"); err != nil {
			return err
		}
		res := TypeDefGeneric{Kind: TypeParam}
		if err := decodeField("generic parameter", m, "name", &res.Name); err != nil {
			return err
		}
		*g = res
	case "const":
		if _, err := requireKeys("generic parameter", d, "name", "type"); err != nil {
			return err
		}
		res := TypeDefGeneric{Kind: ConstParam}
		if err := decodeField("generic parameter", m, "name", &res.Name); err != nil {
			return err
		}
		if err := decodeField("generic parameter", m, "type", &res.Type); err != nil {
			return err
		}
		*g = res
	default:
		return fmt.Errorf("unknown generic parameter kind %q", kind)
	}
	return nil
}

type SerializationKind int

const (
	Borsh SerializationKind = iota
	Bytemuck
	BytemuckUnsafe
	CustomSerialization
)

var serializationNames = map[SerializationKind]string{
	Borsh:          "borsh",
	Bytemuck:       "bytemuck",
	BytemuckUnsafe: "bytemuckunsafe",
}

// Serialization is the on-chain encoding of a type definition. Custom
// names the serializer of a CustomSerialization.
type Serialization struct {
	Kind   SerializationKind
	Custom string
}

func (s Serialization) MarshalJSON() ([]byte, error) {
	if s.Kind == CustomSerialization {
		return marshalJSON(map[string]string{"custom": s.Custom})
	}
	name, ok := serializationNames[s.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown serialization kind %d", s.Kind)
	}
	return marshalJSON(name)
}

func (s *Serialization) UnmarshalJSON(d []byte) error {
	d = bytes.TrimSpace(d)
	if len(d) > 0 && d[0] == '"' {
		var name string
		if err := json.Unmarshal(d, &name); err != nil {
			return err
		}
		for k, n := range serializationNames {
			if n == name {
				*s = Serialization{Kind: k}
				return nil
			}
		}
		return fmt.Errorf("unknown serialization %q", name)
	}
	key, v, err := single("serialization", d)
	if err != nil {
		return err
	}
	if key != "custom" {
		return fmt.Errorf("unknown serialization variant %q", key)
	}
	res := Serialization{Kind: CustomSerialization}
	if err := json.Unmarshal(v, &res.Custom); err != nil {
		return fmt.Errorf("serialization: %w", err)
	}
	*s = res
	return nil
}

type ReprKind int

const (
	RustRepr ReprKind = iota
	CRepr
	TransparentRepr
)

// Repr is the memory layout of a type definition. Packed and Align are
// modifiers of RustRepr and CRepr.
type Repr struct {
	Kind   ReprKind
	Packed bool
	Align  *uint64
}

type reprModifier struct {
	Kind   string  `json:"kind"`
	Packed bool    `json:"packed,omitempty"`
	Align  *uint64 `json:"align,omitempty"`
}

func (r Repr) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case RustRepr:
		return marshalJSON(reprModifier{"rust", r.Packed, r.Align})
	case CRepr:
		return marshalJSON(reprModifier{"c", r.Packed, r.Align})
	case TransparentRepr:
		return marshalJSON(map[string]string{"kind": "transparent"})
	}
	return nil, fmt.Errorf("unknown repr kind %d", r.Kind)
}

func (r *Repr) UnmarshalJSON(d []byte) error {
	if _, _, err := kindOf("repr", d); err != nil {
		return err
	}
	var mod reprModifier
	if err := json.Unmarshal(d, &mod); err != nil {
		return fmt.Errorf("repr: %w", err)
	}
	switch mod.Kind {
	case "rust":
		*r = Repr{Kind: RustRepr, Packed: mod.Packed, Align: mod.Align}
	case "c":
		*r = Repr{Kind: CRepr, Packed: mod.Packed, Align: mod.Align}
	case "transparent":
		*r = Repr{Kind: TransparentRepr}
	default:
		return fmt.Errorf("unknown repr kind %q", mod.Kind)
	}
	return nil
}
