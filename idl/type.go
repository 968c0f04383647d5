package idl

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Primitive string

const (
	Bool   Primitive = "bool"
	U8     Primitive = "u8"
	I8     Primitive = "i8"
	U16    Primitive = "u16"
	I16    Primitive = "i16"
	U32    Primitive = "u32"
	I32    Primitive = "i32"
	F32    Primitive = "f32"
	U64    Primitive = "u64"
	I64    Primitive = "i64"
	F64    Primitive = "f64"
	U128   Primitive = "u128"
	I128   Primitive = "i128"
	U256   Primitive = "u256"
	I256   Primitive = "i256"
	Binary Primitive = "bytes"
	String Primitive = "string"
	Pubkey Primitive = "pubkey"
)

var primitives = map[string]Primitive{
	"bool":   Bool,
	"u8":     U8,
	"i8":     I8,
	"u16":    U16,
	"i16":    I16,
	"u32":    U32,
	"i32":    I32,
	"f32":    F32,
	"u64":    U64,
	"i64":    I64,
	"f64":    F64,
	"u128":   U128,
	"i128":   I128,
	"u256":   U256,
	"i256":   I256,
	"bytes":  Binary,
	"string": String,
	"pubkey": Pubkey,
	// pre 0.30 spelling
	"publicKey": Pubkey,
}

func (p Primitive) Valid() bool {
	q, ok := primitives[string(p)]
	return ok && q == p
}

type TypeKind int

const (
	PrimitiveType TypeKind = iota
	OptionType
	VecType
	ArrayType
	DefinedType
	GenericType
)

func (k TypeKind) String() string {
	s, ok := map[TypeKind]string{
		PrimitiveType: "primitive",
		OptionType:    "option",
		VecType:       "vec",
		ArrayType:     "array",
		DefinedType:   "defined",
		GenericType:   "generic",
	}[k]
	if ok {
		return s
	}
	return "<unknown type kind>"
}

// Type is a type reference.
//
// Primitive is set for PrimitiveType. Inner is set for OptionType, VecType
// and ArrayType, Len for ArrayType. Name is the referenced type definition
// for DefinedType, with its Generics arguments, and the generic parameter
// name for GenericType.
type Type struct {
	Kind      TypeKind
	Primitive Primitive
	Inner     *Type
	Len       ArrayLen
	Name      string
	Generics  []GenericArg
}

func Prim(p Primitive) Type { return Type{Kind: PrimitiveType, Primitive: p} }

func OptionOf(t Type) Type { return Type{Kind: OptionType, Inner: &t} }

func VecOf(t Type) Type { return Type{Kind: VecType, Inner: &t} }

func ArrayOf(t Type, n uint64) Type {
	return Type{Kind: ArrayType, Inner: &t, Len: ArrayLen{Value: n}}
}

func ArrayOfGeneric(t Type, param string) Type {
	return Type{Kind: ArrayType, Inner: &t, Len: ArrayLen{Kind: GenericLen, Generic: param}}
}

func DefinedOf(name string, args ...GenericArg) Type {
	return Type{Kind: DefinedType, Name: name, Generics: args}
}

func GenericOf(name string) Type { return Type{Kind: GenericType, Name: name} }

type definedJSON struct {
	Name     string       `json:"name"`
	Generics []GenericArg `json:"generics,omitempty"`
}

func (t Type) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case PrimitiveType:
		if !t.Primitive.Valid() {
			return nil, fmt.Errorf("unknown primitive type %q", t.Primitive)
		}
		return marshalJSON(t.Primitive)
	case OptionType, VecType:
		if t.Inner == nil {
			return nil, fmt.Errorf("%s type without inner type", t.Kind)
		}
		return marshalJSON(map[string]*Type{t.Kind.String(): t.Inner})
	case ArrayType:
		if t.Inner == nil {
			return nil, fmt.Errorf("array type without element type")
		}
		return marshalJSON(map[string][]any{"array": {t.Inner, t.Len}})
	case DefinedType:
		return marshalJSON(map[string]definedJSON{
			"defined": {Name: t.Name, Generics: t.Generics},
		})
	case GenericType:
		return marshalJSON(map[string]string{"generic": t.Name})
	}
	return nil, fmt.Errorf("unknown type kind %d", t.Kind)
}

func (t *Type) UnmarshalJSON(d []byte) error {
	d = bytes.TrimSpace(d)
	if len(d) > 0 && d[0] == '"' {
		var s string
		if err := json.Unmarshal(d, &s); err != nil {
			return err
		}
		p, ok := primitives[s]
		if !ok {
			return fmt.Errorf("unknown type %q", s)
		}
		*t = Prim(p)
		return nil
	}
	key, v, err := single("type", d)
	if err != nil {
		return err
	}
	switch key {
	case "option", "vec":
		inner := &Type{}
		if err := json.Unmarshal(v, inner); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		kind := OptionType
		if key == "vec" {
			kind = VecType
		}
		*t = Type{Kind: kind, Inner: inner}
	case "array":
		var parts []json.RawMessage
		if err := json.Unmarshal(v, &parts); err != nil {
			return fmt.Errorf("array: %w", err)
		}
		if len(parts) != 2 {
			return fmt.Errorf("array: expected [type, length], got %d elements", len(parts))
		}
		res := Type{Kind: ArrayType, Inner: &Type{}}
		if err := json.Unmarshal(parts[0], res.Inner); err != nil {
			return fmt.Errorf("array: %w", err)
		}
		if err := json.Unmarshal(parts[1], &res.Len); err != nil {
			return fmt.Errorf("array: %w", err)
		}
		*t = res
	case "defined":
		var def definedJSON
		if bytes.HasPrefix(bytes.TrimSpace(v), []byte{'"'}) {
			if err := json.Unmarshal(v, &def.Name); err != nil {
				return fmt.Errorf("defined: %w", err)
			}
		} else {
			if _, err := requireKeys("defined", v, "name"); err != nil {
				return err
			}
			if err := json.Unmarshal(v, &def); err != nil {
				return fmt.Errorf("defined: %w", err)
			}
		}
		*t = DefinedOf(def.Name, def.Generics...)
	case "generic":
		var name string
		if err := json.Unmarshal(v, &name); err != nil {
			return fmt.Errorf("generic: %w", err)
		}
		*t = GenericOf(name)
	default:
		return fmt.Errorf("unknown type variant %q", key)
	}
	return nil
}

type ArrayLenKind int

const (
	ValueLen ArrayLenKind = iota
	GenericLen
)

// ArrayLen is the length of an array type: a number, or the name of a
// const generic parameter.
type ArrayLen struct {
	Kind    ArrayLenKind
	Value   uint64
	Generic string
}

func (l ArrayLen) MarshalJSON() ([]byte, error) {
	if l.Kind == GenericLen {
		return marshalJSON(map[string]string{"generic": l.Generic})
	}
	return marshalJSON(l.Value)
}

func (l *ArrayLen) UnmarshalJSON(d []byte) error {
	d = bytes.TrimSpace(d)
	if len(d) > 0 && d[0] == '{' {
		key, v, err := single("array length", d)
		if err != nil {
			return err
		}
		if key != "generic" {
			return fmt.Errorf("unknown array length variant %q", key)
		}
		var name string
		if err := json.Unmarshal(v, &name); err != nil {
			return fmt.Errorf("array length: %w", err)
		}
		*l = ArrayLen{Kind: GenericLen, Generic: name}
		return nil
	}
	var n uint64
	if err := json.Unmarshal(d, &n); err != nil {
		return fmt.Errorf("array length: %w", err)
	}
	*l = ArrayLen{Value: n}
	return nil
}

type GenericArgKind int

const (
	TypeGenericArg GenericArgKind = iota
	ConstGenericArg
)

// GenericArg is an argument to a generic defined type: a type, or a const
// value for a const generic parameter.
type GenericArg struct {
	Kind  GenericArgKind
	Type  *Type
	Value string
}

func TypeArg(t Type) GenericArg { return GenericArg{Kind: TypeGenericArg, Type: &t} }

func ConstArg(v string) GenericArg { return GenericArg{Kind: ConstGenericArg, Value: v} }

func (a GenericArg) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case TypeGenericArg:
		if a.Type == nil {
			return nil, fmt.Errorf("type generic argument without type")
		}
		return marshalJSON(struct {
			Kind string `json:"kind"`
			Type *Type  `json:"type"`
		}{"type", a.Type})
	case ConstGenericArg:
		return marshalJSON(struct {
			Kind  string `json:"kind"`
			Value string `json:"value"`
		}{"const", a.Value})
	}
	return nil, fmt.Errorf("unknown generic argument kind %d", a.Kind)
}

func (a *GenericArg) UnmarshalJSON(d []byte) error {
	m, kind, err := kindOf("generic argument", d)
	if err != nil {
		return err
	}
	switch kind {
	case "type":
		if _, err := requireKeys("generic argument", d, "type"); err != nil {
			return err
		}
		t := &Type{}
		if err := json.Unmarshal(m["type"], t); err != nil {
			return fmt.Errorf("generic argument: %w", err)
		}
		*a = GenericArg{Kind: TypeGenericArg, Type: t}
	case "const":
		res := GenericArg{Kind: ConstGenericArg}
		if _, err := requireKeys("generic argument", d, "value"); err != nil {
			return err
		}
		if err := decodeField("generic argument", m, "value", &res.Value); err != nil {
			return err
		}
		*a = res
	default:
		return fmt.Errorf("unknown generic argument kind %q", kind)
	}
	return nil
}
