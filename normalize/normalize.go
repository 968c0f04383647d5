// Package normalize rewrites the declared identifiers of an IDL document
// to a single naming convention.
//
// Renamed: the names of accounts, events, errors, constants, instructions
// and their args and account items, type definitions with their fields,
// variants and generic parameters, and every defined or generic type
// reference. Left alone: constant types, instruction returns, PDA seed
// paths, account relations, array lengths and metadata.
package normalize

import (
	"github.com/signadot/idlts/casing"
	"github.com/signadot/idlts/debug"
	"github.com/signadot/idlts/idl"
	"github.com/signadot/idlts/legacy"
)

type Normalizer struct {
	Rename func(string) string
}

var lowerCamel = &Normalizer{Rename: casing.LowerCamel}

// IDL rewrites doc to lowerCamelCase in place.
func IDL(doc *idl.IDL) { lowerCamel.IDL(doc) }

// Legacy rewrites the account names of doc to lowerCamelCase in place.
func Legacy(doc *legacy.IDL) { lowerCamel.Legacy(doc) }

func (n *Normalizer) name(what string, s *string) {
	to := n.Rename(*s)
	if debug.Normalize() && to != *s {
		debug.Logf("normalize %s %q -> %q\n", what, *s, to)
	}
	*s = to
}

func (n *Normalizer) IDL(doc *idl.IDL) {
	for i := range doc.Accounts {
		n.name("account", &doc.Accounts[i].Name)
	}
	for i := range doc.Events {
		n.name("event", &doc.Events[i].Name)
	}
	for i := range doc.Errors {
		n.name("error", &doc.Errors[i].Name)
	}
	for i := range doc.Constants {
		n.name("constant", &doc.Constants[i].Name)
	}
	for i := range doc.Instructions {
		n.Instruction(&doc.Instructions[i])
	}
	for i := range doc.Types {
		n.TypeDef(&doc.Types[i])
	}
}

func (n *Normalizer) Legacy(doc *legacy.IDL) {
	for i := range doc.Accounts {
		n.name("account", &doc.Accounts[i].Name)
	}
}

func (n *Normalizer) Instruction(in *idl.Instruction) {
	n.name("instruction", &in.Name)
	for i := range in.Args {
		n.Field(&in.Args[i])
	}
	for i := range in.Accounts {
		n.AccountItem(&in.Accounts[i])
	}
}

// AccountItem renames a single account, or a composite and everything
// nested under it depth first.
func (n *Normalizer) AccountItem(it *idl.InstructionAccountItem) {
	switch it.Kind {
	case idl.SingleAccount:
		if it.Single != nil {
			n.name("instruction account", &it.Single.Name)
		}
	case idl.CompositeAccounts:
		if it.Composite == nil {
			return
		}
		n.name("composite accounts", &it.Composite.Name)
		for i := range it.Composite.Accounts {
			n.AccountItem(&it.Composite.Accounts[i])
		}
	}
}

func (n *Normalizer) TypeDef(td *idl.TypeDef) {
	n.name("type", &td.Name)
	for i := range td.Generics {
		n.name("generic param", &td.Generics[i].Name)
	}
	switch td.Type.Kind {
	case idl.StructDef:
		n.Fields(td.Type.Fields)
	case idl.EnumDef:
		for i := range td.Type.Variants {
			v := &td.Type.Variants[i]
			n.name("variant", &v.Name)
			n.Fields(v.Fields)
		}
	case idl.AliasDef:
		if td.Type.Alias != nil {
			n.Type(td.Type.Alias)
		}
	}
}

func (n *Normalizer) Fields(fs *idl.DefinedFields) {
	if fs == nil {
		return
	}
	switch fs.Kind {
	case idl.NamedFields:
		for i := range fs.Named {
			n.Field(&fs.Named[i])
		}
	case idl.TupleFields:
		for i := range fs.Tuple {
			n.Type(&fs.Tuple[i])
		}
	}
}

func (n *Normalizer) Field(f *idl.Field) {
	n.name("field", &f.Name)
	n.Type(&f.Type)
}

// Type renames the defined and generic references within t.
func (n *Normalizer) Type(t *idl.Type) {
	switch t.Kind {
	case idl.OptionType, idl.VecType, idl.ArrayType:
		if t.Inner != nil {
			n.Type(t.Inner)
		}
	case idl.DefinedType:
		n.name("defined type", &t.Name)
		for i := range t.Generics {
			arg := &t.Generics[i]
			if arg.Kind == idl.TypeGenericArg && arg.Type != nil {
				n.Type(arg.Type)
			}
		}
	case idl.GenericType:
		n.name("generic", &t.Name)
	}
}
