// Package idl models the current (Anchor 0.30 and later) IDL document.
//
// # Document
//
// An IDL document describes the public interface of an on-chain program:
//
//	{
//	  "address": "...",
//	  "metadata": {"name": "counter", "version": "0.1.0", "spec": "0.1.0"},
//	  "instructions": [...],
//	  "accounts": [...],
//	  "events": [...],
//	  "errors": [...],
//	  "types": [...],
//	  "constants": [...]
//	}
//
// Parse decodes such a document into an [IDL]. Encoding an [IDL] with
// encoding/json produces its canonical form: keys in declaration order,
// optional values omitted when absent.
//
// # Variants
//
// The schema is a tree of tagged variants. Each variant type carries a Kind
// and the fields relevant to that kind, in the manner of a tagged union:
//
//   - [Type]: primitive, option, vec, array, defined and generic references
//   - [TypeDefTy]: struct, enum and alias bodies of a [TypeDef]
//   - [DefinedFields]: named or tuple fields of a struct or enum variant
//   - [InstructionAccountItem]: a single account or a nested account group
//   - [GenericArg], [TypeDefGeneric], [ArrayLen], [Seed], [Repr],
//     [Serialization]
//
// Defined types refer to type definitions by name, so the tree never
// contains cycles.
package idl
