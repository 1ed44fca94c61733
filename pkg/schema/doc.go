// Package schema defines the typed in-memory model of a GraphQL schema
// and builds it from a decoded introspection document.
//
// The model is deliberately small: a [Schema] owns an ordered list of
// [Type] definitions; each type carries its fields, enum values, and
// possible types depending on kind; field and argument types are
// [TypeRef] values, a tagged recursive variant encoding list and
// non-null wrapping.
//
// # Construction
//
// [Build] is the only way to obtain a Schema from raw introspection data:
//
//	doc, err := introspection.DecodeFile("introspection.json")
//	if err != nil {
//	    return err
//	}
//	model, err := schema.Build(doc)
//	if err != nil {
//	    return err
//	}
//
// Build dispatches on the six type kinds, excludes introspection
// meta-types (names beginning with "__"), rejects duplicate names and
// malformed wrapper chains, and verifies that every type reference in
// the model resolves to a defined type or a built-in scalar. A Schema
// that Build returns without error is internally consistent and is
// never mutated afterwards.
//
// # Ordering
//
// The model preserves the source order of types, fields, arguments, and
// enum values. Downstream emitters rely on this for deterministic
// output, so the order is part of the model's contract.
package schema
