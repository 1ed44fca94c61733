package schema

// RefKind discriminates the three TypeRef variants.
type RefKind uint8

const (
	// RefNamed is a plain reference to a named type.
	RefNamed RefKind = iota
	// RefNonNull wraps a reference with the non-null modifier.
	RefNonNull
	// RefList wraps a reference with the list modifier.
	RefList
)

// TypeRef is a possibly-wrapped reference to a named type.
//
// A reference is one of Named(name), NonNull(inner), or List(inner).
// Two invariants hold for every reference produced by [Build]:
// NonNull never wraps NonNull, and every chain terminates at exactly
// one named leaf.
type TypeRef struct {
	Kind RefKind
	Name string   // named leaf, set only for RefNamed
	Of   *TypeRef // wrapped reference, set only for RefNonNull/RefList
}

// Named returns a plain reference to the type with the given name.
func Named(name string) TypeRef {
	return TypeRef{Kind: RefNamed, Name: name}
}

// NonNullOf wraps ref with the non-null modifier.
func NonNullOf(ref TypeRef) TypeRef {
	return TypeRef{Kind: RefNonNull, Of: &ref}
}

// ListOf wraps ref with the list modifier.
func ListOf(ref TypeRef) TypeRef {
	return TypeRef{Kind: RefList, Of: &ref}
}

// BaseName returns the name at the chain's named leaf.
func (r TypeRef) BaseName() string {
	for r.Kind != RefNamed {
		r = *r.Of
	}
	return r.Name
}

// IsList reports whether the reference is list-valued at any depth.
func (r TypeRef) IsList() bool {
	for {
		switch r.Kind {
		case RefList:
			return true
		case RefNonNull:
			r = *r.Of
		default:
			return false
		}
	}
}

// String renders the reference in SDL notation: T, T!, [T], [T]!, [T!]!.
func (r TypeRef) String() string {
	switch r.Kind {
	case RefNonNull:
		return r.Of.String() + "!"
	case RefList:
		return "[" + r.Of.String() + "]"
	default:
		return r.Name
	}
}
