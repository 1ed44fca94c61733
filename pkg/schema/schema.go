package schema

import "github.com/AmirF00/GraphQL-Converter/pkg/errors"

// Kind is the GraphQL kind of a type definition. LIST and NON_NULL are
// reference modifiers, not definition kinds, so they never appear here.
type Kind string

const (
	KindObject      Kind = "OBJECT"
	KindInterface   Kind = "INTERFACE"
	KindUnion       Kind = "UNION"
	KindInputObject Kind = "INPUT_OBJECT"
	KindEnum        Kind = "ENUM"
	KindScalar      Kind = "SCALAR"
)

// builtinScalars are the scalar types GraphQL itself defines, treated
// as always present even when absent from the introspection type list.
var builtinScalars = map[string]bool{
	"String":  true,
	"Int":     true,
	"Float":   true,
	"Boolean": true,
	"ID":      true,
}

// IsBuiltinScalar reports whether name is one of the five built-in
// GraphQL scalars (String, Int, Float, Boolean, ID).
func IsBuiltinScalar(name string) bool {
	return builtinScalars[name]
}

// Schema is the typed model of a GraphQL schema. It owns all type
// definitions in source order. Assemble with [New] and [Add], then
// seal with [Schema.Validate]; models returned by [Build] arrive
// assembled and validated. Read-only thereafter.
type Schema struct {
	types  []*Type
	byName map[string]*Type
}

// New returns an empty schema model.
func New() *Schema {
	return &Schema{byName: make(map[string]*Type)}
}

// Type is one schema type definition.
type Type struct {
	Kind        Kind
	Name        string
	Description string

	// Fields is populated for OBJECT, INTERFACE, and INPUT_OBJECT kinds,
	// in source order.
	Fields []Field

	// EnumValues is populated for ENUM kinds, in source order.
	EnumValues []EnumValue

	// PossibleTypes holds member type names for UNION and implementer
	// names for INTERFACE, in source order.
	PossibleTypes []string
}

// Field is an output field or an input-object field.
type Field struct {
	Name        string
	Description string
	Type        TypeRef
	Args        []Argument
}

// Argument is a field argument. DefaultValue holds the introspected
// default literal verbatim; nil means no default.
type Argument struct {
	Name         string
	Type         TypeRef
	DefaultValue *string
}

// EnumValue is one value of an enum type.
type EnumValue struct {
	Name        string
	Description string
}

// Add appends a type definition. Names must be unique; a duplicate or
// invalid name is a malformed-input error. Add does not check
// references; run [Schema.Validate] once the model is complete.
func (s *Schema) Add(t *Type) error {
	if t == nil {
		return errors.New(errors.ErrCodeInvalidInput, "cannot add nil type")
	}
	if err := errors.ValidateTypeName(t.Name); err != nil {
		return err
	}
	if _, exists := s.byName[t.Name]; exists {
		return errors.New(errors.ErrCodeDuplicateType, "type %s: defined more than once", t.Name)
	}
	s.types = append(s.types, t)
	s.byName[t.Name] = t
	return nil
}

// Validate walks every reference in the model and checks that it
// resolves to a defined type or a built-in scalar. A DANGLING_REFERENCE
// error names the offending type and field.
func (s *Schema) Validate() error {
	for _, t := range s.types {
		for _, f := range t.Fields {
			if base := f.Type.BaseName(); !s.Resolvable(base) {
				return errors.New(errors.ErrCodeDanglingReference, "type %s: field %s: references undefined type %s", t.Name, f.Name, base)
			}
			for _, a := range f.Args {
				if base := a.Type.BaseName(); !s.Resolvable(base) {
					return errors.New(errors.ErrCodeDanglingReference, "type %s: field %s: argument %s references undefined type %s", t.Name, f.Name, a.Name, base)
				}
			}
		}
		for _, name := range t.PossibleTypes {
			if !s.Resolvable(name) {
				return errors.New(errors.ErrCodeDanglingReference, "type %s: possible type %s is undefined", t.Name, name)
			}
		}
	}
	return nil
}

// Types returns the type definitions in source order. The returned slice
// is a copy; the definitions it points to are shared and must not be
// modified.
func (s *Schema) Types() []*Type {
	out := make([]*Type, len(s.types))
	copy(out, s.types)
	return out
}

// Lookup returns the type definition with the given name.
func (s *Schema) Lookup(name string) (*Type, bool) {
	t, ok := s.byName[name]
	return t, ok
}

// Len returns the number of type definitions in the model.
func (s *Schema) Len() int {
	return len(s.types)
}

// HasType reports whether name is defined in the model.
func (s *Schema) HasType(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Resolvable reports whether name resolves against the model or the
// built-in scalars.
func (s *Schema) Resolvable(name string) bool {
	return s.HasType(name) || IsBuiltinScalar(name)
}
