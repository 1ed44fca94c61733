package schema

import (
	"strings"

	"github.com/AmirF00/GraphQL-Converter/pkg/errors"
	"github.com/AmirF00/GraphQL-Converter/pkg/introspection"
)

// Build converts a decoded introspection schema into the typed model.
//
// Introspection meta-types (names beginning with "__") are excluded.
// Build fails with a malformed-input error on an unknown kind, a
// duplicate type name, or an invalid wrapper chain, and with a
// DANGLING_REFERENCE error when any reference in the model resolves to
// neither a defined type nor a built-in scalar. Error messages name the
// offending type and field.
func Build(src *introspection.Schema) (*Schema, error) {
	s := New()

	for _, raw := range src.Types {
		if strings.HasPrefix(raw.Name, "__") {
			continue
		}
		t, err := convertType(raw)
		if err != nil {
			return nil, err
		}
		if err := s.Add(t); err != nil {
			return nil, err
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// convertType dispatches on the introspection kind. The switch is the
// closed set of definition kinds; anything else is malformed input.
func convertType(raw introspection.Type) (*Type, error) {
	t := &Type{
		Kind:        Kind(raw.Kind),
		Name:        raw.Name,
		Description: raw.Description,
	}

	switch raw.Kind {
	case introspection.KindObject:
		fields, err := convertFields(raw.Name, raw.Fields)
		if err != nil {
			return nil, err
		}
		t.Fields = fields

	case introspection.KindInterface:
		fields, err := convertFields(raw.Name, raw.Fields)
		if err != nil {
			return nil, err
		}
		t.Fields = fields
		t.PossibleTypes = refNames(raw.PossibleTypes)

	case introspection.KindInputObject:
		fields, err := convertInputFields(raw.Name, raw.InputFields)
		if err != nil {
			return nil, err
		}
		t.Fields = fields

	case introspection.KindEnum:
		t.EnumValues = make([]EnumValue, len(raw.EnumValues))
		for i, v := range raw.EnumValues {
			t.EnumValues[i] = EnumValue{Name: v.Name, Description: v.Description}
		}

	case introspection.KindUnion:
		t.PossibleTypes = refNames(raw.PossibleTypes)

	case introspection.KindScalar:
		// No children.

	default:
		return nil, errors.New(errors.ErrCodeUnknownKind, "type %s: unknown kind %q", raw.Name, raw.Kind)
	}

	return t, nil
}

// convertFields converts output fields of an object or interface type,
// arguments included.
func convertFields(typeName string, raw []introspection.Field) ([]Field, error) {
	fields := make([]Field, 0, len(raw))
	for _, rf := range raw {
		if err := errors.ValidateFieldName(typeName, rf.Name); err != nil {
			return nil, err
		}
		ref, err := resolveRef(rf.Type, typeName, rf.Name)
		if err != nil {
			return nil, err
		}
		args, err := convertArgs(typeName, rf.Name, rf.Args)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{
			Name:        rf.Name,
			Description: rf.Description,
			Type:        ref,
			Args:        args,
		})
	}
	return fields, nil
}

// convertInputFields converts input-object fields. Input fields have no
// arguments; introspected default values stay out of the model.
func convertInputFields(typeName string, raw []introspection.InputValue) ([]Field, error) {
	fields := make([]Field, 0, len(raw))
	for _, rf := range raw {
		if err := errors.ValidateFieldName(typeName, rf.Name); err != nil {
			return nil, err
		}
		ref, err := resolveRef(rf.Type, typeName, rf.Name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{
			Name:        rf.Name,
			Description: rf.Description,
			Type:        ref,
		})
	}
	return fields, nil
}

func convertArgs(typeName, fieldName string, raw []introspection.InputValue) ([]Argument, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	args := make([]Argument, 0, len(raw))
	for _, ra := range raw {
		ref, err := resolveRef(ra.Type, typeName, fieldName+" argument "+ra.Name)
		if err != nil {
			return nil, err
		}
		args = append(args, Argument{
			Name:         ra.Name,
			Type:         ref,
			DefaultValue: ra.DefaultValue,
		})
	}
	return args, nil
}

// resolveRef interprets a raw wrapper chain into a TypeRef. The chain
// must terminate at a named node; NON_NULL may not wrap NON_NULL. The
// owner and field names are carried for error messages only.
func resolveRef(raw *introspection.TypeRef, owner, field string) (TypeRef, error) {
	if raw == nil {
		return TypeRef{}, errors.New(errors.ErrCodeInvalidInput, "type %s: field %s: missing type reference", owner, field)
	}

	switch raw.Kind {
	case introspection.KindNonNull:
		if raw.OfType == nil {
			return TypeRef{}, errors.New(errors.ErrCodeInvalidWrapper, "type %s: field %s: NON_NULL wrapper without ofType", owner, field)
		}
		if raw.OfType.Kind == introspection.KindNonNull {
			return TypeRef{}, errors.New(errors.ErrCodeInvalidWrapper, "type %s: field %s: NON_NULL wraps NON_NULL", owner, field)
		}
		inner, err := resolveRef(raw.OfType, owner, field)
		if err != nil {
			return TypeRef{}, err
		}
		return NonNullOf(inner), nil

	case introspection.KindList:
		if raw.OfType == nil {
			return TypeRef{}, errors.New(errors.ErrCodeInvalidWrapper, "type %s: field %s: LIST wrapper without ofType", owner, field)
		}
		inner, err := resolveRef(raw.OfType, owner, field)
		if err != nil {
			return TypeRef{}, err
		}
		return ListOf(inner), nil

	default:
		if raw.Name == "" {
			return TypeRef{}, errors.New(errors.ErrCodeInvalidWrapper, "type %s: field %s: wrapper chain terminates at unnamed type", owner, field)
		}
		return Named(raw.Name), nil
	}
}

func refNames(refs []introspection.TypeRef) []string {
	if len(refs) == 0 {
		return nil
	}
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Name
	}
	return names
}
