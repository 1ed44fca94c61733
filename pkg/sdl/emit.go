package sdl

import (
	"fmt"
	"os"
	"strings"

	"github.com/AmirF00/GraphQL-Converter/pkg/errors"
	"github.com/AmirF00/GraphQL-Converter/pkg/schema"
)

const indent = "  "

// Emit renders the model as SDL text. Same model, same bytes.
//
// Emit fails with a DANGLING_REFERENCE error if any reference's base
// name resolves to neither a model type nor a built-in scalar. Models
// produced by schema.Build have already been checked; the guard here
// covers hand-constructed models.
func Emit(s *schema.Schema) (string, error) {
	var blocks []string
	for _, t := range s.Types() {
		block, skip, err := emitType(s, t)
		if err != nil {
			return "", err
		}
		if skip {
			continue
		}
		blocks = append(blocks, block)
	}

	if len(blocks) == 0 {
		return "", nil
	}
	return strings.Join(blocks, "\n\n") + "\n", nil
}

// EmitType renders a single type definition block without the trailing
// newline. An undescribed built-in scalar renders as the empty string,
// matching its omission from [Emit] output.
func EmitType(s *schema.Schema, t *schema.Type) (string, error) {
	block, skip, err := emitType(s, t)
	if err != nil {
		return "", err
	}
	if skip {
		return "", nil
	}
	return block, nil
}

// Export writes the emitted SDL to a file at path.
func Export(s *schema.Schema, path string) error {
	text, err := Emit(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}

// emitType renders one type definition block. skip reports that the
// type produces no output (an undescribed built-in scalar).
func emitType(s *schema.Schema, t *schema.Type) (block string, skip bool, err error) {
	var b strings.Builder

	switch t.Kind {
	case schema.KindScalar:
		if schema.IsBuiltinScalar(t.Name) && t.Description == "" {
			return "", true, nil
		}
		writeDescription(&b, t.Description, "")
		fmt.Fprintf(&b, "scalar %s", t.Name)

	case schema.KindEnum:
		writeDescription(&b, t.Description, "")
		fmt.Fprintf(&b, "enum %s", t.Name)
		if len(t.EnumValues) > 0 {
			b.WriteString(" {\n")
			for _, v := range t.EnumValues {
				writeDescription(&b, v.Description, indent)
				b.WriteString(indent + v.Name + "\n")
			}
			b.WriteString("}")
		}

	case schema.KindUnion:
		writeDescription(&b, t.Description, "")
		fmt.Fprintf(&b, "union %s", t.Name)
		if len(t.PossibleTypes) > 0 {
			b.WriteString(" = " + strings.Join(t.PossibleTypes, " | "))
		}

	case schema.KindObject, schema.KindInterface, schema.KindInputObject:
		if err := emitFieldedType(s, t, &b); err != nil {
			return "", false, err
		}

	default:
		return "", false, errors.New(errors.ErrCodeEmissionFailed, "type %s: cannot emit kind %q", t.Name, t.Kind)
	}

	return b.String(), false, nil
}

var kindKeywords = map[schema.Kind]string{
	schema.KindObject:      "type",
	schema.KindInterface:   "interface",
	schema.KindInputObject: "input",
}

func emitFieldedType(s *schema.Schema, t *schema.Type, b *strings.Builder) error {
	writeDescription(b, t.Description, "")
	fmt.Fprintf(b, "%s %s", kindKeywords[t.Kind], t.Name)
	if len(t.Fields) == 0 {
		return nil
	}

	b.WriteString(" {\n")
	for _, f := range t.Fields {
		if err := checkResolvable(s, t.Name, f); err != nil {
			return err
		}
		writeDescription(b, f.Description, indent)
		b.WriteString(indent + f.Name)
		if len(f.Args) > 0 {
			b.WriteString("(" + formatArgs(f.Args) + ")")
		}
		b.WriteString(": " + f.Type.String() + "\n")
	}
	b.WriteString("}")
	return nil
}

func formatArgs(args []schema.Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		part := a.Name + ": " + a.Type.String()
		if a.DefaultValue != nil {
			part += " = " + *a.DefaultValue
		}
		parts[i] = part
	}
	return strings.Join(parts, ", ")
}

// writeDescription renders a preceding triple-quoted block, verbatim.
// Only the opening line is indented so multi-line text stays untouched.
func writeDescription(b *strings.Builder, desc, prefix string) {
	if desc == "" {
		return
	}
	b.WriteString(prefix + `"""` + desc + `"""` + "\n")
}

func checkResolvable(s *schema.Schema, typeName string, f schema.Field) error {
	if base := f.Type.BaseName(); !s.Resolvable(base) {
		return errors.New(errors.ErrCodeDanglingReference, "type %s: field %s: references undefined type %s", typeName, f.Name, base)
	}
	for _, a := range f.Args {
		if base := a.Type.BaseName(); !s.Resolvable(base) {
			return errors.New(errors.ErrCodeDanglingReference, "type %s: field %s: argument %s references undefined type %s", typeName, f.Name, a.Name, base)
		}
	}
	return nil
}
