package viz

import (
	"github.com/AmirF00/GraphQL-Converter/pkg/errors"
	"github.com/AmirF00/GraphQL-Converter/pkg/schema"
)

// DefaultMaxFields is the display-row limit applied when Config leaves
// MaxFields unset.
const DefaultMaxFields = 10

// Config carries the run-scoped display settings into [Build]. The
// builder reads no ambient state; everything it needs arrives here.
type Config struct {
	// MaxFields caps the displayed rows per node. Zero or negative
	// means DefaultMaxFields.
	MaxFields int
}

func (c Config) maxFields() int {
	if c.MaxFields <= 0 {
		return DefaultMaxFields
	}
	return c.MaxFields
}

// Build derives the visualization graph from a schema model.
//
// One node per non-scalar type, in model order. One edge per field
// whose base type resolves to a defined non-scalar type, in field visit
// order. Scalar-typed fields contribute display rows but no edges.
func Build(s *schema.Schema, cfg Config) (*Graph, error) {
	limit := cfg.maxFields()
	g := NewGraph()

	for _, t := range s.Types() {
		if t.Kind == schema.KindScalar {
			continue
		}
		node := Node{
			TypeName: t.Name,
			Category: categoryOf(t.Kind),
		}
		rows := displayRows(t)
		if len(rows) > limit {
			node.DisplayedFields = rows[:limit]
			node.HiddenFieldCount = len(rows) - limit
		} else {
			node.DisplayedFields = rows
		}
		if err := g.AddNode(node); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "add node %s", t.Name)
		}
	}

	for _, t := range s.Types() {
		if t.Kind == schema.KindScalar {
			continue
		}
		for _, f := range t.Fields {
			base := f.Type.BaseName()
			target, ok := s.Lookup(base)
			if !ok || target.Kind == schema.KindScalar {
				continue
			}
			e := Edge{
				From:         t.Name,
				To:           base,
				Label:        f.Name,
				Multiplicity: multiplicityOf(f.Type),
			}
			if err := g.AddEdge(e); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "add edge %s->%s", e.From, e.To)
			}
		}
	}

	return g, nil
}

// categoryOf maps definition kinds to display categories. UNION has no
// category of its own; unions list their members as label rows and
// color like objects.
func categoryOf(kind schema.Kind) Category {
	switch kind {
	case schema.KindInputObject:
		return CategoryInput
	case schema.KindEnum:
		return CategoryEnum
	default:
		return CategoryObject
	}
}

// displayRows flattens a type into its label rows: fields with
// signatures for fielded kinds, bare names for enum values and union
// members.
func displayRows(t *schema.Type) []FieldView {
	switch t.Kind {
	case schema.KindEnum:
		rows := make([]FieldView, len(t.EnumValues))
		for i, v := range t.EnumValues {
			rows[i] = FieldView{Name: v.Name}
		}
		return rows
	case schema.KindUnion:
		rows := make([]FieldView, len(t.PossibleTypes))
		for i, name := range t.PossibleTypes {
			rows[i] = FieldView{Name: name}
		}
		return rows
	default:
		rows := make([]FieldView, len(t.Fields))
		for i, f := range t.Fields {
			rows[i] = FieldView{Name: f.Name, Type: f.Type.String()}
		}
		return rows
	}
}

// multiplicityOf derives the edge annotation from the outermost wrapper
// structure. The four cases are exhaustive: NonNull never wraps NonNull,
// so a NonNull wraps either a list or the named leaf.
func multiplicityOf(ref schema.TypeRef) Multiplicity {
	switch ref.Kind {
	case schema.RefNonNull:
		if ref.Of.Kind == schema.RefList {
			return MultiplicityMany
		}
		return MultiplicityOne
	case schema.RefList:
		return MultiplicityManyOpt
	default:
		return MultiplicityOneOpt
	}
}
