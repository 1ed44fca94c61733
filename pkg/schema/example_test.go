package schema_test

import (
	"fmt"

	"github.com/AmirF00/GraphQL-Converter/pkg/introspection"
	"github.com/AmirF00/GraphQL-Converter/pkg/schema"
)

func ExampleBuild() {
	src := &introspection.Schema{Types: []introspection.Type{
		{
			Kind: introspection.KindObject,
			Name: "Query",
			Fields: []introspection.Field{
				{Name: "user", Type: &introspection.TypeRef{Kind: introspection.KindObject, Name: "User"}},
			},
		},
		{
			Kind: introspection.KindObject,
			Name: "User",
			Fields: []introspection.Field{
				{Name: "id", Type: &introspection.TypeRef{
					Kind:   introspection.KindNonNull,
					OfType: &introspection.TypeRef{Kind: introspection.KindScalar, Name: "ID"},
				}},
			},
		},
	}}

	model, err := schema.Build(src)
	if err != nil {
		panic(err)
	}

	for _, t := range model.Types() {
		fmt.Println(t.Kind, t.Name)
	}
	// Output:
	// OBJECT Query
	// OBJECT User
}

func ExampleTypeRef_String() {
	ref := schema.NonNullOf(schema.ListOf(schema.NonNullOf(schema.Named("Droid"))))
	fmt.Println(ref)
	// Output:
	// [Droid!]!
}
