package sdl

import (
	"strings"
	"testing"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/AmirF00/GraphQL-Converter/pkg/introspection"
	"github.com/AmirF00/GraphQL-Converter/pkg/schema"
)

const heroResponse = `{
  "data": {
    "__schema": {
      "queryType": {"name": "Query"},
      "types": [
        {
          "kind": "OBJECT",
          "name": "Query",
          "fields": [
            {"name": "hero", "args": [
              {"name": "episode", "type": {"kind": "ENUM", "name": "Episode"}, "defaultValue": "JEDI"}
            ], "type": {"kind": "INTERFACE", "name": "Character"}},
            {"name": "reviews", "args": [], "type": {
              "kind": "NON_NULL", "ofType": {
                "kind": "LIST", "ofType": {
                  "kind": "NON_NULL", "ofType": {"kind": "OBJECT", "name": "Review"}
                }
              }
            }}
          ]
        },
        {
          "kind": "INTERFACE",
          "name": "Character",
          "description": "A being in the saga.",
          "fields": [
            {"name": "id", "args": [], "type": {"kind": "NON_NULL", "ofType": {"kind": "SCALAR", "name": "ID"}}},
            {"name": "friends", "args": [], "type": {"kind": "LIST", "ofType": {"kind": "INTERFACE", "name": "Character"}}}
          ],
          "possibleTypes": [{"kind": "OBJECT", "name": "Review"}]
        },
        {
          "kind": "OBJECT",
          "name": "Review",
          "fields": [
            {"name": "stars", "args": [], "type": {"kind": "NON_NULL", "ofType": {"kind": "SCALAR", "name": "Int"}}},
            {"name": "commentary", "args": [], "type": {"kind": "SCALAR", "name": "String"}}
          ]
        },
        {
          "kind": "ENUM",
          "name": "Episode",
          "enumValues": [{"name": "NEWHOPE"}, {"name": "EMPIRE"}, {"name": "JEDI"}]
        },
        {"kind": "SCALAR", "name": "DateTime"},
        {"kind": "OBJECT", "name": "__Schema", "fields": []}
      ]
    }
  }
}`

var modelKindToAST = map[schema.Kind]ast.DefinitionKind{
	schema.KindObject:      ast.Object,
	schema.KindInterface:   ast.Interface,
	schema.KindUnion:       ast.Union,
	schema.KindInputObject: ast.InputObject,
	schema.KindEnum:        ast.Enum,
	schema.KindScalar:      ast.Scalar,
}

// TestRoundTrip re-parses emitted SDL and checks that type names, kinds,
// and field signatures survive.
func TestRoundTrip(t *testing.T) {
	doc, err := introspection.Decode(strings.NewReader(heroResponse))
	if err != nil {
		t.Fatal(err)
	}
	model, err := schema.Build(doc)
	if err != nil {
		t.Fatal(err)
	}
	text, err := Emit(model)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := gqlparser.LoadSchema(&ast.Source{Name: "roundtrip.graphql", Input: text})
	if err != nil {
		t.Fatalf("emitted SDL failed to parse: %v\n%s", err, text)
	}

	for _, typ := range model.Types() {
		def, ok := parsed.Types[typ.Name]
		if !ok {
			t.Errorf("type %s lost in round trip", typ.Name)
			continue
		}
		if want := modelKindToAST[typ.Kind]; def.Kind != want {
			t.Errorf("type %s: kind = %v, want %v", typ.Name, def.Kind, want)
		}

		for _, f := range typ.Fields {
			pf := def.Fields.ForName(f.Name)
			if pf == nil {
				t.Errorf("type %s: field %s lost in round trip", typ.Name, f.Name)
				continue
			}
			if got, want := pf.Type.String(), f.Type.String(); got != want {
				t.Errorf("type %s: field %s: type = %q, want %q", typ.Name, f.Name, got, want)
			}
			for _, a := range f.Args {
				pa := pf.Arguments.ForName(a.Name)
				if pa == nil {
					t.Errorf("type %s: field %s: argument %s lost in round trip", typ.Name, f.Name, a.Name)
					continue
				}
				if got, want := pa.Type.String(), a.Type.String(); got != want {
					t.Errorf("type %s: field %s: argument %s: type = %q, want %q", typ.Name, f.Name, a.Name, got, want)
				}
			}
		}
	}

	// Meta-types stay excluded from the emitted document.
	if strings.Contains(text, "__Schema") {
		t.Error("emitted SDL should not contain introspection meta-types")
	}
}

// TestRoundTrip_ScenarioA covers the hero/Character shape end to end.
func TestRoundTrip_ScenarioA(t *testing.T) {
	input := `{"__schema": {"types": [
	  {"kind": "OBJECT", "name": "Query", "fields": [
	    {"name": "hero", "args": [], "type": {"kind": "INTERFACE", "name": "Character"}}
	  ]},
	  {"kind": "INTERFACE", "name": "Character", "fields": [
	    {"name": "id", "args": [], "type": {"kind": "NON_NULL", "ofType": {"kind": "SCALAR", "name": "ID"}}},
	    {"name": "name", "args": [], "type": {"kind": "SCALAR", "name": "String"}}
	  ]}
	]}}`

	doc, err := introspection.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	model, err := schema.Build(doc)
	if err != nil {
		t.Fatal(err)
	}
	text, err := Emit(model)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(text, "type Query {\n  hero: Character\n}") {
		t.Errorf("missing Query block:\n%s", text)
	}
	if !strings.Contains(text, "interface Character {\n  id: ID!\n  name: String\n}") {
		t.Errorf("missing Character block:\n%s", text)
	}
	if err := Verify(text); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}

// TestRoundTrip_ScenarioB covers enum emission with a description.
func TestRoundTrip_ScenarioB(t *testing.T) {
	input := `{"__schema": {"types": [
	  {"kind": "ENUM", "name": "Status", "description": "Processing state.",
	   "enumValues": [{"name": "A"}, {"name": "B"}, {"name": "C"}]}
	]}}`

	doc, err := introspection.Decode(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	model, err := schema.Build(doc)
	if err != nil {
		t.Fatal(err)
	}
	text, err := Emit(model)
	if err != nil {
		t.Fatal(err)
	}

	want := "\"\"\"Processing state.\"\"\"\nenum Status {\n  A\n  B\n  C\n}\n"
	if text != want {
		t.Errorf("Emit() = %q, want %q", text, want)
	}
}
