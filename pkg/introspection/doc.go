// Package introspection models the standard GraphQL introspection response
// and decodes it from JSON.
//
// The types here mirror the wire shape of an introspection result exactly:
// a schema object with a flat list of types, each type carrying its kind,
// fields, input fields, enum values, and possible types, with list/non-null
// modifiers encoded as nested type references under "ofType".
//
// # Accepted Input
//
// Decode accepts both common envelope shapes:
//
//	{"data": {"__schema": {...}}}   full GraphQL response
//	{"__schema": {...}}             bare schema object
//
// Anything else is an INVALID_INPUT error.
//
// # Usage
//
//	schema, err := introspection.DecodeFile("introspection.json")
//	if err != nil {
//	    return err
//	}
//	for _, t := range schema.Types {
//	    fmt.Println(t.Kind, t.Name)
//	}
//
// The package also exports [Query], the standard introspection query text,
// so users can produce a compatible input document against their own
// endpoint with any HTTP client:
//
//	gqlconv query | curl -s -X POST -H 'Content-Type: application/json' \
//	    -d @- https://api.example.com/graphql > introspection.json
//
// Decoding performs no schema-level validation beyond locating the schema
// object; structural checks (kind dispatch, wrapper chains, duplicates)
// belong to the model builder.
package introspection
