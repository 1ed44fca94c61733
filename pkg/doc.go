// Package pkg provides the core libraries for GraphQL schema conversion.
//
// # Overview
//
// gqlconv turns the JSON answer of a GraphQL introspection query into
// deterministic SDL text and abstract type-relationship diagrams. The pkg
// directory is organized into four main areas:
//
//  1. [schema] - The typed schema model (plus [introspection] for decoding)
//  2. [sdl] - Deterministic SDL emission and round-trip verification
//  3. [viz] - Abstract visualization graph (plus [render] for artifacts)
//  4. [pipeline] - Orchestration (decode → emit → graph → render)
//
// # Architecture
//
// The typical data flow through gqlconv:
//
//	Introspection JSON
//	         ↓
//	    [introspection] package (decode the document)
//	         ↓
//	    [schema] package (typed model + reference validation)
//	         ↓
//	    [sdl] package            [viz] package
//	    (SDL text)               (node/edge graph)
//	                                  ↓
//	                             [render] package
//	                                  ↓
//	                             SVG/HTML/JSON/PNG/PDF output
//
// # Quick Start
//
// Convert a schema dump and render a diagram:
//
//	import (
//	    "context"
//	    "github.com/AmirF00/GraphQL-Converter/pkg/introspection"
//	    "github.com/AmirF00/GraphQL-Converter/pkg/render"
//	    "github.com/AmirF00/GraphQL-Converter/pkg/schema"
//	    "github.com/AmirF00/GraphQL-Converter/pkg/sdl"
//	    "github.com/AmirF00/GraphQL-Converter/pkg/viz"
//	)
//
//	// 1. Decode the introspection document
//	doc, _ := introspection.DecodeFile("introspection.json")
//
//	// 2. Build the validated schema model
//	model, _ := schema.Build(doc)
//
//	// 3. Emit SDL text
//	text, _ := sdl.Emit(model)
//
//	// 4. Derive and render the diagram
//	g, _ := viz.Build(model, viz.Config{MaxFields: 10})
//	dot := render.ToDOT(g, render.Options{})
//	svg, _ := render.RenderSVG(context.Background(), dot)
//
// # Main Packages
//
// ## Schema Model
//
// [introspection] - Decoding of introspection JSON, with or without the
// {"data": ...} envelope, and the standard introspection query text for
// producing such documents.
//
// [schema] - The typed model: type definitions, fields, arguments, enum
// values, and wrapper-aware type references. [schema.Build] assembles a
// model from a decoded document and validates every reference.
//
// ## Emission
//
// [sdl] - Deterministic SDL rendering. Types, fields, and enum values
// keep their source order; descriptions render as block strings; output
// is byte-identical for identical inputs. [sdl.Verify] re-parses the
// emitted text as a self-check.
//
// ## Visualization
//
// [viz] - The abstract diagram graph: one node per displayed type with a
// color category and clamped field rows, one edge per type reference
// with a multiplicity label. Includes a deterministic JSON form that
// round-trips through [viz.ReadJSON].
//
// [render] - Graphviz-based rendering. DOT generation, SVG layout, HTML
// pages with a category legend, and SVG-to-PNG/PDF conversion via the
// rsvg-convert executable.
//
// ## Orchestration
//
// [pipeline] - The complete decode → emit → graph → render pipeline used
// by the CLI and the preview server. Ensures consistent behavior across
// all entry points.
//
// [errors] - Structured error codes shared by every stage, with
// classification helpers such as [errors.IsMalformedInput].
//
// [observability] - Optional hooks for conversion, artifact, and server
// events, registered at startup.
//
// [buildinfo] - Version metadata stamped at build time.
//
// # Common Workflows
//
// Run the full pipeline in one call:
//
//	runner := pipeline.NewRunner(logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Source:  "introspection.json",
//	    Visual:  true,
//	    Formats: []string{"svg", "html", "json"},
//	})
//
// Restyle a previously exported graph without decoding again:
//
//	g, _ := viz.ImportJSON("schema.json")
//	artifacts, _ := runner.Render(ctx, g, pipeline.Options{
//	    Formats: []string{"svg"},
//	    Rankdir: "LR",
//	})
//
// Check a reference before reporting it:
//
//	if !model.Resolvable(name) {
//	    // DANGLING_REFERENCE
//	}
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/sdl/...          # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [introspection]: https://pkg.go.dev/github.com/AmirF00/GraphQL-Converter/pkg/introspection
// [schema]: https://pkg.go.dev/github.com/AmirF00/GraphQL-Converter/pkg/schema
// [sdl]: https://pkg.go.dev/github.com/AmirF00/GraphQL-Converter/pkg/sdl
// [viz]: https://pkg.go.dev/github.com/AmirF00/GraphQL-Converter/pkg/viz
// [render]: https://pkg.go.dev/github.com/AmirF00/GraphQL-Converter/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/AmirF00/GraphQL-Converter/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/AmirF00/GraphQL-Converter/pkg/errors
// [observability]: https://pkg.go.dev/github.com/AmirF00/GraphQL-Converter/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/AmirF00/GraphQL-Converter/pkg/buildinfo
package pkg
