// Package viz derives an abstract visualization graph from a schema
// model: one node per non-scalar type, one edge per field whose base
// type is itself a defined non-scalar type.
//
// The graph is pure data. It knows nothing about layout or pixels; the
// render package consumes it and the JSON codec here round-trips it, so
// a graph exported in one run can be re-rendered later without the
// original introspection input.
//
// # Categories
//
// Node categories drive coloring downstream:
//
//   - Object: OBJECT, INTERFACE, and UNION types
//   - Input: INPUT_OBJECT types
//   - Enum: ENUM types
//
// SCALAR types produce no nodes; scalar-typed fields appear only as
// rows inside their owning node's label.
//
// # Truncation
//
// Nodes display at most Config.MaxFields rows (default 10); the
// remainder is recorded in HiddenFieldCount for an "... (N more)"
// indicator. Truncation affects display rows only; edges are derived
// from the full field list.
//
// # Determinism
//
// Node order follows model type order; edge order follows field visit
// order (type order, then field order within type). Building the same
// model twice yields structurally identical graphs, and WriteJSON
// yields byte-identical output.
package viz
