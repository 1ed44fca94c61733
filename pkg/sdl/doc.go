// Package sdl renders a schema model as Schema Definition Language text.
//
// Output is deterministic: the same model always yields byte-identical
// text. Types are emitted in model order, one block per construct,
// blocks separated by a blank line:
//
//	"""A being in the saga."""
//	interface Character {
//	  id: ID!
//	  name: String
//	}
//
//	type Query {
//	  hero(episode: Episode = NEWHOPE): Character
//	}
//
// Built-in scalars (String, Int, Float, Boolean, ID) are omitted unless
// the input carried them with a description. Descriptions render as
// preceding triple-quoted blocks, verbatim. A type with no fields or
// members renders as a bare header, which standard SDL parsers accept.
//
// [Verify] re-parses emitted text with a standard SDL parser, backing
// the pipeline's --check flag and the package's own round-trip tests.
package sdl
