// Package domain defines the core entities for the GlotBlocks word generator.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - LanguageConfig: the declarative phonology/constraint/orthography model
//   - Concept: a weighted semantic anchor with sound affinities
//   - Pool / PoolSet: weighted phoneme multisets built per slot
//   - SyllableShape / WordTemplate: the structural skeleton words are drawn into
//   - GeneratedWord: one accepted, spelled output word
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
