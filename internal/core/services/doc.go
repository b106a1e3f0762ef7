// Package services implements the word-generation pipeline.
//
// The pipeline runs leaf to root:
//
//   - PoolBuilder: weighted tag set + config -> per-slot phoneme pools
//   - Assembler: pools + word template -> raw phonemic word
//   - Filter: raw word -> accept, or reject with the matching constraint
//   - Renderer: accepted raw word -> spelled word
//   - Generator: orchestrates the above with a bounded retry budget
//
// Services depend on domain types and driven ports only; adapters wire
// them up.
package services
