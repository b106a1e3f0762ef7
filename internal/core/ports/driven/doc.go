// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigSource: loads a parsed, validated LanguageConfig
//
// # Optional Interfaces
//
// These can be nil - the generator degrades gracefully:
//
//   - LexiconStore: persists generated words. Without it, uniqueness
//     checks and --save are disabled.
package driven
