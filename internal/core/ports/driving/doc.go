// Package driving defines the interfaces through which the outside
// world drives the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI adapter (and any future surface) depends on these interfaces;
// core services implement them.
package driving
