// Package file provides a file-based implementation of the ConfigSource
// driven port.
//
// Language definitions are authored as TOML, YAML, or JSON documents; the
// format is chosen by file extension. TOML is the primary format. All
// formats decode into the same document shape:
//
//	[definitions]
//	C = ["k", "t", "m"]
//	V = ["a", "i"]
//
//	[ontology.fire]
//	weight = 1.5
//	shapes = ["CV", "CVC"]
//	[ontology.fire.sounds]
//	onset = ["k", "r"]
//
//	[[constraints]]
//	name = "no-double-k"
//	pattern = "kk"
//	enabled = true
//
//	[orthography."1"]
//	pattern = "k"
//	replacement = "kh"
//
// The loaded document is validated before it reaches the core: the four
// core sections must be present (each may be empty).
package file
