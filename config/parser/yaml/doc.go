// Package yaml provides the YAML Document used by the config package.
//
// This package uses github.com/goccy/go-yaml with ordered mappings, so keys
// keep the order they were written in when a document is saved back to disk.
// Nodes are addressed by dotted paths:
//
//	doc, err := yaml.Parse(data)
//	doc.IsSet("database.connection.host")
//	doc.Set("database.connection.port", 5432)
//
// Path Resolution:
//   - Each dot-separated segment selects a key of the current mapping
//   - A missing key or a non-mapping intermediate resolves to "unset"
//   - Null leaves are unset as well
//
// Kind Probes:
//   - IsInt: integer literal within 32 bits
//   - IsLong: integer literal within 64 bits
//   - IsDouble: literal with a fractional part or exponent ("10.0", not "10")
package yaml
