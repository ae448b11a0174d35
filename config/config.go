package config

import (
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
)

// Document is a parsed configuration file addressed by dot-separated paths.
//
// A path such as "database.connection.timeout" walks nested mappings one
// segment at a time. A null node counts as unset.
type Document interface {
	IsSet(path string) bool
	Get(path string) (any, bool)
	Set(path string, value any)
	IsInt(path string) bool
	IsLong(path string) bool
	IsDouble(path string) bool
	Keys(path string) ([]string, bool)
	Marshal() ([]byte, error)
}

// Parser turns raw file contents into a Document.
// Empty input must produce an empty Document, not an error.
type Parser interface {
	Parse(data []byte) (Document, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(data []byte) (Document, error)

// Parse calls f(data).
func (f ParserFunc) Parse(data []byte) (Document, error) {
	return f(data)
}

// YAML returns the default Parser backed by config/parser/yaml.
func YAML() Parser {
	return ParserFunc(func(data []byte) (Document, error) {
		doc, err := yamlparser.Parse(data)
		if err != nil {
			return nil, err //nolint:wrapcheck // wrapped by the caller with the file path
		}

		return doc, nil
	})
}
