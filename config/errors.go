package config

import (
	"errors"
	"fmt"
)

var (
	// ErrPathUnset reports a path that resolves to nothing.
	ErrPathUnset = errors.New("path unset")
	// ErrTypeMismatch reports a node of the wrong kind at a path.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrEmptyCollection reports a sequence without any usable elements.
	ErrEmptyCollection = errors.New("empty collection")
	// ErrParseFailure reports text that does not name a vocabulary member.
	ErrParseFailure = errors.New("parse failure")

	// ErrEmptyRoot is returned when a Root is created without a directory.
	ErrEmptyRoot = errors.New("root directory must not be empty")
	// ErrEmptyName is returned when an Entry is opened without a name.
	ErrEmptyName = errors.New("entry name must not be empty")
	// ErrMalformedFile is returned when a file's contents cannot be parsed into a Document.
	ErrMalformedFile = errors.New("malformed config file")
	// ErrOutsideRoot is returned for entry names that are absolute or climb out of the root.
	ErrOutsideRoot = errors.New("entry name escapes the root directory")
)

// Messages shown on the "Error:" line of a diagnostic.
const (
	MessageValueMissing       = "The value expected at the current path is missing."
	MessageValueNotValid      = "The value inputted at the current path is not valid."
	MessageStringNotFound     = "String Not Found"
	MessageStringListNotFound = "List of String Not Found"
)

//nolint:gochecknoglobals // fixed diagnostic vocabulary
var (
	expectedString        = []string{"String ('your text here')"}
	expectedStringList    = []string{"'line 1'", "'line 2'", "'line 3'"}
	expectedWholeNumber   = []string{"Whole Number E.G. 1, 2, 3"}
	expectedDecimalNumber = []string{"Decimal or Whole Number E.G. 1, 1.0, 4.23"}
)

// PathError describes why a value could not be read at a path.
// Getters never return it; it is what gets rendered for the diagnostic sink.
type PathError struct {
	// Kind is one of ErrPathUnset, ErrTypeMismatch, ErrEmptyCollection or ErrParseFailure.
	Kind     error
	Path     string
	Message  string
	Expected []string
	URL      string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s at %q: %s", e.Kind, e.Path, e.Message)
}

func (e *PathError) Unwrap() error {
	return e.Kind
}
