package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// GetString returns the text of the scalar at path with markup translated.
// An unset path or a mapping or sequence at path is reported to the sink and
// yields ("", false).
func (e *Entry) GetString(path string) (string, bool) {
	return e.getString(path, true)
}

// GetStringSilent is GetString without diagnostics.
func (e *Entry) GetStringSilent(path string) (string, bool) {
	return e.getString(path, false)
}

func (e *Entry) getString(path string, diagnose bool) (string, bool) {
	text, err := e.text(path)
	if err != nil {
		if diagnose {
			e.report(err)
		}

		return "", false
	}

	return e.root.translate(text), true
}

func (e *Entry) text(path string) (string, *PathError) {
	value, ok := e.Value(path)
	if !ok {
		return "", stringError(ErrPathUnset, path)
	}

	text, ok := scalarText(value)
	if !ok {
		return "", stringError(ErrTypeMismatch, path)
	}

	return text, nil
}

// GetStringList returns the scalar elements of the sequence at path as text,
// each with markup translated. Nested mappings and sequences are skipped.
//
// An unset path, a node that is not a sequence, and a sequence without scalar
// elements all produce the same diagnostic and an empty, non-nil slice.
func (e *Entry) GetStringList(path string) []string {
	value, ok := e.Value(path)
	if !ok {
		e.report(stringListError(ErrPathUnset, path))

		return []string{}
	}

	items, ok := value.([]any)
	if !ok {
		e.report(stringListError(ErrTypeMismatch, path))

		return []string{}
	}

	list := make([]string, 0, len(items))

	for _, item := range items {
		text, ok := scalarText(item)
		if !ok {
			continue
		}

		list = append(list, e.root.translate(text))
	}

	if len(list) == 0 {
		e.report(stringListError(ErrEmptyCollection, path))

		return []string{}
	}

	return list
}

// GetBoolean returns the boolean at path, or false for any other kind of node.
//
// An unset path is written as false and the file is saved, so the option shows
// up for the user to edit. No diagnostic is emitted. The error is non-nil only
// when that save fails. Paths with empty segments, such as "a..b" or "a.",
// are never written.
func (e *Entry) GetBoolean(path string) (bool, error) {
	if !e.IsSet(path) {
		if !writablePath(path) {
			return false, nil
		}

		e.document.Set(path, false)

		slog.Info("missing boolean written as false",
			slog.String("name", e.name),
			slog.String("path", path),
		)

		err := e.Save()
		if err != nil {
			return false, err
		}

		return false, nil
	}

	value, _ := e.Value(path)
	b, ok := value.(bool)

	return ok && b, nil
}

// IsSetAndTrue reports whether path is set and holds true. Unlike GetBoolean it
// never writes to the file.
func (e *Entry) IsSetAndTrue(path string) (bool, error) {
	if !e.IsSet(path) {
		return false, nil
	}

	return e.GetBoolean(path)
}

func writablePath(path string) bool {
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return false
		}
	}

	return true
}

func scalarText(value any) (string, bool) {
	switch v := value.(type) {
	case nil, map[string]any, []any:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return formatFloat(v), true
	default:
		return fmt.Sprint(v), true
	}
}

// formatFloat keeps a fractional part on whole numbers so 10.0 reads back as 10.0.
func formatFloat(v float64) string {
	text := strconv.FormatFloat(v, 'g', -1, 64)

	for _, r := range text {
		if r == '.' || r == 'e' || r == 'n' || r == 'N' {
			return text
		}
	}

	return text + ".0"
}

func stringError(kind error, path string) *PathError {
	return &PathError{Kind: kind, Path: path, Message: MessageStringNotFound, Expected: expectedString}
}

func stringListError(kind error, path string) *PathError {
	return &PathError{Kind: kind, Path: path, Message: MessageStringListNotFound, Expected: expectedStringList}
}
