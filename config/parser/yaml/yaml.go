package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrNotMapping is returned when the top level of a document is not a mapping.
var ErrNotMapping = errors.New("top level is not a mapping")

// Separator splits a path into mapping keys.
const Separator = "."

// Document is an in-memory YAML tree addressed by dotted paths.
// Mappings keep their key order so a saved document reads like the loaded one.
type Document struct {
	root yaml.MapSlice
}

// Parse decodes YAML data into a Document.
// Empty or whitespace-only data yields an empty document.
func Parse(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &Document{}, nil
	}

	var raw any

	err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	switch value := raw.(type) {
	case nil:
		return &Document{}, nil
	case yaml.MapSlice:
		return &Document{root: value}, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, raw)
	}
}

// ParseScalar decodes a single YAML literal such as "10", "10.0", "true" or "'text'".
func ParseScalar(text string) (any, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	var value any

	err := yaml.UnmarshalWithOptions([]byte(text), &value, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return plain(value), nil
}

// IsSet reports whether path resolves to a non-null node of any kind.
func (d *Document) IsSet(path string) bool {
	_, ok := d.lookup(path)

	return ok
}

// Get returns the value at path as plain Go data: map[string]any for mappings,
// []any for sequences, int64 (or uint64 past the int64 range) for integers,
// float64, bool and string for the remaining scalars.
func (d *Document) Get(path string) (any, bool) {
	value, ok := d.lookup(path)
	if !ok {
		return nil, false
	}

	return plain(value), true
}

// Set stores value at path, creating intermediate mappings and replacing
// intermediates that are not mappings. A nil value removes the key.
func (d *Document) Set(path string, value any) {
	d.root = set(d.root, strings.Split(path, Separator), node(value))
}

// IsInt reports whether path holds an integer that fits in 32 bits.
func (d *Document) IsInt(path string) bool {
	value, ok := d.lookup(path)
	if !ok {
		return false
	}

	number, ok := integer(value)

	return ok && number >= math.MinInt32 && number <= math.MaxInt32
}

// IsLong reports whether path holds an integer that fits in 64 bits.
func (d *Document) IsLong(path string) bool {
	value, ok := d.lookup(path)
	if !ok {
		return false
	}

	_, ok = integer(value)

	return ok
}

// IsDouble reports whether path holds a floating-point scalar.
// A literal without a fractional part or exponent is an integer, not a double.
func (d *Document) IsDouble(path string) bool {
	value, ok := d.lookup(path)
	if !ok {
		return false
	}

	switch value.(type) {
	case float64, float32:
		return true
	default:
		return false
	}
}

// Keys lists the child keys of the mapping at path in document order.
// An empty path lists the top-level keys.
func (d *Document) Keys(path string) ([]string, bool) {
	section := d.root

	if path != "" {
		value, ok := d.lookup(path)
		if !ok {
			return nil, false
		}

		section, ok = value.(yaml.MapSlice)
		if !ok {
			return nil, false
		}
	}

	keys := make([]string, 0, len(section))
	for _, item := range section {
		keys = append(keys, keyString(item.Key))
	}

	return keys, true
}

// Marshal serializes the document. An empty document serializes to no bytes.
func (d *Document) Marshal() ([]byte, error) {
	if len(d.root) == 0 {
		return []byte{}, nil
	}

	data, err := yaml.MarshalWithOptions(d.root, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

func (d *Document) lookup(path string) (any, bool) {
	var current any = d.root

	for _, segment := range strings.Split(path, Separator) {
		section, ok := current.(yaml.MapSlice)
		if !ok {
			return nil, false
		}

		idx := index(section, segment)
		if idx < 0 {
			return nil, false
		}

		current = section[idx].Value
	}

	if current == nil {
		return nil, false
	}

	return current, true
}

func set(section yaml.MapSlice, segments []string, value any) yaml.MapSlice {
	key := segments[0]
	idx := index(section, key)

	if len(segments) == 1 {
		switch {
		case value == nil && idx >= 0:
			return append(section[:idx], section[idx+1:]...)
		case value == nil:
			return section
		case idx >= 0:
			section[idx].Value = value

			return section
		default:
			return append(section, yaml.MapItem{Key: key, Value: value})
		}
	}

	var (
		child yaml.MapSlice
		isMap bool
	)

	if idx >= 0 {
		child, isMap = section[idx].Value.(yaml.MapSlice)
	}

	if value == nil && !isMap {
		return section
	}

	child = set(child, segments[1:], value)

	if idx >= 0 {
		section[idx].Value = child

		return section
	}

	return append(section, yaml.MapItem{Key: key, Value: child})
}

func index(section yaml.MapSlice, key string) int {
	for i, item := range section {
		if keyString(item.Key) == key {
			return i
		}
	}

	return -1
}

func keyString(key any) string {
	if s, ok := key.(string); ok {
		return s
	}

	return fmt.Sprint(key)
}

// node converts plain Go maps into ordered mappings so they stay addressable.
func node(value any) any {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		section := make(yaml.MapSlice, 0, len(v))
		for _, key := range keys {
			section = append(section, yaml.MapItem{Key: key, Value: node(v[key])})
		}

		return section
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = node(item)
		}

		return items
	case []string:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = item
		}

		return items
	default:
		return value
	}
}

func plain(value any) any {
	switch v := value.(type) {
	case yaml.MapSlice:
		out := make(map[string]any, len(v))
		for _, item := range v {
			out[keyString(item.Key)] = plain(item.Value)
		}

		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = plain(item)
		}

		return out
	case float32:
		return float64(v)
	default:
		if number, ok := integer(v); ok {
			return number
		}

		return v
	}
}

func integer(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}

		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}

		return int64(v), true
	default:
		return 0, false
	}
}
