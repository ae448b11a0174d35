package config

import (
	"math"
	"strconv"
)

// LongSentinel is what GetLong returns when the value is missing or invalid.
const LongSentinel int64 = -1

// NumberKind tells which representation a Number was read as.
type NumberKind int

const (
	// IntKind is a whole number that fits in 32 bits.
	IntKind NumberKind = iota + 1
	// DoubleKind is a floating-point number.
	DoubleKind
)

func (k NumberKind) String() string {
	switch k {
	case IntKind:
		return "int"
	case DoubleKind:
		return "double"
	default:
		return "invalid"
	}
}

// Number is a numeric value that remembers whether it was written as a whole
// or a decimal number. The zero Number has no kind.
type Number struct {
	kind    NumberKind
	integer int
	double  float64
}

// IntNumber returns an int-kind Number.
func IntNumber(v int) Number {
	return Number{kind: IntKind, integer: v}
}

// DoubleNumber returns a double-kind Number.
func DoubleNumber(v float64) Number {
	return Number{kind: DoubleKind, double: v}
}

func (n Number) Kind() NumberKind {
	return n.kind
}

func (n Number) IsInt() bool {
	return n.kind == IntKind
}

// Int returns the value as an int, truncating doubles.
func (n Number) Int() int {
	if n.kind == DoubleKind {
		return int(n.double)
	}

	return n.integer
}

func (n Number) Float64() float64 {
	if n.kind == DoubleKind {
		return n.double
	}

	return float64(n.integer)
}

func (n Number) String() string {
	if n.kind == DoubleKind {
		return formatFloat(n.double)
	}

	return strconv.Itoa(n.integer)
}

// GetInt returns the whole number at path. It must fit in 32 bits.
// Missing and invalid values are reported to the sink and yield (0, false).
func (e *Entry) GetInt(path string) (int, bool) {
	return e.getInt(path, true)
}

// GetIntSilent is GetInt without diagnostics.
func (e *Entry) GetIntSilent(path string) (int, bool) {
	return e.getInt(path, false)
}

func (e *Entry) getInt(path string, diagnose bool) (int, bool) {
	src, ok := e.source(path)
	if !ok {
		if diagnose {
			e.report(numberError(ErrPathUnset, path, MessageValueMissing, expectedWholeNumber))
		}

		return 0, false
	}

	if !src.IsInt(path) {
		if diagnose {
			e.report(numberError(ErrTypeMismatch, path, MessageValueNotValid, expectedWholeNumber))
		}

		return 0, false
	}

	value, _ := src.Get(path)
	number, _ := integerValue(value)

	return int(number), true
}

// GetLong returns the 64-bit whole number at path. Missing and invalid values
// are reported to the sink and yield LongSentinel, which is indistinguishable
// from a stored -1.
//
// Any whole number within the 64-bit range is accepted, including values that
// also fit in 32 bits. Loaders that keep small numbers as 32-bit integers
// reject those here; GetLong does not.
func (e *Entry) GetLong(path string) int64 {
	src, ok := e.source(path)
	if !ok {
		e.report(numberError(ErrPathUnset, path, MessageValueMissing, expectedWholeNumber))

		return LongSentinel
	}

	if !src.IsLong(path) {
		e.report(numberError(ErrTypeMismatch, path, MessageValueNotValid, expectedWholeNumber))

		return LongSentinel
	}

	value, _ := src.Get(path)
	number, _ := integerValue(value)

	return number
}

// GetFloat returns the number at path narrowed to 32 bits. It never validates
// and never reports: missing and non-numeric values read as 0.
func (e *Entry) GetFloat(path string) float32 {
	return float32(e.double(path))
}

// GetDouble returns the number at path. A missing value is reported to the sink
// and yields (0, false). Values that are set but not numeric read as 0.
func (e *Entry) GetDouble(path string) (float64, bool) {
	return e.getDouble(path, true)
}

func (e *Entry) getDouble(path string, diagnose bool) (float64, bool) {
	if !e.IsSet(path) {
		if diagnose {
			e.report(numberError(ErrPathUnset, path, MessageValueMissing, expectedDecimalNumber))
		}

		return 0, false
	}

	return e.double(path), true
}

func (e *Entry) double(path string) float64 {
	value, ok := e.Value(path)
	if !ok {
		return 0
	}

	number, _ := floatValue(value)

	return number
}

// GetNumber returns the number at path with its kind: decimal literals are
// DoubleKind, whole numbers that fit in 32 bits are IntKind. A missing value is
// reported to the sink. Any other node, including whole numbers too large for
// 32 bits, yields (Number{}, false) without a diagnostic.
func (e *Entry) GetNumber(path string) (Number, bool) {
	return e.getNumber(path, true)
}

// GetNumberNoLog is GetNumber without diagnostics.
func (e *Entry) GetNumberNoLog(path string) (Number, bool) {
	return e.getNumber(path, false)
}

func (e *Entry) getNumber(path string, diagnose bool) (Number, bool) {
	src, ok := e.source(path)
	if !ok {
		if diagnose {
			e.report(numberError(ErrPathUnset, path, MessageValueMissing, expectedDecimalNumber))
		}

		return Number{}, false
	}

	switch {
	case src.IsDouble(path):
		value, _ := e.getDouble(path, diagnose)

		return DoubleNumber(value), true
	case src.IsInt(path):
		value, _ := e.getInt(path, diagnose)

		return IntNumber(value), true
	default:
		return Number{}, false
	}
}

func numberError(kind error, path, message string, expected []string) *PathError {
	return &PathError{Kind: kind, Path: path, Message: message, Expected: expected}
}

func integerValue(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
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

func floatValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		number, ok := integerValue(v)

		return float64(number), ok
	}
}
