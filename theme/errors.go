package theme

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
)

// Errors returned by theme operations.
var (
	// ErrOutOfRange indicates a numeric value outside its allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrTypeMismatch indicates a value of the wrong type for a field.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidEnum indicates a value not in a field's closed set.
	ErrInvalidEnum = errors.New("invalid enum value")

	// ErrUnknownField indicates a field name not declared by the group.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownPreset indicates a preset key not in the registry.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrParse indicates a theme document that could not be decoded.
	ErrParse = errors.New("parse error")
)

// RangeError reports a numeric value outside its allowed range.
type RangeError struct {
	// Field is the field name.
	Field string
	// Value is the rejected value.
	Value float64
	// Min and Max bound the allowed range, inclusive.
	Min, Max float64
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %g and %g, got %g", e.Field, e.Min, e.Max, e.Value)
}

// Is implements error matching for RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// EnumError reports a value outside a field's closed set of tokens.
type EnumError struct {
	// Field is the field name.
	Field string
	// Value is the rejected token.
	Value string
	// Allowed lists the valid tokens.
	Allowed []string
}

// Error implements the error interface.
func (e *EnumError) Error() string {
	return fmt.Sprintf("%s must be one of: %s (got %q)", e.Field, strings.Join(e.Allowed, ", "), e.Value)
}

// Is implements error matching for EnumError.
func (e *EnumError) Is(target error) bool {
	return target == ErrInvalidEnum
}

// TypeError reports a value of the wrong type for a field.
type TypeError struct {
	// Field is the field name.
	Field string
	// Expected is the expected type name.
	Expected string
	// Actual is the actual type name.
	Actual string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// Is implements error matching for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// UnknownFieldError reports a mapping key that names no declared field.
type UnknownFieldError struct {
	// Field is the unrecognized key.
	Field string
}

// Error implements the error interface.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown theme field %q", e.Field)
}

// Is implements error matching for UnknownFieldError.
func (e *UnknownFieldError) Is(target error) bool {
	return target == ErrUnknownField
}

// UnknownPresetError reports a preset key not in the registry.
type UnknownPresetError struct {
	// Key is the unrecognized preset key.
	Key string
	// Known lists the registered preset keys.
	Known []string
}

// Error implements the error interface.
func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("unknown preset %q (known presets: %s)", e.Key, strings.Join(e.Known, ", "))
}

// Is implements error matching for UnknownPresetError.
func (e *UnknownPresetError) Is(target error) bool {
	return target == ErrUnknownPreset
}

var (
	deprecationMu      sync.Mutex
	deprecationHandler = func(msg string) { log.Printf("viztheme: deprecated: %s", msg) }
)

// SetDeprecationHandler replaces the sink for non-fatal deprecation
// notices. Passing nil silences them.
func SetDeprecationHandler(fn func(msg string)) {
	deprecationMu.Lock()
	defer deprecationMu.Unlock()
	if fn == nil {
		fn = func(string) {}
	}
	deprecationHandler = fn
}

func warnDeprecated(msg string) {
	deprecationMu.Lock()
	fn := deprecationHandler
	deprecationMu.Unlock()
	fn(msg)
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64:
		return "int"
	case float32, float64:
		return "float"
	case []any:
		return "array"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
