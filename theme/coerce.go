package theme

import (
	"fmt"
	"math"

	"github.com/dshills/viztheme/color"
)

// Coercion helpers used by field setters. JSON decoding hands every
// number over as float64 and TOML as int64, so numeric fields accept
// the common numeric kinds and normalize from there.

func coerceFloat(name string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, &TypeError{Field: name, Expected: "number", Actual: typeName(v)}
}

// coerceInt truncates fractional input toward zero.
func coerceInt(name string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(math.Trunc(n)), nil
	case float32:
		return int(math.Trunc(float64(n))), nil
	}
	return 0, &TypeError{Field: name, Expected: "integer", Actual: typeName(v)}
}

func coerceBool(name string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Field: name, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

func coerceString(name string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Field: name, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// Nullable variants return (nil, nil) for a nil input so pointer-typed
// fields can be cleared.

func coerceFloatPtr(name string, v any) (*float64, error) {
	if v == nil {
		return nil, nil
	}
	n, err := coerceFloat(name, v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func coerceIntPtr(name string, v any) (*int, error) {
	if v == nil {
		return nil, nil
	}
	n, err := coerceInt(name, v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func coerceBoolPtr(name string, v any) (*bool, error) {
	if v == nil {
		return nil, nil
	}
	b, err := coerceBool(name, v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func coerceStringPtr(name string, v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, err := coerceString(name, v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// coerceColor normalizes any color form the color package accepts.
func coerceColor(name string, v any) (color.Color, error) {
	c, err := color.New(v)
	if err != nil {
		return color.Color{}, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// coerceIntSlice normalizes a sequence of integers from the forms the
// decoders produce.
func coerceIntSlice(name string, v any) ([]int, error) {
	switch seq := v.(type) {
	case []int:
		out := make([]int, len(seq))
		copy(out, seq)
		return out, nil
	case []float64:
		out := make([]int, len(seq))
		for i, f := range seq {
			out[i] = int(math.Trunc(f))
		}
		return out, nil
	case []any:
		out := make([]int, len(seq))
		for i, item := range seq {
			n, err := coerceInt(name, item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	}
	return nil, &TypeError{Field: name, Expected: "sequence of integers", Actual: typeName(v)}
}

// coerceColorPtr returns nil for a nil input so nullable color fields
// can be cleared.
func coerceColorPtr(name string, v any) (*color.Color, error) {
	if v == nil {
		return nil, nil
	}
	c, err := coerceColor(name, v)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// colorPtrValue renders a nullable color for serialization.
func colorPtrValue(c *color.Color) any {
	if c == nil {
		return nil
	}
	return c.Hex()
}

// checkUnitInterval enforces the closed range [0, 1].
func checkUnitInterval(name string, v float64) error {
	if v < 0 || v > 1 {
		return &RangeError{Field: name, Value: v, Min: 0, Max: 1}
	}
	return nil
}

// checkEnum enforces membership in a closed value set.
func checkEnum(name, v string, allowed []string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return &EnumError{Field: name, Value: v, Allowed: allowed}
}

// Setter factories for field tables whose fields need coercion only,
// no extra validation.

func floatSetter(name string, dst *float64) func(any) error {
	return func(v any) error {
		n, err := coerceFloat(name, v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func intSetter(name string, dst *int) func(any) error {
	return func(v any) error {
		n, err := coerceInt(name, v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

func boolSetter(name string, dst *bool) func(any) error {
	return func(v any) error {
		b, err := coerceBool(name, v)
		if err != nil {
			return err
		}
		*dst = b
		return nil
	}
}

func stringSetter(name string, dst *string) func(any) error {
	return func(v any) error {
		s, err := coerceString(name, v)
		if err != nil {
			return err
		}
		*dst = s
		return nil
	}
}

func floatPtrSetter(name string, dst **float64) func(any) error {
	return func(v any) error {
		p, err := coerceFloatPtr(name, v)
		if err != nil {
			return err
		}
		*dst = p
		return nil
	}
}

func intPtrSetter(name string, dst **int) func(any) error {
	return func(v any) error {
		p, err := coerceIntPtr(name, v)
		if err != nil {
			return err
		}
		*dst = p
		return nil
	}
}

func boolPtrSetter(name string, dst **bool) func(any) error {
	return func(v any) error {
		p, err := coerceBoolPtr(name, v)
		if err != nil {
			return err
		}
		*dst = p
		return nil
	}
}

func stringPtrSetter(name string, dst **string) func(any) error {
	return func(v any) error {
		p, err := coerceStringPtr(name, v)
		if err != nil {
			return err
		}
		*dst = p
		return nil
	}
}

func colorSetter(name string, dst *color.Color) func(any) error {
	return func(v any) error {
		c, err := coerceColor(name, v)
		if err != nil {
			return err
		}
		*dst = c
		return nil
	}
}

// floatPtr and friends package literals for default construction.
func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }

// ptrValue renders a nullable for serialization: nil stays nil.
func ptrValue[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// fmtFloat keeps whole numbers short in diagnostics.
func fmtFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.1f", v)
	}
	return fmt.Sprintf("%g", v)
}
