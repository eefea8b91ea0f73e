package theme

import (
	"reflect"
	"strings"
)

// field describes one declared field of a config group: its public name,
// a getter producing the serialized-form value, and a setter that coerces
// and validates before assignment. Config groups expose an ordered field
// table and the generic operations below work over it.
type field struct {
	name string
	get  func() any
	set  func(any) error

	// group returns the nested config group when this field holds one.
	group func() Settings

	// omit excludes the field from serialization and equality. Used for
	// the non-serializable before-close callback.
	omit bool

	// alias marks a lookup-only entry forwarding to another field. An
	// alias never serializes, never compares, and is not copied on load.
	alias bool
}

// Settings is implemented by every config group. The field table is
// unexported so the set of groups is closed: fields are fixed at
// construction and never grow or shrink.
type Settings interface {
	fields() []field
}

// ToMap returns the group's fields as a map keyed by public field name,
// nested groups included recursively. Non-serializable fields are
// omitted. Key order in the result map is unordered; serialization that
// needs declaration order walks the field table directly.
func ToMap(s Settings) map[string]any {
	out := make(map[string]any)
	for _, f := range s.fields() {
		if f.omit || f.alias {
			continue
		}
		if f.group != nil {
			out[f.name] = ToMap(f.group())
			continue
		}
		out[f.name] = f.get()
	}
	return out
}

// Apply assigns every key of data to the corresponding field through its
// normal setter, recursing into nested groups when the incoming value is
// itself a map. A key naming no declared field fails with
// ErrUnknownField; a failed assignment leaves the field unchanged and
// propagates the setter's error.
func Apply(s Settings, data map[string]any) error {
	for key, value := range data {
		f, ok := lookupField(s, key)
		if !ok {
			return &UnknownFieldError{Field: key}
		}
		if f.group != nil {
			sub, ok := value.(map[string]any)
			if !ok {
				return &TypeError{Field: key, Expected: "map", Actual: typeName(value)}
			}
			if err := Apply(f.group(), sub); err != nil {
				return err
			}
			continue
		}
		if err := f.set(value); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports structural equality: both groups must be of the same
// concrete kind with every declared field comparing equal. Slice-valued
// fields compare by element. Omitted fields do not participate.
func Equal(a, b Settings) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	fa, fb := a.fields(), b.fields()
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if fa[i].omit || fa[i].alias {
			continue
		}
		if fa[i].group != nil {
			if !Equal(fa[i].group(), fb[i].group()) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(fa[i].get(), fb[i].get()) {
			return false
		}
	}
	return true
}

// Get reads a field by name. Dotted paths traverse nested groups, e.g.
// "font.size" or "slider_styles.modern.tube_width".
func Get(s Settings, path string) (any, error) {
	head, rest, nested := strings.Cut(path, ".")
	f, ok := lookupField(s, head)
	if !ok {
		return nil, &UnknownFieldError{Field: head}
	}
	if nested {
		if f.group == nil {
			return nil, &TypeError{Field: head, Expected: "config group", Actual: "scalar field"}
		}
		return Get(f.group(), rest)
	}
	if f.group != nil {
		return ToMap(f.group()), nil
	}
	return f.get(), nil
}

// Set writes a field by name through its normal setter. Dotted paths
// traverse nested groups.
func Set(s Settings, path string, value any) error {
	head, rest, nested := strings.Cut(path, ".")
	f, ok := lookupField(s, head)
	if !ok {
		return &UnknownFieldError{Field: head}
	}
	if nested {
		if f.group == nil {
			return &TypeError{Field: head, Expected: "config group", Actual: "scalar field"}
		}
		return Set(f.group(), rest, value)
	}
	if f.group != nil {
		sub, ok := value.(map[string]any)
		if !ok {
			return &TypeError{Field: head, Expected: "map", Actual: typeName(value)}
		}
		return Apply(f.group(), sub)
	}
	return f.set(value)
}

// FieldNames returns the group's public field names in declaration
// order, aliases excluded.
func FieldNames(s Settings) []string {
	var names []string
	for _, f := range s.fields() {
		if f.alias {
			continue
		}
		names = append(names, f.name)
	}
	return names
}

func lookupField(s Settings, name string) (field, bool) {
	for _, f := range s.fields() {
		if f.name == name {
			return f, true
		}
	}
	return field{}, false
}

// copyInto assigns every field of src onto dst in declaration order,
// routing each value through dst's normal setters. Nested groups and
// slices are rebuilt, never shared.
func copyInto(dst, src Settings) {
	df, sf := dst.fields(), src.fields()
	for i := range df {
		if df[i].alias {
			continue
		}
		if df[i].group != nil {
			// Defaults on both sides share a shape, so replaying the
			// source group's map cannot fail.
			_ = Apply(df[i].group(), ToMap(sf[i].group()))
			continue
		}
		_ = df[i].set(sf[i].get())
	}
}
