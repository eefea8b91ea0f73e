package theme

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// MarshalJSON serializes the theme with keys in declaration order so
// saved files diff cleanly. The before-close callback is omitted.
func (t *Theme) MarshalJSON() ([]byte, error) {
	s, err := buildJSON("", t)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalJSON rebuilds the theme from its serialized form, resetting
// to defaults first. Unknown keys fail.
func (t *Theme) UnmarshalJSON(data []byte) error {
	m, err := mapFromJSON(data)
	if err != nil {
		return err
	}
	loaded, err := FromMap(m)
	if err != nil {
		return err
	}
	// A zero-value Theme has no group instances yet.
	if t.trame == nil {
		*t = *New()
	}
	t.Load(loaded)
	return nil
}

// Save writes the theme to path as ordered, indented JSON.
func (t *Theme) Save(path string) error {
	doc, err := buildJSON("", t)
	if err != nil {
		return err
	}
	pretty := gjson.Get(doc, "@pretty").Raw
	if err := os.WriteFile(path, []byte(pretty), 0o644); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// LoadFile reads a JSON theme file saved by Save and applies it over
// the defaults.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	m, err := mapFromJSON(data)
	if err != nil {
		return nil, err
	}
	return FromMap(m)
}

// buildJSON appends every serializable field of s to the document in
// declaration order. sjson preserves insertion order, which is what
// gives saved themes their stable key layout.
func buildJSON(doc string, s Settings) (string, error) {
	if doc == "" {
		doc = "{}"
	}
	var err error
	for _, f := range s.fields() {
		if f.omit || f.alias {
			continue
		}
		key := escapeKey(f.name)
		if f.group != nil {
			sub, subErr := buildJSON("{}", f.group())
			if subErr != nil {
				return "", subErr
			}
			doc, err = sjson.SetRaw(doc, key, sub)
		} else {
			doc, err = sjson.Set(doc, key, f.get())
		}
		if err != nil {
			return "", fmt.Errorf("serialize %s: %w", f.name, err)
		}
	}
	return doc, nil
}

// escapeKey protects sjson path syntax in field names.
func escapeKey(name string) string {
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '.', '*', '?', '|', '#', '@', '\\':
			out = append(out, '\\')
		}
		out = append(out, name[i])
	}
	return string(out)
}

// mapFromJSON parses a JSON document into the map form FromMap accepts.
// gjson validates the document first; its Value() forms line up with
// the coercion rules (numbers as float64, objects as map[string]any).
func mapFromJSON(data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON theme document", ErrParse)
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("%w: theme document must be a JSON object, got %s", ErrParse, parsed.Type)
	}
	m, ok := parsed.Value().(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: theme document must be a JSON object", ErrParse)
	}
	return m, nil
}
