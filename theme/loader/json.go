package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
)

// JSONLoader loads theme documents from JSON files.
type JSONLoader struct {
	fs   FileSystem
	path string
}

// NewJSONLoader creates a new JSON loader for the given path.
func NewJSONLoader(path string) *JSONLoader {
	return &JSONLoader{
		fs:   DefaultFS(),
		path: path,
	}
}

// NewJSONLoaderWithFS creates a JSON loader with a custom file system.
func NewJSONLoaderWithFS(fs FileSystem, path string) *JSONLoader {
	return &JSONLoader{
		fs:   fs,
		path: path,
	}
}

// Load reads a theme document from the configured path.
func (l *JSONLoader) Load() (map[string]any, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads a theme document from a specific path.
func (l *JSONLoader) LoadFrom(path string) (map[string]any, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading theme file %s: %w", path, err)
	}

	return l.parse(path, data)
}

// LoadFromReader reads a theme document from an io.Reader.
func (l *JSONLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading theme: %w", err)
	}

	return l.parse("<reader>", data)
}

// parse validates and decodes JSON data into a map.
func (l *JSONLoader) parse(source string, data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{
			Path:    source,
			Message: "malformed JSON",
		}
	}
	parsed := gjson.ParseBytes(data)
	doc, ok := parsed.Value().(map[string]any)
	if !ok {
		return nil, &ParseError{
			Path:    source,
			Message: fmt.Sprintf("theme document must be a JSON object, got %s", parsed.Type),
		}
	}
	return doc, nil
}
