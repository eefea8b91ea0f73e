package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestJSONLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/theme.json", `{
		"background": "#4c4c4cff",
		"line_width": 2.5,
		"show_edges": true,
		"font": {"size": 18, "family": "courier"},
		"window_size": [400, 400]
	}`)

	loader := NewJSONLoaderWithFS(memfs, "/theme.json")
	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if doc["background"] != "#4c4c4cff" {
		t.Errorf("background = %v, want #4c4c4cff", doc["background"])
	}
	if doc["line_width"] != 2.5 {
		t.Errorf("line_width = %v, want 2.5", doc["line_width"])
	}
	if doc["show_edges"] != true {
		t.Errorf("show_edges = %v, want true", doc["show_edges"])
	}

	font, ok := doc["font"].(map[string]any)
	if !ok {
		t.Fatalf("font = %T, want map", doc["font"])
	}
	if font["size"] != float64(18) {
		t.Errorf("font.size = %v, want 18", font["size"])
	}

	size, ok := doc["window_size"].([]any)
	if !ok || len(size) != 2 {
		t.Fatalf("window_size = %v, want 2-element array", doc["window_size"])
	}
}

func TestJSONLoader_Missing(t *testing.T) {
	loader := NewJSONLoaderWithFS(NewMemFS(), "/nope.json")
	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc != nil {
		t.Errorf("missing file should load as nil, got %v", doc)
	}
}

func TestJSONLoader_Malformed(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.json", `{"background": `)

	_, err := NewJSONLoaderWithFS(memfs, "/bad.json").Load()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestJSONLoader_NotAnObject(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/array.json", `[1, 2, 3]`)

	_, err := NewJSONLoaderWithFS(memfs, "/array.json").Load()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if !strings.Contains(parseErr.Message, "object") {
		t.Errorf("error should mention object, got %q", parseErr.Message)
	}
}

func TestJSONLoader_FromReader(t *testing.T) {
	loader := NewJSONLoader("")
	doc, err := loader.LoadFromReader(strings.NewReader(`{"name": "custom"}`))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if doc["name"] != "custom" {
		t.Errorf("name = %v, want custom", doc["name"])
	}
}
