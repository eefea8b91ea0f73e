package loader

import (
	"errors"
	"testing"
)

func TestLuaLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/theme.lua", `
local size = 200 * 2
return {
    name = "scripted",
    background = "black",
    multi_samples = 2,
    line_width = 1.5,
    window_size = { size, size },
    font = { size = 18, color = "white" },
}
`)

	loader := NewLuaLoaderWithFS(memfs, "/theme.lua")
	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if doc["name"] != "scripted" {
		t.Errorf("name = %v, want scripted", doc["name"])
	}
	if doc["multi_samples"] != int64(2) {
		t.Errorf("multi_samples = %v (%T), want int64(2)", doc["multi_samples"], doc["multi_samples"])
	}
	if doc["line_width"] != 1.5 {
		t.Errorf("line_width = %v, want 1.5", doc["line_width"])
	}

	size, ok := doc["window_size"].([]any)
	if !ok {
		t.Fatalf("window_size = %T, want slice", doc["window_size"])
	}
	if len(size) != 2 || size[0] != int64(400) {
		t.Errorf("window_size = %v, want [400 400]", size)
	}

	font, ok := doc["font"].(map[string]any)
	if !ok {
		t.Fatalf("font = %T, want map", doc["font"])
	}
	if font["size"] != int64(18) {
		t.Errorf("font.size = %v, want 18", font["size"])
	}
}

func TestLuaLoader_MustReturnTable(t *testing.T) {
	loader := NewLuaLoader("")
	_, err := loader.LoadFromString(`return "not a table"`)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestLuaLoader_SyntaxError(t *testing.T) {
	loader := NewLuaLoader("")
	_, err := loader.LoadFromString(`return {`)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestLuaLoader_Sandboxed(t *testing.T) {
	loader := NewLuaLoader("")

	// io and os never open; the file-reaching globals are stripped.
	scripts := []string{
		`return { ok = io ~= nil }`,
		`return { ok = os ~= nil }`,
		`return { ok = dofile ~= nil }`,
		`return { ok = loadfile ~= nil }`,
		`return { ok = require ~= nil }`,
	}
	for _, script := range scripts {
		doc, err := loader.LoadFromString(script)
		if err != nil {
			t.Fatalf("LoadFromString(%q): %v", script, err)
		}
		if doc["ok"] != false {
			t.Errorf("script %q escaped the sandbox", script)
		}
	}
}

func TestLuaLoader_Missing(t *testing.T) {
	loader := NewLuaLoaderWithFS(NewMemFS(), "/nope.lua")
	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc != nil {
		t.Errorf("missing file should load as nil, got %v", doc)
	}
}
