package loader

import (
	"reflect"
	"testing"
)

func TestEnvLoader_MappedVariables(t *testing.T) {
	t.Setenv("VIZTHEME_MULTI_SAMPLES", "1")
	t.Setenv("VIZTHEME_AUTO_CLOSE", "false")
	t.Setenv("VIZTHEME_JUPYTER_BACKEND", "static")
	t.Setenv("VIZTHEME_WINDOW_SIZE", "[400, 400]")
	t.Setenv("VIZTHEME_SERVER_PROXY_ENABLED", "true")

	loader := NewEnvLoader(EnvPrefix)
	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if doc["multi_samples"] != int64(1) {
		t.Errorf("multi_samples = %v (%T), want int64(1)", doc["multi_samples"], doc["multi_samples"])
	}
	if doc["auto_close"] != false {
		t.Errorf("auto_close = %v, want false", doc["auto_close"])
	}
	if doc["jupyter_backend"] != "static" {
		t.Errorf("jupyter_backend = %v, want static", doc["jupyter_backend"])
	}

	size, ok := doc["window_size"].([]any)
	if !ok || !reflect.DeepEqual(size, []any{float64(400), float64(400)}) {
		t.Errorf("window_size = %v, want [400 400]", doc["window_size"])
	}

	trame, ok := doc["trame"].(map[string]any)
	if !ok {
		t.Fatalf("trame = %T, want map", doc["trame"])
	}
	if trame["server_proxy_enabled"] != true {
		t.Errorf("trame.server_proxy_enabled = %v, want true", trame["server_proxy_enabled"])
	}
}

func TestEnvLoader_GenericScan(t *testing.T) {
	t.Setenv("VIZTHEME_FONT_SIZE", "18")
	t.Setenv("VIZTHEME_SHOW_EDGES", "true")

	loader := NewEnvLoader(EnvPrefix)
	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	font, ok := doc["font"].(map[string]any)
	if !ok {
		t.Fatalf("font = %T, want map", doc["font"])
	}
	if font["size"] != int64(18) {
		t.Errorf("font.size = %v, want 18", font["size"])
	}
	if doc["show_edges"] != true {
		t.Errorf("show_edges = %v, want true", doc["show_edges"])
	}
}

func TestEnvLoader_CustomMapping(t *testing.T) {
	t.Setenv("PLOTTER_BG", "black")

	loader := NewEnvLoaderWithMapping("PLOTTER_", map[string]string{
		"PLOTTER_BG": "background",
	})
	doc, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc["background"] != "black" {
		t.Errorf("background = %v, want black", doc["background"])
	}
}

func TestParseEnvValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"FALSE", false},
		{"on", true},
		{"off", false},
		{"1", int64(1)},
		{"0", int64(0)},
		{"42", int64(42)},
		{"0.5", 0.5},
		{"fxaa", "fxaa"},
		{`["a", "b"]`, []any{"a", "b"}},
		{"", ""},
	}
	for _, tt := range tests {
		got := parseEnvValue(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseEnvValue(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
		}
	}
}
