package theme

import (
	"errors"
	"testing"
)

func TestGet_DottedPath(t *testing.T) {
	th := New()

	tests := []struct {
		path string
		want any
	}{
		{"name", "default"},
		{"font.size", 12},
		{"font.family", "arial"},
		{"slider_styles.modern.tube_width", 0.04},
		{"lighting_params.interpolation", "flat"},
		{"trame.default_mode", "trame"},
		{"colorbar_horizontal.width", 0.6},
	}
	for _, tt := range tests {
		got, err := Get(th, tt.path)
		if err != nil {
			t.Fatalf("Get(%q): %v", tt.path, err)
		}
		if got != tt.want {
			t.Errorf("Get(%q) = %v (%T), want %v", tt.path, got, got, tt.want)
		}
	}
}

func TestGet_GroupReturnsMap(t *testing.T) {
	th := New()
	got, err := Get(th, "font")
	if err != nil {
		t.Fatalf("Get(font): %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("Get(font) = %T, want map", got)
	}
	if m["family"] != "arial" {
		t.Errorf("font.family = %v", m["family"])
	}
}

func TestGet_Errors(t *testing.T) {
	th := New()

	if _, err := Get(th, "sparkle"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("unknown field: %v, want ErrUnknownField", err)
	}
	if _, err := Get(th, "font.weight"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("unknown nested field: %v, want ErrUnknownField", err)
	}
	if _, err := Get(th, "opacity.nested"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("path through scalar: %v, want ErrTypeMismatch", err)
	}
}

func TestSet_DottedPath(t *testing.T) {
	th := New()

	if err := Set(th, "font.size", 20); err != nil {
		t.Fatalf("Set(font.size): %v", err)
	}
	if th.Font().Size() != 20 {
		t.Errorf("font.size = %d, want 20", th.Font().Size())
	}

	if err := Set(th, "slider_styles.classic.tube_width", 0.01); err != nil {
		t.Fatalf("Set(slider tube): %v", err)
	}
	if *th.SliderStyles().Classic().TubeWidth() != 0.01 {
		t.Errorf("tube_width = %v", *th.SliderStyles().Classic().TubeWidth())
	}

	if err := Set(th, "background", "black"); err != nil {
		t.Fatalf("Set(background): %v", err)
	}
	if th.Background().Hex() != "#000000ff" {
		t.Errorf("background = %s", th.Background().Hex())
	}
}

func TestSet_ValidatesThroughSetter(t *testing.T) {
	th := New()

	if err := Set(th, "opacity", 2.0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("opacity: %v, want ErrOutOfRange", err)
	}
	if err := Set(th, "font.family", "papyrus"); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("font.family: %v, want ErrInvalidEnum", err)
	}
	if err := Set(th, "font.size", "huge"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("font.size: %v, want ErrTypeMismatch", err)
	}
}

func TestSet_GroupFromMap(t *testing.T) {
	th := New()
	err := Set(th, "font", map[string]any{"size": 14, "family": "times"})
	if err != nil {
		t.Fatalf("Set(font): %v", err)
	}
	if th.Font().Size() != 14 || th.Font().Family() != "times" {
		t.Errorf("font = %s/%d", th.Font().Family(), th.Font().Size())
	}
	// Unlisted fields keep their values.
	if th.Font().Color().Hex() != "#ffffffff" {
		t.Errorf("font.color = %s, want unchanged white", th.Font().Color().Hex())
	}
}

func TestFieldNames_Order(t *testing.T) {
	names := FieldNames(New())
	if names[0] != "name" || names[1] != "background" {
		t.Errorf("first fields = %v", names[:2])
	}
	if names[len(names)-1] != "opacity" {
		t.Errorf("last field = %s, want opacity", names[len(names)-1])
	}
	for _, n := range names {
		if n == "antialiasing" {
			t.Error("alias appears in FieldNames")
		}
	}
}

func TestToMap_NestedGroups(t *testing.T) {
	m := ToMap(New())

	font, ok := m["font"].(map[string]any)
	if !ok {
		t.Fatalf("font = %T", m["font"])
	}
	if font["size"] != 12 {
		t.Errorf("font.size = %v", font["size"])
	}
	if _, ok := m["before_close_callback"]; ok {
		t.Error("callback leaked into ToMap")
	}

	camera, ok := m["camera"].(map[string]any)
	if !ok {
		t.Fatalf("camera = %T", m["camera"])
	}
	if len(camera["position"].([]any)) != 3 {
		t.Errorf("camera.position = %v", camera["position"])
	}
}
