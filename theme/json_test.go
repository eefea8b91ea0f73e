package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestMarshalJSON_DeclarationOrder(t *testing.T) {
	doc, err := New().MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	s := string(doc)

	// Keys appear in declaration order, not alphabetical.
	order := []string{`"name"`, `"background"`, `"jupyter_backend"`, `"trame"`, `"window_size"`, `"axes"`, `"opacity"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(s, key)
		if idx < 0 {
			t.Fatalf("document missing %s", key)
		}
		if idx < last {
			t.Errorf("%s appears out of order", key)
		}
		last = idx
	}
}

func TestMarshalJSON_OmitsCallback(t *testing.T) {
	th := New()
	th.SetBeforeCloseCallback(func() {})

	doc, err := th.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if strings.Contains(string(doc), "before_close_callback") {
		t.Error("callback must not serialize")
	}
}

func TestMarshalJSON_NestedGroups(t *testing.T) {
	doc, err := NewDocumentTheme().MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	if got := gjson.GetBytes(doc, "font.size").Int(); got != 18 {
		t.Errorf("font.size = %d, want 18", got)
	}
	if got := gjson.GetBytes(doc, "slider_styles.modern.tube_width").Float(); got != 0.04 {
		t.Errorf("slider_styles.modern.tube_width = %v, want 0.04", got)
	}
	if got := gjson.GetBytes(doc, "camera.position").Array(); len(got) != 3 {
		t.Errorf("camera.position = %v", got)
	}
	if res := gjson.GetBytes(doc, "anti_aliasing"); res.Type != gjson.Null {
		t.Errorf("anti_aliasing = %v, want null", res)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	src := NewDocumentProTheme()
	doc, err := src.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}

	var dst Theme
	if err := dst.UnmarshalJSON(doc); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !src.Equal(&dst) {
		t.Error("JSON round trip should preserve structural equality")
	}
}

func TestUnmarshalJSON_UnknownKey(t *testing.T) {
	var th Theme
	err := th.UnmarshalJSON([]byte(`{"glow": true}`))
	if err == nil {
		t.Fatal("unknown key should fail")
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.json")

	src := NewDarkTheme()
	src.Font().SetSize(16)
	if err := src.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !src.Equal(loaded) {
		t.Error("saved and loaded themes differ")
	}
	if loaded.Font().Size() != 16 {
		t.Errorf("font size = %d, want 16", loaded.Font().Size())
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := writeFile(path, "{"); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("malformed document should fail")
	}
}
