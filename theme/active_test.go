package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/viztheme/theme/notify"
)

func TestManager_Defaults(t *testing.T) {
	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if !m.Current().Equal(New()) {
		t.Error("manager should start with the default theme")
	}
}

func TestManager_WithTheme(t *testing.T) {
	src := NewDarkTheme()
	m, err := NewManager(WithTheme(src))
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if !m.Current().Equal(src) {
		t.Error("WithTheme should install the given theme")
	}

	src.Font().SetSize(99)
	if m.Current().Font().Size() == 99 {
		t.Error("manager shares state with the source theme")
	}
}

func TestManager_InstallPreset(t *testing.T) {
	m, _ := NewManager()
	if err := m.Install("dark"); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if m.Current().Name() != "dark" {
		t.Errorf("Name = %q, want dark", m.Current().Name())
	}

	err := m.Install("solarized")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("unknown preset: %v, want ErrUnknownPreset", err)
	}
}

func TestManager_InstallInstance(t *testing.T) {
	m, _ := NewManager()
	custom := New()
	custom.SetName("mine")
	custom.Font().SetSize(30)

	if err := m.Install(custom); err != nil {
		t.Fatalf("Install: %v", err)
	}
	if !m.Current().Equal(custom) {
		t.Error("installed theme should equal the source")
	}

	custom.Font().SetSize(7)
	if m.Current().Font().Size() == 7 {
		t.Error("install must copy, not alias")
	}
}

func TestManager_InstallBadType(t *testing.T) {
	m, _ := NewManager()
	if err := m.Install(42); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Install(42) = %v, want ErrTypeMismatch", err)
	}
}

func TestManager_InstallFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "t.json")
	if err := os.WriteFile(jsonPath, []byte(`{"name": "fromjson", "show_edges": true}`), 0o644); err != nil {
		t.Fatal(err)
	}
	tomlPath := filepath.Join(dir, "t.toml")
	if err := os.WriteFile(tomlPath, []byte("name = \"fromtoml\"\nmulti_samples = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	luaPath := filepath.Join(dir, "t.lua")
	if err := os.WriteFile(luaPath, []byte(`return { name = "fromlua", line_width = 2 }`), 0o644); err != nil {
		t.Fatal(err)
	}

	m, _ := NewManager()

	if err := m.Install(jsonPath); err != nil {
		t.Fatalf("json: %v", err)
	}
	if m.Current().Name() != "fromjson" || !m.Current().ShowEdges() {
		t.Errorf("json install: name=%q edges=%v", m.Current().Name(), m.Current().ShowEdges())
	}

	if err := m.Install(tomlPath); err != nil {
		t.Fatalf("toml: %v", err)
	}
	if m.Current().MultiSamples() != 2 {
		t.Errorf("toml install: multi_samples = %d", m.Current().MultiSamples())
	}

	if err := m.Install(luaPath); err != nil {
		t.Fatalf("lua: %v", err)
	}
	if m.Current().LineWidth() != 2 {
		t.Errorf("lua install: line_width = %v", m.Current().LineWidth())
	}

	if err := m.InstallFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file should fail")
	}
	if err := m.InstallFile(filepath.Join(dir, "t.yaml")); !errors.Is(err, ErrParse) {
		t.Errorf("unsupported extension: %v, want ErrParse", err)
	}
}

func TestManager_SetNotifies(t *testing.T) {
	n := notify.New()
	defer n.Close()
	m, _ := NewManager(WithNotifier(n))

	var got notify.Change
	m.Subscribe(func(c notify.Change) { got = c })

	if err := m.Set("font.size", 20); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if got.Type != notify.ChangeSet || got.Path != "font.size" {
		t.Fatalf("change = %+v", got)
	}
	if got.OldValue != 12 || got.NewValue != 20 {
		t.Errorf("old/new = %v/%v, want 12/20", got.OldValue, got.NewValue)
	}
}

func TestManager_SubscribePath(t *testing.T) {
	n := notify.New()
	defer n.Close()
	m, _ := NewManager(WithNotifier(n))

	var fontChanges, edgeChanges int
	m.SubscribePath("font", func(notify.Change) { fontChanges++ })
	m.SubscribePath("show_edges", func(notify.Change) { edgeChanges++ })

	if err := m.Set("font.size", 14); err != nil {
		t.Fatal(err)
	}
	if err := m.Set("line_width", 3.0); err != nil {
		t.Fatal(err)
	}

	if fontChanges != 1 {
		t.Errorf("font observer fired %d times, want 1", fontChanges)
	}
	if edgeChanges != 0 {
		t.Errorf("show_edges observer fired %d times, want 0", edgeChanges)
	}
}

func TestManager_SetInvalid(t *testing.T) {
	m, _ := NewManager()
	if err := m.Set("opacity", 5.0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Set(opacity, 5) = %v, want ErrOutOfRange", err)
	}
	if err := m.Set("nope", 1); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Set(nope) = %v, want ErrUnknownField", err)
	}
}

func TestManager_Reset(t *testing.T) {
	n := notify.New()
	defer n.Close()
	m, _ := NewManager(WithNotifier(n))

	var resets int
	m.Subscribe(func(c notify.Change) {
		if c.Type == notify.ChangeReset {
			resets++
		}
	})

	if err := m.Install("dark"); err != nil {
		t.Fatal(err)
	}
	m.Reset()

	if !m.Current().Equal(New()) {
		t.Error("Reset should restore defaults")
	}
	if resets != 1 {
		t.Errorf("resets = %d, want 1", resets)
	}
}

func TestManager_ApplyEnv(t *testing.T) {
	t.Setenv("VIZTHEME_MULTI_SAMPLES", "2")
	t.Setenv("VIZTHEME_JUPYTER_BACKEND", "none")

	m, _ := NewManager()
	if err := m.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}

	if m.Current().MultiSamples() != 2 {
		t.Errorf("multi_samples = %d, want 2", m.Current().MultiSamples())
	}
	if m.Current().JupyterBackend() != "none" {
		t.Errorf("jupyter_backend = %q, want none", m.Current().JupyterBackend())
	}
}

func TestManager_Snapshot(t *testing.T) {
	m, _ := NewManager()
	snap := m.Snapshot()
	snap.Font().SetSize(50)
	if m.Current().Font().Size() == 50 {
		t.Error("snapshot shares state with the active theme")
	}
}
