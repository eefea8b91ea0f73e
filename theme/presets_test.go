package theme

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestPreset_Default(t *testing.T) {
	th, err := Preset("default")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}
	if !th.Equal(New()) {
		t.Error("default preset should equal a fresh theme")
	}
}

func TestPreset_Dark(t *testing.T) {
	th, err := Preset("dark")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}

	if th.Name() != "dark" {
		t.Errorf("Name = %q", th.Name())
	}
	if th.Background().Hex() != "#000000ff" {
		t.Errorf("Background = %s, want black", th.Background().Hex())
	}
	if th.Font().Color().Hex() != "#ffffffff" {
		t.Errorf("Font color = %s, want white", th.Font().Color().Hex())
	}
	if th.EdgeColor().Hex() != "#ffffffff" {
		t.Errorf("EdgeColor = %s, want white", th.EdgeColor().Hex())
	}
	if th.Axes().XColor().String() != "tomato" {
		t.Errorf("Axes X = %s, want tomato", th.Axes().XColor())
	}
}

func TestPreset_Document(t *testing.T) {
	th, err := Preset("document")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}

	if th.Background().Hex() != "#ffffffff" {
		t.Errorf("Background = %s, want white", th.Background().Hex())
	}
	if th.Font().Size() != 18 {
		t.Errorf("Font size = %d, want 18", th.Font().Size())
	}
	if th.Font().TitleSize() == nil || *th.Font().TitleSize() != 18 {
		t.Errorf("TitleSize = %v, want 18", th.Font().TitleSize())
	}
	if th.Font().Color().Hex() != "#000000ff" {
		t.Errorf("Font color = %s, want black", th.Font().Color().Hex())
	}
	if th.Color().String() != "tan" {
		t.Errorf("mesh color = %s, want tan", th.Color())
	}
}

func TestPreset_DocumentPro(t *testing.T) {
	th, err := Preset("document_pro")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}

	doc := NewDocumentTheme()
	if th.Background().Hex() != doc.Background().Hex() {
		t.Error("document_pro should keep the document background")
	}
	if th.AntiAliasing() == nil || *th.AntiAliasing() != "msaa" {
		t.Errorf("AntiAliasing = %v, want msaa", th.AntiAliasing())
	}
	if th.MultiSamples() != 2 {
		t.Errorf("MultiSamples = %d, want 2", th.MultiSamples())
	}
	if th.ColorCycler() == nil || th.ColorCycler().Name() != "default" {
		t.Errorf("ColorCycler = %v, want default", th.ColorCycler())
	}
	if !th.RenderPointsAsSpheres() {
		t.Error("RenderPointsAsSpheres should be on")
	}
	if !th.DepthPeeling().Enabled() || th.DepthPeeling().NumberOfPeels() != 4 {
		t.Errorf("depth peeling = %v/%d", th.DepthPeeling().Enabled(), th.DepthPeeling().NumberOfPeels())
	}
}

func TestPreset_ParaView(t *testing.T) {
	th, err := Preset("paraview")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}

	if th.Background().Hex() != "#52576eff" {
		t.Errorf("Background = %s, want the paraview token", th.Background().Hex())
	}
	if th.Cmap() != "coolwarm" {
		t.Errorf("Cmap = %q, want coolwarm", th.Cmap())
	}
	if th.Font().LabelSize() == nil || *th.Font().LabelSize() != 16 {
		t.Errorf("LabelSize = %v, want 16", th.Font().LabelSize())
	}
	if th.Axes().YColor().String() != "gold" {
		t.Errorf("Axes Y = %s, want gold", th.Axes().YColor())
	}
}

func TestPreset_Testing(t *testing.T) {
	th, err := Preset("testing")
	if err != nil {
		t.Fatalf("Preset: %v", err)
	}

	if th.MultiSamples() != 1 {
		t.Errorf("MultiSamples = %d, want 1", th.MultiSamples())
	}
	if th.WindowSize() != [2]int{400, 400} {
		t.Errorf("WindowSize = %v, want [400 400]", th.WindowSize())
	}
	if th.Axes().Show() {
		t.Error("testing preset hides axes")
	}
	if th.ReturnCpos() {
		t.Error("testing preset disables return_cpos")
	}
}

func TestPreset_Unknown(t *testing.T) {
	_, err := Preset("solarized")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("err = %v, want ErrUnknownPreset", err)
	}

	var presetErr *UnknownPresetError
	if !errors.As(err, &presetErr) {
		t.Fatalf("err = %T, want *UnknownPresetError", err)
	}
	if presetErr.Key != "solarized" {
		t.Errorf("Key = %q", presetErr.Key)
	}
	if !strings.Contains(err.Error(), "dark") {
		t.Errorf("error should list known presets, got %q", err.Error())
	}
}

func TestPresetNames(t *testing.T) {
	want := []string{"dark", "default", "document", "document_pro", "paraview", "testing"}
	if got := PresetNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("PresetNames = %v, want %v", got, want)
	}
}

func TestPresets_AreIndependent(t *testing.T) {
	a, _ := Preset("dark")
	b, _ := Preset("dark")
	a.Font().SetSize(99)
	if b.Font().Size() == 99 {
		t.Error("preset instances share state")
	}
}
