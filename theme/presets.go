package theme

import "sort"

// Built-in theme constructors. Each starts from the defaults and
// applies a fixed set of overrides, so every preset is valid by
// construction.

// NewDarkTheme suits plots rendered on dark application backgrounds.
func NewDarkTheme() *Theme {
	t := New()
	t.SetName("dark")
	must(t.SetBackground("black"))
	must(t.SetCmap("viridis"))
	must(t.Font().SetColor("white"))
	t.SetShowEdges(false)
	must(t.SetColor("tan"))
	must(t.SetOutlineColor("white"))
	must(t.SetEdgeColor("white"))
	must(t.Axes().SetXColor("tomato"))
	must(t.Axes().SetYColor("seagreen"))
	must(t.Axes().SetZColor("blue"))
	return t
}

// NewParaViewTheme mimics the default look of the ParaView application.
func NewParaViewTheme() *Theme {
	t := New()
	t.SetName("paraview")
	must(t.SetBackground("paraview"))
	must(t.SetCmap("coolwarm"))
	must(t.Font().SetFamily("arial"))
	t.Font().SetLabelSize(intPtr(16))
	must(t.Font().SetColor("white"))
	t.SetShowEdges(false)
	must(t.SetColor("white"))
	must(t.SetOutlineColor("white"))
	must(t.SetEdgeColor("black"))
	must(t.Axes().SetXColor("tomato"))
	must(t.Axes().SetYColor("gold"))
	must(t.Axes().SetZColor("green"))
	return t
}

// NewDocumentTheme suits figures destined for white-background
// documents and print.
func NewDocumentTheme() *Theme {
	t := New()
	t.SetName("document")
	must(t.SetBackground("white"))
	must(t.SetCmap("viridis"))
	t.Font().SetSize(18)
	t.Font().SetTitleSize(intPtr(18))
	t.Font().SetLabelSize(intPtr(18))
	must(t.Font().SetColor("black"))
	t.SetShowEdges(false)
	must(t.SetColor("tan"))
	must(t.SetOutlineColor("black"))
	must(t.SetEdgeColor("black"))
	must(t.Axes().SetXColor("tomato"))
	must(t.Axes().SetYColor("seagreen"))
	must(t.Axes().SetZColor("blue"))
	return t
}

// NewDocumentProTheme is the document theme with higher-quality
// rendering: anti-aliasing, point spheres, depth peeling, and a color
// cycle for multi-mesh plots.
func NewDocumentProTheme() *Theme {
	t := NewDocumentTheme()
	t.SetName("document_pro")
	must(t.SetAntiAliasing("msaa"))
	t.SetMultiSamples(2)
	must(t.SetColorCycler("default"))
	t.SetRenderPointsAsSpheres(true)
	t.DepthPeeling().SetNumberOfPeels(4)
	t.DepthPeeling().SetOcclusionRatio(0)
	t.DepthPeeling().SetEnabled(true)
	return t
}

// NewTestingTheme lowers offscreen rendering cost for test suites.
func NewTestingTheme() *Theme {
	t := New()
	t.SetName("testing")
	t.SetMultiSamples(1)
	must(t.SetWindowSize([]int{400, 400}))
	t.Axes().SetShow(false)
	t.SetReturnCpos(false)
	return t
}

// presets is the closed registry of built-in themes.
var presets = map[string]func() *Theme{
	"default":      New,
	"dark":         NewDarkTheme,
	"document":     NewDocumentTheme,
	"document_pro": NewDocumentProTheme,
	"paraview":     NewParaViewTheme,
	"testing":      NewTestingTheme,
}

// Preset builds a fresh instance of the named built-in theme.
func Preset(key string) (*Theme, error) {
	ctor, ok := presets[key]
	if !ok {
		return nil, &UnknownPresetError{Key: key, Known: PresetNames()}
	}
	return ctor(), nil
}

// PresetNames returns the registered preset keys, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// must panics on a failed preset override. Presets assign literal
// values that cannot fail validation, so a panic here is a programming
// error caught by the test suite.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
