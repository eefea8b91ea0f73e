package theme

import (
	"fmt"
	"runtime"

	"github.com/dshills/viztheme/color"
)

// Closed value sets for root theme fields.
var (
	jupyterBackends = []string{
		"none", "static", "trame", "server", "client", "html",
		"ipyvtklink", "panel", "ipygany", "pythreejs",
	}
	colorbarOrientations = []string{"vertical", "horizontal"}
	volumeMappers        = []string{"fixed_point", "gpu", "open_gl", "smart"}
	antiAliasingModes    = []string{"ssaa", "msaa", "fxaa"}
)

// Theme is the root plotting configuration: global visual defaults plus
// the nested config groups. A Theme is plain data with no internal
// locking; Manager serializes concurrent access to the active theme.
type Theme struct {
	name                            string
	background                      color.Color
	jupyterBackend                  string
	trame                           *TrameConfig
	fullScreen                      bool
	windowSize                      [2]int
	imageScale                      int
	camera                          *CameraConfig
	notebook                        *bool
	font                            *FontConfig
	autoClose                       bool
	cmap                            string
	color                           color.Color
	colorCycler                     *color.Cycler
	aboveRangeColor                 color.Color
	belowRangeColor                 color.Color
	nanColor                        color.Color
	edgeColor                       color.Color
	lineWidth                       float64
	pointSize                       float64
	outlineColor                    color.Color
	floorColor                      color.Color
	colorbarOrientation             string
	colorbarHorizontal              *ColorbarConfig
	colorbarVertical                *ColorbarConfig
	showScalarBar                   bool
	showEdges                       bool
	showVertices                    bool
	lighting                        bool
	interactive                     bool
	renderPointsAsSpheres           bool
	renderLinesAsTubes              bool
	transparentBackground           bool
	title                           string
	axes                            *AxesConfig
	multiSamples                    int
	multiRenderingSplittingPosition *float64
	volumeMapper                    string
	smoothShading                   bool
	depthPeeling                    *DepthPeelingConfig
	silhouette                      *SilhouetteConfig
	sliderStyles                    *SliderConfig
	returnCpos                      bool
	hiddenLineRemoval               bool
	antiAliasing                    *string
	enableCameraOrientationWidget   bool
	splitSharpEdges                 bool
	sharpEdgesFeatureAngle          float64
	beforeCloseCallback             func()
	lightingParams                  *LightingConfig
	interpolateBeforeMap            bool
	opacity                         float64
}

// New returns a theme with the library defaults.
func New() *Theme {
	return &Theme{
		name:                   "default",
		background:             mustColor([]float64{0.3, 0.3, 0.3}),
		jupyterBackend:         "trame",
		trame:                  NewTrameConfig(),
		windowSize:             [2]int{1024, 768},
		imageScale:             1,
		camera:                 NewCameraConfig(),
		font:                   NewFontConfig(),
		autoClose:              true,
		cmap:                   "viridis",
		color:                  mustColor("white"),
		aboveRangeColor:        mustColor("grey"),
		belowRangeColor:        mustColor("grey"),
		nanColor:               mustColor("darkgray"),
		edgeColor:              mustColor("black"),
		lineWidth:              1,
		pointSize:              5,
		outlineColor:           mustColor("white"),
		floorColor:             mustColor("gray"),
		colorbarOrientation:    "horizontal",
		colorbarHorizontal:     newColorbarGeometry(0.6, 0.08, 0.35, 0.05),
		colorbarVertical:       newColorbarGeometry(0.08, 0.45, 0.9, 0.02),
		showScalarBar:          true,
		lighting:               true,
		title:                  "viztheme",
		axes:                   NewAxesConfig(),
		multiSamples:           4,
		volumeMapper:           defaultVolumeMapper(),
		depthPeeling:           NewDepthPeelingConfig(),
		silhouette:             NewSilhouetteConfig(),
		sliderStyles:           NewSliderConfig(),
		returnCpos:             true,
		sharpEdgesFeatureAngle: 30,
		lightingParams:         NewLightingConfig(),
		interpolateBeforeMap:   true,
		opacity:                1,
	}
}

// The GPU ray cast mapper misrenders on some Windows drivers, so the
// software mapper is the default there.
func defaultVolumeMapper() string {
	if runtime.GOOS == "windows" {
		return "fixed_point"
	}
	return "smart"
}

func mustColor(v any) color.Color {
	c, err := color.New(v)
	if err != nil {
		panic(err)
	}
	return c
}

// Getters.

func (t *Theme) Name() string                  { return t.name }
func (t *Theme) Background() color.Color       { return t.background }
func (t *Theme) JupyterBackend() string        { return t.jupyterBackend }
func (t *Theme) Trame() *TrameConfig           { return t.trame }
func (t *Theme) FullScreen() bool              { return t.fullScreen }
func (t *Theme) WindowSize() [2]int            { return t.windowSize }
func (t *Theme) ImageScale() int               { return t.imageScale }
func (t *Theme) Camera() *CameraConfig         { return t.camera }
func (t *Theme) Notebook() *bool               { return t.notebook }
func (t *Theme) Font() *FontConfig             { return t.font }
func (t *Theme) AutoClose() bool               { return t.autoClose }
func (t *Theme) Cmap() string                  { return t.cmap }
func (t *Theme) Color() color.Color            { return t.color }
func (t *Theme) ColorCycler() *color.Cycler    { return t.colorCycler }
func (t *Theme) AboveRangeColor() color.Color  { return t.aboveRangeColor }
func (t *Theme) BelowRangeColor() color.Color  { return t.belowRangeColor }
func (t *Theme) NanColor() color.Color         { return t.nanColor }
func (t *Theme) EdgeColor() color.Color        { return t.edgeColor }
func (t *Theme) LineWidth() float64            { return t.lineWidth }
func (t *Theme) PointSize() float64            { return t.pointSize }
func (t *Theme) OutlineColor() color.Color     { return t.outlineColor }
func (t *Theme) FloorColor() color.Color       { return t.floorColor }
func (t *Theme) ColorbarOrientation() string   { return t.colorbarOrientation }
func (t *Theme) ColorbarHorizontal() *ColorbarConfig {
	return t.colorbarHorizontal
}
func (t *Theme) ColorbarVertical() *ColorbarConfig { return t.colorbarVertical }
func (t *Theme) ShowScalarBar() bool               { return t.showScalarBar }
func (t *Theme) ShowEdges() bool                   { return t.showEdges }
func (t *Theme) ShowVertices() bool                { return t.showVertices }
func (t *Theme) Lighting() bool                    { return t.lighting }
func (t *Theme) Interactive() bool                 { return t.interactive }
func (t *Theme) RenderPointsAsSpheres() bool       { return t.renderPointsAsSpheres }
func (t *Theme) RenderLinesAsTubes() bool          { return t.renderLinesAsTubes }
func (t *Theme) TransparentBackground() bool       { return t.transparentBackground }
func (t *Theme) Title() string                     { return t.title }
func (t *Theme) Axes() *AxesConfig                 { return t.axes }
func (t *Theme) MultiSamples() int                 { return t.multiSamples }
func (t *Theme) MultiRenderingSplittingPosition() *float64 {
	return t.multiRenderingSplittingPosition
}
func (t *Theme) VolumeMapper() string             { return t.volumeMapper }
func (t *Theme) SmoothShading() bool              { return t.smoothShading }
func (t *Theme) DepthPeeling() *DepthPeelingConfig {
	return t.depthPeeling
}
func (t *Theme) Silhouette() *SilhouetteConfig      { return t.silhouette }
func (t *Theme) SliderStyles() *SliderConfig        { return t.sliderStyles }
func (t *Theme) ReturnCpos() bool                   { return t.returnCpos }
func (t *Theme) HiddenLineRemoval() bool            { return t.hiddenLineRemoval }
func (t *Theme) AntiAliasing() *string              { return t.antiAliasing }
func (t *Theme) EnableCameraOrientationWidget() bool {
	return t.enableCameraOrientationWidget
}
func (t *Theme) SplitSharpEdges() bool          { return t.splitSharpEdges }
func (t *Theme) SharpEdgesFeatureAngle() float64 {
	return t.sharpEdgesFeatureAngle
}
func (t *Theme) BeforeCloseCallback() func()    { return t.beforeCloseCallback }
func (t *Theme) LightingParams() *LightingConfig {
	return t.lightingParams
}
func (t *Theme) InterpolateBeforeMap() bool { return t.interpolateBeforeMap }
func (t *Theme) Opacity() float64           { return t.opacity }

// Setters with no validation beyond type.

func (t *Theme) SetName(v string)                   { t.name = v }
func (t *Theme) SetFullScreen(v bool)               { t.fullScreen = v }
func (t *Theme) SetNotebook(v *bool)                { t.notebook = v }
func (t *Theme) SetAutoClose(v bool)                { t.autoClose = v }
func (t *Theme) SetLineWidth(v float64)             { t.lineWidth = v }
func (t *Theme) SetPointSize(v float64)             { t.pointSize = v }
func (t *Theme) SetShowScalarBar(v bool)            { t.showScalarBar = v }
func (t *Theme) SetShowEdges(v bool)                { t.showEdges = v }
func (t *Theme) SetShowVertices(v bool)             { t.showVertices = v }
func (t *Theme) SetLighting(v bool)                 { t.lighting = v }
func (t *Theme) SetInteractive(v bool)              { t.interactive = v }
func (t *Theme) SetRenderPointsAsSpheres(v bool)    { t.renderPointsAsSpheres = v }
func (t *Theme) SetRenderLinesAsTubes(v bool)       { t.renderLinesAsTubes = v }
func (t *Theme) SetTransparentBackground(v bool)    { t.transparentBackground = v }
func (t *Theme) SetTitle(v string)                  { t.title = v }
func (t *Theme) SetMultiSamples(v int)              { t.multiSamples = v }
func (t *Theme) SetMultiRenderingSplittingPosition(v *float64) {
	t.multiRenderingSplittingPosition = v
}
func (t *Theme) SetSmoothShading(v bool)     { t.smoothShading = v }
func (t *Theme) SetReturnCpos(v bool)        { t.returnCpos = v }
func (t *Theme) SetHiddenLineRemoval(v bool) { t.hiddenLineRemoval = v }
func (t *Theme) SetEnableCameraOrientationWidget(v bool) {
	t.enableCameraOrientationWidget = v
}
func (t *Theme) SetSplitSharpEdges(v bool)            { t.splitSharpEdges = v }
func (t *Theme) SetSharpEdgesFeatureAngle(v float64)  { t.sharpEdgesFeatureAngle = v }
func (t *Theme) SetBeforeCloseCallback(fn func())     { t.beforeCloseCallback = fn }
func (t *Theme) SetInterpolateBeforeMap(v bool)       { t.interpolateBeforeMap = v }

// Validated setters.

// SetBackground accepts any color form: name, hex, RGB(A) sequence.
func (t *Theme) SetBackground(v any) error {
	return t.setColorField("background", &t.background, v)
}

// SetJupyterBackend accepts one of the supported notebook backends.
func (t *Theme) SetJupyterBackend(v string) error {
	if err := checkEnum("jupyter_backend", v, jupyterBackends); err != nil {
		return err
	}
	t.jupyterBackend = v
	return nil
}

// SetWindowSize requires exactly two non-negative dimensions.
func (t *Theme) SetWindowSize(v []int) error {
	if len(v) != 2 {
		return &TypeError{Field: "window_size", Expected: "sequence of 2 integers", Actual: typeName(v)}
	}
	if v[0] < 0 || v[1] < 0 {
		return fmt.Errorf("%w: window_size dimensions must be non-negative, got %v", ErrOutOfRange, v)
	}
	t.windowSize = [2]int{v[0], v[1]}
	return nil
}

// SetImageScale requires a factor of at least 1.
func (t *Theme) SetImageScale(v int) error {
	if v < 1 {
		return fmt.Errorf("%w: image_scale must be at least 1, got %d", ErrOutOfRange, v)
	}
	t.imageScale = v
	return nil
}

// SetCamera assigns the default camera placement atomically from a map
// with "position" and "viewup" keys, or copies a CameraConfig.
func (t *Theme) SetCamera(v any) error {
	switch c := v.(type) {
	case *CameraConfig:
		if c == nil {
			return &TypeError{Field: "camera", Expected: "camera config or map", Actual: "nil"}
		}
		cp := *c
		t.camera = &cp
		return nil
	case CameraConfig:
		cp := c
		t.camera = &cp
		return nil
	case map[string]any:
		return t.camera.applyMap(c)
	default:
		return &TypeError{Field: "camera", Expected: "camera config or map", Actual: typeName(v)}
	}
}

// SetCmap validates the colormap name against the known set.
func (t *Theme) SetCmap(v string) error {
	if err := color.ValidateColormap(v); err != nil {
		return err
	}
	t.cmap = v
	return nil
}

// SetColor accepts any color form.
func (t *Theme) SetColor(v any) error {
	return t.setColorField("color", &t.color, v)
}

// SetColorCycler accepts nil, a *Cycler, the names "default" and "all",
// or an explicit color list.
func (t *Theme) SetColorCycler(v any) error {
	c, err := color.ResolveCycler(v)
	if err != nil {
		return err
	}
	t.colorCycler = c
	return nil
}

func (t *Theme) SetAboveRangeColor(v any) error {
	return t.setColorField("above_range_color", &t.aboveRangeColor, v)
}

func (t *Theme) SetBelowRangeColor(v any) error {
	return t.setColorField("below_range_color", &t.belowRangeColor, v)
}

func (t *Theme) SetNanColor(v any) error {
	return t.setColorField("nan_color", &t.nanColor, v)
}

func (t *Theme) SetEdgeColor(v any) error {
	return t.setColorField("edge_color", &t.edgeColor, v)
}

func (t *Theme) SetOutlineColor(v any) error {
	return t.setColorField("outline_color", &t.outlineColor, v)
}

func (t *Theme) SetFloorColor(v any) error {
	return t.setColorField("floor_color", &t.floorColor, v)
}

// SetColorbarOrientation accepts "vertical" or "horizontal".
func (t *Theme) SetColorbarOrientation(v string) error {
	if err := checkEnum("colorbar_orientation", v, colorbarOrientations); err != nil {
		return err
	}
	t.colorbarOrientation = v
	return nil
}

// SetVolumeMapper accepts one of fixed_point, gpu, open_gl, smart.
func (t *Theme) SetVolumeMapper(v string) error {
	if err := checkEnum("volume_mapper", v, volumeMappers); err != nil {
		return err
	}
	t.volumeMapper = v
	return nil
}

// SetAntiAliasing accepts a mode string (ssaa, msaa, fxaa), nil to
// disable, or the deprecated bool form where true selects fxaa.
func (t *Theme) SetAntiAliasing(v any) error {
	switch m := v.(type) {
	case nil:
		t.antiAliasing = nil
		return nil
	case *string:
		if m == nil {
			t.antiAliasing = nil
			return nil
		}
		return t.SetAntiAliasing(*m)
	case string:
		if err := checkEnum("anti_aliasing", m, antiAliasingModes); err != nil {
			return err
		}
		mode := m
		t.antiAliasing = &mode
		return nil
	case bool:
		warnDeprecated(`anti_aliasing no longer accepts a bool; use "ssaa", "msaa", "fxaa", or nil`)
		if m {
			mode := "fxaa"
			t.antiAliasing = &mode
		} else {
			t.antiAliasing = nil
		}
		return nil
	default:
		return &TypeError{Field: "anti_aliasing", Expected: "string, bool, or nil", Actual: typeName(v)}
	}
}

// SetOpacity enforces the closed range [0, 1].
func (t *Theme) SetOpacity(v float64) error {
	if err := checkUnitInterval("opacity", v); err != nil {
		return err
	}
	t.opacity = v
	return nil
}

func (t *Theme) setColorField(name string, dst *color.Color, v any) error {
	c, err := coerceColor(name, v)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

// Load overwrites every field of t from src, field by field in declared
// order. Nested groups and slices are copied, never shared: after Load
// the two themes have no aliased state.
func (t *Theme) Load(src *Theme) {
	copyInto(t, src)
}

// Copy returns a deep copy of the theme.
func (t *Theme) Copy() *Theme {
	out := New()
	out.Load(t)
	return out
}

// RestoreDefaults resets every field to the library default in place.
func (t *Theme) RestoreDefaults() {
	t.Load(New())
}

// ToMap returns the theme's serializable form: public field name to
// value, nested groups as nested maps, the before-close callback
// omitted.
func (t *Theme) ToMap() map[string]any {
	return ToMap(t)
}

// FromMap builds a theme by applying data over the defaults. Every
// value passes through the field's normal setter, so the result is
// always a valid theme or an error.
func FromMap(data map[string]any) (*Theme, error) {
	t := New()
	if err := Apply(t, data); err != nil {
		return nil, err
	}
	return t, nil
}

// Equal reports structural equality with other, the before-close
// callback excluded.
func (t *Theme) Equal(other *Theme) bool {
	if t == nil || other == nil {
		return t == other
	}
	return Equal(t, other)
}

func (t *Theme) fields() []field {
	return []field{
		{name: "name", get: func() any { return t.name }, set: stringSetter("name", &t.name)},
		{name: "background", get: func() any { return t.background.Hex() }, set: t.SetBackground},
		{name: "jupyter_backend", get: func() any { return t.jupyterBackend }, set: func(v any) error {
			s, err := coerceString("jupyter_backend", v)
			if err != nil {
				return err
			}
			return t.SetJupyterBackend(s)
		}},
		{name: "trame", group: func() Settings { return t.trame }},
		{name: "full_screen", get: func() any { return t.fullScreen }, set: boolSetter("full_screen", &t.fullScreen)},
		{name: "window_size", get: func() any { return []any{t.windowSize[0], t.windowSize[1]} }, set: func(v any) error {
			dims, err := coerceIntSlice("window_size", v)
			if err != nil {
				return err
			}
			return t.SetWindowSize(dims)
		}},
		{name: "image_scale", get: func() any { return t.imageScale }, set: func(v any) error {
			n, err := coerceInt("image_scale", v)
			if err != nil {
				return err
			}
			return t.SetImageScale(n)
		}},
		{name: "camera", get: func() any { return t.camera.toMap() }, set: t.SetCamera},
		{name: "notebook", get: func() any { return ptrValue(t.notebook) }, set: boolPtrSetter("notebook", &t.notebook)},
		{name: "font", group: func() Settings { return t.font }},
		{name: "auto_close", get: func() any { return t.autoClose }, set: boolSetter("auto_close", &t.autoClose)},
		{name: "cmap", get: func() any { return t.cmap }, set: func(v any) error {
			s, err := coerceString("cmap", v)
			if err != nil {
				return err
			}
			return t.SetCmap(s)
		}},
		{name: "color", get: func() any { return t.color.Hex() }, set: t.SetColor},
		{name: "color_cycler", get: func() any { return t.colorCycler.Spec() }, set: t.SetColorCycler},
		{name: "above_range_color", get: func() any { return t.aboveRangeColor.Hex() }, set: t.SetAboveRangeColor},
		{name: "below_range_color", get: func() any { return t.belowRangeColor.Hex() }, set: t.SetBelowRangeColor},
		{name: "nan_color", get: func() any { return t.nanColor.Hex() }, set: t.SetNanColor},
		{name: "edge_color", get: func() any { return t.edgeColor.Hex() }, set: t.SetEdgeColor},
		{name: "line_width", get: func() any { return t.lineWidth }, set: floatSetter("line_width", &t.lineWidth)},
		{name: "point_size", get: func() any { return t.pointSize }, set: floatSetter("point_size", &t.pointSize)},
		{name: "outline_color", get: func() any { return t.outlineColor.Hex() }, set: t.SetOutlineColor},
		{name: "floor_color", get: func() any { return t.floorColor.Hex() }, set: t.SetFloorColor},
		{name: "colorbar_orientation", get: func() any { return t.colorbarOrientation }, set: func(v any) error {
			s, err := coerceString("colorbar_orientation", v)
			if err != nil {
				return err
			}
			return t.SetColorbarOrientation(s)
		}},
		{name: "colorbar_horizontal", group: func() Settings { return t.colorbarHorizontal }},
		{name: "colorbar_vertical", group: func() Settings { return t.colorbarVertical }},
		{name: "show_scalar_bar", get: func() any { return t.showScalarBar }, set: boolSetter("show_scalar_bar", &t.showScalarBar)},
		{name: "show_edges", get: func() any { return t.showEdges }, set: boolSetter("show_edges", &t.showEdges)},
		{name: "show_vertices", get: func() any { return t.showVertices }, set: boolSetter("show_vertices", &t.showVertices)},
		{name: "lighting", get: func() any { return t.lighting }, set: boolSetter("lighting", &t.lighting)},
		{name: "interactive", get: func() any { return t.interactive }, set: boolSetter("interactive", &t.interactive)},
		{name: "render_points_as_spheres", get: func() any { return t.renderPointsAsSpheres }, set: boolSetter("render_points_as_spheres", &t.renderPointsAsSpheres)},
		{name: "render_lines_as_tubes", get: func() any { return t.renderLinesAsTubes }, set: boolSetter("render_lines_as_tubes", &t.renderLinesAsTubes)},
		{name: "transparent_background", get: func() any { return t.transparentBackground }, set: boolSetter("transparent_background", &t.transparentBackground)},
		{name: "title", get: func() any { return t.title }, set: stringSetter("title", &t.title)},
		{name: "axes", group: func() Settings { return t.axes }},
		{name: "multi_samples", get: func() any { return t.multiSamples }, set: intSetter("multi_samples", &t.multiSamples)},
		{name: "multi_rendering_splitting_position", get: func() any { return ptrValue(t.multiRenderingSplittingPosition) }, set: floatPtrSetter("multi_rendering_splitting_position", &t.multiRenderingSplittingPosition)},
		{name: "volume_mapper", get: func() any { return t.volumeMapper }, set: func(v any) error {
			s, err := coerceString("volume_mapper", v)
			if err != nil {
				return err
			}
			return t.SetVolumeMapper(s)
		}},
		{name: "smooth_shading", get: func() any { return t.smoothShading }, set: boolSetter("smooth_shading", &t.smoothShading)},
		{name: "depth_peeling", group: func() Settings { return t.depthPeeling }},
		{name: "silhouette", group: func() Settings { return t.silhouette }},
		{name: "slider_styles", group: func() Settings { return t.sliderStyles }},
		{name: "return_cpos", get: func() any { return t.returnCpos }, set: boolSetter("return_cpos", &t.returnCpos)},
		{name: "hidden_line_removal", get: func() any { return t.hiddenLineRemoval }, set: boolSetter("hidden_line_removal", &t.hiddenLineRemoval)},
		{name: "anti_aliasing", get: func() any { return ptrValue(t.antiAliasing) }, set: t.SetAntiAliasing},
		{name: "antialiasing", alias: true, get: func() any { return ptrValue(t.antiAliasing) }, set: func(v any) error {
			warnDeprecated(`key "antialiasing" is deprecated; use "anti_aliasing"`)
			return t.SetAntiAliasing(v)
		}},
		{name: "enable_camera_orientation_widget", get: func() any { return t.enableCameraOrientationWidget }, set: boolSetter("enable_camera_orientation_widget", &t.enableCameraOrientationWidget)},
		{name: "split_sharp_edges", get: func() any { return t.splitSharpEdges }, set: boolSetter("split_sharp_edges", &t.splitSharpEdges)},
		{name: "sharp_edges_feature_angle", get: func() any { return t.sharpEdgesFeatureAngle }, set: floatSetter("sharp_edges_feature_angle", &t.sharpEdgesFeatureAngle)},
		{name: "before_close_callback", omit: true, get: func() any { return t.beforeCloseCallback }, set: func(v any) error {
			if v == nil {
				t.beforeCloseCallback = nil
				return nil
			}
			fn, ok := v.(func())
			if !ok {
				return &TypeError{Field: "before_close_callback", Expected: "func() or nil", Actual: typeName(v)}
			}
			t.beforeCloseCallback = fn
			return nil
		}},
		{name: "lighting_params", group: func() Settings { return t.lightingParams }},
		{name: "interpolate_before_map", get: func() any { return t.interpolateBeforeMap }, set: boolSetter("interpolate_before_map", &t.interpolateBeforeMap)},
		{name: "opacity", get: func() any { return t.opacity }, set: func(v any) error {
			n, err := coerceFloat("opacity", v)
			if err != nil {
				return err
			}
			return t.SetOpacity(n)
		}},
	}
}
