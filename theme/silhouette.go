package theme

import "github.com/dshills/viztheme/color"

// SilhouetteConfig controls silhouette outlines drawn around meshes.
type SilhouetteConfig struct {
	color        color.Color
	lineWidth    float64
	opacity      float64
	featureAngle *float64
	decimate     *float64
	enabled      bool
}

// NewSilhouetteConfig returns silhouette defaults, disabled with a
// black outline.
func NewSilhouetteConfig() *SilhouetteConfig {
	return &SilhouetteConfig{
		color:     color.FromRGB(0, 0, 0),
		lineWidth: 2,
		opacity:   1,
	}
}

func (s *SilhouetteConfig) Color() color.Color     { return s.color }
func (s *SilhouetteConfig) LineWidth() float64     { return s.lineWidth }
func (s *SilhouetteConfig) Opacity() float64       { return s.opacity }
func (s *SilhouetteConfig) FeatureAngle() *float64 { return s.featureAngle }
func (s *SilhouetteConfig) Decimate() *float64     { return s.decimate }
func (s *SilhouetteConfig) Enabled() bool          { return s.enabled }

// SetColor accepts any color form: name, hex, RGB(A) sequence.
func (s *SilhouetteConfig) SetColor(v any) error {
	c, err := coerceColor("silhouette.color", v)
	if err != nil {
		return err
	}
	s.color = c
	return nil
}

func (s *SilhouetteConfig) SetLineWidth(v float64) { s.lineWidth = v }

// SetOpacity enforces the closed range [0, 1].
func (s *SilhouetteConfig) SetOpacity(v float64) error {
	if err := checkUnitInterval("silhouette.opacity", v); err != nil {
		return err
	}
	s.opacity = v
	return nil
}

// SetFeatureAngle clears the angle threshold when passed nil.
func (s *SilhouetteConfig) SetFeatureAngle(v *float64) { s.featureAngle = v }

// SetDecimate enforces [0, 1] on non-nil values; nil disables decimation.
func (s *SilhouetteConfig) SetDecimate(v *float64) error {
	if v != nil {
		if err := checkUnitInterval("silhouette.decimate", *v); err != nil {
			return err
		}
	}
	s.decimate = v
	return nil
}

func (s *SilhouetteConfig) SetEnabled(v bool) { s.enabled = v }

func (s *SilhouetteConfig) fields() []field {
	return []field{
		{name: "color", get: func() any { return s.color.Hex() }, set: s.SetColor},
		{name: "line_width", get: func() any { return s.lineWidth }, set: floatSetter("line_width", &s.lineWidth)},
		{name: "opacity", get: func() any { return s.opacity }, set: func(v any) error {
			n, err := coerceFloat("opacity", v)
			if err != nil {
				return err
			}
			return s.SetOpacity(n)
		}},
		{name: "feature_angle", get: func() any { return ptrValue(s.featureAngle) }, set: floatPtrSetter("feature_angle", &s.featureAngle)},
		{name: "decimate", get: func() any { return ptrValue(s.decimate) }, set: func(v any) error {
			p, err := coerceFloatPtr("decimate", v)
			if err != nil {
				return err
			}
			return s.SetDecimate(p)
		}},
		{name: "enabled", get: func() any { return s.enabled }, set: boolSetter("enabled", &s.enabled)},
	}
}
