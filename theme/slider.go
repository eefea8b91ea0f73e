package theme

import "github.com/dshills/viztheme/color"

// SliderStyleConfig describes one named slider widget look. Every
// geometry field is nullable so a style can defer to widget defaults.
type SliderStyleConfig struct {
	name         string
	sliderLength *float64
	sliderWidth  *float64
	sliderColor  *color.Color
	tubeWidth    *float64
	tubeColor    *color.Color
	capOpacity   *float64
	capLength    *float64
	capWidth     *float64
}

// NewSliderStyleConfig returns an unnamed style with nothing specified.
func NewSliderStyleConfig() *SliderStyleConfig {
	return &SliderStyleConfig{}
}

func newClassicSliderStyle() *SliderStyleConfig {
	gray, _ := color.Parse("gray")
	white, _ := color.Parse("white")
	return &SliderStyleConfig{
		name:         "classic",
		sliderLength: floatPtr(0.02),
		sliderWidth:  floatPtr(0.04),
		sliderColor:  &gray,
		tubeWidth:    floatPtr(0.005),
		tubeColor:    &white,
		capOpacity:   floatPtr(1),
		capLength:    floatPtr(0.01),
		capWidth:     floatPtr(0.02),
	}
}

func newModernSliderStyle() *SliderStyleConfig {
	slider := color.FromRGB(110, 113, 117)
	tube := color.FromRGB(178, 179, 181)
	return &SliderStyleConfig{
		name:         "modern",
		sliderLength: floatPtr(0.02),
		sliderWidth:  floatPtr(0.04),
		sliderColor:  &slider,
		tubeWidth:    floatPtr(0.04),
		tubeColor:    &tube,
		capOpacity:   floatPtr(0),
		capLength:    floatPtr(0.01),
		capWidth:     floatPtr(0.02),
	}
}

func (s *SliderStyleConfig) Name() string           { return s.name }
func (s *SliderStyleConfig) SliderLength() *float64 { return s.sliderLength }
func (s *SliderStyleConfig) SliderWidth() *float64  { return s.sliderWidth }
func (s *SliderStyleConfig) SliderColor() *color.Color {
	return s.sliderColor
}
func (s *SliderStyleConfig) TubeWidth() *float64     { return s.tubeWidth }
func (s *SliderStyleConfig) TubeColor() *color.Color { return s.tubeColor }
func (s *SliderStyleConfig) CapOpacity() *float64    { return s.capOpacity }
func (s *SliderStyleConfig) CapLength() *float64     { return s.capLength }
func (s *SliderStyleConfig) CapWidth() *float64      { return s.capWidth }

func (s *SliderStyleConfig) SetName(v string)           { s.name = v }
func (s *SliderStyleConfig) SetSliderLength(v *float64) { s.sliderLength = v }
func (s *SliderStyleConfig) SetSliderWidth(v *float64)  { s.sliderWidth = v }
func (s *SliderStyleConfig) SetTubeWidth(v *float64)    { s.tubeWidth = v }
func (s *SliderStyleConfig) SetCapOpacity(v *float64)   { s.capOpacity = v }
func (s *SliderStyleConfig) SetCapLength(v *float64)    { s.capLength = v }
func (s *SliderStyleConfig) SetCapWidth(v *float64)     { s.capWidth = v }

// SetSliderColor clears the color when passed nil.
func (s *SliderStyleConfig) SetSliderColor(v any) error {
	c, err := coerceColorPtr("slider_color", v)
	if err != nil {
		return err
	}
	s.sliderColor = c
	return nil
}

// SetTubeColor clears the color when passed nil.
func (s *SliderStyleConfig) SetTubeColor(v any) error {
	c, err := coerceColorPtr("tube_color", v)
	if err != nil {
		return err
	}
	s.tubeColor = c
	return nil
}

func (s *SliderStyleConfig) fields() []field {
	return []field{
		{name: "name", get: func() any { return s.name }, set: stringSetter("name", &s.name)},
		{name: "slider_length", get: func() any { return ptrValue(s.sliderLength) }, set: floatPtrSetter("slider_length", &s.sliderLength)},
		{name: "slider_width", get: func() any { return ptrValue(s.sliderWidth) }, set: floatPtrSetter("slider_width", &s.sliderWidth)},
		{name: "slider_color", get: func() any { return colorPtrValue(s.sliderColor) }, set: s.SetSliderColor},
		{name: "tube_width", get: func() any { return ptrValue(s.tubeWidth) }, set: floatPtrSetter("tube_width", &s.tubeWidth)},
		{name: "tube_color", get: func() any { return colorPtrValue(s.tubeColor) }, set: s.SetTubeColor},
		{name: "cap_opacity", get: func() any { return ptrValue(s.capOpacity) }, set: floatPtrSetter("cap_opacity", &s.capOpacity)},
		{name: "cap_length", get: func() any { return ptrValue(s.capLength) }, set: floatPtrSetter("cap_length", &s.capLength)},
		{name: "cap_width", get: func() any { return ptrValue(s.capWidth) }, set: floatPtrSetter("cap_width", &s.capWidth)},
	}
}

// SliderConfig groups the built-in slider widget styles.
type SliderConfig struct {
	classic *SliderStyleConfig
	modern  *SliderStyleConfig
}

// NewSliderConfig returns the built-in classic and modern styles.
func NewSliderConfig() *SliderConfig {
	return &SliderConfig{
		classic: newClassicSliderStyle(),
		modern:  newModernSliderStyle(),
	}
}

func (s *SliderConfig) Classic() *SliderStyleConfig { return s.classic }
func (s *SliderConfig) Modern() *SliderStyleConfig  { return s.modern }

func (s *SliderConfig) fields() []field {
	return []field{
		{name: "classic", group: func() Settings { return s.classic }},
		{name: "modern", group: func() Settings { return s.modern }},
	}
}
