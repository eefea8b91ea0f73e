package theme

import "github.com/dshills/viztheme/color"

// Font families the rendering toolkit ships with.
var fontFamilies = []string{"arial", "courier", "times"}

// FontConfig controls label and title typography.
type FontConfig struct {
	family    string
	size      int
	titleSize *int
	labelSize *int
	color     color.Color
	fmt       *string
}

// NewFontConfig returns font defaults: 12pt white arial, title and
// label sizes tracking the base size.
func NewFontConfig() *FontConfig {
	return &FontConfig{
		family: "arial",
		size:   12,
		color:  color.FromRGB(255, 255, 255),
	}
}

func (f *FontConfig) Family() string     { return f.family }
func (f *FontConfig) Size() int          { return f.size }
func (f *FontConfig) TitleSize() *int    { return f.titleSize }
func (f *FontConfig) LabelSize() *int    { return f.labelSize }
func (f *FontConfig) Color() color.Color { return f.color }
func (f *FontConfig) Fmt() *string       { return f.fmt }

// SetFamily accepts one of arial, courier, times.
func (f *FontConfig) SetFamily(v string) error {
	if err := checkEnum("font.family", v, fontFamilies); err != nil {
		return err
	}
	f.family = v
	return nil
}

func (f *FontConfig) SetSize(v int)       { f.size = v }
func (f *FontConfig) SetTitleSize(v *int) { f.titleSize = v }
func (f *FontConfig) SetLabelSize(v *int) { f.labelSize = v }
func (f *FontConfig) SetFmt(v *string)    { f.fmt = v }

func (f *FontConfig) SetColor(v any) error {
	c, err := coerceColor("font.color", v)
	if err != nil {
		return err
	}
	f.color = c
	return nil
}

func (f *FontConfig) fields() []field {
	return []field{
		{name: "family", get: func() any { return f.family }, set: func(v any) error {
			s, err := coerceString("family", v)
			if err != nil {
				return err
			}
			return f.SetFamily(s)
		}},
		{name: "size", get: func() any { return f.size }, set: intSetter("size", &f.size)},
		{name: "title_size", get: func() any { return ptrValue(f.titleSize) }, set: intPtrSetter("title_size", &f.titleSize)},
		{name: "label_size", get: func() any { return ptrValue(f.labelSize) }, set: intPtrSetter("label_size", &f.labelSize)},
		{name: "color", get: func() any { return f.color.Hex() }, set: f.SetColor},
		{name: "fmt", get: func() any { return ptrValue(f.fmt) }, set: stringPtrSetter("fmt", &f.fmt)},
	}
}
