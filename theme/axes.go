package theme

import "github.com/dshills/viztheme/color"

// AxesConfig controls the orientation axes widget.
type AxesConfig struct {
	xColor color.Color
	yColor color.Color
	zColor color.Color
	box    bool
	show   bool
}

// NewAxesConfig returns axes defaults: tomato X, seagreen Y,
// mediumblue Z, arrows shown.
func NewAxesConfig() *AxesConfig {
	x, _ := color.Parse("tomato")
	y, _ := color.Parse("seagreen")
	z, _ := color.Parse("mediumblue")
	return &AxesConfig{xColor: x, yColor: y, zColor: z, show: true}
}

func (a *AxesConfig) XColor() color.Color { return a.xColor }
func (a *AxesConfig) YColor() color.Color { return a.yColor }
func (a *AxesConfig) ZColor() color.Color { return a.zColor }
func (a *AxesConfig) Box() bool           { return a.box }
func (a *AxesConfig) Show() bool          { return a.show }

func (a *AxesConfig) SetXColor(v any) error {
	c, err := coerceColor("axes.x_color", v)
	if err != nil {
		return err
	}
	a.xColor = c
	return nil
}

func (a *AxesConfig) SetYColor(v any) error {
	c, err := coerceColor("axes.y_color", v)
	if err != nil {
		return err
	}
	a.yColor = c
	return nil
}

func (a *AxesConfig) SetZColor(v any) error {
	c, err := coerceColor("axes.z_color", v)
	if err != nil {
		return err
	}
	a.zColor = c
	return nil
}

func (a *AxesConfig) SetBox(v bool)  { a.box = v }
func (a *AxesConfig) SetShow(v bool) { a.show = v }

func (a *AxesConfig) fields() []field {
	return []field{
		{name: "x_color", get: func() any { return a.xColor.Hex() }, set: a.SetXColor},
		{name: "y_color", get: func() any { return a.yColor.Hex() }, set: a.SetYColor},
		{name: "z_color", get: func() any { return a.zColor.Hex() }, set: a.SetZColor},
		{name: "box", get: func() any { return a.box }, set: boolSetter("box", &a.box)},
		{name: "show", get: func() any { return a.show }, set: boolSetter("show", &a.show)},
	}
}
