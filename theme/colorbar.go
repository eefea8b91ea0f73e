package theme

// ColorbarConfig holds scalar bar geometry. All fields are nullable;
// the root theme fills in concrete horizontal and vertical layouts.
type ColorbarConfig struct {
	width     *float64
	height    *float64
	positionX *float64
	positionY *float64
}

// NewColorbarConfig returns an empty colorbar geometry.
func NewColorbarConfig() *ColorbarConfig {
	return &ColorbarConfig{}
}

// newColorbarGeometry builds a fully specified layout.
func newColorbarGeometry(w, h, x, y float64) *ColorbarConfig {
	return &ColorbarConfig{
		width:     floatPtr(w),
		height:    floatPtr(h),
		positionX: floatPtr(x),
		positionY: floatPtr(y),
	}
}

func (c *ColorbarConfig) Width() *float64     { return c.width }
func (c *ColorbarConfig) Height() *float64    { return c.height }
func (c *ColorbarConfig) PositionX() *float64 { return c.positionX }
func (c *ColorbarConfig) PositionY() *float64 { return c.positionY }

func (c *ColorbarConfig) SetWidth(v *float64)     { c.width = v }
func (c *ColorbarConfig) SetHeight(v *float64)    { c.height = v }
func (c *ColorbarConfig) SetPositionX(v *float64) { c.positionX = v }
func (c *ColorbarConfig) SetPositionY(v *float64) { c.positionY = v }

func (c *ColorbarConfig) fields() []field {
	return []field{
		{name: "width", get: func() any { return ptrValue(c.width) }, set: floatPtrSetter("width", &c.width)},
		{name: "height", get: func() any { return ptrValue(c.height) }, set: floatPtrSetter("height", &c.height)},
		{name: "position_x", get: func() any { return ptrValue(c.positionX) }, set: floatPtrSetter("position_x", &c.positionX)},
		{name: "position_y", get: func() any { return ptrValue(c.positionY) }, set: floatPtrSetter("position_y", &c.positionY)},
	}
}
