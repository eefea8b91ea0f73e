package theme

// Interpolation styles for surface shading.
var interpolationStyles = []string{"flat", "gouraud", "phong", "pbr"}

// LightingConfig controls default lighting parameters applied to meshes.
type LightingConfig struct {
	interpolation string
	metallic      float64
	roughness     float64
	ambient       float64
	diffuse       float64
	specular      float64
	specularPower float64
	emissive      bool
}

// NewLightingConfig returns lighting defaults: flat interpolation, full
// diffuse, no specular or metallic response.
func NewLightingConfig() *LightingConfig {
	return &LightingConfig{
		interpolation: "flat",
		metallic:      0,
		roughness:     0.5,
		ambient:       0,
		diffuse:       1,
		specular:      0,
		specularPower: 100,
		emissive:      false,
	}
}

func (l *LightingConfig) Interpolation() string  { return l.interpolation }
func (l *LightingConfig) Metallic() float64      { return l.metallic }
func (l *LightingConfig) Roughness() float64     { return l.roughness }
func (l *LightingConfig) Ambient() float64       { return l.ambient }
func (l *LightingConfig) Diffuse() float64       { return l.diffuse }
func (l *LightingConfig) Specular() float64      { return l.specular }
func (l *LightingConfig) SpecularPower() float64 { return l.specularPower }
func (l *LightingConfig) Emissive() bool         { return l.emissive }

// SetInterpolation accepts one of flat, gouraud, phong, pbr.
func (l *LightingConfig) SetInterpolation(v string) error {
	if err := checkEnum("interpolation", v, interpolationStyles); err != nil {
		return err
	}
	l.interpolation = v
	return nil
}

func (l *LightingConfig) SetMetallic(v float64)      { l.metallic = v }
func (l *LightingConfig) SetRoughness(v float64)     { l.roughness = v }
func (l *LightingConfig) SetAmbient(v float64)       { l.ambient = v }
func (l *LightingConfig) SetDiffuse(v float64)       { l.diffuse = v }
func (l *LightingConfig) SetSpecular(v float64)      { l.specular = v }
func (l *LightingConfig) SetSpecularPower(v float64) { l.specularPower = v }
func (l *LightingConfig) SetEmissive(v bool)         { l.emissive = v }

func (l *LightingConfig) fields() []field {
	return []field{
		{name: "interpolation", get: func() any { return l.interpolation }, set: func(v any) error {
			s, err := coerceString("interpolation", v)
			if err != nil {
				return err
			}
			return l.SetInterpolation(s)
		}},
		{name: "metallic", get: func() any { return l.metallic }, set: floatSetter("metallic", &l.metallic)},
		{name: "roughness", get: func() any { return l.roughness }, set: floatSetter("roughness", &l.roughness)},
		{name: "ambient", get: func() any { return l.ambient }, set: floatSetter("ambient", &l.ambient)},
		{name: "diffuse", get: func() any { return l.diffuse }, set: floatSetter("diffuse", &l.diffuse)},
		{name: "specular", get: func() any { return l.specular }, set: floatSetter("specular", &l.specular)},
		{name: "specular_power", get: func() any { return l.specularPower }, set: floatSetter("specular_power", &l.specularPower)},
		{name: "emissive", get: func() any { return l.emissive }, set: boolSetter("emissive", &l.emissive)},
	}
}
