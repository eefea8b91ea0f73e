package theme

// DepthPeelingConfig controls depth peeling for correct translucent
// geometry rendering order.
type DepthPeelingConfig struct {
	numberOfPeels  int
	occlusionRatio float64
	enabled        bool
}

// NewDepthPeelingConfig returns depth peeling defaults, disabled with
// four peels.
func NewDepthPeelingConfig() *DepthPeelingConfig {
	return &DepthPeelingConfig{
		numberOfPeels:  4,
		occlusionRatio: 0,
		enabled:        false,
	}
}

func (d *DepthPeelingConfig) NumberOfPeels() int      { return d.numberOfPeels }
func (d *DepthPeelingConfig) OcclusionRatio() float64 { return d.occlusionRatio }
func (d *DepthPeelingConfig) Enabled() bool           { return d.enabled }

func (d *DepthPeelingConfig) SetNumberOfPeels(v int)      { d.numberOfPeels = v }
func (d *DepthPeelingConfig) SetOcclusionRatio(v float64) { d.occlusionRatio = v }
func (d *DepthPeelingConfig) SetEnabled(v bool)           { d.enabled = v }

func (d *DepthPeelingConfig) fields() []field {
	return []field{
		{name: "number_of_peels", get: func() any { return d.numberOfPeels }, set: intSetter("number_of_peels", &d.numberOfPeels)},
		{name: "occlusion_ratio", get: func() any { return d.occlusionRatio }, set: floatSetter("occlusion_ratio", &d.occlusionRatio)},
		{name: "enabled", get: func() any { return d.enabled }, set: boolSetter("enabled", &d.enabled)},
	}
}
