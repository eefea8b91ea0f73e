package theme

import "fmt"

// CameraConfig holds the default camera placement. Unlike the other
// groups it assigns atomically: a bulk update must carry both the
// position and the view-up vector.
type CameraConfig struct {
	position [3]float64
	viewup   [3]float64
}

// NewCameraConfig returns the default isometric-ish placement.
func NewCameraConfig() *CameraConfig {
	return &CameraConfig{
		position: [3]float64{1, 1, 1},
		viewup:   [3]float64{0, 0, 1},
	}
}

func (c *CameraConfig) Position() [3]float64 { return c.position }
func (c *CameraConfig) ViewUp() [3]float64   { return c.viewup }

func (c *CameraConfig) SetPosition(v [3]float64) { c.position = v }
func (c *CameraConfig) SetViewUp(v [3]float64)   { c.viewup = v }

func (c *CameraConfig) toMap() map[string]any {
	return map[string]any{
		"position": vec3ToAny(c.position),
		"viewup":   vec3ToAny(c.viewup),
	}
}

// applyMap requires both keys. A partial camera assignment is almost
// always a mistake, so it fails rather than half-applying.
func (c *CameraConfig) applyMap(data map[string]any) error {
	posRaw, ok := data["position"]
	if !ok {
		return &TypeError{Field: "camera", Expected: `keys "position" and "viewup"`, Actual: `missing "position"`}
	}
	upRaw, ok := data["viewup"]
	if !ok {
		return &TypeError{Field: "camera", Expected: `keys "position" and "viewup"`, Actual: `missing "viewup"`}
	}
	for key := range data {
		if key != "position" && key != "viewup" {
			return &UnknownFieldError{Field: "camera." + key}
		}
	}
	pos, err := coerceVec3("camera.position", posRaw)
	if err != nil {
		return err
	}
	up, err := coerceVec3("camera.viewup", upRaw)
	if err != nil {
		return err
	}
	c.position = pos
	c.viewup = up
	return nil
}

func vec3ToAny(v [3]float64) []any {
	return []any{v[0], v[1], v[2]}
}

func coerceVec3(name string, v any) ([3]float64, error) {
	var out [3]float64
	seq, ok := v.([]any)
	if !ok {
		if fs, isFloats := v.([]float64); isFloats {
			seq = make([]any, len(fs))
			for i, f := range fs {
				seq[i] = f
			}
		} else {
			return out, &TypeError{Field: name, Expected: "sequence of 3 numbers", Actual: typeName(v)}
		}
	}
	if len(seq) != 3 {
		return out, &TypeError{Field: name, Expected: "sequence of 3 numbers", Actual: fmt.Sprintf("sequence of %d", len(seq))}
	}
	for i, item := range seq {
		n, err := coerceFloat(name, item)
		if err != nil {
			return out, err
		}
		out[i] = n
	}
	return out, nil
}
