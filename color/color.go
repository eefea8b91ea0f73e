// Package color provides color normalization for theme configuration.
//
// Colors may be specified by CSS name ("tomato"), single-letter alias
// ("r"), hex string ("#ff0000", "#f00", "#ff0000ff"), or an RGB(A)
// sequence of floats in [0, 1] or integers in [0, 255]. All forms
// normalize to a canonical 8-bit RGBA value.
package color

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor indicates a value could not be normalized to a color.
var ErrInvalidColor = errors.New("invalid color")

// Color is a canonical 8-bit RGBA color value.
type Color struct {
	R, G, B, A uint8
}

// FromRGB creates an opaque color from 8-bit components.
func FromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromRGBA creates a color from 8-bit components.
func FromRGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// New normalizes any accepted color representation to a Color.
//
// Accepted forms:
//   - Color or *Color
//   - string: a named color, single-letter alias, or hex string
//   - []float64, []int, or []any of length 3 or 4
func New(v any) (Color, error) {
	switch c := v.(type) {
	case Color:
		return c, nil
	case *Color:
		if c == nil {
			return Color{}, fmt.Errorf("%w: nil", ErrInvalidColor)
		}
		return *c, nil
	case string:
		return Parse(c)
	case []float64:
		return fromSequence(floatsToAny(c))
	case []int:
		return fromSequence(intsToAny(c))
	case []any:
		return fromSequence(c)
	default:
		return Color{}, fmt.Errorf("%w: cannot convert %T to a color", ErrInvalidColor, v)
	}
}

// Parse normalizes a color name or hex string.
func Parse(s string) (Color, error) {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if name == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if alias, ok := letterAliases[name]; ok {
		name = alias
	}
	if hex, ok := namedColors[name]; ok {
		return parseHex(hex)
	}
	if strings.HasPrefix(name, "#") {
		return parseHex(name)
	}
	return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, s)
}

// parseHex parses #rgb, #rrggbb, and #rrggbbaa forms. The RGB portion is
// parsed with go-colorful; the optional alpha byte is split off first.
func parseHex(hex string) (Color, error) {
	alpha := uint8(255)
	rgb := hex
	if len(hex) == 9 { // #rrggbbaa
		var a uint64
		if _, err := fmt.Sscanf(hex[7:9], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("%w: malformed hex string %q", ErrInvalidColor, hex)
		}
		alpha = uint8(a)
		rgb = hex[:7]
	}

	cf, err := colorful.Hex(rgb)
	if err != nil {
		return Color{}, fmt.Errorf("%w: malformed hex string %q", ErrInvalidColor, hex)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// fromSequence converts a 3- or 4-element sequence. Values are treated as
// floats in [0, 1] unless any component exceeds 1, in which case the whole
// sequence is read as 8-bit integers.
func fromSequence(seq []any) (Color, error) {
	if len(seq) != 3 && len(seq) != 4 {
		return Color{}, fmt.Errorf("%w: expected a sequence of length 3 or 4, got %d", ErrInvalidColor, len(seq))
	}

	comps := make([]float64, len(seq))
	eightBit := false
	for i, v := range seq {
		f, ok := toFloat(v)
		if !ok {
			return Color{}, fmt.Errorf("%w: non-numeric component %v", ErrInvalidColor, v)
		}
		if f < 0 {
			return Color{}, fmt.Errorf("%w: negative component %v", ErrInvalidColor, v)
		}
		if f > 1 {
			eightBit = true
		}
		comps[i] = f
	}

	out := [4]float64{0, 0, 0, 255}
	for i, f := range comps {
		if eightBit {
			if f > 255 {
				return Color{}, fmt.Errorf("%w: component %v out of range", ErrInvalidColor, f)
			}
			out[i] = f
		} else {
			out[i] = f * 255
		}
	}
	return Color{
		R: uint8(out[0] + 0.5),
		G: uint8(out[1] + 0.5),
		B: uint8(out[2] + 0.5),
		A: uint8(out[3] + 0.5),
	}, nil
}

// Hex returns the #rrggbbaa form. This is the canonical serialized
// representation of a color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Name returns the color's CSS name, or "" if it has no exact named match.
func (c Color) Name() string {
	if c.A != 255 {
		return ""
	}
	return hexToName[c.Hex()[:7]]
}

// String returns the name when one exists, otherwise the hex form.
func (c Color) String() string {
	if n := c.Name(); n != "" {
		return n
	}
	return c.Hex()
}

// Equal reports whether two colors have identical RGBA components.
func (c Color) Equal(other Color) bool {
	return c == other
}

// FloatRGB returns the RGB components scaled to [0, 1].
func (c Color) FloatRGB() (float64, float64, float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// Colorful returns the go-colorful view of the color for color math.
func (c Color) Colorful() colorful.Color {
	r, g, b := c.FloatRGB()
	return colorful.Color{R: r, G: g, B: b}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	default:
		return 0, false
	}
}

func floatsToAny(fs []float64) []any {
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}

func intsToAny(is []int) []any {
	out := make([]any, len(is))
	for i, n := range is {
		out[i] = n
	}
	return out
}
