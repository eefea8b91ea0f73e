package color

import (
	"fmt"
	"sort"
)

// defaultCycle matches the matplotlib default property cycle.
var defaultCycle = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Cycler is a repeating sequence of colors used to color successive
// datasets. A named cycler remembers the key it was resolved from so it
// can round-trip through serialization by name.
type Cycler struct {
	name   string
	colors []Color
	next   int
}

// NewCycler creates a cycler from an explicit color list.
func NewCycler(colors []Color) *Cycler {
	out := make([]Color, len(colors))
	copy(out, colors)
	return &Cycler{colors: out}
}

// ResolveCycler normalizes a cycler specification.
//
// Accepted forms:
//   - nil: disables cycling (returns nil, nil)
//   - *Cycler: a copy of the given cycler
//   - string: "default" or "all"
//   - a slice of color representations
func ResolveCycler(v any) (*Cycler, error) {
	switch spec := v.(type) {
	case nil:
		return nil, nil
	case *Cycler:
		if spec == nil {
			return nil, nil
		}
		c := NewCycler(spec.colors)
		c.name = spec.name
		return c, nil
	case string:
		return namedCycler(spec)
	case []any:
		return cyclerFromList(spec)
	case []string:
		anys := make([]any, len(spec))
		for i, s := range spec {
			anys[i] = s
		}
		return cyclerFromList(anys)
	case []Color:
		return NewCycler(spec), nil
	default:
		return nil, fmt.Errorf("%w: cannot build a color cycle from %T", ErrInvalidColor, v)
	}
}

func namedCycler(name string) (*Cycler, error) {
	switch name {
	case "default":
		colors := make([]Color, len(defaultCycle))
		for i, hex := range defaultCycle {
			colors[i], _ = parseHex(hex)
		}
		c := NewCycler(colors)
		c.name = "default"
		return c, nil
	case "all":
		names := Names()
		colors := make([]Color, 0, len(names))
		for _, n := range names {
			c, _ := Parse(n)
			colors = append(colors, c)
		}
		// Order by hue so adjacent cycle entries stay distinguishable.
		sort.Slice(colors, func(i, j int) bool {
			hi, si, vi := colors[i].Colorful().Hsv()
			hj, sj, vj := colors[j].Colorful().Hsv()
			if hi != hj {
				return hi < hj
			}
			if si != sj {
				return si < sj
			}
			return vi < vj
		})
		c := NewCycler(colors)
		c.name = "all"
		return c, nil
	default:
		return nil, fmt.Errorf("%w: unknown color cycle %q (must be \"default\" or \"all\")", ErrInvalidColor, name)
	}
}

func cyclerFromList(specs []any) (*Cycler, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: empty color cycle", ErrInvalidColor)
	}
	colors := make([]Color, len(specs))
	for i, spec := range specs {
		c, err := New(spec)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return NewCycler(colors), nil
}

// Name returns the key this cycler was resolved from, or "" for explicit
// color lists.
func (c *Cycler) Name() string {
	return c.name
}

// Colors returns a copy of the cycle's color sequence.
func (c *Cycler) Colors() []Color {
	out := make([]Color, len(c.colors))
	copy(out, c.colors)
	return out
}

// Len returns the cycle length.
func (c *Cycler) Len() int {
	return len(c.colors)
}

// Next returns the next color in the cycle, wrapping around.
func (c *Cycler) Next() Color {
	col := c.colors[c.next%len(c.colors)]
	c.next++
	return col
}

// Reset rewinds the cycle to its first color.
func (c *Cycler) Reset() {
	c.next = 0
}

// Spec returns the serializable form: the cycle name when named,
// otherwise the list of hex strings.
func (c *Cycler) Spec() any {
	if c == nil {
		return nil
	}
	if c.name != "" {
		return c.name
	}
	hexes := make([]any, len(c.colors))
	for i, col := range c.colors {
		hexes[i] = col.Hex()
	}
	return hexes
}

// Equal reports whether two cyclers produce the same sequence.
func (c *Cycler) Equal(other *Cycler) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.name != other.name || len(c.colors) != len(other.colors) {
		return false
	}
	for i := range c.colors {
		if c.colors[i] != other.colors[i] {
			return false
		}
	}
	return true
}
