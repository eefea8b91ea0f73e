package color

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownColormap indicates a colormap name not in the known set.
var ErrUnknownColormap = errors.New("unknown colormap")

// knownColormaps are the colormap names accepted for the theme's cmap
// field. The set mirrors the common matplotlib maps plus the toolkit
// built-ins.
var knownColormaps = map[string]struct{}{
	"viridis":  {},
	"plasma":   {},
	"inferno":  {},
	"magma":    {},
	"cividis":  {},
	"jet":      {},
	"coolwarm": {},
	"rainbow":  {},
	"turbo":    {},
	"gray":     {},
	"grey":     {},
	"greys":    {},
	"bone":     {},
	"copper":   {},
	"hot":      {},
	"cool":     {},
	"spring":   {},
	"summer":   {},
	"autumn":   {},
	"winter":   {},
	"hsv":      {},
	"twilight": {},
	"terrain":  {},
	"seismic":  {},
	"spectral": {},
	"rdbu":     {},
	"bwr":      {},
	"pink":     {},
	"tab10":    {},
	"tab20":    {},
}

// FallbackColormap is the toolkit built-in used when no colormap provider
// is available.
const FallbackColormap = "jet"

// ValidateColormap checks a colormap name against the known set. The
// check is case-insensitive but the original spelling is returned so the
// theme stores what the caller wrote.
func ValidateColormap(name string) error {
	if _, ok := knownColormaps[strings.ToLower(name)]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}
	return nil
}

// ColormapNames returns the known colormap names, sorted.
func ColormapNames() []string {
	names := make([]string, 0, len(knownColormaps))
	for name := range knownColormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
