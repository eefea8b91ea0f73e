// Package theme provides hierarchical plotting theme configuration.
//
// A Theme is a tree of typed, validated config groups controlling the
// default look of 3D plots: colors, fonts, lighting, anti-aliasing,
// widget styles. Every field validates in its setter, so a Theme is
// valid at all times.
//
// # Sub-packages
//
//   - loader: Theme document loading (JSON, TOML, Lua scripts,
//     environment variables)
//   - notify: Change notification and observer pattern
//
// # Basic Usage
//
// Build a theme from a preset and adjust it:
//
//	t, err := theme.Preset("document")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := t.SetBackground("white"); err != nil {
//	    log.Fatal(err)
//	}
//	t.Font().SetSize(20)
//
// # Active Configuration
//
// A Manager owns the active theme for an application. There is no
// package-level active theme; the embedding application creates a
// manager and passes it where it is needed:
//
//	mgr, err := theme.NewManager()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := mgr.Install("dark"); err != nil {
//	    log.Fatal(err)
//	}
//	size, _ := mgr.Get("font.size")
//
// # Serialization
//
// Themes round-trip through JSON with keys in declaration order:
//
//	if err := t.Save("mytheme.json"); err != nil {
//	    log.Fatal(err)
//	}
//	loaded, err := theme.LoadFile("mytheme.json")
//
// The before-close callback is the only field excluded from
// serialization and equality.
//
// # Error Handling
//
// The package defines several error types:
//
//   - ErrOutOfRange: Numeric value outside its allowed range
//   - ErrTypeMismatch: Value type doesn't match the field
//   - ErrInvalidEnum: Value not in a field's closed set
//   - ErrUnknownField: Document key names no declared field
//   - ErrUnknownPreset: Preset key not in the registry
//   - ErrParse: Theme document could not be decoded
package theme
