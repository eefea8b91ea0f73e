package theme

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dshills/viztheme/theme/loader"
	"github.com/dshills/viztheme/theme/notify"
)

// Manager owns the active theme for an embedding application. It is an
// explicit object rather than package state, so two plotters (or two
// tests) can hold independent active configurations. All access goes
// through the manager's lock; the Theme itself stays plain data.
type Manager struct {
	mu       sync.RWMutex
	theme    *Theme
	notifier *notify.Notifier
	fs       loader.FileSystem
	env      *loader.EnvLoader
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithTheme starts the manager with a copy of the given theme instead
// of the defaults.
func WithTheme(t *Theme) ManagerOption {
	return func(m *Manager) {
		m.theme = t.Copy()
	}
}

// WithNotifier attaches a change notifier.
func WithNotifier(n *notify.Notifier) ManagerOption {
	return func(m *Manager) {
		m.notifier = n
	}
}

// WithFileSystem overrides the file system used by InstallFile.
func WithFileSystem(fs loader.FileSystem) ManagerOption {
	return func(m *Manager) {
		m.fs = fs
	}
}

// WithEnvOverrides applies VIZTHEME_* environment overrides to the
// initial theme and enables ApplyEnv with the given loader.
func WithEnvOverrides(env *loader.EnvLoader) ManagerOption {
	return func(m *Manager) {
		m.env = env
	}
}

// NewManager creates a manager holding the default theme.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		theme: New(),
		fs:    loader.DefaultFS(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.env != nil {
		if err := m.applyEnvOverrides(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Current returns the active theme. Mutations should go through Set or
// Install so observers hear about them.
func (m *Manager) Current() *Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// Snapshot returns a deep copy of the active theme.
func (m *Manager) Snapshot() *Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme.Copy()
}

// Install replaces the active theme. Accepted forms:
//   - a preset key ("dark", "document", ...)
//   - a theme file path (.json, .toml, .lua)
//   - a *Theme, loaded field by field so no state is shared
func (m *Manager) Install(v any) error {
	switch src := v.(type) {
	case string:
		if _, ok := presets[src]; ok {
			t, err := Preset(src)
			if err != nil {
				return err
			}
			m.install(t, src)
			return nil
		}
		if isThemeFile(src) {
			return m.InstallFile(src)
		}
		return &UnknownPresetError{Key: src, Known: PresetNames()}
	case *Theme:
		if src == nil {
			return &TypeError{Field: "theme", Expected: "preset key, file path, or theme", Actual: "nil"}
		}
		m.install(src.Copy(), "instance")
		return nil
	default:
		return &TypeError{Field: "theme", Expected: "preset key, file path, or theme", Actual: typeName(v)}
	}
}

// InstallFile loads and installs a theme document, choosing the format
// by file extension.
func (m *Manager) InstallFile(path string) error {
	var (
		doc map[string]any
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		doc, err = loader.NewJSONLoaderWithFS(m.fs, path).Load()
	case ".toml":
		doc, err = loader.NewTOMLLoaderWithFS(m.fs, path).Load()
	case ".lua":
		doc, err = loader.NewLuaLoaderWithFS(m.fs, path).Load()
	default:
		return fmt.Errorf("%w: unsupported theme file extension %q", ErrParse, filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("theme file %s does not exist", path)
	}
	t, err := FromMap(doc)
	if err != nil {
		return err
	}
	m.install(t, path)
	return nil
}

func (m *Manager) install(t *Theme, source string) {
	m.mu.Lock()
	m.theme.Load(t)
	name := m.theme.Name()
	m.mu.Unlock()

	if m.notifier != nil {
		m.notifier.NotifyInstall(name, source)
	}
}

// Get reads a field of the active theme by dotted path.
func (m *Manager) Get(path string) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Get(m.theme, path)
}

// Set writes a field of the active theme by dotted path, notifying
// observers with the old and new values.
func (m *Manager) Set(path string, value any) error {
	m.mu.Lock()
	old, err := Get(m.theme, path)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	if err := Set(m.theme, path, value); err != nil {
		m.mu.Unlock()
		return err
	}
	updated, _ := Get(m.theme, path)
	m.mu.Unlock()

	if m.notifier != nil {
		m.notifier.NotifySet(path, old, updated, "set")
	}
	return nil
}

// Reset restores the active theme to the library defaults.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.theme.RestoreDefaults()
	m.mu.Unlock()

	if m.notifier != nil {
		m.notifier.NotifyReset("reset")
	}
}

// Subscribe registers an observer for all theme changes. Returns nil
// when the manager has no notifier.
func (m *Manager) Subscribe(obs notify.Observer) *notify.Subscription {
	if m.notifier == nil {
		return nil
	}
	return m.notifier.Subscribe(obs)
}

// SubscribePath registers an observer for one field (and its children).
func (m *Manager) SubscribePath(path string, obs notify.Observer) *notify.Subscription {
	if m.notifier == nil {
		return nil
	}
	return m.notifier.SubscribePath(path, obs)
}

// ApplyEnv merges environment overrides onto the active theme. A
// manager built without WithEnvOverrides uses the default VIZTHEME_
// mapping.
func (m *Manager) ApplyEnv() error {
	if err := m.applyEnvOverrides(); err != nil {
		return err
	}
	if m.notifier != nil {
		m.notifier.NotifyInstall(m.Current().Name(), "env")
	}
	return nil
}

func (m *Manager) applyEnvOverrides() error {
	env := m.env
	if env == nil {
		env = loader.NewEnvLoader(loader.EnvPrefix)
	}
	overrides, err := env.Load()
	if err != nil {
		return err
	}
	if len(overrides) == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return Apply(m.theme, overrides)
}

// isThemeFile reports whether the string names a loadable theme file.
func isThemeFile(s string) bool {
	switch strings.ToLower(filepath.Ext(s)) {
	case ".json", ".toml", ".lua":
		return true
	}
	return false
}
