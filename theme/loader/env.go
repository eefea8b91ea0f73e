package loader

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the default environment variable prefix.
const EnvPrefix = "VIZTHEME_"

// EnvLoader loads theme overrides from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "VIZTHEME_")
	mapping map[string]string // Env var -> theme path
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "VIZTHEME_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
	}
}

// NewEnvLoaderWithMapping creates a loader with custom mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
	}
}

// defaultEnvMapping returns the default environment variable mappings.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "MULTI_SAMPLES":        "multi_samples",
		prefix + "AUTO_CLOSE":           "auto_close",
		prefix + "JUPYTER_BACKEND":      "jupyter_backend",
		prefix + "WINDOW_SIZE":          "window_size",
		prefix + "FULL_SCREEN":          "full_screen",
		prefix + "SERVER_PROXY_ENABLED": "trame.server_proxy_enabled",
		prefix + "SERVER_PROXY_PREFIX":  "trame.server_proxy_prefix",
		prefix + "DEFAULT_MODE":         "trame.default_mode",
	}
}

// Nested groups recognized by the generic VIZTHEME_GROUP_FIELD scan.
// Theme field names themselves contain underscores, so only a known
// leading group token splits the path.
var envGroups = map[string]bool{
	"trame":      true,
	"font":       true,
	"axes":       true,
	"camera":     true,
	"silhouette": true,
}

// Load reads environment variables and returns a theme override map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	// First, load explicitly mapped variables
	for env, path := range l.mapping {
		if val, ok := os.LookupEnv(env); ok {
			setByPath(config, path, parseEnvValue(val))
		}
	}

	// Then, scan for additional prefixed variables not in mapping
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}

		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if _, mapped := l.mapping[name]; mapped {
			continue
		}

		setByPath(config, l.envToPath(name), parseEnvValue(value))
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, themePath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = themePath
}

// RemoveMapping removes an environment variable mapping.
func (l *EnvLoader) RemoveMapping(envVar string) {
	delete(l.mapping, envVar)
}

// envToPath converts VIZTHEME_FONT_SIZE to "font.size" and
// VIZTHEME_SHOW_EDGES to "show_edges".
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))

	group, rest, ok := strings.Cut(name, "_")
	if ok && envGroups[group] {
		return group + "." + rest
	}
	return name
}

// parseEnvValue attempts to parse the string value into an appropriate
// type. Unlike boolean flags in shell conventions, "1" and "0" stay
// numeric so integer fields parse correctly.
func parseEnvValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	// JSON array or object, e.g. VIZTHEME_WINDOW_SIZE='[400, 400]'
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		if next, ok := current[part].(map[string]any); ok {
			current = next
		} else {
			next := make(map[string]any)
			current[part] = next
			current = next
		}
	}

	current[parts[len(parts)-1]] = value
}
