package theme

// Server modes for the notebook backend.
var trameModes = []string{"trame", "server", "client"}

// TrameConfig controls the notebook server backend.
type TrameConfig struct {
	interactiveRatio      float64
	stillRatio            float64
	jupyterServerName     string
	jupyterServerPort     int
	serverProxyEnabled    bool
	serverProxyPrefix     string
	defaultMode           string
	enableToolkitWarnings bool
}

// NewTrameConfig returns notebook backend defaults.
func NewTrameConfig() *TrameConfig {
	return &TrameConfig{
		interactiveRatio:  1,
		stillRatio:        1,
		jupyterServerName: "viztheme-jupyter",
		serverProxyPrefix: "/proxy/",
		defaultMode:       "trame",
	}
}

func (t *TrameConfig) InteractiveRatio() float64    { return t.interactiveRatio }
func (t *TrameConfig) StillRatio() float64          { return t.stillRatio }
func (t *TrameConfig) JupyterServerName() string    { return t.jupyterServerName }
func (t *TrameConfig) JupyterServerPort() int       { return t.jupyterServerPort }
func (t *TrameConfig) ServerProxyEnabled() bool     { return t.serverProxyEnabled }
func (t *TrameConfig) ServerProxyPrefix() string    { return t.serverProxyPrefix }
func (t *TrameConfig) DefaultMode() string         { return t.defaultMode }
func (t *TrameConfig) EnableToolkitWarnings() bool { return t.enableToolkitWarnings }

func (t *TrameConfig) SetInteractiveRatio(v float64)   { t.interactiveRatio = v }
func (t *TrameConfig) SetStillRatio(v float64)         { t.stillRatio = v }
func (t *TrameConfig) SetJupyterServerName(v string)   { t.jupyterServerName = v }
func (t *TrameConfig) SetJupyterServerPort(v int)      { t.jupyterServerPort = v }
func (t *TrameConfig) SetServerProxyEnabled(v bool)    { t.serverProxyEnabled = v }
func (t *TrameConfig) SetServerProxyPrefix(v string)   { t.serverProxyPrefix = v }
func (t *TrameConfig) SetEnableToolkitWarnings(v bool) { t.enableToolkitWarnings = v }

// SetDefaultMode accepts one of trame, server, client.
func (t *TrameConfig) SetDefaultMode(v string) error {
	if err := checkEnum("trame.default_mode", v, trameModes); err != nil {
		return err
	}
	t.defaultMode = v
	return nil
}

func (t *TrameConfig) fields() []field {
	return []field{
		{name: "interactive_ratio", get: func() any { return t.interactiveRatio }, set: floatSetter("interactive_ratio", &t.interactiveRatio)},
		{name: "still_ratio", get: func() any { return t.stillRatio }, set: floatSetter("still_ratio", &t.stillRatio)},
		{name: "jupyter_server_name", get: func() any { return t.jupyterServerName }, set: stringSetter("jupyter_server_name", &t.jupyterServerName)},
		{name: "jupyter_server_port", get: func() any { return t.jupyterServerPort }, set: intSetter("jupyter_server_port", &t.jupyterServerPort)},
		{name: "server_proxy_enabled", get: func() any { return t.serverProxyEnabled }, set: boolSetter("server_proxy_enabled", &t.serverProxyEnabled)},
		{name: "server_proxy_prefix", get: func() any { return t.serverProxyPrefix }, set: stringSetter("server_proxy_prefix", &t.serverProxyPrefix)},
		{name: "default_mode", get: func() any { return t.defaultMode }, set: func(v any) error {
			s, err := coerceString("default_mode", v)
			if err != nil {
				return err
			}
			return t.SetDefaultMode(s)
		}},
		{name: "enable_toolkit_warnings", get: func() any { return t.enableToolkitWarnings }, set: boolSetter("enable_toolkit_warnings", &t.enableToolkitWarnings)},
	}
}
