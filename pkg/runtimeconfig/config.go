package runtimeconfig

import "sync"

// Payload keys shared with the bootstrap script.
const (
	GlobalName        = "__RUNTIME_CONFIG__"
	KeyAPIBaseURL     = "API_BASE_URL"
	KeyAuthAPIBaseURL = "AUTH_API_BASE_URL"
	KeyAppVersion     = "APP_VERSION"
)

// Build-time fallbacks. Override with -ldflags "-X ...".
var (
	defaultAPIBaseURL     = ""
	defaultAuthAPIBaseURL = "http://localhost:4000"
	defaultAppVersion     = "dev"
)

// Config holds the runtime-resolved service origins.
// An empty field means "absent, use the static fallback".
type Config struct {
	APIBaseURL     string `yaml:"api_base_url" env:"API_BASE_URL"`
	AuthAPIBaseURL string `yaml:"auth_api_base_url" env:"AUTH_API_BASE_URL"`
	AppVersion     string `yaml:"app_version" env:"APP_VERSION"`
}

// Defaults are the static fallbacks applied to absent Config fields.
type Defaults Config

// BuildDefaults returns the fallbacks compiled into the binary.
func BuildDefaults() Defaults {
	return Defaults{
		APIBaseURL:     defaultAPIBaseURL,
		AuthAPIBaseURL: defaultAuthAPIBaseURL,
		AppVersion:     defaultAppVersion,
	}
}

// IsZero reports whether no field is set.
func (c Config) IsZero() bool {
	return c == Config{}
}

// Resolve fills absent fields from d.
func (c Config) Resolve(d Defaults) Config {
	if c.APIBaseURL == "" {
		c.APIBaseURL = d.APIBaseURL
	}
	if c.AuthAPIBaseURL == "" {
		c.AuthAPIBaseURL = d.AuthAPIBaseURL
	}
	if c.AppVersion == "" {
		c.AppVersion = d.AppVersion
	}
	return c
}

// Source produces a Config. A Source error is logged by the caller's
// discretion and treated as an empty Config by the Loader.
type Source func() (Config, error)

// Static returns a Source that always yields cfg.
func Static(cfg Config) Source {
	return func() (Config, error) { return cfg, nil }
}

// Loader resolves a Config at most once and returns the same value afterwards.
type Loader struct {
	source Source
	once   sync.Once
	cfg    Config
	err    error
}

// NewLoader creates a Loader for the given source. A nil source yields an
// empty Config.
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Get returns the resolved Config. The source is consulted on the first call only.
func (l *Loader) Get() Config {
	l.once.Do(l.load)
	return l.cfg
}

// Err returns the error reported by the source on first resolution, if any.
func (l *Loader) Err() error {
	l.once.Do(l.load)
	return l.err
}

func (l *Loader) load() {
	if l.source == nil {
		return
	}
	cfg, err := l.source()
	if err != nil {
		l.err = err
		return
	}
	l.cfg = cfg
}
