// internal/config/model.go
//
// Typed configuration model for frontdoor.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from four overlay layers:
//
//   • compiled-in defaults                        – lowest precedence,
//   • optional `.env`                             – dotenv values,
//   • `conf/global.yaml`                          – optional static file,
//   • `FRONTDOOR_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import "time"

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr   string        `koanf:"listen_addr"   validate:"required,hostname_port"`
	ForceHTTPS   bool          `koanf:"force_https"`
	ReadTimeout  time.Duration `koanf:"read_timeout"  validate:"gt=0"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"  validate:"gt=0"`
}

//
// Locale section
//

// Locale controls the root-route redirect.  CookieName is the preference
// key read from the request; Default is used when that cookie is absent.
type Locale struct {
	CookieName string `koanf:"cookie_name" validate:"required"`
	Default    string `koanf:"default"     validate:"required"`
}

//
// Log section
//

// Log selects the zap level and the directory that receives daily files.
// A relative Dir is resolved against Paths.Root.
type Log struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	Dir   string `koanf:"dir"   validate:"required"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime, never set in YAML or env.
type Paths struct {
	Root string // FRONTDOOR_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP   HTTP   `koanf:"http"`
	Locale Locale `koanf:"locale"`
	Log    Log    `koanf:"log"`
	Paths  Paths  `koanf:"-"` // not loaded from config files
}
