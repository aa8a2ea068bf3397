// Package config assembles runtime settings for the Invoicor CLI from
// defaults, an optional JSON file, and command-line flags. Later sources
// take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the Invoicor CLI.
//
// Fields:
//   - DatabasePath: location of the SQLite file backing the durable store.
//   - SessionTTL: how long a signed-in session stays valid (absolute, not sliding).
//   - SearchDebounce: pause before the interactive search re-runs its filter.
//   - TokenSecret: HMAC key for signing session tokens. Empty means a
//     random per-install secret is generated on first run and kept in the
//     durable store, so remembered sessions survive restarts.
type Config struct {
	DatabasePath   string
	SessionTTL     time.Duration
	SearchDebounce time.Duration
	TokenSecret    string
}

// LoadDefaults populates c with sensible defaults. The token secret is left
// empty so a random per-install one is generated; set it via config file or
// -k to pin a specific key.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "invoicor.db"
	c.SessionTTL = 24 * time.Hour
	c.SearchDebounce = 300 * time.Millisecond
	c.TokenSecret = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
