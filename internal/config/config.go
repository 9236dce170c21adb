// Package config handles configuration for the TuneBoxed CLI, including
// defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite state database.
//   - ResetOnLaunch: wipe all persisted accounts and the saved session at
//     startup. Off by default, so persistence actually persists.
type Config struct {
	DatabaseDSN   string
	ResetOnLaunch bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "tunebox.db"
	c.ResetOnLaunch = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
