package logging

import "os"

// Env names the environment variables that override logging configuration.
type Env struct {
	Level  string
	Format string
}

// Config is the [logging] section of the service configuration.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
}

// Finalize fills defaults (info/text), applies environment overrides, and
// rejects unknown level or format names.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}

	if env != nil {
		if v := os.Getenv(env.Level); v != "" {
			c.Level = Level(v)
		}
		if v := os.Getenv(env.Format); v != "" {
			c.Format = Format(v)
		}
	}

	if err := c.Level.validate(); err != nil {
		return err
	}
	return c.Format.validate()
}

// Merge overlays the set fields of another configuration onto this one.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}
