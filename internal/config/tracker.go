package config

import "os"

const (
	// EnvTrackerServer overrides the issue tracker server URL.
	EnvTrackerServer = "TRACKER_SERVER"

	// EnvTrackerEmail overrides the issue tracker account email.
	EnvTrackerEmail = "TRACKER_EMAIL"

	// EnvTrackerAPIToken supplies the issue tracker API token.
	// The token is never read from TOML files.
	EnvTrackerAPIToken = "TRACKER_API_TOKEN"

	// EnvTrackerProject overrides the default issue tracker project key.
	EnvTrackerProject = "TRACKER_PROJECT"
)

// TrackerConfig contains issue tracker integration settings. The tracker is
// optional: when no server or credentials are configured the passthrough
// endpoints report the missing settings instead of failing at startup.
type TrackerConfig struct {
	Server   string `toml:"server"`
	Email    string `toml:"email"`
	Project  string `toml:"project"`
	apiToken string
}

// APIToken returns the tracker API token loaded from the environment.
func (c *TrackerConfig) APIToken() string {
	return c.apiToken
}

// Configured reports whether all required tracker settings are present.
func (c *TrackerConfig) Configured() bool {
	return c.Server != "" && c.Email != "" && c.apiToken != ""
}

// Finalize applies defaults and loads environment overrides. An unconfigured
// tracker is valid; the handlers reject requests at call time.
func (c *TrackerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *TrackerConfig) Merge(overlay *TrackerConfig) {
	if overlay.Server != "" {
		c.Server = overlay.Server
	}
	if overlay.Email != "" {
		c.Email = overlay.Email
	}
	if overlay.Project != "" {
		c.Project = overlay.Project
	}
}

func (c *TrackerConfig) loadDefaults() {
	if c.Project == "" {
		c.Project = "COMP"
	}
}

func (c *TrackerConfig) loadEnv() {
	c.apiToken = os.Getenv(EnvTrackerAPIToken)

	if v := os.Getenv(EnvTrackerServer); v != "" {
		c.Server = v
	}
	if v := os.Getenv(EnvTrackerEmail); v != "" {
		c.Email = v
	}
	if v := os.Getenv(EnvTrackerProject); v != "" {
		c.Project = v
	}
}
