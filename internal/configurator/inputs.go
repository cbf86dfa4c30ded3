// Package configurator generates deterministic product configurations from
// user inputs: settings, setup steps, a pricing estimate, and integration
// plans, optionally enhanced with provider recommendations.
package configurator

// Inputs are the user-supplied configuration parameters. Absent fields take
// conservative defaults.
type Inputs struct {
	DeploymentType  string         `json:"deployment_type"`
	Region          string         `json:"region"`
	Scale           string         `json:"scale"`
	Features        []string       `json:"features"`
	Customizations  map[string]any `json:"customizations"`
	AuthMethod      string         `json:"auth_method"`
	Encryption      *bool          `json:"encryption"`
	APIIntegrations []string       `json:"api_integrations"`
	Webhooks        []string       `json:"webhooks"`
}

// applyDefaults fills absent fields in place.
func (in *Inputs) applyDefaults() {
	if in.DeploymentType == "" {
		in.DeploymentType = "cloud"
	}
	if in.Region == "" {
		in.Region = "eu-west-1"
	}
	if in.Scale == "" {
		in.Scale = "standard"
	}
	if in.Features == nil {
		in.Features = []string{}
	}
	if in.Customizations == nil {
		in.Customizations = map[string]any{}
	}
	if in.AuthMethod == "" {
		in.AuthMethod = "oauth2"
	}
	if in.Encryption == nil {
		enabled := true
		in.Encryption = &enabled
	}
	if in.APIIntegrations == nil {
		in.APIIntegrations = []string{}
	}
	if in.Webhooks == nil {
		in.Webhooks = []string{}
	}
}
