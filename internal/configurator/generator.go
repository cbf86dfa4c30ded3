package configurator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/compagent/platform/internal/llm"
)

const (
	basePrice       = 99.0
	featureCost     = 10.0
	integrationCost = 20.0

	recommendationTemperature = 0.6
	recommendationMaxTokens   = 400

	recommendationFallback = "AI önerileri şu anda kullanılamıyor."
)

// scaleMultipliers maps the scale tier to its price multiplier. Unknown
// tiers fall back to 1.0.
var scaleMultipliers = map[string]float64{
	"small":      0.5,
	"standard":   1.0,
	"large":      2.0,
	"enterprise": 5.0,
}

// Settings is the deterministic configuration derived from inputs.
type Settings struct {
	Deployment   DeploymentSettings  `json:"deployment"`
	Features     FeatureSettings     `json:"features"`
	Security     SecuritySettings    `json:"security"`
	Integrations IntegrationSettings `json:"integrations"`
}

type DeploymentSettings struct {
	Type   string `json:"type"`
	Region string `json:"region"`
	Scale  string `json:"scale"`
}

type FeatureSettings struct {
	Enabled        []string       `json:"enabled"`
	Customizations map[string]any `json:"customizations"`
}

type SecuritySettings struct {
	Authentication string `json:"authentication"`
	Encryption     bool   `json:"encryption"`
}

type IntegrationSettings struct {
	APIs     []string `json:"apis"`
	Webhooks []string `json:"webhooks"`
}

// Integration is a planned integration awaiting setup.
type Integration struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// Configuration is the full generation result.
type Configuration struct {
	Settings          Settings      `json:"settings"`
	SetupSteps        []string      `json:"setup_steps"`
	Pricing           float64       `json:"pricing"`
	Integrations      []Integration `json:"integrations"`
	AIRecommendations string        `json:"ai_recommendations,omitempty"`
}

// Generator builds product configurations. The deterministic parts never
// touch the provider; recommendations are requested only when the caller
// supplies requirements, and degrade to a fixed notice on failure.
type Generator struct {
	completer llm.Completer
	model     string
	logger    *slog.Logger
}

// NewGenerator creates a Generator over the given provider.
func NewGenerator(completer llm.Completer, model string, logger *slog.Logger) *Generator {
	return &Generator{
		completer: completer,
		model:     model,
		logger:    logger.With("system", "configurator"),
	}
}

// Generate builds the configuration for the given inputs. requirements, if
// any, trigger the AI recommendation pass.
func (g *Generator) Generate(ctx context.Context, productID string, inputs Inputs, requirements []string) Configuration {
	inputs.applyDefaults()

	config := Configuration{
		Settings:     buildSettings(inputs),
		SetupSteps:   setupSteps(inputs),
		Pricing:      pricing(inputs),
		Integrations: integrations(inputs),
	}

	if len(requirements) > 0 {
		config.AIRecommendations = g.recommendations(ctx, inputs, requirements)
	}

	g.logger.Info("configuration generated", "product", productID)
	return config
}

func buildSettings(in Inputs) Settings {
	return Settings{
		Deployment: DeploymentSettings{
			Type:   in.DeploymentType,
			Region: in.Region,
			Scale:  in.Scale,
		},
		Features: FeatureSettings{
			Enabled:        in.Features,
			Customizations: in.Customizations,
		},
		Security: SecuritySettings{
			Authentication: in.AuthMethod,
			Encryption:     *in.Encryption,
		},
		Integrations: IntegrationSettings{
			APIs:     in.APIIntegrations,
			Webhooks: in.Webhooks,
		},
	}
}

// setupSteps assembles the numbered installation plan. Numbering continues
// from the running length so conditional steps stay sequential.
func setupSteps(in Inputs) []string {
	steps := []string{
		"1. Hesap oluşturma ve API anahtarı alma",
		"2. Gerekli bağımlılıkları yükleme",
		"3. Yapılandırma dosyasını düzenleme",
	}

	if in.DeploymentType == "on-premise" {
		steps = append(steps,
			"4. Sunucu kurulumu ve yapılandırması",
			"5. Veritabanı bağlantısını ayarlama",
		)
	} else {
		steps = append(steps, "4. Cloud hesabını bağlama")
	}

	if len(in.APIIntegrations) > 0 {
		steps = append(steps, fmt.Sprintf("%d. API entegrasyonlarını yapılandırma", len(steps)+1))
	}

	steps = append(steps, fmt.Sprintf("%d. Test ve doğrulama", len(steps)+1))
	steps = append(steps, fmt.Sprintf("%d. Production'a geçiş", len(steps)+1))

	return steps
}

// pricing estimates the monthly price: base times the scale multiplier,
// plus flat per-feature and per-integration costs, rounded to cents.
func pricing(in Inputs) float64 {
	multiplier, ok := scaleMultipliers[in.Scale]
	if !ok {
		multiplier = 1.0
	}

	total := basePrice*multiplier +
		float64(len(in.Features))*featureCost +
		float64(len(in.APIIntegrations))*integrationCost

	return math.Round(total*100) / 100
}

func integrations(in Inputs) []Integration {
	planned := make([]Integration, 0, len(in.APIIntegrations)+len(in.Webhooks))

	for _, api := range in.APIIntegrations {
		planned = append(planned, Integration{Name: api, Type: "api", Status: "pending"})
	}
	for _, webhook := range in.Webhooks {
		planned = append(planned, Integration{Name: webhook, Type: "webhook", Status: "pending"})
	}

	return planned
}

// recommendations asks the provider for configuration advice. Failures
// degrade to a fixed notice so generation itself never fails.
func (g *Generator) recommendations(ctx context.Context, inputs Inputs, requirements []string) string {
	encoded, err := json.Marshal(inputs)
	if err != nil {
		g.logger.Warn("unencodable inputs for recommendations", "error", err)
		return recommendationFallback
	}

	prompt := fmt.Sprintf(`
Müşteri Girdileri: %s
Gereksinimler: %s

Bu bilgilere göre en uygun yapılandırma önerilerini liste halinde ver.
Her öneri için kısa açıklama ekle.
`, encoded, strings.Join(requirements, ", "))

	resp, err := g.completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "SaaS yapılandırma uzmanısın."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: recommendationTemperature,
		MaxTokens:   recommendationMaxTokens,
	})
	if err != nil || len(resp.Choices) == 0 {
		g.logger.Error("recommendation completion failed", "error", err)
		return recommendationFallback
	}

	return resp.Choices[0].Message.Content
}
