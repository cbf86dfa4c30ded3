package configurator

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const (
	analysisTemperature = 0.5
	analysisMaxTokens   = 800

	summaryLength = 200

	baseCompatibility  = 0.80
	requirementBonus   = 0.02
	maxRequirementGain = 0.15
	maxCompatibility   = 0.98
)

// Recommendation pairs the full provider analysis with a short summary.
type Recommendation struct {
	Summary      string `json:"summary"`
	FullAnalysis string `json:"full_analysis"`
}

// Analysis is the result of a requirements analysis.
type Analysis struct {
	Analysis       string         `json:"analysis"`
	Recommendation Recommendation `json:"recommendation"`
	Score          float64        `json:"score"`
}

// Analyze evaluates customer requirements through the provider. Unlike
// Generate, provider failures propagate: without the analysis text there is
// nothing useful to return.
func (g *Generator) Analyze(ctx context.Context, productID string, requirements []string) (*Analysis, error) {
	resp, err := g.completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Sen bir SaaS ürün yapılandırma uzmanısın. Müşteri gereksinimlerini analiz ederek en uygun yapılandırmayı öneriyorsun.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: requirementsPrompt(requirements),
			},
		},
		Temperature: analysisTemperature,
		MaxTokens:   analysisMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze requirements: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("analyze requirements: provider returned no choices")
	}

	analysis := resp.Choices[0].Message.Content

	g.logger.Info("requirements analyzed", "product", productID, "requirements", len(requirements))

	return &Analysis{
		Analysis: analysis,
		Recommendation: Recommendation{
			Summary:      summarize(analysis),
			FullAnalysis: analysis,
		},
		Score: compatibilityScore(len(requirements)),
	}, nil
}

func requirementsPrompt(requirements []string) string {
	var b strings.Builder
	b.WriteString("\nAşağıdaki müşteri gereksinimlerini analiz et:\n\n")
	for _, req := range requirements {
		b.WriteString("- ")
		b.WriteString(req)
		b.WriteString("\n")
	}
	b.WriteString(`
Lütfen:
1. Her gereksinimi değerlendir
2. Uyumlu ürün özelliklerini belirle
3. Önerilen yapılandırmayı detaylandır
4. Potansiyel zorlukları ve çözümleri açıkla
`)
	return b.String()
}

// summarize truncates the analysis to its leading characters for the
// recommendation summary.
func summarize(analysis string) string {
	runes := []rune(analysis)
	if len(runes) <= summaryLength {
		return analysis
	}
	return string(runes[:summaryLength]) + "..."
}

// compatibilityScore grows with the requirement count from a fixed base,
// capped well short of certainty. The score is a heuristic, not a measured
// compatibility.
func compatibilityScore(count int) float64 {
	bonus := float64(count) * requirementBonus
	if bonus > maxRequirementGain {
		bonus = maxRequirementGain
	}

	score := baseCompatibility + bonus
	if score > maxCompatibility {
		score = maxCompatibility
	}
	return score
}
