package conversation

import (
	"fmt"
	"strings"

	"github.com/compagent/platform/internal/knowledge"
)

// Profile is the persona an agent presents in conversation. Zero-value
// fields fall back to neutral defaults so a sparsely configured agent still
// produces a coherent prompt.
type Profile struct {
	Name         string
	Description  string
	Role         string
	Tone         string
	Instructions string
	Constraints  string
}

// SystemPrompt renders the persona as a deterministic system prompt.
func (p Profile) SystemPrompt() string {
	role := p.Role
	if role == "" {
		role = "AI Assistant"
	}
	tone := p.Tone
	if tone == "" {
		tone = "professional"
	}
	instructions := p.Instructions
	if instructions == "" {
		instructions = "Help users with their questions."
	}
	constraints := p.Constraints
	if constraints == "" {
		constraints = "Be helpful and accurate."
	}

	return fmt.Sprintf(`You are %s. %s

Role: %s
Tone: %s

Instructions:
%s

Constraints:
%s
`, p.Name, p.Description, role, tone, instructions, constraints)
}

// ProductSystemPrompt renders the sales/support persona for the legacy
// product-keyed flow. The template is intentionally fixed.
func ProductSystemPrompt(k knowledge.ProductKnowledge) string {
	name := k.Name
	if name == "" {
		name = "Ürün"
	}

	features := "Belirtilmemiş"
	if len(k.Features) > 0 {
		features = strings.Join(k.Features, ", ")
	}

	return fmt.Sprintf(`Sen bir SaaS ürün satış ve destek uzmanısın.

Ürün Bilgileri:
- İsim: %s
- Açıklama: %s
- Özellikler: %s

Görevin:
1. Müşteri sorularını profesyonel ve yardımcı bir şekilde cevaplamak
2. Ürün özelliklerini net bir şekilde açıklamak
3. Teknik soruları detaylı yanıtlamak
4. Gerektiğinde ürün yapılandırma önerileri sunmak
5. Satış sürecini desteklemek

Kurallar:
- Her zaman kibar ve profesyonel ol
- Bilmediğin şeyleri uydurmak yerine "Bu konuda detaylı bilgi almak için destek ekibimizle iletişime geçebilirsiniz" de
- Müşteri ihtiyaçlarını anlamaya çalış
- Somut örnekler ver
`, name, k.Description, features)
}
