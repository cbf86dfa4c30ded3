// Package conversation implements the question-answering flow: prompt
// assembly from persona and retrieved context, a single provider call, a
// confidence heuristic, and rolling session history.
package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/compagent/platform/internal/knowledge"
	"github.com/compagent/platform/internal/llm"
)

const (
	chatTemperature = 0.7

	// Question answers are kept short; free-form agent chat gets more room.
	questionMaxTokens = 500
	freeformMaxTokens = 1000

	// recentWindow is how many past exchanges are surfaced into the prompt.
	recentWindow = 3

	// Fallback payloads for provider failures. The failed turn is never
	// appended to session history, so a retry starts from the last good
	// exchange.
	fallbackAnswer   = "Üzgünüm, şu anda bu soruyu cevaplayamıyorum. Lütfen daha sonra tekrar deneyin."
	fallbackResponse = "I apologize, but I encountered an error processing your request. Please try again."
)

// questionSuggestions are the canned follow-ups returned with every
// successful answer; only the first three are surfaced.
var questionSuggestions = []string{
	"Fiyatlandırma modelleri nelerdir?",
	"Entegrasyon seçenekleri hakkında bilgi alabilir miyim?",
	"Kurulum süreci nasıl işliyor?",
	"Teknik destek nasıl sağlanıyor?",
}

// Answer is the result of a product question turn. Confidence is a coarse
// heuristic from the provider's finish reason, not a calibrated
// probability. ConfigSuggestion is reserved and currently always nil.
type Answer struct {
	Answer           string         `json:"answer"`
	Confidence       float64        `json:"confidence"`
	Suggestions      []string       `json:"suggestions"`
	ConfigSuggestion map[string]any `json:"config_suggestion"`
}

// Engine drives conversations against the completion provider. One engine
// is created at startup and shared by all requests; session history is the
// only mutable state and is internally synchronized.
type Engine struct {
	completer llm.Completer
	model     string
	history   *History
	logger    *slog.Logger
}

// NewEngine creates an Engine over the given provider.
func NewEngine(completer llm.Completer, model string, logger *slog.Logger) *Engine {
	return &Engine{
		completer: completer,
		model:     model,
		history:   NewHistory(),
		logger:    logger.With("system", "conversation"),
	}
}

// Respond handles a free-form agent chat turn. docContext is retrieved
// document text ("" means no relevant context). When sessionID is set,
// recent history is surfaced into the prompt and the exchange is recorded
// on success. Provider failures degrade to a fixed apology.
func (e *Engine) Respond(ctx context.Context, systemPrompt, message, docContext, sessionID string) string {
	content := message
	if docContext != "" {
		content = fmt.Sprintf("Context:\n%s\n\nQuestion: %s", docContext, message)
	}

	if sessionID != "" {
		if recent := e.history.Recent(sessionID, recentWindow); len(recent) > 0 {
			var b strings.Builder
			b.WriteString(content)
			b.WriteString("\n\nPrevious conversation:")
			for _, ex := range recent {
				fmt.Fprintf(&b, "\nQ: %s\nA: %s", ex.Question, ex.Answer)
			}
			content = b.String()
		}
	}

	var messages []openai.ChatCompletionMessage
	if systemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: content,
	})

	resp, err := e.completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Messages:    messages,
		Temperature: chatTemperature,
		MaxTokens:   freeformMaxTokens,
	})
	if err != nil || len(resp.Choices) == 0 {
		e.logger.Error("chat completion failed", "error", err)
		return fallbackResponse
	}

	answer := resp.Choices[0].Message.Content

	if sessionID != "" {
		e.history.Append(sessionID, message, answer)
	}

	return answer
}

// AnswerQuestion handles a product question turn in the legacy flow. extra
// is arbitrary caller-supplied context surfaced verbatim into the prompt.
func (e *Engine) AnswerQuestion(ctx context.Context, k knowledge.ProductKnowledge, question string, extra map[string]any, sessionID string) Answer {
	resp, err := e.completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: ProductSystemPrompt(k)},
			{Role: openai.ChatMessageRoleUser, Content: e.questionContext(question, extra, sessionID)},
		},
		Temperature: chatTemperature,
		MaxTokens:   questionMaxTokens,
	})
	if err != nil || len(resp.Choices) == 0 {
		e.logger.Error("question completion failed", "error", err)
		return Answer{
			Answer:      fallbackAnswer,
			Confidence:  0.0,
			Suggestions: []string{},
		}
	}

	answer := Answer{
		Answer:      resp.Choices[0].Message.Content,
		Confidence:  confidence(resp),
		Suggestions: questionSuggestions[:3],
	}

	if sessionID != "" {
		e.history.Append(sessionID, question, answer.Answer)
	}

	return answer
}

// questionContext assembles the user message: the question, optional extra
// context, and the recent exchanges of the session.
func (e *Engine) questionContext(question string, extra map[string]any, sessionID string) string {
	parts := []string{"Soru: " + question}

	if len(extra) > 0 {
		encoded, err := json.Marshal(extra)
		if err != nil {
			e.logger.Warn("unencodable chat context", "error", err)
		} else {
			parts = append(parts, "\nEk Bilgiler: "+string(encoded))
		}
	}

	if sessionID != "" {
		if recent := e.history.Recent(sessionID, recentWindow); len(recent) > 0 {
			parts = append(parts, "\nÖnceki Konuşma:")
			for _, ex := range recent {
				parts = append(parts, "K: "+ex.Question, "C: "+ex.Answer)
			}
		}
	}

	return strings.Join(parts, "\n")
}

// confidence maps the provider's finish reason to a coarse score: a clean
// stop scores 0.85, any other reason 0.70.
func confidence(resp openai.ChatCompletionResponse) float64 {
	if resp.Choices[0].FinishReason == openai.FinishReasonStop {
		return 0.85
	}
	return 0.70
}
