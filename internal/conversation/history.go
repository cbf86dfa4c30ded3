package conversation

import "sync"

// maxExchanges bounds per-session history; older exchanges are discarded.
const maxExchanges = 10

// Exchange is one question/answer turn in a session.
type Exchange struct {
	Question string
	Answer   string
}

// History holds rolling conversation history keyed by session identifier.
// Safe for concurrent use.
type History struct {
	mu       sync.Mutex
	sessions map[string][]Exchange
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{sessions: make(map[string][]Exchange)}
}

// Append records an exchange, keeping only the most recent maxExchanges.
func (h *History) Append(sessionID, question, answer string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	exchanges := append(h.sessions[sessionID], Exchange{
		Question: question,
		Answer:   answer,
	})
	if len(exchanges) > maxExchanges {
		exchanges = exchanges[len(exchanges)-maxExchanges:]
	}
	h.sessions[sessionID] = exchanges
}

// Recent returns up to n of the most recent exchanges for a session, oldest
// first. The returned slice is a copy.
func (h *History) Recent(sessionID string, n int) []Exchange {
	h.mu.Lock()
	defer h.mu.Unlock()

	exchanges := h.sessions[sessionID]
	if len(exchanges) > n {
		exchanges = exchanges[len(exchanges)-n:]
	}

	out := make([]Exchange, len(exchanges))
	copy(out, exchanges)
	return out
}
