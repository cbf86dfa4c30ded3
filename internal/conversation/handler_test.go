package conversation_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/compagent/platform/internal/conversation"
	"github.com/compagent/platform/internal/knowledge"
	"github.com/compagent/platform/pkg/routes"
)

type handlerFixture struct {
	server    *httptest.Server
	catalog   *knowledge.Catalog
	completer *fakeCompleter
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	completer := &fakeCompleter{resp: stopResponse("ürün cevabı")}
	catalog := knowledge.NewCatalog()

	handler := conversation.NewHandler(
		conversation.NewEngine(completer, "gpt-4", logger),
		catalog,
		logger,
	)

	router := routes.New(logger)
	router.RegisterGroup(handler.Routes())

	server := httptest.NewServer(router.Build())
	t.Cleanup(server.Close)

	return &handlerFixture{server: server, catalog: catalog, completer: completer}
}

func (f *handlerFixture) postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()

	encoded, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	resp, err := http.Post(f.server.URL+path, "application/json", bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func TestHandlerChat(t *testing.T) {
	fixture := newHandlerFixture(t)
	fixture.catalog.Put("prod_1", knowledge.ProductKnowledge{Name: "CRM Suite"})

	resp := fixture.postJSON(t, "/agent/chat", conversation.ChatRequest{
		ProductID: "prod_1",
		Message:   "Fiyat nedir?",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body conversation.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Response != "ürün cevabı" {
		t.Errorf("response = %q", body.Response)
	}
	if body.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", body.Confidence)
	}
	if len(body.Suggestions) != 3 {
		t.Errorf("returned %d suggestions, want 3", len(body.Suggestions))
	}
	if body.ProductConfig != nil {
		t.Errorf("product_config = %v, want null", body.ProductConfig)
	}

	// The product knowledge must reach the system prompt.
	system := fixture.completer.last.Messages[0].Content
	if !strings.Contains(system, "- İsim: CRM Suite") {
		t.Errorf("system prompt missing product name: %q", system)
	}
}

func TestHandlerChatUsesDefaultKnowledge(t *testing.T) {
	fixture := newHandlerFixture(t)

	resp := fixture.postJSON(t, "/agent/chat", conversation.ChatRequest{
		ProductID: "unknown",
		Message:   "Merhaba",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	system := fixture.completer.last.Messages[0].Content
	if !strings.Contains(system, "- İsim: Sample Product") {
		t.Errorf("system prompt missing default knowledge: %q", system)
	}
}

func TestHandlerChatValidation(t *testing.T) {
	fixture := newHandlerFixture(t)

	tests := []struct {
		name string
		req  conversation.ChatRequest
	}{
		{"missing product", conversation.ChatRequest{Message: "hi"}},
		{"missing message", conversation.ChatRequest{ProductID: "prod_1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := fixture.postJSON(t, "/agent/chat", tt.req)
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
}

func TestHandlerCapabilities(t *testing.T) {
	fixture := newHandlerFixture(t)
	fixture.catalog.Put("prod_1", knowledge.ProductKnowledge{
		Features: []string{"Lead tracking", "Email sync"},
	})

	resp, err := http.Get(fixture.server.URL + "/agent/product/prod_1/capabilities")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		ProductID    string   `json:"product_id"`
		Capabilities []string `json:"capabilities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.ProductID != "prod_1" {
		t.Errorf("product_id = %q, want prod_1", body.ProductID)
	}
	if len(body.Capabilities) != 2 {
		t.Errorf("capabilities = %v, want 2 entries", body.Capabilities)
	}
}
