package analytics_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/compagent/platform/internal/analytics"
	"github.com/compagent/platform/pkg/routes"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	router := routes.New(logger)
	router.RegisterGroup(analytics.NewHandler(logger).Routes())

	server := httptest.NewServer(router.Build())
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, rawURL string) *http.Response {
	t.Helper()

	resp, err := http.Get(rawURL)
	if err != nil {
		t.Fatalf("GET %s: %v", rawURL, err)
	}
	return resp
}

func TestConversationsDateValidation(t *testing.T) {
	server := newServer(t)

	tests := []struct {
		name  string
		query url.Values
		want  int
	}{
		{
			"valid range",
			url.Values{"start_date": {"2026-08-01T00:00:00Z"}, "end_date": {"2026-08-31T00:00:00Z"}},
			http.StatusOK,
		},
		{"missing dates", url.Values{}, http.StatusBadRequest},
		{
			"malformed start",
			url.Values{"start_date": {"yesterday"}, "end_date": {"2026-08-31T00:00:00Z"}},
			http.StatusBadRequest,
		},
		{
			"end before start",
			url.Values{"start_date": {"2026-08-31T00:00:00Z"}, "end_date": {"2026-08-01T00:00:00Z"}},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, server.URL+"/analytics/conversations?"+tt.query.Encode())
			defer resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestConversationsPayload(t *testing.T) {
	server := newServer(t)

	resp := get(t, server.URL+"/analytics/conversations?start_date=2026-08-01T00:00:00Z&end_date=2026-08-31T00:00:00Z")
	defer resp.Body.Close()

	var metrics struct {
		TotalConversations int     `json:"total_conversations"`
		SatisfactionRate   float64 `json:"satisfaction_rate"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&metrics); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if metrics.TotalConversations != 1250 {
		t.Errorf("total_conversations = %d, want 1250", metrics.TotalConversations)
	}
	if metrics.SatisfactionRate != 0.92 {
		t.Errorf("satisfaction_rate = %v, want 0.92", metrics.SatisfactionRate)
	}
}

func TestProductMetrics(t *testing.T) {
	server := newServer(t)

	resp := get(t, server.URL+"/analytics/products/prod_1?days=30")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var metrics struct {
		ProductID    string   `json:"product_id"`
		TopQuestions []string `json:"top_questions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&metrics); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if metrics.ProductID != "prod_1" {
		t.Errorf("product_id = %q, want prod_1", metrics.ProductID)
	}
	if len(metrics.TopQuestions) != 5 {
		t.Errorf("top_questions has %d entries, want 5", len(metrics.TopQuestions))
	}
}

func TestProductMetricsRejectsBadDays(t *testing.T) {
	server := newServer(t)

	for _, days := range []string{"abc", "0", "-5"} {
		resp := get(t, server.URL+"/analytics/products/prod_1?days="+days)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("days=%s status = %d, want 400", days, resp.StatusCode)
		}
	}
}

func TestPerformanceRequiresDates(t *testing.T) {
	server := newServer(t)

	resp := get(t, server.URL+"/analytics/agent/performance")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDashboard(t *testing.T) {
	server := newServer(t)

	resp := get(t, server.URL+"/analytics/dashboard")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var summary struct {
		Overview struct {
			ActiveProducts int `json:"active_products"`
		} `json:"overview"`
		Trends struct {
			ConversationsTrend []int `json:"conversations_trend"`
		} `json:"trends"`
		Alerts []struct {
			Type string `json:"type"`
		} `json:"alerts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if summary.Overview.ActiveProducts != 12 {
		t.Errorf("active_products = %d, want 12", summary.Overview.ActiveProducts)
	}
	if len(summary.Trends.ConversationsTrend) != 5 {
		t.Errorf("conversations_trend has %d points, want 5", len(summary.Trends.ConversationsTrend))
	}
	if len(summary.Alerts) != 1 || summary.Alerts[0].Type != "warning" {
		t.Errorf("alerts = %+v, want one warning", summary.Alerts)
	}
}
