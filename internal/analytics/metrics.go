// Package analytics serves reporting endpoints. The figures are static
// placeholders until conversation tracking lands in a durable store.
package analytics

import "time"

// ConversationMetrics summarizes conversation volume and quality over a
// date range.
type ConversationMetrics struct {
	TotalConversations    int     `json:"total_conversations"`
	AvgConversationLength float64 `json:"avg_conversation_length"`
	AvgResponseTime       float64 `json:"avg_response_time"`
	SatisfactionRate      float64 `json:"satisfaction_rate"`
}

// ProductMetrics summarizes inquiry activity for one product.
type ProductMetrics struct {
	ProductID             string   `json:"product_id"`
	TotalInquiries        int      `json:"total_inquiries"`
	ConfigurationRequests int      `json:"configuration_requests"`
	ConversionRate        float64  `json:"conversion_rate"`
	TopQuestions          []string `json:"top_questions"`
}

// AgentPerformance summarizes resolution quality across all agents.
type AgentPerformance struct {
	TotalInteractions     int     `json:"total_interactions"`
	SuccessfulResolutions int     `json:"successful_resolutions"`
	Escalations           int     `json:"escalations"`
	AvgConfidenceScore    float64 `json:"avg_confidence_score"`
	ResponseAccuracy      float64 `json:"response_accuracy"`
}

// Alert is a dashboard notice.
type Alert struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// DashboardSummary is the aggregate dashboard payload.
type DashboardSummary struct {
	Overview Overview `json:"overview"`
	Trends   Trends   `json:"trends"`
	Alerts   []Alert  `json:"alerts"`
}

type Overview struct {
	ActiveProducts          int     `json:"active_products"`
	TotalConversationsToday int     `json:"total_conversations_today"`
	AvgSatisfaction         float64 `json:"avg_satisfaction"`
	ActiveSessions          int     `json:"active_sessions"`
}

type Trends struct {
	ConversationsTrend []int     `json:"conversations_trend"`
	ConversionTrend    []float64 `json:"conversion_trend"`
}

func conversationMetrics() ConversationMetrics {
	return ConversationMetrics{
		TotalConversations:    1250,
		AvgConversationLength: 5.8,
		AvgResponseTime:       1.2,
		SatisfactionRate:      0.92,
	}
}

func productMetrics(productID string) ProductMetrics {
	return ProductMetrics{
		ProductID:             productID,
		TotalInquiries:        456,
		ConfigurationRequests: 89,
		ConversionRate:        0.35,
		TopQuestions: []string{
			"Pricing information",
			"Integration options",
			"Setup requirements",
			"API documentation",
			"Support availability",
		},
	}
}

func agentPerformance() AgentPerformance {
	return AgentPerformance{
		TotalInteractions:     3450,
		SuccessfulResolutions: 3120,
		Escalations:           89,
		AvgConfidenceScore:    0.87,
		ResponseAccuracy:      0.91,
	}
}

func dashboardSummary(now time.Time) DashboardSummary {
	return DashboardSummary{
		Overview: Overview{
			ActiveProducts:          12,
			TotalConversationsToday: 89,
			AvgSatisfaction:         0.92,
			ActiveSessions:          23,
		},
		Trends: Trends{
			ConversationsTrend: []int{45, 52, 48, 67, 89},
			ConversionTrend:    []float64{0.32, 0.35, 0.38, 0.36, 0.35},
		},
		Alerts: []Alert{
			{
				Type:      "warning",
				Message:   "Response time increased by 15%",
				Timestamp: now,
			},
		},
	}
}
