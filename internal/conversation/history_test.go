package conversation_test

import (
	"fmt"
	"testing"

	"github.com/compagent/platform/internal/conversation"
)

func TestHistoryAppendBounded(t *testing.T) {
	history := conversation.NewHistory()

	for i := 1; i <= 12; i++ {
		history.Append("s1", fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
	}

	recent := history.Recent("s1", 100)
	if len(recent) != 10 {
		t.Fatalf("Recent() returned %d exchanges, want 10", len(recent))
	}
	if recent[0].Question != "q3" {
		t.Errorf("oldest retained question = %q, want q3", recent[0].Question)
	}
	if recent[9].Question != "q12" {
		t.Errorf("newest retained question = %q, want q12", recent[9].Question)
	}
}

func TestHistoryRecentWindow(t *testing.T) {
	history := conversation.NewHistory()
	for i := 1; i <= 5; i++ {
		history.Append("s1", fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
	}

	recent := history.Recent("s1", 3)
	if len(recent) != 3 {
		t.Fatalf("Recent() returned %d exchanges, want 3", len(recent))
	}
	for i, want := range []string{"q3", "q4", "q5"} {
		if recent[i].Question != want {
			t.Errorf("recent[%d].Question = %q, want %q", i, recent[i].Question, want)
		}
	}
}

func TestHistorySessionsIsolated(t *testing.T) {
	history := conversation.NewHistory()
	history.Append("s1", "q1", "a1")

	if got := history.Recent("s2", 3); len(got) != 0 {
		t.Errorf("Recent() for untouched session returned %d exchanges, want 0", len(got))
	}
}
