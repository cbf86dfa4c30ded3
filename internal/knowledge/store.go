// Package knowledge manages per-agent document collections: chunking
// uploaded text, indexing chunks in the vector backend, and retrieving
// relevant context for conversation prompts.
package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/compagent/platform/internal/vector"
)

// DefaultTopK is the number of chunks retrieved per search.
const DefaultTopK = 3

// Store owns the mapping from agents to vector collections. It is safe for
// concurrent use; all state lives in the backend.
type Store struct {
	backend vector.Backend
	logger  *slog.Logger
}

// NewStore creates a Store over the given backend.
func NewStore(backend vector.Backend, logger *slog.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logger.With("system", "knowledge"),
	}
}

// CollectionName derives the backend collection name for an agent.
func CollectionName(agentID string) string {
	return "agent_" + agentID
}

// CreateCollection creates the agent's collection. Creating an existing
// collection is a no-op.
func (s *Store) CreateCollection(ctx context.Context, agentID string) error {
	return s.backend.EnsureCollection(ctx, CollectionName(agentID))
}

// DeleteCollection removes the agent's collection and its chunks.
func (s *Store) DeleteCollection(ctx context.Context, agentID string) error {
	return s.backend.DeleteCollection(ctx, CollectionName(agentID))
}

// AddDocument chunks content with the default parameters and indexes every
// chunk in the agent's collection. Each chunk carries the caller metadata
// plus doc_id, chunk_index, and total_chunks. Indexing failures propagate:
// an upload must not report success for a document that was not stored.
func (s *Store) AddDocument(ctx context.Context, agentID string, content string, metadata map[string]any) (string, int, error) {
	parts, err := Chunk(content, DefaultChunkSize, DefaultChunkOverlap)
	if err != nil {
		return "", 0, err
	}

	docID := uuid.NewString()

	chunks := make([]vector.Chunk, len(parts))
	for i, part := range parts {
		meta := make(map[string]any, len(metadata)+3)
		for k, v := range metadata {
			meta[k] = v
		}
		meta["doc_id"] = docID
		meta["chunk_index"] = i
		meta["total_chunks"] = len(parts)

		chunks[i] = vector.Chunk{
			ID:       fmt.Sprintf("%s_chunk_%d", docID, i),
			DocID:    docID,
			Index:    i,
			Total:    len(parts),
			Content:  part,
			Metadata: meta,
		}
	}

	if err := s.backend.AddChunks(ctx, CollectionName(agentID), chunks); err != nil {
		return "", 0, err
	}

	s.logger.Info("document indexed", "agent", agentID, "doc_id", docID, "chunks", len(parts))
	return docID, len(parts), nil
}

// Search retrieves up to k relevant chunks for query and concatenates their
// texts with a blank line, in backend order. Any failure degrades to an
// empty string: callers treat "" as "no relevant context", never as an
// error, so a retrieval outage cannot fail a chat turn.
func (s *Store) Search(ctx context.Context, agentID string, query string, k int) string {
	if k <= 0 {
		k = DefaultTopK
	}

	matches, err := s.backend.Query(ctx, CollectionName(agentID), query, k)
	if err != nil {
		s.logger.Warn("search degraded to empty context", "agent", agentID, "error", err)
		return ""
	}
	if len(matches) == 0 {
		return ""
	}

	texts := make([]string, len(matches))
	for i, m := range matches {
		texts[i] = m.Content
	}

	return strings.Join(texts, "\n\n")
}
