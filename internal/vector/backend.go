// Package vector provides the semantic search backend. Collections group
// embedded text chunks per agent; similarity queries run against a single
// collection at a time.
package vector

import "context"

// Chunk is one embeddable unit of a source document.
type Chunk struct {
	ID       string
	DocID    string
	Index    int
	Total    int
	Content  string
	Metadata map[string]any
}

// Match is a query hit ordered by ascending cosine distance.
type Match struct {
	ID       string
	Content  string
	Metadata map[string]any
	Distance float64
}

// Backend is the contract the knowledge layer depends on. Implementations
// must be safe for concurrent use.
type Backend interface {
	// EnsureCollection creates the named collection if it does not exist.
	EnsureCollection(ctx context.Context, name string) error

	// DeleteCollection removes the collection and all of its chunks.
	// Deleting an absent collection is not an error.
	DeleteCollection(ctx context.Context, name string) error

	// CollectionExists reports whether the named collection is present.
	CollectionExists(ctx context.Context, name string) (bool, error)

	// AddChunks embeds and stores the chunks in the named collection.
	AddChunks(ctx context.Context, collection string, chunks []Chunk) error

	// Query embeds the text and returns up to k nearest chunks from the
	// named collection.
	Query(ctx context.Context, collection string, text string, k int) ([]Match, error)
}
