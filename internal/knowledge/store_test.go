package knowledge_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/compagent/platform/internal/knowledge"
	"github.com/compagent/platform/internal/vector"
)

// fakeBackend is an in-memory vector.Backend. Query returns chunks in
// insertion order; failure modes are switchable per test.
type fakeBackend struct {
	collections map[string][]vector.Chunk
	failQuery   bool
	failAdd     bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{collections: make(map[string][]vector.Chunk)}
}

func (f *fakeBackend) EnsureCollection(_ context.Context, name string) error {
	if _, ok := f.collections[name]; !ok {
		f.collections[name] = nil
	}
	return nil
}

func (f *fakeBackend) DeleteCollection(_ context.Context, name string) error {
	delete(f.collections, name)
	return nil
}

func (f *fakeBackend) CollectionExists(_ context.Context, name string) (bool, error) {
	_, ok := f.collections[name]
	return ok, nil
}

func (f *fakeBackend) AddChunks(_ context.Context, collection string, chunks []vector.Chunk) error {
	if f.failAdd {
		return errors.New("backend unavailable")
	}
	if _, ok := f.collections[collection]; !ok {
		return fmt.Errorf("%w: %s", vector.ErrCollectionNotFound, collection)
	}
	f.collections[collection] = append(f.collections[collection], chunks...)
	return nil
}

func (f *fakeBackend) Query(_ context.Context, collection string, _ string, k int) ([]vector.Match, error) {
	if f.failQuery {
		return nil, errors.New("backend unavailable")
	}
	chunks, ok := f.collections[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %s", vector.ErrCollectionNotFound, collection)
	}

	var matches []vector.Match
	for _, c := range chunks {
		if len(matches) == k {
			break
		}
		matches = append(matches, vector.Match{ID: c.ID, Content: c.Content, Metadata: c.Metadata})
	}
	return matches, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestCollectionName(t *testing.T) {
	if got := knowledge.CollectionName("abc-123"); got != "agent_abc-123" {
		t.Errorf("CollectionName() = %q, want %q", got, "agent_abc-123")
	}
}

func TestStoreAddDocument(t *testing.T) {
	backend := newFakeBackend()
	store := knowledge.NewStore(backend, discardLogger())
	ctx := context.Background()

	if err := store.CreateCollection(ctx, "a1"); err != nil {
		t.Fatalf("CreateCollection() error = %v", err)
	}

	content := strings.Repeat("x", 2500)
	docID, count, err := store.AddDocument(ctx, "a1", content, map[string]any{"filename": "guide.md"})
	if err != nil {
		t.Fatalf("AddDocument() error = %v", err)
	}
	if docID == "" {
		t.Fatal("AddDocument() returned empty document id")
	}

	// 2500 chars at size 1000 / overlap 200 yields windows at 0, 800,
	// 1600, 2400.
	if count != 4 {
		t.Fatalf("AddDocument() count = %d, want 4", count)
	}

	chunks := backend.collections["agent_a1"]
	if len(chunks) != 4 {
		t.Fatalf("stored %d chunks, want 4", len(chunks))
	}

	for i, c := range chunks {
		wantID := fmt.Sprintf("%s_chunk_%d", docID, i)
		if c.ID != wantID {
			t.Errorf("chunk %d id = %q, want %q", i, c.ID, wantID)
		}
		if c.Metadata["doc_id"] != docID {
			t.Errorf("chunk %d doc_id = %v, want %q", i, c.Metadata["doc_id"], docID)
		}
		if c.Metadata["chunk_index"] != i {
			t.Errorf("chunk %d chunk_index = %v, want %d", i, c.Metadata["chunk_index"], i)
		}
		if c.Metadata["total_chunks"] != 4 {
			t.Errorf("chunk %d total_chunks = %v, want 4", i, c.Metadata["total_chunks"])
		}
		if c.Metadata["filename"] != "guide.md" {
			t.Errorf("chunk %d filename = %v, want guide.md", i, c.Metadata["filename"])
		}
	}
}

func TestStoreAddDocumentMissingCollection(t *testing.T) {
	store := knowledge.NewStore(newFakeBackend(), discardLogger())

	_, _, err := store.AddDocument(context.Background(), "missing", "content", nil)
	if !errors.Is(err, vector.ErrCollectionNotFound) {
		t.Errorf("AddDocument() error = %v, want ErrCollectionNotFound", err)
	}
}

func TestStoreSearch(t *testing.T) {
	backend := newFakeBackend()
	store := knowledge.NewStore(backend, discardLogger())
	ctx := context.Background()

	if err := store.CreateCollection(ctx, "a1"); err != nil {
		t.Fatalf("CreateCollection() error = %v", err)
	}
	if _, _, err := store.AddDocument(ctx, "a1", "first passage", nil); err != nil {
		t.Fatalf("AddDocument() error = %v", err)
	}
	if _, _, err := store.AddDocument(ctx, "a1", "second passage", nil); err != nil {
		t.Fatalf("AddDocument() error = %v", err)
	}

	got := store.Search(ctx, "a1", "passage", 3)
	want := "first passage\n\nsecond passage"
	if got != want {
		t.Errorf("Search() = %q, want %q", got, want)
	}
}

func TestStoreSearchDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeBackend, *knowledge.Store)
	}{
		{
			"missing collection",
			func(*fakeBackend, *knowledge.Store) {},
		},
		{
			"backend failure",
			func(b *fakeBackend, s *knowledge.Store) {
				s.CreateCollection(context.Background(), "a1")
				b.failQuery = true
			},
		},
		{
			"empty collection",
			func(b *fakeBackend, s *knowledge.Store) {
				s.CreateCollection(context.Background(), "a1")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend()
			store := knowledge.NewStore(backend, discardLogger())
			tt.setup(backend, store)

			if got := store.Search(context.Background(), "a1", "anything", 3); got != "" {
				t.Errorf("Search() = %q, want empty string", got)
			}
		})
	}
}

func TestStoreDeleteCollection(t *testing.T) {
	backend := newFakeBackend()
	store := knowledge.NewStore(backend, discardLogger())
	ctx := context.Background()

	store.CreateCollection(ctx, "a1")
	if err := store.DeleteCollection(ctx, "a1"); err != nil {
		t.Fatalf("DeleteCollection() error = %v", err)
	}

	if _, ok := backend.collections["agent_a1"]; ok {
		t.Error("collection still present after delete")
	}
}
