package vector

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/pgvector/pgvector-go"
	"github.com/sashabaranov/go-openai"

	"github.com/compagent/platform/internal/config"
	"github.com/compagent/platform/internal/llm"
)

// Postgres implements Backend on PostgreSQL with the pgvector extension.
// Embeddings are generated through the provider at write and query time, so
// callers only ever handle raw text.
type Postgres struct {
	db         *sql.DB
	embedder   llm.Embedder
	model      string
	dimensions int
	logger     *slog.Logger
}

// NewPostgres opens a connection pool against the configured database and
// verifies connectivity. The caller owns the returned backend and should
// Close it on shutdown.
func NewPostgres(ctx context.Context, cfg *config.VectorConfig, embedder llm.Embedder, model string, logger *slog.Logger) (*Postgres, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open vector database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnTimeoutDuration())
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping vector database: %w", err)
	}

	return &Postgres{
		db:         db,
		embedder:   embedder,
		model:      model,
		dimensions: cfg.Dimensions,
		logger:     logger.With("system", "vector"),
	}, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

// Ping verifies database connectivity. The readiness probe uses it.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Postgres) EnsureCollection(ctx context.Context, name string) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO collections (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
		name,
	)
	if err != nil {
		return fmt.Errorf("ensure collection %q: %w", name, err)
	}

	p.logger.Debug("collection ensured", "collection", name)
	return nil
}

func (p *Postgres) DeleteCollection(ctx context.Context, name string) error {
	// Chunks cascade via the foreign key.
	_, err := p.db.ExecContext(ctx, `DELETE FROM collections WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete collection %q: %w", name, err)
	}

	p.logger.Debug("collection deleted", "collection", name)
	return nil
}

func (p *Postgres) CollectionExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := p.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM collections WHERE name = $1)`,
		name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check collection %q: %w", name, err)
	}

	return exists, nil
}

func (p *Postgres) AddChunks(ctx context.Context, collection string, chunks []Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	exists, err := p.CollectionExists(ctx, collection)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}

	inputs := make([]string, len(chunks))
	for i, c := range chunks {
		inputs[i] = c.Content
	}

	vectors, err := p.embed(ctx, inputs)
	if err != nil {
		return err
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin chunk insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, collection, doc_id, chunk_index, total_chunks, content, metadata, embedding)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			content = EXCLUDED.content,
			metadata = EXCLUDED.metadata,
			embedding = EXCLUDED.embedding`,
	)
	if err != nil {
		return fmt.Errorf("prepare chunk insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range chunks {
		meta, err := json.Marshal(c.Metadata)
		if err != nil {
			return fmt.Errorf("marshal chunk metadata %q: %w", c.ID, err)
		}

		if _, err := stmt.ExecContext(ctx, c.ID, collection, c.DocID, c.Index, c.Total, c.Content, meta, vectors[i]); err != nil {
			return fmt.Errorf("insert chunk %q: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit chunk insert: %w", err)
	}

	p.logger.Debug("chunks stored", "collection", collection, "count", len(chunks))
	return nil
}

func (p *Postgres) Query(ctx context.Context, collection string, text string, k int) ([]Match, error) {
	exists, err := p.CollectionExists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}

	vectors, err := p.embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	rows, err := p.db.QueryContext(ctx, `
		SELECT id, content, metadata, embedding <=> $1 AS distance
		FROM chunks
		WHERE collection = $2
		ORDER BY embedding <=> $1
		LIMIT $3`,
		vectors[0], collection, k,
	)
	if err != nil {
		return nil, fmt.Errorf("query collection %q: %w", collection, err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var (
			m    Match
			meta []byte
		)
		if err := rows.Scan(&m.ID, &m.Content, &meta, &m.Distance); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		if len(meta) > 0 {
			if err := json.Unmarshal(meta, &m.Metadata); err != nil {
				p.logger.Warn("unreadable chunk metadata", "chunk", m.ID, "error", err)
			}
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}

	return matches, nil
}

// embed generates one vector per input through the provider, preserving
// input order.
func (p *Postgres) embed(ctx context.Context, inputs []string) ([]pgvector.Vector, error) {
	resp, err := p.embedder.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: inputs,
		Model: openai.EmbeddingModel(p.model),
	})
	if err != nil {
		return nil, fmt.Errorf("create embeddings: %w", err)
	}

	if len(resp.Data) != len(inputs) {
		return nil, fmt.Errorf("%w: got %d vectors for %d inputs",
			ErrEmptyEmbedding, len(resp.Data), len(inputs))
	}

	vectors := make([]pgvector.Vector, len(resp.Data))
	for i, d := range resp.Data {
		if len(d.Embedding) == 0 {
			return nil, fmt.Errorf("%w: input %d", ErrEmptyEmbedding, i)
		}
		if p.dimensions > 0 && len(d.Embedding) != p.dimensions {
			return nil, fmt.Errorf("%w: model %q produced %d dimensions, configured for %d",
				ErrDimensionMismatch, p.model, len(d.Embedding), p.dimensions)
		}
		vectors[i] = pgvector.NewVector(d.Embedding)
	}

	return vectors, nil
}
