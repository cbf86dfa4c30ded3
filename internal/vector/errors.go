package vector

import "errors"

var (
	// ErrCollectionNotFound indicates an operation referenced a collection
	// that has not been created.
	ErrCollectionNotFound = errors.New("vector: collection not found")

	// ErrEmptyEmbedding indicates the provider returned no vector for an
	// input, which would corrupt the chunk/embedding pairing.
	ErrEmptyEmbedding = errors.New("vector: provider returned empty embedding")

	// ErrDimensionMismatch indicates the provider's vector width differs
	// from the configured embedding dimensions, so inserts would fail
	// against the schema's column width.
	ErrDimensionMismatch = errors.New("vector: embedding dimension mismatch")
)
