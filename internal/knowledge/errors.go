package knowledge

import "errors"

var (
	// ErrChunkStride indicates chunking parameters where the window stride
	// is not positive. The naive sliding-window loop would never advance,
	// so the configuration is rejected instead.
	ErrChunkStride = errors.New("knowledge: chunk overlap must be smaller than chunk size")

	// ErrChunkSize indicates a non-positive chunk size.
	ErrChunkSize = errors.New("knowledge: chunk size must be positive")
)
