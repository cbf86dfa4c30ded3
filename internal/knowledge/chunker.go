package knowledge

// Default chunking parameters for document indexing.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// Chunk splits text into overlapping fixed-size windows. Windows start at
// offsets 0, size-overlap, 2*(size-overlap), ... and each spans size runes;
// the final window may be shorter. Offsets count runes so multi-byte
// characters are never split.
//
// Returns ErrChunkSize if size <= 0 and ErrChunkStride if overlap >= size,
// since either would stall the window advance.
func Chunk(text string, size, overlap int) ([]string, error) {
	if size <= 0 {
		return nil, ErrChunkSize
	}
	if overlap < 0 || overlap >= size {
		return nil, ErrChunkStride
	}

	runes := []rune(text)
	stride := size - overlap

	var chunks []string
	for start := 0; start < len(runes); start += stride {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks, nil
}
