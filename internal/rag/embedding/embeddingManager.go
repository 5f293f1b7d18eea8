package embedding

import "context"

// Embedder maps text to a fixed-length vector. Dimensionality is constant for
// a process lifetime; callers treat the function as deterministic and opaque.
type Embedder interface {
	GetEmbedding(ctx context.Context, query string) ([]float32, error)
	BatchEmbedding(ctx context.Context, chunks []string) ([][]float32, error)
}

// Error marks a failed embedding call. A vector index insert treats it as
// fatal for the whole batch - no partial insertion.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return "embedding: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
