package vectorindex

import (
	"context"

	"docchat/internal/domain/docModel"
)

// Index is one user's growable set of (chunk, vector) pairs. Insertion is
// additive-only; uploads accumulate across calls for the process lifetime.
type Index interface {
	// Insert embeds every chunk and appends the pairs. Atomic per call: an
	// embedding failure aborts the whole batch with nothing inserted.
	Insert(ctx context.Context, chunks []docModel.Chunk) error

	// Search returns up to k chunks ordered by descending similarity to the
	// query. An empty index yields an empty result, not an error; fewer than
	// k entries yield all of them.
	Search(ctx context.Context, query string, k int) ([]docModel.Chunk, error)

	Len() int
}

// Factory builds a fresh empty index for a user session. The session store
// calls it once per user, lazily.
type Factory func(userID string) Index
