package rag

import (
	"context"

	"docchat/internal/domain/docModel"
	"docchat/internal/session"
)

// retrieve returns the top-k chunks most similar to the question. A session
// whose index was never populated yields an empty result, which is how the
// caller tells "no documents" apart from "no relevant documents".
func retrieve(ctx context.Context, sess *session.Session, question string, k int) ([]docModel.Chunk, error) {
	if sess.Index == nil || sess.Index.Len() == 0 {
		return nil, nil
	}
	return sess.Index.Search(ctx, question, k)
}
