package vectorindex

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"context"

	"docchat/internal/domain/docModel"
	"docchat/internal/rag/embedding"
)

type entry struct {
	chunk  docModel.Chunk
	vector []float32
}

// memoryIndex is a brute-force cosine-similarity index. Each session owns
// exactly one and its events are serialized, so the lock only guards against
// stray cross-goroutine reads.
type memoryIndex struct {
	embedder embedding.Embedder
	mu       sync.RWMutex
	entries  []entry
}

// NewMemoryFactory returns a Factory producing per-user in-memory indexes
// sharing one embedder.
func NewMemoryFactory(embedder embedding.Embedder) Factory {
	return func(userID string) Index {
		return &memoryIndex{embedder: embedder}
	}
}

func (m *memoryIndex) Insert(ctx context.Context, chunks []docModel.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	// Embed everything before touching the entries slice so a failure leaves
	// the index untouched.
	vectors, err := m.embedder.BatchEmbedding(ctx, texts)
	if err != nil {
		return err
	}
	if len(vectors) != len(chunks) {
		return &embedding.Error{Err: fmt.Errorf("got %d vectors for %d chunks", len(vectors), len(chunks))}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range chunks {
		m.entries = append(m.entries, entry{chunk: c, vector: vectors[i]})
	}
	return nil
}

func (m *memoryIndex) Search(ctx context.Context, query string, k int) ([]docModel.Chunk, error) {
	if m.Len() == 0 {
		return nil, nil
	}

	queryVector, err := m.embedder.GetEmbedding(ctx, query)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(m.entries))
	for i := range m.entries {
		scores[i] = scored{idx: i, score: cosine(m.entries[i].vector, queryVector)}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	if k > len(scores) {
		k = len(scores)
	}
	results := make([]docModel.Chunk, 0, k)
	for i := 0; i < k; i++ {
		results = append(results, m.entries[scores[i].idx].chunk)
	}
	return results, nil
}

func (m *memoryIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
