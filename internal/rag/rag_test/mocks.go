package rag_test

import (
	"context"

	"docchat/internal/domain/chatModel"
	"docchat/internal/domain/docModel"
	"docchat/internal/rag/vectorindex"
)

// --- Mocks wired through the opaque interfaces ---

type MockOracle struct {
	OnComplete func(ctx context.Context, history []chatModel.Turn, temperature float64, maxTokens int64) (string, error)
	Calls      int
	// LastHistory is a copy of the history the oracle last saw.
	LastHistory []chatModel.Turn
}

func (m *MockOracle) Complete(ctx context.Context, history []chatModel.Turn, temperature float64, maxTokens int64) (string, error) {
	m.Calls++
	m.LastHistory = append([]chatModel.Turn(nil), history...)
	if m.OnComplete == nil {
		return "mock reply", nil
	}
	return m.OnComplete(ctx, history, temperature, maxTokens)
}

type MockIndex struct {
	OnInsert func(ctx context.Context, chunks []docModel.Chunk) error
	OnSearch func(ctx context.Context, query string, k int) ([]docModel.Chunk, error)
	Inserted []docModel.Chunk
}

func (m *MockIndex) Insert(ctx context.Context, chunks []docModel.Chunk) error {
	if m.OnInsert != nil {
		if err := m.OnInsert(ctx, chunks); err != nil {
			return err
		}
	}
	m.Inserted = append(m.Inserted, chunks...)
	return nil
}

func (m *MockIndex) Search(ctx context.Context, query string, k int) ([]docModel.Chunk, error) {
	if m.OnSearch == nil {
		return nil, nil
	}
	return m.OnSearch(ctx, query, k)
}

func (m *MockIndex) Len() int {
	return len(m.Inserted)
}

// singleIndexFactory hands every session the same mock so tests can inspect it.
func singleIndexFactory(idx *MockIndex) vectorindex.Factory {
	return func(userID string) vectorindex.Index {
		return idx
	}
}
