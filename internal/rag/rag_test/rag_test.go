package rag_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"docchat/internal/config"
	"docchat/internal/domain/chatModel"
	"docchat/internal/domain/docModel"
	"docchat/internal/rag"
	"docchat/internal/rag/ingest"
	"docchat/internal/rag/llm"
	"docchat/internal/session"
)

func newTestService(idx *MockIndex, oracle *MockOracle) (rag.Service, *session.Store) {
	store := session.InitStore(singleIndexFactory(idx), config.PersonaPrompt)
	return rag.NewService(store, oracle), store
}

func TestChat_Scenarios(t *testing.T) {
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	t.Run("Success_Reply_And_History_Growth", func(t *testing.T) {
		oracle := &MockOracle{
			OnComplete: func(ctx context.Context, h []chatModel.Turn, temp float64, max int64) (string, error) {
				return "Ah, a delightful question!", nil
			},
		}
		s, store := newTestService(&MockIndex{}, oracle)

		reply, err := s.Chat(ctx, "u_1", "hello")
		if err != nil {
			t.Fatalf("Chat returned error: %v", err)
		}
		if reply != "Ah, a delightful question!" {
			t.Errorf("reply got %q", reply)
		}

		sess := store.GetOrCreate("u_1")
		if len(sess.History) != 3 {
			t.Fatalf("history length got %d, want 3 (system, user, assistant)", len(sess.History))
		}
		if sess.History[0].Role != chatModel.RoleSystem || sess.History[0].Content != config.PersonaPrompt {
			t.Errorf("history not seeded with persona: %+v", sess.History[0])
		}
		if sess.History[1].Role != chatModel.RoleUser || sess.History[1].Content != "hello" {
			t.Errorf("user turn wrong: %+v", sess.History[1])
		}
		if sess.History[2].Role != chatModel.RoleAssistant {
			t.Errorf("assistant turn wrong: %+v", sess.History[2])
		}
	})

	t.Run("Oracle_Sees_Full_History_On_Second_Turn", func(t *testing.T) {
		oracle := &MockOracle{}
		s, _ := newTestService(&MockIndex{}, oracle)

		if _, err := s.Chat(ctx, "u_2", "first"); err != nil {
			t.Fatalf("first Chat: %v", err)
		}
		if _, err := s.Chat(ctx, "u_2", "second"); err != nil {
			t.Fatalf("second Chat: %v", err)
		}

		// system + first user + first assistant + second user
		if len(oracle.LastHistory) != 4 {
			t.Fatalf("oracle saw %d turns, want 4", len(oracle.LastHistory))
		}
		if oracle.LastHistory[3].Content != "second" {
			t.Errorf("last turn got %q, want the new message", oracle.LastHistory[3].Content)
		}
	})

	t.Run("Failure_Rolls_Back_User_Turn", func(t *testing.T) {
		oracle := &MockOracle{
			OnComplete: func(ctx context.Context, h []chatModel.Turn, temp float64, max int64) (string, error) {
				return "", &llm.OracleError{Err: errors.New("provider down")}
			},
		}
		s, store := newTestService(&MockIndex{}, oracle)

		_, err := s.Chat(ctx, "u_3", "doomed message")
		if err == nil {
			t.Fatal("expected error from failing oracle")
		}
		var oracleErr *llm.OracleError
		if !errors.As(err, &oracleErr) {
			t.Errorf("error type got %T, want *llm.OracleError", err)
		}

		sess := store.GetOrCreate("u_3")
		if len(sess.History) != 1 {
			t.Fatalf("history length got %d, want 1 (persona only, user turn rolled back)", len(sess.History))
		}

		// a retry after the failure starts from a clean log
		oracle.OnComplete = nil
		if _, err := s.Chat(ctx, "u_3", "doomed message"); err != nil {
			t.Fatalf("retry failed: %v", err)
		}
		if len(sess.History) != 3 {
			t.Errorf("history after retry got %d, want 3", len(sess.History))
		}
	})
}

func TestAsk_Scenarios(t *testing.T) {
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")

	t.Run("No_Documents_Short_Circuits", func(t *testing.T) {
		oracle := &MockOracle{}
		s, store := newTestService(&MockIndex{}, oracle)

		_, err := s.Ask(ctx, "u_10", "what does the paper say?")
		if !errors.Is(err, rag.ErrNoDocuments) {
			t.Fatalf("error got %v, want ErrNoDocuments", err)
		}
		if oracle.Calls != 0 {
			t.Errorf("oracle was called %d times, want 0", oracle.Calls)
		}
		sess := store.GetOrCreate("u_10")
		if len(sess.History) != 1 {
			t.Errorf("history grew on rejected ask: %d turns", len(sess.History))
		}
	})

	t.Run("Grounded_Prompt_Contains_Persona_Context_And_Question", func(t *testing.T) {
		idx := &MockIndex{
			Inserted: []docModel.Chunk{{Text: "seed"}},
			OnSearch: func(ctx context.Context, query string, k int) ([]docModel.Chunk, error) {
				if k != config.RetrievalTopK {
					t.Errorf("search k got %d, want %d", k, config.RetrievalTopK)
				}
				return []docModel.Chunk{
					{Text: "Euler solved the Basel problem in 1735."},
					{Text: "The sum of reciprocal squares equals pi squared over six."},
				}, nil
			},
		}
		oracle := &MockOracle{
			OnComplete: func(ctx context.Context, h []chatModel.Turn, temp float64, max int64) (string, error) {
				return "Indeed, that was my own doing.", nil
			},
		}
		s, _ := newTestService(idx, oracle)

		answer, err := s.Ask(ctx, "u_11", "Who solved the Basel problem?")
		if err != nil {
			t.Fatalf("Ask returned error: %v", err)
		}
		if answer != "Indeed, that was my own doing." {
			t.Errorf("answer got %q", answer)
		}

		grounded := oracle.LastHistory[len(oracle.LastHistory)-1].Content
		for _, want := range []string{
			config.PersonaPrompt,
			"Euler solved the Basel problem in 1735.",
			"The sum of reciprocal squares equals pi squared over six.",
			"Who solved the Basel problem?",
		} {
			if !strings.Contains(grounded, want) {
				t.Errorf("grounded prompt missing %q", want)
			}
		}
	})

	t.Run("Search_Failure_Propagates_Without_Oracle_Call", func(t *testing.T) {
		idx := &MockIndex{
			Inserted: []docModel.Chunk{{Text: "seed"}},
			OnSearch: func(ctx context.Context, query string, k int) ([]docModel.Chunk, error) {
				return nil, errors.New("embedding endpoint down")
			},
		}
		oracle := &MockOracle{}
		s, store := newTestService(idx, oracle)

		_, err := s.Ask(ctx, "u_12", "anything")
		if err == nil {
			t.Fatal("expected search error")
		}
		if oracle.Calls != 0 {
			t.Errorf("oracle was called %d times, want 0", oracle.Calls)
		}
		sess := store.GetOrCreate("u_12")
		if len(sess.History) != 1 {
			t.Errorf("history grew on failed ask: %d turns", len(sess.History))
		}
	})
}

func TestIngestDocument_Scenarios(t *testing.T) {
	ctx := context.WithValue(context.Background(), config.TRACE_ID_KEY, "ingest-trace")

	t.Run("Unsupported_Format_Leaves_Index_Untouched", func(t *testing.T) {
		idx := &MockIndex{}
		s, _ := newTestService(idx, &MockOracle{})

		count, err := s.IngestDocument(ctx, "u_20", "notes.txt", "text/plain", []byte("plain text"))
		if !errors.Is(err, ingest.ErrUnsupportedFormat) {
			t.Fatalf("error got %v, want ErrUnsupportedFormat", err)
		}
		if count != 0 {
			t.Errorf("count got %d, want 0", count)
		}
		if idx.Len() != 0 {
			t.Errorf("index grew on rejected upload: %d entries", idx.Len())
		}
	})

	t.Run("Corrupt_PDF_Fails_Without_Indexing", func(t *testing.T) {
		idx := &MockIndex{}
		s, _ := newTestService(idx, &MockOracle{})

		_, err := s.IngestDocument(ctx, "u_21", "broken.pdf", docModel.MediaTypePDF, []byte("not a pdf"))
		if err == nil {
			t.Fatal("expected parse error for corrupt payload")
		}
		if errors.Is(err, ingest.ErrUnsupportedFormat) {
			t.Error("corrupt payload must not be reported as unsupported format")
		}
		if idx.Len() != 0 {
			t.Errorf("index grew on failed upload: %d entries", idx.Len())
		}
	})
}
