package rag

import (
	"context"
	"time"

	"docchat/internal/config"
	"docchat/internal/domain/docModel"
	"docchat/internal/metrics"
	"docchat/internal/rag/llm"
	"docchat/internal/rag/prompt"
	"docchat/internal/session"
	"docchat/pkg/logger_i"

	"github.com/google/uuid"
)

/*
ARCHITECTURE NOTE: OPAQUE INTERFACE PATTERN
---------------------------------------------------------

Service (interface) is the public contract the transport layer calls.
service (private struct) holds the state - the session store and the oracle
client. The constructor links the two, which lets the handler tests swap a
mock oracle in without touching handler code.
*/

// Service is everything the transport layer needs: free chat, grounded
// questions, and document ingestion. Each call handles exactly one inbound
// event for one user, in arrival order for that user.
type Service interface {
	Chat(ctx context.Context, userID string, text string) (string, error)
	Ask(ctx context.Context, userID string, question string) (string, error)
	IngestDocument(ctx context.Context, userID string, docName string, mediaType string, payload []byte) (int, error)
}

type service struct {
	sessions *session.Store
	oracle   llm.Provider
	logger   *logger_i.Logger
}

// NewService constructor
func NewService(sessions *session.Store, oracle llm.Provider) Service {
	return &service{
		sessions: sessions,
		oracle:   oracle,
		logger:   logger_i.NewLogger("RAG Service :"),
	}
}

// Chat answers freely: no retrieval, just the accumulated history plus the
// new message. This is the persona small-talk path.
func (s *service) Chat(ctx context.Context, userID string, text string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureEventMetrics("chat", time.Since(start)) }()

	sess := s.sessions.GetOrCreate(userID)
	sess.Lock()
	defer sess.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, config.OracleTimeout)
	defer cancel()

	return s.converse(callCtx, sess, text)
}

// Ask answers grounded in the session's documents. Without any indexed
// document it returns ErrNoDocuments and never touches the oracle.
func (s *service) Ask(ctx context.Context, userID string, question string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureEventMetrics("ask", time.Since(start)) }()

	sess := s.sessions.GetOrCreate(userID)
	sess.Lock()
	defer sess.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, config.OracleTimeout)
	defer cancel()

	matches, err := s.executeRetrievalStep(callCtx, sess, question)
	if err != nil {
		s.logger.Error("RETRIEVAL_FAILURE", "error", err)
		return "", err
	}
	if len(matches) == 0 {
		return "", ErrNoDocuments
	}

	grounded := prompt.Compose(question, matches)
	return s.converse(callCtx, sess, grounded)
}

// IngestDocument parses, chunks and indexes one upload into the user's
// session. Returns the number of chunks added. The payload is discarded
// afterwards - only chunks and vectors survive.
func (s *service) IngestDocument(ctx context.Context, userID string, docName string, mediaType string, payload []byte) (int, error) {
	start := time.Now()
	defer func() { metrics.CaptureEventMetrics("ingest", time.Since(start)) }()

	sess := s.sessions.GetOrCreate(userID)
	sess.Lock()
	defer sess.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, config.EmbeddingTimeout)
	defer cancel()

	doc := docModel.Document{
		Id:         uuid.New().String(),
		Name:       docName,
		MediaType:  mediaType,
		IngestedAt: time.Now(),
	}

	count, err := s.executeIngestStep(callCtx, doc, payload, sess)
	if err != nil {
		s.logger.Error("INGESTION_FAILURE", "error", err, "doc", docName)
		return 0, err
	}
	metrics.AddIndexedChunks(count)
	s.logger.Info("Document ingested", "userId", userID, "doc", docName, "chunks", count)
	return count, nil
}
