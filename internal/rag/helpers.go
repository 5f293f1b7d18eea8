package rag

import (
	"context"
	"time"

	"docchat/internal/config"
	"docchat/internal/domain/chatModel"
	"docchat/internal/domain/docModel"
	"docchat/internal/metrics"
	"docchat/internal/rag/ingest"
	"docchat/internal/session"
)

func (s *service) executeRetrievalStep(ctx context.Context, sess *session.Session, question string) ([]docModel.Chunk, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("vector_search", time.Since(start)) }()

	return retrieve(ctx, sess, question, config.RetrievalTopK)
}

func (s *service) executeOracleStep(ctx context.Context, history []chatModel.Turn) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("oracle", time.Since(start)) }()

	return s.oracle.Complete(ctx, history, config.ModelTemperature, config.MaxOutputTokens)
}

func (s *service) executeIngestStep(ctx context.Context, doc docModel.Document, payload []byte, sess *session.Session) (int, error) {
	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("document_ingestion", time.Since(start)) }()

	return ingest.ProcessDocument(ctx, doc, payload, sess.Index)
}
