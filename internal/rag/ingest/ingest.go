package ingest

import (
	"context"

	"docchat/internal/config"
	"docchat/internal/domain/docModel"
	"docchat/internal/rag/vectorindex"
	"docchat/pkg/logger_i"
)

var logger = logger_i.NewLogger("Document Ingestion ")

// ProcessDocument runs the whole pipeline for one upload: parse the payload
// into pages, chunk them, and insert the batch into the session's index. The
// insert is atomic, so a failure leaves the index exactly as it was. Returns
// the number of chunks indexed. The raw payload is not retained.
func ProcessDocument(ctx context.Context, doc docModel.Document, payload []byte, index vectorindex.Index) (int, error) {
	logger.Debug("Processing document", "name", doc.Name, "mediaType", doc.MediaType, "bytes", len(payload))

	pages, err := ExtractPages(payload, doc.MediaType)
	if err != nil {
		return 0, err
	}
	logger.Debug("Processing document", "pages", len(pages))

	chunks := PrepareChunks(pages, doc, config.ChunkSize, config.ChunkOverlap)
	if len(chunks) == 0 {
		logger.Warn("Document produced no chunks", "name", doc.Name)
		return 0, nil
	}
	logger.Debug("Processing document", "chunks", len(chunks))

	if err := index.Insert(ctx, chunks); err != nil {
		return 0, err
	}
	return len(chunks), nil
}
