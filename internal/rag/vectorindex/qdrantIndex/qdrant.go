package qdrantIndex

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"docchat/internal/config"
	"docchat/internal/domain/docModel"
	"docchat/internal/rag/embedding"
	"docchat/internal/rag/vectorindex"
	"docchat/pkg/logger_i"

	"github.com/qdrant/go-client/qdrant"
)

var logger *logger_i.Logger
var qdrantInstance *qdrant.Client
var once sync.Once
var dimension = uint64(config.EmbeddingOutputDimensionality)

// NewFactory builds per-user indexes backed by one Qdrant collection per
// user. The in-memory backend is the default; this one exists for
// deployments that already run Qdrant and want the index off-heap.
func NewFactory(ctx context.Context, embedder embedding.Embedder) vectorindex.Factory {
	once.Do(func() {
		logger = logger_i.NewLogger("Qdrant")
		client, err := qdrant.NewClient(&qdrant.Config{
			Host:     config.QdrantHost,
			Port:     config.QdrantGrpcPort,
			UseTLS:   config.QdrantUseTLS,
			PoolSize: uint(config.QdrantPoolSize),
		})
		if err != nil {
			logger.Error("could not instantiate: ", "error:", err)
			return
		}
		qdrantInstance = client
		go closeQdrant(ctx, client)
	})

	if qdrantInstance == nil {
		return nil
	}
	return func(userID string) vectorindex.Index {
		return &index{
			client:     qdrantInstance,
			embedder:   embedder,
			collection: config.QdrantCollectionPrefix + userID,
		}
	}
}

func closeQdrant(ctx context.Context, qi *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant")
	if err := qi.Close(); err != nil {
		logger.Error("could not close Qdrant: ", "error:", err)
	}
}

type index struct {
	client     *qdrant.Client
	embedder   embedding.Embedder
	collection string
	// entries inserted by this process; collections are recreated per run
	count int64
}

func (ix *index) Insert(ctx context.Context, chunks []docModel.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	if err := ix.ensureCollection(ctx); err != nil {
		return fmt.Errorf("qdrant collection: %w", err)
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	vectors, err := ix.embedder.BatchEmbedding(ctx, texts)
	if err != nil {
		return err
	}
	if len(vectors) != len(chunks) {
		return &embedding.Error{Err: fmt.Errorf("got %d vectors for %d chunks", len(vectors), len(chunks))}
	}

	points := make([]*qdrant.PointStruct, len(chunks))
	for i, chunk := range chunks {
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewID(chunk.ChunkId),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(map[string]any{
				"content":       chunk.Text,
				"page_num":      chunk.PageNum,
				"ordinal":       chunk.Ordinal,
				"source_doc_id": chunk.DocId,
				"chunk_id":      chunk.ChunkId,
			}),
		}
	}

	_, err = ix.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: ix.collection,
		Points:         points,
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		return fmt.Errorf("qdrant upsert failed: %w", err)
	}
	atomic.AddInt64(&ix.count, int64(len(chunks)))
	return nil
}

func (ix *index) Search(ctx context.Context, query string, k int) ([]docModel.Chunk, error) {
	if ix.Len() == 0 {
		return nil, nil
	}

	queryVector, err := ix.embedder.GetEmbedding(ctx, query)
	if err != nil {
		return nil, err
	}

	result, err := ix.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: ix.collection,
		Query:          qdrant.NewQuery(queryVector...),
		Limit:          qdrant.PtrOf(uint64(k)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		logger.Error("Error querying Qdrant: ", "error:", err)
		return nil, fmt.Errorf("qdrant query failed: %w", err)
	}

	chunks := make([]docModel.Chunk, 0, len(result))
	for _, hit := range result {
		chunks = append(chunks, docModel.Chunk{
			ChunkId: hit.Payload["chunk_id"].GetStringValue(),
			DocId:   hit.Payload["source_doc_id"].GetStringValue(),
			Text:    hit.Payload["content"].GetStringValue(),
			PageNum: int(hit.Payload["page_num"].GetIntegerValue()),
			Ordinal: int(hit.Payload["ordinal"].GetIntegerValue()),
		})
	}
	return chunks, nil
}

func (ix *index) Len() int {
	return int(atomic.LoadInt64(&ix.count))
}

func (ix *index) ensureCollection(ctx context.Context) error {
	exists, err := ix.client.CollectionExists(ctx, ix.collection)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return ix.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: ix.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
}
