package docModel

import "time"

// Document describes one uploaded payload. The raw bytes are consumed during
// ingestion and never retained; only this descriptor survives.
type Document struct {
	Id         string    `json:"source_doc_id"`
	Name       string    `json:"doc_name"`
	MediaType  string    `json:"media_type"`
	IngestedAt time.Time `json:"ingested_at"`
}

// Page is the unit the parser hands over: plain text per source page.
type Page struct {
	Number  int    `json:"number"`
	Content string `json:"content"`
}

// Chunk is the atomic unit of retrieval. Immutable once created.
type Chunk struct {
	ChunkId string `json:"chunk_id"`
	DocId   string `json:"source_doc_id"`
	Text    string `json:"content"`
	PageNum int    `json:"page_num"`
	// Ordinal is the chunk's position across the whole document, in
	// extraction order.
	Ordinal int `json:"ordinal"`
}

const MediaTypePDF = "application/pdf"
