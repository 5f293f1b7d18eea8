package ingest

import (
	"regexp"
	"strings"

	"docchat/internal/domain/docModel"

	"github.com/google/uuid"
)

var newlineRun = regexp.MustCompile(`\n+`)

// SplitPage slices one page of text into windows of at most size characters,
// each advancing by size-overlap, so adjacent chunks share exactly overlap
// characters. Sizes count runes, not bytes, so multibyte text never gets cut
// mid-character. The final partial window is kept as-is. Newlines are
// collapsed to single spaces first to keep the composed prompt readable.
func SplitPage(text string, size int, overlap int) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	normalized = newlineRun.ReplaceAllString(normalized, " ")
	if strings.TrimSpace(normalized) == "" {
		return nil
	}

	runes := []rune(normalized)
	if len(runes) <= size {
		return []string{normalized}
	}

	step := size - overlap
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// PrepareChunks maps extracted pages to retrieval chunks, numbering them in
// extraction order across the whole document.
func PrepareChunks(pages []docModel.Page, doc docModel.Document, size int, overlap int) []docModel.Chunk {
	var allChunks []docModel.Chunk

	ordinal := 0
	for _, page := range pages {
		for _, text := range SplitPage(page.Content, size, overlap) {
			allChunks = append(allChunks, docModel.Chunk{
				ChunkId: uuid.New().String(),
				DocId:   doc.Id,
				Text:    text,
				PageNum: page.Number,
				Ordinal: ordinal,
			})
			ordinal++
		}
	}

	return allChunks
}
