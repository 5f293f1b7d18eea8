package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"docchat/internal/domain/docModel"
)

// --- Mock index for ProcessDocument ---

type mockIndex struct {
	insertFunc func(ctx context.Context, chunks []docModel.Chunk) error
	inserted   []docModel.Chunk
}

func (m *mockIndex) Insert(ctx context.Context, chunks []docModel.Chunk) error {
	if m.insertFunc != nil {
		if err := m.insertFunc(ctx, chunks); err != nil {
			return err
		}
	}
	m.inserted = append(m.inserted, chunks...)
	return nil
}

func (m *mockIndex) Search(ctx context.Context, query string, k int) ([]docModel.Chunk, error) {
	return nil, nil
}

func (m *mockIndex) Len() int { return len(m.inserted) }

// --- Unit Tests ---

func TestSplitPage_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"Empty", "", 0},
		{"Whitespace_Only", "   \n\n\t ", 0},
		{"Fits_One_Chunk", "short page", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SplitPage(tt.text, 1000, 150)
			if len(chunks) != tt.want {
				t.Errorf("SplitPage(%q) = %d chunks; want %d", tt.text, len(chunks), tt.want)
			}
		})
	}
}

func TestSplitPage_WindowsAndOverlap(t *testing.T) {
	size := 100
	overlap := 20
	text := strings.Repeat("abcdefghij", 35) // 350 chars

	chunks := SplitPage(text, size, overlap)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > size {
			t.Errorf("chunk %d has %d chars, limit is %d", i, len(c), size)
		}
	}

	// each window advances by size-overlap, so adjacent full chunks share
	// exactly the trailing overlap characters
	for i := 0; i < len(chunks)-1; i++ {
		tail := chunks[i][len(chunks[i])-overlap:]
		if !strings.HasPrefix(chunks[i+1], tail) {
			t.Errorf("chunk %d does not start with the overlap of chunk %d: %q vs %q", i+1, i, tail, chunks[i+1][:overlap])
		}
	}

	// nothing lost: stitching without the overlaps reproduces the input
	var rebuilt strings.Builder
	rebuilt.WriteString(chunks[0])
	for i := 1; i < len(chunks); i++ {
		rebuilt.WriteString(chunks[i][overlap:])
	}
	if rebuilt.String() != text {
		t.Error("stitched chunks do not reproduce the original text")
	}
}

func TestSplitPage_MultibyteRunes(t *testing.T) {
	size := 100
	overlap := 20
	// 2-byte umlauts mean byte offsets and rune offsets diverge
	text := strings.Repeat("Die Brücken von Königsberg. ", 15) // 420 runes

	chunks := SplitPage(text, size, overlap)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if !utf8.ValidString(c) {
			t.Errorf("chunk %d is not valid UTF-8: %q", i, c)
		}
		if n := utf8.RuneCountInString(c); n > size {
			t.Errorf("chunk %d has %d runes, limit is %d", i, n, size)
		}
	}

	for i := 0; i < len(chunks)-1; i++ {
		tail := []rune(chunks[i])
		head := []rune(chunks[i+1])
		if string(tail[len(tail)-overlap:]) != string(head[:overlap]) {
			t.Errorf("chunk %d does not share %d runes with chunk %d", i+1, overlap, i)
		}
	}

	var rebuilt strings.Builder
	rebuilt.WriteString(chunks[0])
	for i := 1; i < len(chunks); i++ {
		rebuilt.WriteString(string([]rune(chunks[i])[overlap:]))
	}
	if rebuilt.String() != text {
		t.Error("stitched chunks do not reproduce the original text")
	}
}

func TestSplitPage_CollapsesNewlines(t *testing.T) {
	chunks := SplitPage("first line\r\n\r\nsecond line\nthird", 1000, 150)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "first line second line third" {
		t.Errorf("newlines not collapsed: %q", chunks[0])
	}
}

func TestPrepareChunks_OrdinalsAcrossPages(t *testing.T) {
	doc := docModel.Document{Id: "doc-1", Name: "paper.pdf"}
	pages := []docModel.Page{
		{Number: 1, Content: strings.Repeat("x", 250)},
		{Number: 2, Content: "short page"},
	}

	chunks := PrepareChunks(pages, doc, 100, 20)

	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	seen := make(map[string]bool)
	for i, c := range chunks {
		if c.Ordinal != i {
			t.Errorf("chunk %d has ordinal %d", i, c.Ordinal)
		}
		if c.DocId != "doc-1" {
			t.Errorf("chunk %d has doc id %q", i, c.DocId)
		}
		if c.ChunkId == "" || seen[c.ChunkId] {
			t.Errorf("chunk %d id not unique: %q", i, c.ChunkId)
		}
		seen[c.ChunkId] = true
	}
	if last := chunks[len(chunks)-1]; last.PageNum != 2 {
		t.Errorf("last chunk page got %d, want 2", last.PageNum)
	}
}

func TestExtractPages_UnsupportedFormat(t *testing.T) {
	for _, mediaType := range []string{"text/plain", "application/msword", "image/png", ""} {
		if _, err := ExtractPages([]byte("payload"), mediaType); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("ExtractPages(%q) error = %v; want ErrUnsupportedFormat", mediaType, err)
		}
	}
}

func TestProcessDocument_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("Unsupported_Type_No_Insert", func(t *testing.T) {
		idx := &mockIndex{}
		doc := docModel.Document{Id: "d1", Name: "notes.txt", MediaType: "text/plain"}

		count, err := ProcessDocument(ctx, doc, []byte("hello"), idx)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("error got %v, want ErrUnsupportedFormat", err)
		}
		if count != 0 || idx.Len() != 0 {
			t.Errorf("index touched on unsupported upload: count=%d len=%d", count, idx.Len())
		}
	})

	t.Run("Insert_Failure_Propagates", func(t *testing.T) {
		idx := &mockIndex{
			insertFunc: func(ctx context.Context, chunks []docModel.Chunk) error {
				return errors.New("embedding down")
			},
		}
		doc := docModel.Document{Id: "d2", Name: "broken.pdf", MediaType: docModel.MediaTypePDF}

		if _, err := ProcessDocument(ctx, doc, []byte("not a pdf"), idx); err == nil {
			t.Fatal("expected error for corrupt pdf payload")
		}
	})
}
