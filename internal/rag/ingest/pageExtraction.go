package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"docchat/internal/config"
	"docchat/internal/domain/docModel"

	"github.com/dslipak/pdf"
)

// ErrUnsupportedFormat is returned for any media type other than PDF. The
// handler layer turns it into a user-visible rejection; nothing is indexed.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ExtractPages parses the uploaded payload into page-level plain text.
func ExtractPages(payload []byte, mediaType string) ([]docModel.Page, error) {
	switch mediaType {
	case docModel.MediaTypePDF:
		return extractPDF(payload)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, mediaType)
	}
}

func extractPDF(payload []byte) ([]docModel.Page, error) {
	reader, err := pdf.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		logger.Error("failed opening of pdf payload")
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	var pages []docModel.Page
	numPages := reader.NumPage()
	logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// Log warning but continue with other pages
			logger.Error("Error parsing page content", "page", i, "error", err)
			continue
		}

		pages = append(pages, docModel.Page{
			Number:  i,
			Content: content,
		})
	}
	return pages, nil
}

func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PageExtractTimeout):
		logger.Error("pageExtract", "timeout", config.PageExtractTimeout)
		return "", errors.New("timeout")
	}
}
