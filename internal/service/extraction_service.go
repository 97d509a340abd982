package service

import (
	"fmt"
	"strings"

	"pdf-extract-service/internal/domain"
)

// pageSeparator follows each page's text in the assembled output.
const pageSeparator = "\n\n"

// placeholderFormat is returned when no page yields text, typically for
// scanned (image-based) PDFs. Size is the upload size in KB, two decimals.
const placeholderFormat = "PDF Document: %s\n\nFile Size: %.2fKB\n\nThis PDF appears to be image-based. Text extraction requires OCR processing."

// extractionService implements domain.ExtractionService
type extractionService struct {
	extractor domain.TextExtractor
	logger    domain.Logger
}

// NewExtractionService creates a new extraction service
func NewExtractionService(extractor domain.TextExtractor, logger domain.Logger) domain.ExtractionService {
	return &extractionService{
		extractor: extractor,
		logger:    logger,
	}
}

// Extract parses the uploaded bytes and assembles the per-page text in
// document order, each non-empty page followed by a blank-line separator.
// Empty pages contribute nothing. When no page yields text the result is
// still a success, carrying a placeholder that names the file and its size.
// A parse failure is returned as *domain.ParseError; no retry, no partial
// result.
func (s *extractionService) Extract(fileBytes []byte, filename string) (*domain.ExtractionResult, error) {
	s.logger.Info("Processing PDF", "filename", filename)

	pages, err := s.extractor.ExtractPages(fileBytes)
	if err != nil {
		s.logger.Error("Error processing PDF", err, "filename", filename)
		return nil, err
	}

	var sb strings.Builder
	for _, page := range pages {
		if page.Text == "" {
			continue
		}
		sb.WriteString(page.Text)
		sb.WriteString(pageSeparator)
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		s.logger.Warn("No text extracted - possibly image-based PDF", "filename", filename)
		placeholder := fmt.Sprintf(placeholderFormat, filename, float64(len(fileBytes))/1024)
		return domain.NewSuccessResult(placeholder), nil
	}

	s.logger.Info("Successfully extracted text", "filename", filename)
	return domain.NewSuccessResult(text), nil
}
