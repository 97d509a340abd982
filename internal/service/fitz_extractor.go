package service

import (
	"fmt"
	"strings"

	"pdf-extract-service/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// FitzExtractor adapts the go-fitz (MuPDF) library to domain.TextExtractor.
type FitzExtractor struct {
	logger domain.Logger
}

// NewFitzExtractor creates a new go-fitz backed extractor
func NewFitzExtractor(logger domain.Logger) *FitzExtractor {
	return &FitzExtractor{
		logger: logger,
	}
}

// ExtractPages opens the PDF from memory and returns per-page text in
// document order. The document handle is released on every exit path.
func (e *FitzExtractor) ExtractPages(fileBytes []byte) ([]domain.PageText, error) {
	doc, err := fitz.NewFromMemory(fileBytes)
	if err != nil {
		return nil, domain.NewParseError(classifyParseError(err), err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]domain.PageText, 0, numPages)

	for pageNum := 0; pageNum < numPages; pageNum++ {
		e.logger.Debug("Extracting page text", "page", pageNum+1, "total", numPages)
		text, err := doc.Text(pageNum)
		if err != nil {
			return nil, domain.NewParseError(domain.ParseErrorMalformed,
				fmt.Errorf("page %d: %w", pageNum+1, err))
		}
		pages = append(pages, domain.PageText{
			Number: pageNum + 1,
			Text:   text,
		})
	}

	return pages, nil
}

// classifyParseError maps a library failure onto the known failure modes.
// MuPDF reports errors as flat strings, so classification is by message.
func classifyParseError(err error) domain.ParseErrorKind {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "truncat") || strings.Contains(msg, "unexpected eof"):
		return domain.ParseErrorTruncated
	case strings.Contains(msg, "unsupported") || strings.Contains(msg, "unknown version"):
		return domain.ParseErrorUnsupported
	default:
		return domain.ParseErrorMalformed
	}
}
