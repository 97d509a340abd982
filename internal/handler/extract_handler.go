// Package handler provides HTTP handlers for the API.
package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"pdf-extract-service/internal/domain"
)

// ExtractHandler handles PDF text-extraction HTTP requests
type ExtractHandler struct {
	extractionService domain.ExtractionService
	logger            domain.Logger
	maxFileSize       int64
}

// NewExtractHandler creates a new extraction handler
func NewExtractHandler(extractionService domain.ExtractionService, logger domain.Logger, maxFileSize int64) *ExtractHandler {
	return &ExtractHandler{
		extractionService: extractionService,
		logger:            logger,
		maxFileSize:       maxFileSize,
	}
}

// ExtractText handles PDF uploads and returns the extracted text.
//
// The response is always 200 with a {"success": bool} payload: parse
// failures are reported inside the body, not via the status code. Existing
// clients switch on the success field, so this stays as-is. Only transport
// misuse (missing form file, unreadable body) gets a 4xx.
func (h *ExtractHandler) ExtractText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	// Sanitize filename (strip any path components)
	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if originalName == "" || originalName == "." || originalName == string(filepath.Separator) {
		originalName = "document"
	}

	requestID, _ := GetRequestIDFromContext(r)
	h.logger.Debug("ExtractText request", "request_id", requestID, "filename", originalName, "size", header.Size)

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	result, err := h.extractionService.Extract(fileBytes, originalName)
	if err != nil {
		h.writeJSON(w, http.StatusOK, domain.NewFailureResult(err.Error()))
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}
