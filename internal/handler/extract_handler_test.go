package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdf-extract-service/internal/domain"
)

// Mock implementations for handler testing
type MockExtractionService struct {
	result       *domain.ExtractionResult
	err          error
	lastFilename string
	lastBytes    []byte
}

func (m *MockExtractionService) Extract(fileBytes []byte, filename string) (*domain.ExtractionResult, error) {
	m.lastBytes = fileBytes
	m.lastFilename = filename
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

const testMaxFileSize = 50 * 1024 * 1024

func newUploadRequest(t *testing.T, filename string, contents []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(contents); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/extract-text", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeResult(t *testing.T, rr *httptest.ResponseRecorder) domain.ExtractionResult {
	t.Helper()

	var result domain.ExtractionResult
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	return result
}

func TestExtractText_Success(t *testing.T) {
	service := &MockExtractionService{
		result: domain.NewSuccessResult("page one\n\npage two\n\n"),
	}
	h := NewExtractHandler(service, NewMockHandlerLogger(), testMaxFileSize)

	req := newUploadRequest(t, "report.pdf", []byte("%PDF-1.4 fake"))
	rr := httptest.NewRecorder()
	h.ExtractText(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	result := decodeResult(t, rr)
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Text != "page one\n\npage two\n\n" {
		t.Fatalf("unexpected text: %q", result.Text)
	}
	if result.Error != "" {
		t.Fatalf("expected empty error, got %q", result.Error)
	}
	if service.lastFilename != "report.pdf" {
		t.Fatalf("expected filename report.pdf, got %q", service.lastFilename)
	}
	if string(service.lastBytes) != "%PDF-1.4 fake" {
		t.Fatalf("service received wrong bytes: %q", service.lastBytes)
	}
}

func TestExtractText_ParseFailureStillHTTP200(t *testing.T) {
	service := &MockExtractionService{
		err: domain.NewParseError(domain.ParseErrorMalformed, errors.New("bad xref table")),
	}
	h := NewExtractHandler(service, NewMockHandlerLogger(), testMaxFileSize)

	req := newUploadRequest(t, "broken.pdf", []byte("garbage"))
	rr := httptest.NewRecorder()
	h.ExtractText(rr, req)

	// Parse failures ride inside a 200 payload; only the success field
	// distinguishes them.
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	result := decodeResult(t, rr)
	if result.Success {
		t.Fatalf("expected failure, got %+v", result)
	}
	if result.Error == "" {
		t.Fatal("expected non-empty error message")
	}
	if !strings.Contains(result.Error, "bad xref table") {
		t.Fatalf("expected cause in error, got %q", result.Error)
	}
	if result.Text != "" {
		t.Fatalf("expected no text on failure, got %q", result.Text)
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	service := &MockExtractionService{result: domain.NewSuccessResult("x")}
	h := NewExtractHandler(service, NewMockHandlerLogger(), testMaxFileSize)

	req := httptest.NewRequest(http.MethodPost, "/extract-text", strings.NewReader("no multipart"))
	rr := httptest.NewRecorder()
	h.ExtractText(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "File is required") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestExtractText_SanitizesFilename(t *testing.T) {
	service := &MockExtractionService{result: domain.NewSuccessResult("x")}
	h := NewExtractHandler(service, NewMockHandlerLogger(), testMaxFileSize)

	req := newUploadRequest(t, "../../etc/report.pdf", []byte("%PDF"))
	rr := httptest.NewRecorder()
	h.ExtractText(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if service.lastFilename != "report.pdf" {
		t.Fatalf("expected sanitized filename report.pdf, got %q", service.lastFilename)
	}
}

func TestExtractText_EmptyFilenameDefaults(t *testing.T) {
	service := &MockExtractionService{result: domain.NewSuccessResult("x")}
	h := NewExtractHandler(service, NewMockHandlerLogger(), testMaxFileSize)

	req := newUploadRequest(t, ".", []byte("%PDF"))
	rr := httptest.NewRecorder()
	h.ExtractText(rr, req)

	if service.lastFilename != "document" {
		t.Fatalf("expected fallback filename document, got %q", service.lastFilename)
	}
}
