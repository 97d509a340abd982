package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("bad xref table")
	err := NewParseError(ParseErrorMalformed, cause)

	if !strings.Contains(err.Error(), "malformed") {
		t.Fatalf("expected kind in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "bad xref table") {
		t.Fatalf("expected cause in message, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to find the cause")
	}
}

func TestParseError_NoCause(t *testing.T) {
	err := NewParseError(ParseErrorTruncated, nil)

	if err.Error() != "truncated" {
		t.Fatalf("expected bare kind, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatal("expected nil unwrap")
	}
}

func TestExtractionResult_JSONShape(t *testing.T) {
	success, err := json.Marshal(NewSuccessResult("some text"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(success) != `{"success":true,"text":"some text"}` {
		t.Fatalf("unexpected success JSON: %s", success)
	}

	failure, err := json.Marshal(NewFailureResult("parse failed"))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(failure) != `{"success":false,"error":"parse failed"}` {
		t.Fatalf("unexpected failure JSON: %s", failure)
	}
}
