package domain

import "fmt"

// ParseErrorKind categorizes the failure modes of the PDF parsing library.
type ParseErrorKind string

const (
	ParseErrorMalformed   ParseErrorKind = "malformed"
	ParseErrorUnsupported ParseErrorKind = "unsupported"
	ParseErrorTruncated   ParseErrorKind = "truncated"
)

// ParseError is the single error class surfaced by extraction: any failure
// during file interpretation. It is never retried and never propagated as
// an unhandled fault; the handler converts it into a Failure payload.
type ParseError struct {
	Kind ParseErrorKind
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

// Unwrap returns the underlying library error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps a library failure with its classified kind
func NewParseError(kind ParseErrorKind, err error) *ParseError {
	return &ParseError{Kind: kind, Err: err}
}
