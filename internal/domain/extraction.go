package domain

// PageText holds the text extracted from a single PDF page.
// Number is 1-indexed document order; Text is empty when the page has no
// extractable text layer (e.g. scanned images).
type PageText struct {
	Number int
	Text   string
}

// ExtractionResult is the response payload for an extraction request.
// Success with Text set means extraction produced output (or the
// image-based placeholder); Success=false carries the parse error text.
type ExtractionResult struct {
	Success bool   `json:"success"`
	Text    string `json:"text,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewSuccessResult creates a successful extraction result
func NewSuccessResult(text string) *ExtractionResult {
	return &ExtractionResult{Success: true, Text: text}
}

// NewFailureResult creates a failed extraction result
func NewFailureResult(errMsg string) *ExtractionResult {
	return &ExtractionResult{Success: false, Error: errMsg}
}
