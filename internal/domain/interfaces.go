package domain

// TextExtractor defines the contract with the underlying PDF parsing
// library: open the bytes, walk the pages in document order, release any
// underlying resources on every exit path.
type TextExtractor interface {
	ExtractPages(fileBytes []byte) ([]PageText, error)
}

// ExtractionService defines the upload-handling business logic: parse,
// assemble page text, fall back to a placeholder for image-based PDFs.
type ExtractionService interface {
	Extract(fileBytes []byte, filename string) (*ExtractionResult, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
}
