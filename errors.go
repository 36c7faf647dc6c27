package docmage

import "errors"

var (
	// ErrDocumentNotFound is returned when a document ID does not exist.
	ErrDocumentNotFound = errors.New("docmage: document not found")

	// ErrUnsupportedFormat is returned for unrecognized file formats.
	ErrUnsupportedFormat = errors.New("docmage: unsupported document format")

	// ErrParsingFailed is returned when text extraction fails.
	ErrParsingFailed = errors.New("docmage: parsing failed")

	// ErrEmptyDocument is returned when a document yields no text to analyze.
	ErrEmptyDocument = errors.New("docmage: document contains no extractable text")

	// ErrStoreClosed is returned when operating on a closed store.
	ErrStoreClosed = errors.New("docmage: store is closed")

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("docmage: invalid configuration")
)
