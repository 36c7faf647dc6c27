// Package parser extracts plain text from document files. Each
// supported format has its own Parser; a Registry routes by format
// string. The analysis pipeline consumes only the extracted text, so
// parsers deliberately flatten structure instead of preserving it.
package parser

import "context"

// Parser extracts the plain text of a specific document format.
type Parser interface {
	Parse(ctx context.Context, path string) (string, error)
	SupportedFormats() []string
}
