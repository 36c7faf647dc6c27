package parser

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Registry routes document formats to parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry returns a registry with the built-in parsers registered.
func NewRegistry() *Registry {
	r := &Registry{parsers: make(map[string]Parser)}
	for _, p := range []Parser{
		&TextParser{},
		&PDFParser{},
		&DOCXParser{},
		&XLSXParser{},
		&HTMLParser{},
	} {
		for _, f := range p.SupportedFormats() {
			r.parsers[f] = p
		}
	}
	return r
}

// Get returns the parser for a format.
func (r *Registry) Get(format string) (Parser, error) {
	p, ok := r.parsers[format]
	if !ok {
		return nil, fmt.Errorf("no parser for format: %s", format)
	}
	return p, nil
}

// Register adds or replaces the parser for a format.
func (r *Registry) Register(format string, p Parser) {
	r.parsers[format] = p
}

// ExtractText returns the plain text of the file at path, or the empty
// string when the path does not exist, the format is unrecognized, or
// parsing fails. Callers that need the failure cause use Get/Parse
// directly.
func (r *Registry) ExtractText(ctx context.Context, path, format string) string {
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	p, err := r.Get(format)
	if err != nil {
		return ""
	}
	text, err := p.Parse(ctx, path)
	if err != nil {
		slog.Warn("text extraction failed", "path", path, "format", format, "error", err)
		return ""
	}
	return text
}
