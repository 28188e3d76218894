package extractor

import (
	"context"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/kycflow/docpack/pkg/models"
	"go.uber.org/zap"
)

// Extractor is the interface that all content extractors must implement
type Extractor interface {
	// Name returns the extractor name
	Name() string

	// SupportedExtensions returns list of file extensions this extractor can handle
	SupportedExtensions() []string

	// Extract pulls content and structure from a file. A nil analysis with a
	// nil error means the format is metadata-only by design.
	Extract(ctx context.Context, path string) (*models.ContentAnalysis, error)
}

// BaseExtractor provides common functionality for extractors
type BaseExtractor struct {
	name       string
	extensions []string
}

// NewBaseExtractor creates a new base extractor
func NewBaseExtractor(name string, extensions []string) *BaseExtractor {
	return &BaseExtractor{
		name:       name,
		extensions: extensions,
	}
}

// Name returns the extractor name
func (e *BaseExtractor) Name() string {
	return e.name
}

// SupportedExtensions returns supported file extensions
func (e *BaseExtractor) SupportedExtensions() []string {
	return e.extensions
}

// Dispatcher routes a file to the extractor registered for its extension
type Dispatcher struct {
	extractors []Extractor
	logger     *zap.Logger
}

// NewDispatcher creates a dispatcher with the standard extractor set
func NewDispatcher(textLimit int, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{logger: logger}
	d.Register(NewPDFExtractor(textLimit, logger))
	d.Register(NewTextExtractor(textLimit))
	d.Register(NewOfficeExtractor())
	d.Register(NewImageExtractor())
	return d
}

// Register registers an extractor
func (d *Dispatcher) Register(e Extractor) {
	d.extractors = append(d.extractors, e)
	d.logger.Debug("Registered extractor",
		zap.String("name", e.Name()),
		zap.Strings("extensions", e.SupportedExtensions()))
}

// ExtractContent dispatches a file to its extractor. Categories and
// extensions without an extractor yield a nil analysis and nil error:
// metadata-only support is documented behavior, not a failure.
func (d *Dispatcher) ExtractContent(ctx context.Context, path string, category models.Category) (*models.ContentAnalysis, error) {
	if category == models.CategoryOther {
		return nil, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range d.extractors {
		for _, supported := range e.SupportedExtensions() {
			if supported == ext {
				return e.Extract(ctx, path)
			}
		}
	}

	return nil, nil
}

// truncateText caps stored text at limit runes, marking the cut with an
// ellipsis. Counts are always taken before truncation.
func truncateText(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// countChars counts characters, not bytes
func countChars(text string) int {
	return utf8.RuneCountInString(text)
}

// countWords counts whitespace-separated words
func countWords(text string) int {
	return len(strings.Fields(text))
}
