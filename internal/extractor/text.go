package extractor

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/kycflow/docpack/pkg/models"
)

// TextExtractor reads plain text files in full. No fallback is needed;
// read and encoding failures are reported as errors, never raised.
type TextExtractor struct {
	*BaseExtractor
	textLimit int
}

// NewTextExtractor creates a new plain text extractor
func NewTextExtractor(textLimit int) *TextExtractor {
	return &TextExtractor{
		BaseExtractor: NewBaseExtractor("text", []string{".txt"}),
		textLimit:     textLimit,
	}
}

// Extract reads the full file content and computes content statistics
func (e *TextExtractor) Extract(ctx context.Context, path string) (*models.ContentAnalysis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("file is not valid UTF-8 text")
	}

	text := string(content)
	return &models.ContentAnalysis{
		Text: &models.TextAnalysis{
			TextContent:    truncateText(text, e.textLimit),
			CharacterCount: countChars(text),
			WordCount:      countWords(text),
		},
	}, nil
}
