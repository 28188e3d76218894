package extractor

import (
	"context"

	"github.com/kycflow/docpack/pkg/models"
)

// OfficeExtractor handles Word/Excel/PowerPoint files. Their internal
// structure is not parsed: the record carries filesystem metadata and the
// file-type label only. Returning nil/nil keeps this a documented behavior
// rather than an extraction failure.
type OfficeExtractor struct {
	*BaseExtractor
}

// NewOfficeExtractor creates a new office document extractor
func NewOfficeExtractor() *OfficeExtractor {
	return &OfficeExtractor{
		BaseExtractor: NewBaseExtractor("office", []string{
			".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
		}),
	}
}

// Extract returns no content analysis and no error
func (e *OfficeExtractor) Extract(ctx context.Context, path string) (*models.ContentAnalysis, error) {
	return nil, nil
}
