package metadata

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/kycflow/docpack/internal/classifier"
	"github.com/kycflow/docpack/internal/extractor"
	"github.com/kycflow/docpack/internal/filesystem"
	"github.com/kycflow/docpack/pkg/models"
	"go.uber.org/zap"
)

// Assembler merges filesystem-level metadata with content-extraction results
// into one FileRecord per input path. Filesystem metadata is collected first;
// a stat failure short-circuits extraction but still yields a record.
type Assembler struct {
	rules      *classifier.Ruleset
	dispatcher *extractor.Dispatcher
	maxSize    int64
	logger     *zap.Logger
}

// NewAssembler creates a new metadata assembler. maxSize of 0 disables the
// extraction size guard.
func NewAssembler(rules *classifier.Ruleset, dispatcher *extractor.Dispatcher, maxSize int64, logger *zap.Logger) *Assembler {
	return &Assembler{
		rules:      rules,
		dispatcher: dispatcher,
		maxSize:    maxSize,
		logger:     logger,
	}
}

// Assemble produces the FileRecord for a single path. It never fails:
// every error becomes the record's ExtractionError so the batch advances.
func (a *Assembler) Assemble(ctx context.Context, path string) *models.FileRecord {
	category, fileType := a.rules.Classify(path)

	record := &models.FileRecord{
		FilePath: path,
		FileName: filepath.Base(path),
		FileType: fileType,
		Category: category,
	}

	stat, err := filesystem.Stat(path)
	if err != nil {
		a.logger.Warn("Failed to collect file metadata",
			zap.String("path", path),
			zap.Error(err))
		record.ExtractionError = err.Error()
		return record
	}

	record.FileSize = stat.Size
	record.FileExtension = stat.Extension
	record.CreatedDate = stat.Created
	record.ModifiedDate = stat.Modified

	if a.maxSize > 0 && stat.Size > a.maxSize {
		a.logger.Debug("File too large for content extraction",
			zap.String("path", path),
			zap.Int64("size", stat.Size))
		record.ExtractionError = fmt.Sprintf("file size %d exceeds extraction limit %d", stat.Size, a.maxSize)
		return record
	}

	analysis, err := a.dispatcher.ExtractContent(ctx, path, category)
	if err != nil {
		a.logger.Warn("Content extraction failed",
			zap.String("path", path),
			zap.String("file_type", fileType),
			zap.Error(err))
		record.ExtractionError = err.Error()
		return record
	}

	if analysis != nil {
		record.PdfAnalysis = analysis.Pdf
		record.TextAnalysis = analysis.Text
		record.ImageMetadata = analysis.Image
	}

	return record
}
