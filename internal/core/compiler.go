package core

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/kycflow/docpack/internal/ai"
	"github.com/kycflow/docpack/internal/classifier"
	"github.com/kycflow/docpack/internal/config"
	"github.com/kycflow/docpack/internal/extractor"
	"github.com/kycflow/docpack/internal/filesystem"
	"github.com/kycflow/docpack/internal/metadata"
	"github.com/kycflow/docpack/pkg/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProgressCallback is called to report compilation progress
type ProgressCallback func(phase string, current, total int, message string)

// DocumentAnalyzer is the downstream collaborator that consumes extracted
// text and returns an opaque findings string. The compiler degrades
// gracefully when it is absent or failing.
type DocumentAnalyzer interface {
	AnalyzeDocuments(ctx context.Context, docs []ai.DocumentInput) (string, error)
}

// Result package marker strings
const (
	processingMethod     = "extraction_pipeline"
	noDocumentsProcessed = "No documents processed"
	basicMetadataOnly    = "Document processing completed with basic metadata only"
	basicImageProcessing = "Image processing completed with basic metadata extraction only"
	noImagesProcessed    = "No images processed"

	documentAnalyzerName = "Document Content Analyzer"
	imageAnalyzerName    = "Basic Image Processing"
)

// Compiler is the batch compilation engine: it turns an ordered list of
// file paths into a single ResultPackage
type Compiler struct {
	config           *config.Config
	logger           *zap.Logger
	assembler        *metadata.Assembler
	analyzer         DocumentAnalyzer
	progressCallback ProgressCallback
}

// NewCompiler creates a new compiler instance
func NewCompiler(cfg *config.Config, logger *zap.Logger) (*Compiler, error) {
	rules, err := classifier.NewLoader(cfg.RulesPath).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load classification rules: %w", err)
	}

	dispatcher := extractor.NewDispatcher(cfg.TextLimit, logger)
	assembler := metadata.NewAssembler(rules, dispatcher, filesystem.ParseSize(cfg.MaxSize), logger)

	return &Compiler{
		config:    cfg,
		logger:    logger,
		assembler: assembler,
	}, nil
}

// SetAnalyzer sets the downstream document analyzer
func (c *Compiler) SetAnalyzer(a DocumentAnalyzer) {
	c.analyzer = a
}

// SetProgressCallback sets the progress callback function. Workers invoke
// the callback concurrently during extraction, so it must be safe for
// concurrent use.
func (c *Compiler) SetProgressCallback(cb ProgressCallback) {
	c.progressCallback = cb
}

// reportProgress calls the progress callback if set
func (c *Compiler) reportProgress(phase string, current, total int, message string) {
	if c.progressCallback != nil {
		c.progressCallback(phase, current, total, message)
	}
}

// Compile processes every path into a FileRecord and assembles the result
// package. One record per input path, in input order, regardless of per-file
// failures. An empty path list yields an empty, well-formed package.
func (c *Compiler) Compile(ctx context.Context, paths []string) (*models.ResultPackage, error) {
	start := time.Now()
	c.logger.Info("Starting compilation",
		zap.Int("files", len(paths)),
		zap.Int("workers", c.workers()))

	pkg := &models.ResultPackage{
		PackageID:        newPackageID(start),
		CreatedAt:        start.UTC(),
		ProcessingMethod: processingMethod,
		TotalFiles:       len(paths),
		FileMetadata:     make([]*models.FileRecord, 0, len(paths)),
		CategorizedFiles: models.CategorizedFiles{
			Images:    []string{},
			Documents: []string{},
			Other:     []string{},
		},
		AnalyzersUsed: []string{},
	}

	records := c.assembleAll(ctx, paths)

	// Records were filled into indexed slots; appending here restores input
	// order no matter how workers interleaved
	for _, record := range records {
		pkg.AddRecord(record)
	}

	c.runDocumentAnalysis(ctx, pkg)
	c.runImageProcessing(pkg)

	// COMPLETED reflects that the pipeline ran to completion, not that every
	// extraction succeeded; FailedFileCount carries the difference
	pkg.PackageStatus = models.StatusCompleted

	c.logger.Info("Compilation complete",
		zap.String("package_id", pkg.PackageID),
		zap.Int("total_files", pkg.TotalFiles),
		zap.Int("failed_files", pkg.FailedFileCount),
		zap.Duration("duration", time.Since(start)))

	return pkg, nil
}

// assembleAll runs the per-file pipeline over a bounded worker pool,
// writing each record into its input-index slot
func (c *Compiler) assembleAll(ctx context.Context, paths []string) []*models.FileRecord {
	records := make([]*models.FileRecord, len(paths))
	if len(paths) == 0 {
		return records
	}

	workers := c.workers()
	c.reportProgress("extracting", 0, len(paths), "Extracting file metadata...")

	var processed int64
	var g errgroup.Group
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			records[i] = c.assembler.Assemble(ctx, path)
			done := int(atomic.AddInt64(&processed, 1))
			c.reportProgress("extracting", done, len(paths), path)
			return nil
		})
	}

	// Assemble never returns an error; workers only signal completion
	_ = g.Wait()

	c.reportProgress("extracting", len(paths), len(paths), "Extraction complete")
	return records
}

func (c *Compiler) workers() int {
	if c.config.Workers > 0 {
		return c.config.Workers
	}
	return runtime.NumCPU()
}

// runDocumentAnalysis hands extracted document text to the downstream
// analyzer. Any failure degrades to a marker string; the package is always
// produced.
func (c *Compiler) runDocumentAnalysis(ctx context.Context, pkg *models.ResultPackage) {
	docs := collectDocumentInputs(pkg.FileMetadata, c.config.TextLimit)
	if len(docs) == 0 {
		pkg.DocumentProcessingResults = noDocumentsProcessed
		return
	}

	pkg.AnalyzersUsed = append(pkg.AnalyzersUsed, documentAnalyzerName)

	if c.analyzer == nil {
		pkg.DocumentProcessingResults = basicMetadataOnly
		return
	}

	c.reportProgress("analysis", 0, len(docs), "Running document analysis...")
	findings, err := c.analyzer.AnalyzeDocuments(ctx, docs)
	if err != nil {
		c.logger.Warn("Document analysis failed, continuing with metadata only", zap.Error(err))
		c.reportProgress("analysis_error", 0, 0, fmt.Sprintf("Analysis skipped: %s", err.Error()))
		pkg.DocumentProcessingResults = basicMetadataOnly
		return
	}

	c.reportProgress("analysis", len(docs), len(docs), "Document analysis complete")
	pkg.DocumentProcessingResults = findings
}

// runImageProcessing records the image-handling provenance. Images get
// metadata probing only; no vision model is invoked.
func (c *Compiler) runImageProcessing(pkg *models.ResultPackage) {
	if pkg.FileCategories.Images == 0 {
		pkg.VisionAnalysisResults = noImagesProcessed
		return
	}
	pkg.VisionAnalysisResults = basicImageProcessing
	pkg.AnalyzersUsed = append(pkg.AnalyzersUsed, imageAnalyzerName)
}

// collectDocumentInputs gathers analyzer inputs from document and other
// category records. Unclassified files get a best-effort raw read so the
// analyzer sees whatever content they carry.
func collectDocumentInputs(records []*models.FileRecord, textLimit int) []ai.DocumentInput {
	var docs []ai.DocumentInput
	for _, record := range records {
		if record.Category == models.CategoryImage {
			continue
		}

		text := record.TextContent()
		if text == "" && record.Category == models.CategoryOther && record.ExtractionError == "" {
			text = readRawText(record.FilePath, textLimit)
		}

		docs = append(docs, ai.DocumentInput{
			FileName:    record.FileName,
			FilePath:    record.FilePath,
			FileType:    record.FileType,
			TextContent: text,
		})
	}
	return docs
}

// readRawText reads a file as text, truncated; read errors become an inline
// marker rather than failing the analysis step
func readRawText(path string, limit int) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("[Error reading file content: %s]", err.Error())
	}
	text := string(content)
	if !strings.ContainsRune(text, 0) {
		runes := []rune(text)
		if limit > 0 && len(runes) > limit {
			return string(runes[:limit]) + "..."
		}
		return text
	}
	return "[Error reading file content: binary content]"
}

// newPackageID generates a collision-resistant package identifier from the
// compilation timestamp and a random suffix; no shared counter is involved
func newPackageID(ts time.Time) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("DOCPACK_%s_%s", ts.UTC().Format("20060102_150405"), suffix)
}
