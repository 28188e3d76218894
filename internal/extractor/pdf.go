package extractor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kycflow/docpack/pkg/models"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"
)

// PDFExtractor extracts text and structure from PDF files. It runs a
// structured page-by-page primary strategy first; on any primary failure it
// falls back to a repair pass followed by a text-only read. The strategy
// that produced the result is recorded in the analysis for auditability.
type PDFExtractor struct {
	*BaseExtractor
	textLimit int
	logger    *zap.Logger
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(textLimit int, logger *zap.Logger) *PDFExtractor {
	return &PDFExtractor{
		BaseExtractor: NewBaseExtractor("pdf", []string{".pdf"}),
		textLimit:     textLimit,
		logger:        logger,
	}
}

// Extract runs the primary strategy, then the fallback. Only when both fail
// does it return an error; the error message carries both causes.
func (e *PDFExtractor) Extract(ctx context.Context, path string) (*models.ContentAnalysis, error) {
	analysis, primaryErr := extractPrimary(path, e.textLimit)
	if primaryErr == nil {
		return &models.ContentAnalysis{Pdf: analysis}, nil
	}

	e.logger.Debug("Primary PDF extraction failed, trying fallback",
		zap.String("path", path),
		zap.Error(primaryErr))

	analysis, fallbackErr := extractFallback(path, e.textLimit)
	if fallbackErr != nil {
		return nil, fmt.Errorf("PDF extraction failed: %v | fallback error: %v", primaryErr, fallbackErr)
	}

	return &models.ContentAnalysis{Pdf: analysis}, nil
}

// extractPrimary performs structured page-by-page extraction: per-page text,
// XObject image counts, and page details.
func extractPrimary(path string, textLimit int) (analysis *models.PdfAnalysis, err error) {
	// The parser panics on some malformed xref tables; convert to an error
	// so the fallback chain can take over
	defer func() {
		if r := recover(); r != nil {
			analysis = nil
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	totalPages := reader.NumPage()
	analysis = &models.PdfAnalysis{
		TotalPages:       totalPages,
		PageDetails:      make([]models.PageDetail, 0, totalPages),
		ExtractionMethod: models.MethodPrimary,
	}

	var fullText strings.Builder
	totalImages := 0

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			analysis.PageDetails = append(analysis.PageDetails, models.PageDetail{PageNumber: pageNum})
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", pageNum, err)
		}
		fullText.WriteString(pageText)
		fullText.WriteString("\n")

		pageImages := countPageImages(page)
		totalImages += pageImages

		analysis.PageDetails = append(analysis.PageDetails, models.PageDetail{
			PageNumber: pageNum,
			TextLength: countChars(pageText),
			HasText:    strings.TrimSpace(pageText) != "",
			ImageCount: pageImages,
		})
	}

	finishPdfAnalysis(analysis, fullText.String(), textLimit)
	analysis.HasImages = totalImages > 0
	analysis.TotalImages = totalImages
	return analysis, nil
}

// extractFallback is the simpler page-text-only strategy: repair the file
// with a relaxed-validation optimize pass, then read plain text per page.
// No image detection happens here.
func extractFallback(path string, textLimit int) (analysis *models.PdfAnalysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			analysis = nil
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()

	tempDir, err := os.MkdirTemp("", "docpack-pdf-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	repaired := filepath.Join(tempDir, "repaired.pdf")
	if err := repairPDF(path, repaired); err != nil {
		return nil, fmt.Errorf("failed to repair PDF: %w", err)
	}

	pageCount, err := api.PageCountFile(repaired)
	if err != nil {
		return nil, fmt.Errorf("failed to get page count: %w", err)
	}

	f, reader, err := pdf.Open(repaired)
	if err != nil {
		return nil, fmt.Errorf("failed to open repaired PDF: %w", err)
	}
	defer f.Close()

	analysis = &models.PdfAnalysis{
		TotalPages:       pageCount,
		PageDetails:      make([]models.PageDetail, 0, pageCount),
		ExtractionMethod: models.MethodFallback,
	}

	var fullText strings.Builder
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		pageText := ""
		page := reader.Page(pageNum)
		if !page.V.IsNull() {
			// Unreadable pages are skipped, not fatal
			if text, err := page.GetPlainText(nil); err == nil {
				pageText = text
			}
		}
		fullText.WriteString(pageText)
		fullText.WriteString("\n")

		analysis.PageDetails = append(analysis.PageDetails, models.PageDetail{
			PageNumber: pageNum,
			TextLength: countChars(pageText),
			HasText:    strings.TrimSpace(pageText) != "",
		})
	}

	finishPdfAnalysis(analysis, fullText.String(), textLimit)
	return analysis, nil
}

// repairPDF rewrites a PDF through a relaxed-validation optimize pass,
// which tolerates malformed xref tables and encryption remnants
func repairPDF(inPath, outPath string) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return api.OptimizeFile(inPath, outPath, conf)
}

// countPageImages counts image XObjects referenced by a page's resources
func countPageImages(page pdf.Page) int {
	resources := page.V.Key("Resources")
	if resources.Kind() != pdf.Dict {
		return 0
	}
	xobjects := resources.Key("XObject")
	if xobjects.Kind() != pdf.Dict {
		return 0
	}

	count := 0
	for _, name := range xobjects.Keys() {
		if xobjects.Key(name).Key("Subtype").Name() == "Image" {
			count++
		}
	}
	return count
}

// finishPdfAnalysis fills the text-derived fields shared by both strategies
func finishPdfAnalysis(analysis *models.PdfAnalysis, fullText string, textLimit int) {
	analysis.HasText = strings.TrimSpace(fullText) != ""
	analysis.CharacterCount = countChars(fullText)
	analysis.WordCount = countWords(fullText)
	analysis.TextContent = truncateText(fullText, textLimit)
}
