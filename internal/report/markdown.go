package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/kycflow/docpack/pkg/models"
)

// generateMarkdown generates a Markdown report
func (g *Generator) generateMarkdown(pkg *models.ResultPackage, outputFile string) error {
	var sb strings.Builder

	sb.WriteString("# Docpack Processing Report\n\n")

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Package ID | `%s` |\n", pkg.PackageID))
	sb.WriteString(fmt.Sprintf("| Created At | %s |\n", pkg.CreatedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("| Status | %s |\n", pkg.PackageStatus))
	sb.WriteString(fmt.Sprintf("| Total Files | %d |\n", pkg.TotalFiles))
	sb.WriteString(fmt.Sprintf("| Documents | %d |\n", pkg.FileCategories.Documents))
	sb.WriteString(fmt.Sprintf("| Images | %d |\n", pkg.FileCategories.Images))
	sb.WriteString(fmt.Sprintf("| Other | %d |\n", pkg.FileCategories.Other))
	sb.WriteString(fmt.Sprintf("| **Failed Files** | **%d** |\n", pkg.FailedFileCount))
	sb.WriteString("\n")

	sb.WriteString("## Files\n\n")
	sb.WriteString("| File | Type | Size | Content | Error |\n")
	sb.WriteString("|------|------|------|---------|-------|\n")
	for _, record := range pkg.FileMetadata {
		content := "—"
		if record.HasContent() {
			switch {
			case record.PdfAnalysis != nil:
				content = fmt.Sprintf("%d pages, %d words (%s)",
					record.PdfAnalysis.TotalPages, record.PdfAnalysis.WordCount, record.PdfAnalysis.ExtractionMethod)
			case record.TextAnalysis != nil:
				content = fmt.Sprintf("%d words", record.TextAnalysis.WordCount)
			case record.ImageMetadata != nil:
				content = fmt.Sprintf("%dx%d %s",
					record.ImageMetadata.Width, record.ImageMetadata.Height, record.ImageMetadata.Format)
			}
		}
		errText := record.ExtractionError
		if errText == "" {
			errText = "—"
		}
		sb.WriteString(fmt.Sprintf("| `%s` | %s | %d | %s | %s |\n",
			record.FileName, record.FileType, record.FileSize, content, errText))
	}
	sb.WriteString("\n")

	if pkg.DocumentProcessingResults != "" {
		sb.WriteString("## Document Analysis\n\n")
		sb.WriteString(pkg.DocumentProcessingResults)
		sb.WriteString("\n")
	}

	return os.WriteFile(outputFile, []byte(sb.String()), 0644)
}
