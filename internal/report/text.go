package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/kycflow/docpack/pkg/models"
)

// generateText generates a text report
func (g *Generator) generateText(pkg *models.ResultPackage, outputFile string) error {
	var sb strings.Builder

	sb.WriteString("=" + strings.Repeat("=", 78) + "\n")
	sb.WriteString("  DOCPACK PROCESSING REPORT\n")
	sb.WriteString("=" + strings.Repeat("=", 78) + "\n\n")

	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 79) + "\n")
	sb.WriteString(fmt.Sprintf("Package ID:       %s\n", pkg.PackageID))
	sb.WriteString(fmt.Sprintf("Created At:       %s\n", pkg.CreatedAt.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Status:           %s\n", pkg.PackageStatus))
	sb.WriteString(fmt.Sprintf("Total Files:      %d\n", pkg.TotalFiles))
	sb.WriteString(fmt.Sprintf("Documents:        %d\n", pkg.FileCategories.Documents))
	sb.WriteString(fmt.Sprintf("Images:           %d\n", pkg.FileCategories.Images))
	sb.WriteString(fmt.Sprintf("Other:            %d\n", pkg.FileCategories.Other))
	sb.WriteString(fmt.Sprintf("Failed Files:     %d\n", pkg.FailedFileCount))
	sb.WriteString("\n")

	sb.WriteString("FILES\n")
	sb.WriteString(strings.Repeat("-", 79) + "\n")
	for i, record := range pkg.FileMetadata {
		sb.WriteString(fmt.Sprintf("[%d] %s\n", i+1, record.FilePath))
		sb.WriteString(fmt.Sprintf("    Type:      %s (%s)\n", record.FileType, record.Category))
		sb.WriteString(fmt.Sprintf("    Size:      %d bytes\n", record.FileSize))
		sb.WriteString(fmt.Sprintf("    Modified:  %s\n", record.ModifiedDate.Format("2006-01-02 15:04:05")))

		switch {
		case record.PdfAnalysis != nil:
			pdf := record.PdfAnalysis
			sb.WriteString(fmt.Sprintf("    Pages:     %d (method: %s)\n", pdf.TotalPages, pdf.ExtractionMethod))
			sb.WriteString(fmt.Sprintf("    Text:      %d chars, %d words\n", pdf.CharacterCount, pdf.WordCount))
			sb.WriteString(fmt.Sprintf("    Images:    %d\n", pdf.TotalImages))
		case record.TextAnalysis != nil:
			text := record.TextAnalysis
			sb.WriteString(fmt.Sprintf("    Text:      %d chars, %d words\n", text.CharacterCount, text.WordCount))
		case record.ImageMetadata != nil:
			img := record.ImageMetadata
			sb.WriteString(fmt.Sprintf("    Image:     %dx%d %s (%s)\n", img.Width, img.Height, img.Format, img.ColorMode))
		}

		if record.ExtractionError != "" {
			sb.WriteString(fmt.Sprintf("    ERROR:     %s\n", record.ExtractionError))
		}
		sb.WriteString("\n")
	}

	if pkg.DocumentProcessingResults != "" {
		sb.WriteString("DOCUMENT ANALYSIS\n")
		sb.WriteString(strings.Repeat("-", 79) + "\n")
		sb.WriteString(pkg.DocumentProcessingResults)
		sb.WriteString("\n\n")
	}

	return os.WriteFile(outputFile, []byte(sb.String()), 0644)
}
