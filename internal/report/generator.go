package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kycflow/docpack/internal/config"
	"github.com/kycflow/docpack/pkg/models"
	"go.uber.org/zap"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[38;5;245m"
)

// Generator generates result package reports in various formats
type Generator struct {
	config *config.Config
	logger *zap.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		config: cfg,
		logger: logger,
	}
}

// Generate writes a report for the package. With no format configured the
// summary is printed to the console and no file is written.
func (g *Generator) Generate(pkg *models.ResultPackage) (string, error) {
	format := g.config.ReportFormat
	outputFile := g.config.OutputFile

	if format == "" {
		g.printConsole(pkg)
		return "", nil
	}

	// Generate default filename if not specified
	if outputFile == "" {
		timestamp := time.Now().Format("20060102-150405")
		switch format {
		case "json":
			outputFile = fmt.Sprintf("DOCPACK-REPORT-%s.json", timestamp)
		case "txt", "text":
			outputFile = fmt.Sprintf("DOCPACK-REPORT-%s.txt", timestamp)
		case "md", "markdown":
			outputFile = fmt.Sprintf("DOCPACK-REPORT-%s.md", timestamp)
		default:
			return "", fmt.Errorf("unknown report format: %s", format)
		}
	}

	g.logger.Info("Generating report",
		zap.String("format", format),
		zap.String("output", outputFile))

	var err error
	switch format {
	case "json":
		err = g.generateJSON(pkg, outputFile)
	case "txt", "text":
		err = g.generateText(pkg, outputFile)
	case "md", "markdown":
		err = g.generateMarkdown(pkg, outputFile)
	default:
		return "", fmt.Errorf("unknown report format: %s", format)
	}

	if err != nil {
		return "", fmt.Errorf("failed to generate %s report: %w", format, err)
	}

	absPath, _ := filepath.Abs(outputFile)
	return absPath, nil
}

// printConsole prints the package summary to stdout with colors
func (g *Generator) printConsole(pkg *models.ResultPackage) {
	fmt.Println()
	fmt.Printf("%s%sPROCESSING COMPLETE%s\n", colorBold, colorCyan, colorReset)
	fmt.Println()

	fmt.Printf("  %sPackage ID:%s  %s\n", colorGray, colorReset, pkg.PackageID)
	fmt.Printf("  %sStatus:%s      %s\n", colorGray, colorReset, pkg.PackageStatus)
	fmt.Printf("  %sFiles:%s       %d\n", colorGray, colorReset, pkg.TotalFiles)
	fmt.Println()

	fmt.Printf("  %sDocuments:%s   %d\n", colorGray, colorReset, pkg.FileCategories.Documents)
	fmt.Printf("  %sImages:%s      %d\n", colorGray, colorReset, pkg.FileCategories.Images)
	fmt.Printf("  %sOther:%s       %d\n", colorGray, colorReset, pkg.FileCategories.Other)
	fmt.Println()

	if pkg.FailedFileCount == 0 {
		fmt.Printf("  %s%s✓ All files processed%s\n", colorBold, colorGreen, colorReset)
	} else {
		fmt.Printf("  %s%s⚠ Extraction errors: %d%s\n", colorBold, colorYellow, pkg.FailedFileCount, colorReset)
		for _, record := range pkg.FileMetadata {
			if record.ExtractionError != "" {
				fmt.Printf("    %s%s%s: %s%s%s\n",
					colorCyan, record.FilePath, colorReset,
					colorRed, record.ExtractionError, colorReset)
			}
		}
	}
	fmt.Println()
}
