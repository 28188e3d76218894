package models

import "time"

// PackageStatus reflects whether the pipeline ran to completion. COMPLETED
// means every input file produced a FileRecord; per-file extraction errors do
// not degrade the status. Consumers that need success/failure differentiation
// should look at FailedFileCount.
type PackageStatus string

const (
	StatusCompleted PackageStatus = "COMPLETED"
	StatusDegraded  PackageStatus = "DEGRADED"
)

// ResultPackage is the single structured output of a batch run
type ResultPackage struct {
	PackageID        string        `json:"package_id"`
	CreatedAt        time.Time     `json:"created_at"`
	ProcessingMethod string        `json:"processing_method"`
	TotalFiles       int           `json:"total_files"`

	FileCategories   CategoryCounts   `json:"file_categories"`
	CategorizedFiles CategorizedFiles `json:"categorized_files"`
	FileMetadata     []*FileRecord    `json:"file_metadata"`

	// Collaborator-owned fields: opaque result strings from the downstream
	// analysis step
	DocumentProcessingResults string   `json:"document_processing_results"`
	VisionAnalysisResults     string   `json:"vision_analysis_results"`
	AnalyzersUsed             []string `json:"analyzers_used"`

	FailedFileCount int           `json:"failed_file_count"`
	PackageStatus   PackageStatus `json:"package_status"`
}

// CategoryCounts holds per-category file counts
type CategoryCounts struct {
	Images    int `json:"images"`
	Documents int `json:"documents"`
	Other     int `json:"other"`
}

// CategorizedFiles holds per-category file names in input order
type CategorizedFiles struct {
	Images    []string `json:"images"`
	Documents []string `json:"documents"`
	Other     []string `json:"other"`
}

// AddRecord appends a record, updating category counts and lists. Records
// must be added in input order.
func (p *ResultPackage) AddRecord(r *FileRecord) {
	p.FileMetadata = append(p.FileMetadata, r)

	switch r.Category {
	case CategoryImage:
		p.FileCategories.Images++
		p.CategorizedFiles.Images = append(p.CategorizedFiles.Images, r.FileName)
	case CategoryDocument:
		p.FileCategories.Documents++
		p.CategorizedFiles.Documents = append(p.CategorizedFiles.Documents, r.FileName)
	default:
		p.FileCategories.Other++
		p.CategorizedFiles.Other = append(p.CategorizedFiles.Other, r.FileName)
	}

	if r.ExtractionError != "" {
		p.FailedFileCount++
	}
}
