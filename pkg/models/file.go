package models

import (
	"time"
)

// Category is the coarse file classification that drives extractor dispatch
type Category string

const (
	CategoryDocument Category = "document"
	CategoryImage    Category = "image"
	CategoryOther    Category = "other"
)

// FileRecord is the per-file result of the pipeline. Every input path yields
// exactly one record, even when metadata collection or extraction fails.
type FileRecord struct {
	FileName      string    `json:"file_name"`
	FilePath      string    `json:"file_path"`
	FileSize      int64     `json:"file_size"`
	FileExtension string    `json:"file_extension"`
	CreatedDate   time.Time `json:"created_date"`
	ModifiedDate  time.Time `json:"modified_date"`
	FileType      string    `json:"file_type"`
	Category      Category  `json:"category"`

	// At most one of these is set, depending on category
	PdfAnalysis   *PdfAnalysis   `json:"pdf_analysis,omitempty"`
	TextAnalysis  *TextAnalysis  `json:"text_analysis,omitempty"`
	ImageMetadata *ImageMetadata `json:"image_metadata,omitempty"`

	// ExtractionError is set when extraction failed but the record was still
	// produced; it never aborts the batch
	ExtractionError string `json:"extraction_error,omitempty"`
}

// HasContent reports whether any content analysis was produced
func (r *FileRecord) HasContent() bool {
	return r.PdfAnalysis != nil || r.TextAnalysis != nil || r.ImageMetadata != nil
}

// TextContent returns the extracted text for document-bearing records
func (r *FileRecord) TextContent() string {
	switch {
	case r.PdfAnalysis != nil:
		return r.PdfAnalysis.TextContent
	case r.TextAnalysis != nil:
		return r.TextAnalysis.TextContent
	}
	return ""
}

// ExtractionMethod identifies which PDF strategy produced an analysis
type ExtractionMethod string

const (
	MethodPrimary  ExtractionMethod = "primary"
	MethodFallback ExtractionMethod = "fallback"
)

// PdfAnalysis contains the structured extraction result for a PDF
type PdfAnalysis struct {
	TotalPages       int              `json:"total_pages"`
	HasText          bool             `json:"has_text"`
	HasImages        bool             `json:"has_images"`
	TotalImages      int              `json:"total_images"`
	TextContent      string           `json:"text_content"`
	PageDetails      []PageDetail     `json:"page_details"`
	ExtractionMethod ExtractionMethod `json:"extraction_method"`
	CharacterCount   int              `json:"character_count"`
	WordCount        int              `json:"word_count"`
}

// PageDetail summarizes a single PDF page
type PageDetail struct {
	PageNumber int  `json:"page_number"`
	TextLength int  `json:"text_length"`
	HasText    bool `json:"has_text"`
	ImageCount int  `json:"image_count"`
}

// TextAnalysis contains the extraction result for plain text files
type TextAnalysis struct {
	TextContent    string `json:"text_content"`
	CharacterCount int    `json:"character_count"`
	WordCount      int    `json:"word_count"`
}

// ImageMetadata contains the best-effort probe result for image files
type ImageMetadata struct {
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	Format          string `json:"format"`
	ColorMode       string `json:"color_mode"`
	HasTransparency bool   `json:"has_transparency"`
}

// ContentAnalysis is the extractor output before assembly into a FileRecord.
// At most one field is non-nil.
type ContentAnalysis struct {
	Pdf   *PdfAnalysis
	Text  *TextAnalysis
	Image *ImageMetadata
}

// FileStat contains filesystem-level metadata collected before extraction
type FileStat struct {
	Path      string
	Name      string
	Extension string
	Size      int64
	Created   time.Time
	Modified  time.Time
}
