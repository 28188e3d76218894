package models

import "testing"

func TestHasContent(t *testing.T) {
	tests := []struct {
		name   string
		record FileRecord
		want   bool
	}{
		{"No analysis", FileRecord{}, false},
		{"PDF analysis", FileRecord{PdfAnalysis: &PdfAnalysis{}}, true},
		{"Text analysis", FileRecord{TextAnalysis: &TextAnalysis{}}, true},
		{"Image metadata", FileRecord{ImageMetadata: &ImageMetadata{}}, true},
		{"Error only", FileRecord{ExtractionError: "boom"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.HasContent(); got != tt.want {
				t.Errorf("HasContent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextContent(t *testing.T) {
	tests := []struct {
		name   string
		record FileRecord
		want   string
	}{
		{"No analysis", FileRecord{}, ""},
		{"PDF text", FileRecord{PdfAnalysis: &PdfAnalysis{TextContent: "from pdf"}}, "from pdf"},
		{"Plain text", FileRecord{TextAnalysis: &TextAnalysis{TextContent: "from txt"}}, "from txt"},
		{"Image has no text", FileRecord{ImageMetadata: &ImageMetadata{}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.TextContent(); got != tt.want {
				t.Errorf("TextContent() = %q, want %q", got, tt.want)
			}
		})
	}
}
