package classifier

import (
	"testing"

	"github.com/kycflow/docpack/pkg/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantCategory models.Category
		wantType     string
	}{
		{"PDF", "/docs/passport.pdf", models.CategoryDocument, "PDF Document"},
		{"PDF uppercase", "/docs/PASSPORT.PDF", models.CategoryDocument, "PDF Document"},
		{"Text file", "statement.txt", models.CategoryDocument, "Text File"},
		{"Word legacy", "form.doc", models.CategoryDocument, "Word Document"},
		{"Word modern", "form.docx", models.CategoryDocument, "Word Document"},
		{"Excel", "accounts.xlsx", models.CategoryDocument, "Excel Spreadsheet"},
		{"PowerPoint", "deck.pptx", models.CategoryDocument, "PowerPoint Presentation"},
		{"JPEG", "selfie.jpg", models.CategoryImage, "Image"},
		{"JPEG long ext", "selfie.jpeg", models.CategoryImage, "Image"},
		{"PNG", "id-card.png", models.CategoryImage, "Image"},
		{"TIFF", "scan.tiff", models.CategoryImage, "Image"},
		{"Unknown extension", "archive.zip", models.CategoryOther, UnknownFileType},
		{"No extension", "README", models.CategoryOther, UnknownFileType},
		{"Empty path", "", models.CategoryOther, UnknownFileType},
		{"Dot only", ".", models.CategoryOther, UnknownFileType},
		{"Hidden file", "/home/user/.bashrc", models.CategoryOther, UnknownFileType},
		{"Double extension", "backup.pdf.bak", models.CategoryOther, UnknownFileType},
	}

	rs := NewRuleset()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, fileType := rs.Classify(tt.path)
			if category != tt.wantCategory {
				t.Errorf("Classify(%q) category = %v, want %v", tt.path, category, tt.wantCategory)
			}
			if fileType != tt.wantType {
				t.Errorf("Classify(%q) fileType = %v, want %v", tt.path, fileType, tt.wantType)
			}
		})
	}
}

func TestClassifyTotality(t *testing.T) {
	// Classification must resolve every input to a known category. This
	// goes through the package-level entry point, which uses the built-in
	// table only.
	inputs := []string{
		"", ".", "..", "...", "file.", "file..", "no-ext",
		"weird.✓", "spaces in name.xyz", "/", "//", "a.b.c.d",
	}

	for _, input := range inputs {
		category, fileType := Classify(input)
		switch category {
		case models.CategoryDocument, models.CategoryImage, models.CategoryOther:
		default:
			t.Errorf("Classify(%q) returned unknown category %q", input, category)
		}
		if fileType == "" {
			t.Errorf("Classify(%q) returned empty file type", input)
		}
	}
}
