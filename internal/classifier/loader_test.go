package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kycflow/docpack/pkg/models"
)

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "no-such-rules.yaml"))
	rs, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() with missing file returned error: %v", err)
	}

	// Built-in table must still apply
	category, _ := rs.Classify("file.pdf")
	if category != models.CategoryDocument {
		t.Errorf("Classify(file.pdf) = %v, want document", category)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	rs, err := NewLoader("").Load()
	if err != nil {
		t.Fatalf("Load() with empty path returned error: %v", err)
	}
	if rs == nil {
		t.Fatal("Load() returned nil ruleset")
	}
}

func TestLoadExtendsAndOverrides(t *testing.T) {
	rulesYAML := `rules:
  - extension: .csv
    category: document
    label: CSV Data File
  - extension: webp
    category: image
    label: Image
  - extension: .txt
    category: other
    label: Ignored Text
`
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(rulesYAML), 0644); err != nil {
		t.Fatal(err)
	}

	rs, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	tests := []struct {
		path         string
		wantCategory models.Category
		wantType     string
	}{
		{"data.csv", models.CategoryDocument, "CSV Data File"},
		{"photo.webp", models.CategoryImage, "Image"}, // extension normalized with leading dot
		{"notes.txt", models.CategoryOther, "Ignored Text"}, // built-in rule overridden
		{"scan.pdf", models.CategoryDocument, "PDF Document"}, // built-in rule untouched
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			category, fileType := rs.Classify(tt.path)
			if category != tt.wantCategory || fileType != tt.wantType {
				t.Errorf("Classify(%q) = (%v, %q), want (%v, %q)",
					tt.path, category, fileType, tt.wantCategory, tt.wantType)
			}
		})
	}
}

func TestLoadInvalidRules(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Bad YAML", "rules: [unclosed"},
		{"Unknown category", "rules:\n  - extension: .csv\n    category: spreadsheet\n"},
		{"Empty extension", "rules:\n  - extension: \"\"\n    category: document\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rules.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := NewLoader(path).Load(); err == nil {
				t.Error("Load() expected error, got nil")
			}
		})
	}
}
