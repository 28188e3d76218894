package extractor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kycflow/docpack/pkg/models"
	"go.uber.org/zap"
)

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		limit    int
		expected string
	}{
		{"Under limit", "hello", 10, "hello"},
		{"At limit", "hello", 5, "hello"},
		{"Over limit", "hello world", 5, "hello..."},
		{"Zero limit disables", "hello", 0, "hello"},
		{"Negative limit disables", "hello", -1, "hello"},
		{"Empty text", "", 5, ""},
		{"Multibyte runes", "héllo wörld", 5, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateText(tt.text, tt.limit); got != tt.expected {
				t.Errorf("truncateText(%q, %d) = %q, want %q", tt.text, tt.limit, got, tt.expected)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"Two words", "Hello KYC", 2},
		{"Empty", "", 0},
		{"Whitespace only", "  \n\t ", 0},
		{"Multiple spaces", "a   b    c", 3},
		{"Newlines", "line one\nline two\n", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countWords(tt.text); got != tt.expected {
				t.Errorf("countWords(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestCountChars(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"Hello KYC", 9},
		{"", 0},
		{"héllo", 5}, // runes, not bytes
	}

	for _, tt := range tests {
		if got := countChars(tt.text); got != tt.expected {
			t.Errorf("countChars(%q) = %d, want %d", tt.text, got, tt.expected)
		}
	}
}

func TestDispatcherSkipsNonExtractable(t *testing.T) {
	d := NewDispatcher(2000, zap.NewNop())

	tests := []struct {
		name     string
		path     string
		category models.Category
	}{
		{"Other category", "archive.zip", models.CategoryOther},
		{"Office document", "form.docx", models.CategoryDocument},
		{"Spreadsheet", "accounts.xlsx", models.CategoryDocument},
		{"Document without extractor", "report.odt", models.CategoryDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := d.ExtractContent(context.Background(), tt.path, tt.category)
			if err != nil {
				t.Errorf("ExtractContent(%q) error = %v, want nil", tt.path, err)
			}
			if analysis != nil {
				t.Errorf("ExtractContent(%q) analysis = %+v, want nil", tt.path, analysis)
			}
		})
	}
}

func TestDispatcherRoutesText(t *testing.T) {
	d := NewDispatcher(2000, zap.NewNop())

	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	analysis, err := d.ExtractContent(context.Background(), path, models.CategoryDocument)
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}
	if analysis == nil || analysis.Text == nil {
		t.Fatal("ExtractContent() did not produce a text analysis")
	}
	if analysis.Text.TextContent != "hello" {
		t.Errorf("TextContent = %q, want hello", analysis.Text.TextContent)
	}
}
