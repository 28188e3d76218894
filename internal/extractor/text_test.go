package extractor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTextExtract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("Hello KYC"), 0644); err != nil {
		t.Fatal(err)
	}

	e := NewTextExtractor(2000)
	analysis, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if analysis == nil || analysis.Text == nil {
		t.Fatal("Extract() did not produce a text analysis")
	}

	text := analysis.Text
	if text.TextContent != "Hello KYC" {
		t.Errorf("TextContent = %q, want \"Hello KYC\"", text.TextContent)
	}
	if text.CharacterCount != 9 {
		t.Errorf("CharacterCount = %d, want 9", text.CharacterCount)
	}
	if text.WordCount != 2 {
		t.Errorf("WordCount = %d, want 2", text.WordCount)
	}
}

func TestTextExtractTruncation(t *testing.T) {
	content := strings.Repeat("a", 50)
	path := filepath.Join(t.TempDir(), "long.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	e := NewTextExtractor(10)
	analysis, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	text := analysis.Text
	if text.TextContent != strings.Repeat("a", 10)+"..." {
		t.Errorf("TextContent = %q, want 10 chars plus ellipsis", text.TextContent)
	}
	// Counts are taken over the full text, not the truncated copy
	if text.CharacterCount != 50 {
		t.Errorf("CharacterCount = %d, want 50", text.CharacterCount)
	}
}

func TestTextExtractErrors(t *testing.T) {
	dir := t.TempDir()

	binary := filepath.Join(dir, "binary.txt")
	if err := os.WriteFile(binary, []byte{0xff, 0xfe, 0x00, 0x80}, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"Missing file", filepath.Join(dir, "missing.txt")},
		{"Invalid UTF-8", binary},
	}

	e := NewTextExtractor(2000)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := e.Extract(context.Background(), tt.path)
			if err == nil {
				t.Error("Extract() expected error, got nil")
			}
			if analysis != nil {
				t.Errorf("Extract() analysis = %+v, want nil on error", analysis)
			}
		})
	}
}
