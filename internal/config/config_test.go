package config

import (
	"runtime"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d", cfg.Workers, runtime.NumCPU())
	}
	if cfg.MaxSize != "50M" {
		t.Errorf("MaxSize = %q, want \"50M\"", cfg.MaxSize)
	}
	if cfg.TextLimit != 2000 {
		t.Errorf("TextLimit = %d, want 2000", cfg.TextLimit)
	}
	if cfg.ReportFormat != "" {
		t.Errorf("ReportFormat = %q, want empty", cfg.ReportFormat)
	}

	if cfg.AI.Enabled {
		t.Error("AI.Enabled = true, want false by default")
	}
	if cfg.AI.Model != "sonnet" {
		t.Errorf("AI.Model = %q, want \"sonnet\"", cfg.AI.Model)
	}
	if cfg.AI.Timeout != 60 {
		t.Errorf("AI.Timeout = %d, want 60", cfg.AI.Timeout)
	}
	if cfg.AI.Language != "en" {
		t.Errorf("AI.Language = %q, want \"en\"", cfg.AI.Language)
	}
	if cfg.AI.MaxDocuments != 25 {
		t.Errorf("AI.MaxDocuments = %d, want 25", cfg.AI.MaxDocuments)
	}
}
