package ai

import (
	"strings"
	"testing"
)

func TestMapModelName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Haiku", "haiku", "claude-3-5-haiku-latest"},
		{"Sonnet", "sonnet", "claude-sonnet-4-20250514"},
		{"Opus", "opus", "claude-opus-4-20250514"},
		{"Case insensitive", "HAIKU", "claude-3-5-haiku-latest"},
		{"Unknown falls back to sonnet", "gpt-4", "claude-sonnet-4-20250514"},
		{"Empty falls back to sonnet", "", "claude-sonnet-4-20250514"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapModelName(tt.input); got != tt.want {
				t.Errorf("mapModelName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewClientNoToken(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := NewClient("sonnet", "", 60)
	if err == nil {
		t.Fatal("NewClient() expected error without token")
	}
	if !strings.Contains(err.Error(), "no API token provided") {
		t.Errorf("error = %q, want token guidance", err)
	}
}

func TestNewClientTokenPrecedence(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-token")

	client, err := NewClient("haiku", "flag-token", 0)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.GetModel() != "claude-3-5-haiku-latest" {
		t.Errorf("GetModel() = %q", client.GetModel())
	}
	// Zero timeout falls back to the default
	if client.timeout.Seconds() != 60 {
		t.Errorf("timeout = %v, want 60s", client.timeout)
	}
}
