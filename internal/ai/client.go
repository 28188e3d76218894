package ai

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Client wraps the Anthropic API client
type Client struct {
	client  *anthropic.Client
	model   string
	timeout time.Duration
}

// NewClient creates a new AI client
func NewClient(model string, apiToken string, timeoutSeconds int) (*Client, error) {
	// Resolve API token: parameter > environment variable
	token := apiToken
	if token == "" {
		token = os.Getenv("ANTHROPIC_API_KEY")
	}
	if token == "" {
		return nil, errors.New("no API token provided: set --ai-token flag or ANTHROPIC_API_KEY environment variable")
	}

	client := anthropic.NewClient(option.WithAPIKey(token))

	// Map model name to model ID
	modelID := mapModelName(model)

	timeout := time.Duration(timeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		client:  client,
		model:   modelID,
		timeout: timeout,
	}, nil
}

// mapModelName converts friendly model names to model IDs
func mapModelName(name string) string {
	switch strings.ToLower(name) {
	case "haiku":
		return "claude-3-5-haiku-latest"
	case "sonnet":
		return "claude-sonnet-4-20250514"
	case "opus":
		return "claude-opus-4-20250514"
	default:
		// Default to sonnet if unknown
		return "claude-sonnet-4-20250514"
	}
}

// Complete sends a prompt pair to the API and returns the response text and
// token usage
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int64) (string, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.F(c.model),
		MaxTokens: anthropic.F(maxTokens),
		System: anthropic.F([]anthropic.TextBlockParam{
			anthropic.NewTextBlock(systemPrompt),
		}),
		Messages: anthropic.F([]anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		}),
	})
	if err != nil {
		return "", 0, fmt.Errorf("API request failed: %w", err)
	}

	responseText := extractTextContent(message)
	if responseText == "" {
		return "", 0, errors.New("empty response from API")
	}

	tokensUsed := int(message.Usage.InputTokens + message.Usage.OutputTokens)
	return responseText, tokensUsed, nil
}

// extractTextContent extracts text from the message response
func extractTextContent(message *anthropic.Message) string {
	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == anthropic.ContentBlockTypeText {
			text.WriteString(block.Text)
		}
	}
	return text.String()
}

// GetModel returns the current model being used
func (c *Client) GetModel() string {
	return c.model
}
