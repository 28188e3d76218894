package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/kycflow/docpack/internal/config"
	"go.uber.org/zap"
)

// maxResponseTokens bounds the analysis response size
const maxResponseTokens = 4096

// Analyzer performs AI-powered content analysis of extracted documents
type Analyzer struct {
	client *Client
	config *config.AIConfig
	logger *zap.Logger
}

// NewAnalyzer creates a new document analyzer
func NewAnalyzer(cfg *config.AIConfig, logger *zap.Logger) (*Analyzer, error) {
	client, err := NewClient(cfg.Model, cfg.APIToken, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		client: client,
		config: cfg,
		logger: logger,
	}, nil
}

// AnalyzeDocuments sends a document batch for analysis and returns the
// findings as an opaque string for the result package
func (a *Analyzer) AnalyzeDocuments(ctx context.Context, docs []DocumentInput) (string, error) {
	if len(docs) == 0 {
		return "", fmt.Errorf("no documents to analyze")
	}

	// Limit documents if configured
	if a.config.MaxDocuments > 0 && len(docs) > a.config.MaxDocuments {
		a.logger.Info("Limiting documents for AI analysis",
			zap.Int("total", len(docs)),
			zap.Int("limit", a.config.MaxDocuments))
		docs = docs[:a.config.MaxDocuments]
	}

	start := time.Now()
	a.logger.Info("Running document analysis",
		zap.String("model", a.client.GetModel()),
		zap.Int("documents", len(docs)))

	userPrompt := BuildDocumentAnalysisPrompt(docs, a.config.Language)

	findings, tokensUsed, err := a.client.Complete(ctx, DocumentAnalysisSystemPrompt, userPrompt, maxResponseTokens)
	if err != nil {
		return "", fmt.Errorf("document analysis failed: %w", err)
	}

	a.logger.Info("Document analysis complete",
		zap.Int("documents", len(docs)),
		zap.Int("tokens_used", tokensUsed),
		zap.Duration("duration", time.Since(start)))

	return findings, nil
}
