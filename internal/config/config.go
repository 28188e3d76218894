package config

import (
	"runtime"

	"github.com/spf13/viper"
)

// Config represents the pipeline configuration
type Config struct {
	// Pipeline settings
	Workers   int    `mapstructure:"workers"`    // number of worker goroutines
	MaxSize   string `mapstructure:"max_size"`   // maximum file size for content extraction
	TextLimit int    `mapstructure:"text_limit"` // stored text truncation limit (chars)
	RulesPath string `mapstructure:"rules_path"` // optional classification rules file

	// Report settings
	ReportFormat string `mapstructure:"report_format"` // json, text, markdown
	OutputFile   string `mapstructure:"output_file"`   // output file path

	// AI settings
	AI AIConfig `mapstructure:"ai"` // AI-powered document analysis configuration
}

// AIConfig holds AI analysis configuration
type AIConfig struct {
	Enabled      bool   `mapstructure:"ai_enabled"`       // Enable AI-powered document analysis
	Model        string `mapstructure:"ai_model"`         // Model: haiku, sonnet, opus
	APIToken     string `mapstructure:"ai_token"`         // Anthropic API token
	Timeout      int    `mapstructure:"ai_timeout"`       // Seconds per request
	Language     string `mapstructure:"ai_language"`      // Report language: en, ru, es, de
	MaxDocuments int    `mapstructure:"ai_max_documents"` // Cost control limit
}

// LoadConfig loads configuration from environment variables and defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("max_size", "50M")
	v.SetDefault("text_limit", 2000)
	v.SetDefault("rules_path", "")
	v.SetDefault("report_format", "")
	v.SetDefault("output_file", "")

	// AI defaults
	v.SetDefault("ai.ai_enabled", false)
	v.SetDefault("ai.ai_model", "sonnet")
	v.SetDefault("ai.ai_timeout", 60)
	v.SetDefault("ai.ai_language", "en")
	v.SetDefault("ai.ai_max_documents", 25)

	// Read environment variables
	v.SetEnvPrefix("DOCPACK")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
