package main

import (
	"fmt"
	"os"

	"github.com/kycflow/docpack/internal/ai"
	"github.com/kycflow/docpack/internal/config"
	"github.com/kycflow/docpack/internal/core"
	"github.com/kycflow/docpack/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ANSI colors
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[38;5;245m"
)

var (
	version = "0.1.0"
	logger  *zap.Logger
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "docpack",
		Short: "Docpack - Document & Image Metadata Extraction Pipeline",
		Long: `Extracts structured metadata and textual content from documents and images
and compiles the results into a single package for KYC analysis.`,
		Version: version,
		Run: func(cmd *cobra.Command, args []string) {
			printBanner()
			cmd.Help()
		},
	}

	// Global verbose flag
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddCommand(processCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printBanner prints the tool banner
func printBanner() {
	fmt.Println()
	fmt.Printf("%sdocpack%s %sv%s%s\n", colorBold+colorCyan, colorReset, colorGray, version, colorReset)
	fmt.Printf("%sDocument & image metadata extraction for KYC intake%s\n", colorGray, colorReset)
	fmt.Println()
}

// processCmd creates the process command
func processCmd() *cobra.Command {
	var (
		workers      int
		maxSize      string
		textLimit    int
		rulesPath    string
		reportFormat string
		outputFile   string
		// AI flags
		aiEnabled bool
		aiModel   string
		aiToken   string
		aiLang    string
	)

	cmd := &cobra.Command{
		Use:   "process [files...]",
		Short: "Process files into a metadata & content package",
		Long: `Classify each file, extract per-type metadata and text content, and
compile everything into a single result package. Per-file failures are
recorded in the package; they never abort the batch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFlags(reportFormat, aiModel, aiLang); err != nil {
				fmt.Printf("\n  %s✗ Invalid parameter:%s %s\n\n", colorRed, colorReset, err.Error())
				return err
			}

			// Initialize logger based on verbose flag
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				// Silent logger - only errors
				cfg := zap.Config{
					Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
					Encoding:         "json",
					OutputPaths:      []string{"stderr"},
					ErrorOutputPaths: []string{"stderr"},
					EncoderConfig:    zap.NewProductionEncoderConfig(),
				}
				logger, err = cfg.Build()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
				return err
			}
			defer logger.Sync()

			printBanner()

			cfg, err := config.LoadConfig()
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			// Override config with CLI flags
			if workers > 0 {
				cfg.Workers = workers
			}
			if maxSize != "" {
				cfg.MaxSize = maxSize
			}
			if textLimit > 0 {
				cfg.TextLimit = textLimit
			}
			if rulesPath != "" {
				cfg.RulesPath = rulesPath
			}
			if reportFormat != "" {
				cfg.ReportFormat = reportFormat
			}
			if outputFile != "" {
				cfg.OutputFile = outputFile
			}

			// AI configuration overrides
			if aiEnabled {
				cfg.AI.Enabled = true
			}
			if aiModel != "" {
				cfg.AI.Model = aiModel
			}
			if aiToken != "" {
				cfg.AI.APIToken = aiToken
			}
			if aiLang != "" {
				cfg.AI.Language = aiLang
			}

			compiler, err := core.NewCompiler(cfg, logger)
			if err != nil {
				logger.Error("Failed to initialize compiler", zap.Error(err))
				return err
			}

			if cfg.AI.Enabled {
				analyzer, err := ai.NewAnalyzer(&cfg.AI, logger)
				if err != nil {
					// Continue without AI - graceful degradation
					fmt.Printf("  %sAI analysis disabled: %s%s\n\n", colorGray, err.Error(), colorReset)
					logger.Debug("Failed to initialize AI analyzer", zap.Error(err))
				} else {
					compiler.SetAnalyzer(analyzer)
				}
			}

			if verbose {
				compiler.SetProgressCallback(func(phase string, current, total int, message string) {
					logger.Debug("Progress",
						zap.String("phase", phase),
						zap.Int("current", current),
						zap.Int("total", total),
						zap.String("message", message))
				})
			}

			fmt.Printf("  %sProcessing %d file(s)...%s\n", colorGray, len(args), colorReset)

			pkg, err := compiler.Compile(cmd.Context(), args)
			if err != nil {
				logger.Error("Compilation failed", zap.Error(err))
				return err
			}

			reporter := report.NewGenerator(cfg, logger)
			reportPath, err := reporter.Generate(pkg)
			if err != nil {
				logger.Error("Failed to generate report", zap.Error(err))
				return err
			}
			if reportPath != "" {
				fmt.Printf("  %sReport saved to:%s %s\n\n", colorGray, colorReset, reportPath)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of worker goroutines")
	cmd.Flags().StringVar(&maxSize, "max-size", "", "Maximum file size for content extraction (e.g. 650K, 10M)")
	cmd.Flags().IntVar(&textLimit, "text-limit", 0, "Stored text truncation limit in characters")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "Path to a YAML classification rules file")
	cmd.Flags().StringVarP(&reportFormat, "format", "f", "", "Report format: json, text, markdown (default: console)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")

	cmd.Flags().BoolVar(&aiEnabled, "ai", false, "Enable AI document analysis")
	cmd.Flags().StringVar(&aiModel, "ai-model", "", "AI model: haiku, sonnet, opus")
	cmd.Flags().StringVar(&aiToken, "ai-token", "", "Anthropic API token (or ANTHROPIC_API_KEY)")
	cmd.Flags().StringVar(&aiLang, "ai-lang", "", "Analysis language: en, ru, es, de")

	return cmd
}

// validateFlags validates CLI flags before execution
func validateFlags(reportFormat, aiModel, aiLang string) error {
	switch reportFormat {
	case "", "json", "txt", "text", "md", "markdown":
	default:
		return fmt.Errorf("unknown report format %q (expected json, text or markdown)", reportFormat)
	}

	switch aiModel {
	case "", "haiku", "sonnet", "opus":
	default:
		return fmt.Errorf("unknown AI model %q (expected haiku, sonnet or opus)", aiModel)
	}

	switch aiLang {
	case "", "en", "ru", "es", "de":
	default:
		return fmt.Errorf("unsupported analysis language %q", aiLang)
	}

	return nil
}
