// Command hiredocs extracts structured records from career documents:
// resumes, payslips, experience letters and academic certificates.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"hiredocs/internal/common"
	"hiredocs/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "hiredocs",
	Short: "Career-document extraction pipeline",
	Long: `hiredocs converts unstructured career documents (PDF, DOCX, images) into
structured, validated JSON records: entity extraction with OCR fallback,
consistency checks, confidence scoring and certificate authenticity analysis.`,
	SilenceUsage: true,
}

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup builds the logger, config and pipeline shared by every subcommand.
func setup() (*common.Config, *pipeline.Pipeline, *slog.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	pipe, err := pipeline.New(cfg, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("initialize pipeline: %w", err)
	}
	return cfg, pipe, logger, nil
}
