package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/factguard/factguard/internal/pipeline"
	"github.com/factguard/factguard/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Verify multiple inputs from a file in parallel",
	Long: `Batch verifies multiple claims or URLs concurrently:
- Read inputs from a file (one per line, # comments skipped)
- Verify inputs in parallel with a configurable worker count
- Write one JSON report per input

Example:
  factguard batch claims.txt
  factguard batch claims.txt --concurrency 10 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./factguard-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "reasoning provider (openai, ollama; empty disables)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "reasoning model name")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable evidence caching")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	verifier := pipeline.NewVerifier(cfg, buildCache(cfg))
	processor := worker.NewBatchProcessor(verifier, concurrency)

	if verbose {
		fmt.Fprintf(os.Stderr, "Input file: %s\n", file)
		fmt.Fprintf(os.Stderr, "Workers:    %d\n", concurrency)
		fmt.Fprintf(os.Stderr, "Output dir: %s\n\n", outputDir)
	}

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	failed := 0
	for i, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Input, result.Error)
			continue
		}

		path := filepath.Join(outputDir, fmt.Sprintf("report-%03d.json", i+1))
		data, err := json.MarshalIndent(result.Report, "", "  ")
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: marshal report: %v\n", result.Input, err)
			continue
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: write report: %v\n", result.Input, err)
			continue
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s → %s\n", result.Input, path)
		}
	}

	fmt.Fprintf(os.Stderr, "\nProcessed %d inputs (%d failed), reports in %s\n", len(results), failed, outputDir)

	if failed == len(results) && len(results) > 0 {
		return fmt.Errorf("all %d inputs failed", failed)
	}
	return nil
}
