package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/factguard/factguard/internal/model"
	"github.com/factguard/factguard/internal/pipeline"
	"github.com/factguard/factguard/internal/respond"
)

var (
	outJSON     string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	insecureTLS bool
	imageText   bool
	llmProvider string
	llmModel    string
	httpProxy   string
	httpsProxy  string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <claim|url>",
	Short: "Verify a claim, URL, or OCR text",
	Long: `Verify extracts checkable claims from the input, routes each one to
the evidence agents that can test it, and renders a verdict.

URLs are fetched and their article text is verified. Use --image-text
when the input is OCR output from a screenshot; it is then classified
for intent first and reconstructed under a more permissive policy.

Example:
  factguard verify "The US captured President Maduro yesterday"
  factguard verify https://example.com/article
  factguard verify --image-text "BREAKING: Gold hits $3000"
  factguard verify "Tesla stock doubled" --llm-provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&outJSON, "json", "", "write full report JSON to path")
	verifyCmd.Flags().BoolVar(&imageText, "image-text", false, "treat input as OCR text from an image")

	// HTTP flags
	verifyCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall verification timeout")
	verifyCmd.Flags().StringVar(&userAgent, "ua", "FactGuard/0.1 (+https://github.com/factguard/factguard)", "HTTP User-Agent")
	verifyCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	verifyCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable evidence caching")
	verifyCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")
	verifyCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	verifyCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// Reasoning flags
	verifyCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "reasoning provider (openai, ollama; empty disables)")
	verifyCmd.Flags().StringVar(&llmModel, "llm-model", "", "reasoning model name")
}

func runVerify(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	verifier := pipeline.NewVerifier(cfg, buildCache(cfg))

	var report *model.VerificationReport
	if imageText {
		report, err = verifier.VerifyImageText(ctx, input)
	} else {
		report, err = verifier.Verify(ctx, input)
	}
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	printReport(report)

	if outJSON != "" {
		if err := writeReportJSON(report, outJSON); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Report written to %s\n", outJSON)
		}
	}

	return nil
}

// printReport renders the report to stdout
func printReport(report *model.VerificationReport) {
	if report.Message != "" {
		fmt.Println(report.Message)
		return
	}
	if !report.Verified() {
		fmt.Println(respond.NoClaims())
		return
	}

	if len(report.Claims) > 1 {
		supported, refuted := countVerdicts(report.Claims)
		fmt.Println(respond.Summarize(len(report.Claims), supported, refuted))
		fmt.Println("---")
	}

	for i, claim := range report.Claims {
		if i > 0 {
			fmt.Println("---")
		}
		fmt.Print(claim.Rendered)
	}
}

// countVerdicts tallies the outcomes for the report header
func countVerdicts(claims []model.ClaimResult) (supported, refuted int) {
	for _, c := range claims {
		switch c.Verdict.Verdict {
		case model.VerdictSupported:
			supported++
		case model.VerdictFalse, model.VerdictContradicted:
			refuted++
		}
	}
	return supported, refuted
}

func writeReportJSON(report *model.VerificationReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
