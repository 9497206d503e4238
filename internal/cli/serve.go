package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/factguard/factguard/internal/pipeline"
	transport "github.com/factguard/factguard/internal/transport/http"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the verification HTTP API",
	Long: `Serve exposes verification over HTTP:

  POST /verify   {"claim": "..."} or {"url": "..."} or {"ocr_text": "..."}
  GET  /healthz

Example:
  factguard serve --addr :8080
  OPENAI_API_KEY=... factguard serve --llm-provider openai`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "reasoning provider (openai, ollama; empty disables)")
	serveCmd.Flags().StringVar(&llmModel, "llm-model", "", "reasoning model name")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable evidence caching")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	verifier := pipeline.NewVerifier(cfg, buildCache(cfg))
	server := transport.NewServer(serveAddr, verifier, verbose)

	errCh := make(chan error, 1)
	go func() {
		fmt.Fprintf(os.Stderr, "Listening on %s\n", serveAddr)
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-sigCh:
		fmt.Fprintf(os.Stderr, "Received %v, shutting down\n", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
