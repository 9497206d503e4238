package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/factguard/factguard/internal/cli"
)

func main() {
	// A local .env is convenient for API keys during development;
	// absence is not an error
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
