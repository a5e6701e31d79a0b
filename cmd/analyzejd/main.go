// Package main provides the entry point for the AnalyzeJD HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "analyzejd",
	Short: "AnalyzeJD HTTP API Server",
	Long:  "AnalyzeJD analyzes pasted job descriptions for Indian tech freshers: company classification, risk signals, and an apply/skip verdict with resume guidance.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
