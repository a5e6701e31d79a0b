package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/analyzejd/analyzejd/internal/analysis"
	"github.com/analyzejd/analyzejd/internal/llm"
	"github.com/analyzejd/analyzejd/internal/observability"
)

var (
	analyzeFile   string
	analyzePretty bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description and print the result as JSON",
	Long: `Run the analysis pipeline once, without the server or database.
The job description is read from --file, or from stdin when no file is given.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to a file containing the job description (defaults to stdin)")
	analyzeCmd.Flags().BoolVar(&analyzePretty, "pretty", false, "Render the result for reading instead of emitting JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	jdText, err := readJD()
	if err != nil {
		return err
	}
	if len(jdText) < 50 {
		return fmt.Errorf("job description must be at least 50 characters")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := llm.NewClient(ctx, llm.ConfigFromEnv(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	pipeline := analysis.NewPipeline(llm.NewAnalyzer(client, llm.TierStandard), nil)
	result := pipeline.Analyze(ctx, jdText)

	if analyzePretty {
		observability.NewPrinter(os.Stdout).PrintAnalysis(&result.Response)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result.Response)
}

func readJD() (string, error) {
	if analyzeFile == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(analyzeFile)
	if err != nil {
		return "", fmt.Errorf("failed to read job description: %w", err)
	}
	return string(data), nil
}
