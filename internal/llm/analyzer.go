package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/analyzejd/analyzejd/internal/prompts"
	"github.com/analyzejd/analyzejd/internal/schemas"
	"github.com/analyzejd/analyzejd/internal/types"
)

const (
	promptFile = "analyzer.json"

	// maxJDChars bounds the prompt size; descriptions longer than this carry
	// no additional signal worth the token cost.
	maxJDChars = 4000
)

// Analyzer produces structured insights for a job description with a single
// JSON-mode call. It never decides anything: the output is explanation
// material plus classification hints that deterministic code may override.
type Analyzer struct {
	client Client
	tier   ModelTier
}

// NewAnalyzer returns an Analyzer that generates insights at the given tier.
func NewAnalyzer(client Client, tier ModelTier) *Analyzer {
	return &Analyzer{client: client, tier: tier}
}

// Analyze runs the insight call for one job description. companyHint is the
// heuristically extracted company name, or empty when extraction failed.
// Any failure (transport, malformed JSON, schema violation) is returned as an
// error; callers substitute FallbackInsights.
func (a *Analyzer) Analyze(ctx context.Context, jdText, companyHint string) (*types.Insights, error) {
	system, err := prompts.Get(promptFile, "system")
	if err != nil {
		return nil, fmt.Errorf("failed to load system prompt: %w", err)
	}
	userTemplate, err := prompts.Get(promptFile, "user")
	if err != nil {
		return nil, fmt.Errorf("failed to load user prompt: %w", err)
	}

	if companyHint == "" {
		companyHint = "Unknown"
	}
	user := prompts.Format(userTemplate, map[string]string{
		"CompanyName":    companyHint,
		"JobDescription": truncate(jdText, maxJDChars),
	})

	raw, err := a.client.GenerateJSON(ctx, system+"\n\n"+user, a.tier)
	if err != nil {
		return nil, fmt.Errorf("insight generation failed: %w", err)
	}

	if err := schemas.ValidateInsights(raw); err != nil {
		return nil, fmt.Errorf("insight response rejected: %w", err)
	}

	var insights types.Insights
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		return nil, fmt.Errorf("failed to parse insight response: %w", err)
	}

	insights.Meta = types.InsightsMeta{
		Source: string(ProviderGemini),
		Model:  a.client.GetModel(a.tier),
	}
	return &insights, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Cut at a rune boundary so the prompt never carries a broken UTF-8 tail.
	cut := n
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut])
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
