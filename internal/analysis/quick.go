// Package analysis runs the two-pass job description analysis. The quick
// pass gathers signals (local keyword detection plus one LLM insight call)
// and scores confidence; the deep pass turns those signals into the final
// response, with deterministic logic deciding and the LLM only explaining.
package analysis

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/analyzejd/analyzejd/internal/companies"
	"github.com/analyzejd/analyzejd/internal/llm"
	"github.com/analyzejd/analyzejd/internal/logger"
	"github.com/analyzejd/analyzejd/internal/signals"
	"github.com/analyzejd/analyzejd/internal/types"
)

// roleUnclearThreshold: below this clarity score the role is treated as
// unclear, which feeds the startup caution rule.
const roleUnclearThreshold = 0.5

// InsightSource produces structured LLM insights for a job description.
// *llm.Analyzer is the production implementation.
type InsightSource interface {
	Analyze(ctx context.Context, jdText, companyHint string) (*types.Insights, error)
}

// Pipeline ties signal extraction, the insight call, and the decision engine
// together.
type Pipeline struct {
	insights InsightSource
	table    signals.KeywordTable
	log      *zap.Logger
}

// NewPipeline builds a Pipeline. A nil logger is replaced with a no-op one.
func NewPipeline(insights InsightSource, log *zap.Logger) *Pipeline {
	return &Pipeline{
		insights: insights,
		table:    signals.DefaultKeywordTable(),
		log:      logger.OrNop(log),
	}
}

// QuickResult carries everything the quick pass learned about a description.
type QuickResult struct {
	CompanyName   string
	Company       types.CompanyProfile
	AdvertisedCTC string

	// RiskCategories is the locally detected category set; Concerns is the
	// display list merging matched keywords with LLM red flags.
	RiskCategories types.RiskSignals
	Concerns       []string

	Insights    *types.Insights
	RoleUnclear bool

	ConfidenceScore float64
	Breakdown       ConfidenceBreakdown
	FinalVerdict    string
}

// QuickPass extracts local signals, makes the single LLM insight call, and
// scores confidence. It never fails: an LLM error downgrades to fallback
// insights and the analysis continues on deterministic signals alone.
func (p *Pipeline) QuickPass(ctx context.Context, jdText string) QuickResult {
	categories := signals.DetectRiskSignals(jdText, p.table)
	matched := signals.MatchedKeywords(jdText, p.table)
	name := companies.ExtractName(jdText)
	ctc := signals.ExtractCTC(jdText)

	ins, err := p.insights.Analyze(ctx, jdText, name)
	if err != nil {
		p.log.Warn("insight call failed, continuing with fallback",
			zap.Error(err),
			zap.String("company_hint", name))
		ins = llm.FallbackInsights("error")
	}

	// The model reads context a regex cannot; trust its company name unless
	// it punted.
	if llmName := strings.TrimSpace(ins.CompanyName); llmName != "" && !strings.EqualFold(llmName, "unknown") {
		name = llmName
	}

	typ, tier := companies.Override(name, ins.CompanyClassification.CompanyType, ins.CompanyClassification.Tier)

	concerns := mergeUnique(matched, ins.RoleAnalysis.RedFlags)

	clarity := ins.RoleAnalysis.ClarityScore
	confidence, breakdown := ConfidenceScore(name, tier, len(concerns), clarity)

	return QuickResult{
		CompanyName:     name,
		Company:         types.CompanyProfile{Name: name, Type: typ, Tier: tier},
		AdvertisedCTC:   ctc,
		RiskCategories:  categories,
		Concerns:        concerns,
		Insights:        ins,
		RoleUnclear:     clarity < roleUnclearThreshold,
		ConfidenceScore: confidence,
		Breakdown:       breakdown,
		FinalVerdict:    FinalVerdict(confidence, name, tier, concerns, ins.CandidateInsights.WhatTheyDiscover),
	}
}

// mergeUnique concatenates the lists, dropping duplicates while keeping the
// first occurrence's position.
func mergeUnique(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, s := range list {
			s = strings.TrimSpace(s)
			if s == "" || seen[strings.ToLower(s)] {
				continue
			}
			seen[strings.ToLower(s)] = true
			out = append(out, s)
		}
	}
	return out
}
