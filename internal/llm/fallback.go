package llm

import "github.com/analyzejd/analyzejd/internal/types"

// fallbackClarityScore is the neutral clarity assumed when no model read the
// description; it keeps confidence scoring in a sensible middle band.
const fallbackClarityScore = 0.5

// FallbackInsights returns the insights used when the LLM call fails. Every
// decision-relevant field is a neutral sentinel so deterministic logic still
// produces a complete analysis; explanation fields are left empty for the
// template layer to fill.
func FallbackInsights(reason string) *types.Insights {
	return &types.Insights{
		CompanyClassification: types.CompanyClassification{
			CompanyType: string(types.CompanyUnknown),
			Tier:        string(types.TierUnknown),
		},
		RoleAnalysis: types.RoleAnalysis{
			ClarityScore: fallbackClarityScore,
		},
		CandidateInsights: types.CandidateInsights{
			WhatTheyDiscover: "Unable to analyze. Research the company independently.",
		},
		Meta: types.InsightsMeta{
			Source: "fallback:" + reason,
		},
	}
}
