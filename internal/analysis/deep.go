package analysis

import (
	"context"

	"github.com/analyzejd/analyzejd/internal/decision"
	"github.com/analyzejd/analyzejd/internal/explain"
	"github.com/analyzejd/analyzejd/internal/signals"
	"github.com/analyzejd/analyzejd/internal/types"
)

// Result is the complete pipeline output: the API response plus the quick
// pass facts the server persists alongside it.
type Result struct {
	Response types.AnalysisResponse
	Quick    QuickResult
	Verdict  types.Verdict
}

// Analyze runs the full two-pass analysis.
func (p *Pipeline) Analyze(ctx context.Context, jdText string) Result {
	quick := p.QuickPass(ctx, jdText)
	return p.DeepPass(jdText, quick)
}

// DeepPass assembles the final analysis. The recommendation, risk level, and
// fresher alignment come from the decision engine; every explanation field
// prefers the LLM text and falls back to templates, so the LLM can never
// change what the analysis concludes, only how it reads.
func (p *Pipeline) DeepPass(jdText string, quick QuickResult) Result {
	ins := quick.Insights
	years := signals.ExtractExperienceYears(jdText)

	experience := types.ExperienceRequirement{
		Years: years,
		Label: signals.ExperienceLabel(years),
	}

	outcome := decision.Evaluate(decision.Input{
		Company:     quick.Company,
		Risks:       quick.RiskCategories,
		Experience:  experience,
		RoleUnclear: quick.RoleUnclear,
	})

	companyType := quick.Company.Type
	career := explain.Career(companyType)

	keyConcerns := mergeUnique(ins.Explanations.KeyConcerns, quick.Concerns)
	if len(keyConcerns) == 0 {
		keyConcerns = []string{"No major concerns detected"}
	}

	var resp types.AnalysisResponse

	resp.Understanding = types.Understanding{
		Company: types.Company{
			Name:    displayName(quick.CompanyName),
			Type:    companyType,
			Context: explain.CompanyContext(companyType),
		},
		RoleReality: firstNonEmpty(
			ins.Explanations.RoleReality,
			explain.RoleReality(jdText, companyType, quick.RiskCategories),
		),
	}

	resp.ExperienceFit = types.ExperienceFit{
		RequiredExperience: experience.Label,
		FresherAlignment:   outcome.Verdict.FresherAlignment,
		Explanation: firstNonEmpty(
			ins.Explanations.ExperienceExplanation,
			explain.FresherExplanation(outcome.Verdict.FresherAlignment),
		),
	}

	resp.CareerImplications = types.CareerImplications{
		SkillsYouWillBuild: firstNonEmptyList(ins.Explanations.SkillsYouWillBuild, career.SkillsYouWillBuild),
		SkillsYouMayMiss:   firstNonEmptyList(ins.Explanations.SkillsYouMayMiss, career.SkillsYouMayMiss),
		LongTermImpact:     firstNonEmpty(ins.Explanations.LongTermImpact, career.LongTermImpact),
	}

	resp.RiskAndTradeoffs = types.RiskAndTradeoffs{
		RiskLevel:   outcome.Verdict.RiskLevel,
		KeyConcerns: keyConcerns,
		GoodFor:     firstNonEmpty(ins.Explanations.GoodFor, explain.GoodFor(companyType)),
		AvoidIf:     firstNonEmpty(ins.Explanations.AvoidIf, explain.AvoidIf(companyType)),
	}

	resp.DecisionGuidance = types.DecisionGuidance{
		Recommendation:  outcome.Verdict.Recommendation,
		Reasoning:       firstNonEmpty(ins.Explanations.Reasoning, outcome.Outcome.Reasoning),
		WhatToDoInstead: firstNonEmpty(ins.Explanations.WhatToDoInstead, outcome.Outcome.WhatToDoInstead),
	}

	resp.ResumeGuidance = types.ResumeGuidance{
		ATSOptimizedBullets: explain.EnsureBullets(ins.ATSOptimizedBullets, jdText),
	}

	resp.Confidence = types.Confidence{
		OverallConfidence: quick.ConfidenceScore,
	}

	return Result{
		Response: resp,
		Quick:    quick,
		Verdict:  outcome.Verdict,
	}
}

func displayName(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonEmptyList(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}
