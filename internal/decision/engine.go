// Package decision implements the deterministic recommendation engine. The
// recommendation, risk level, and fresher alignment are pure functions of the
// resolved company profile, the detected risk signals, and the parsed
// experience requirement; the LLM only ever explains a decision made here, it
// never makes one.
package decision

import (
	"github.com/analyzejd/analyzejd/internal/types"
)

// Senior-role thresholds. A service-company role at seniorYears or above is
// skipped outright (rule 1); any role at experiencedYears or above is skipped
// as misaligned for freshers (rule 3).
const (
	seniorYears      = 7
	experiencedYears = 5
)

// Input carries the discrete facts the engine evaluates. RoleUnclear is an
// injected fact resolved at the pipeline boundary (from the LLM's clarity
// score); the engine never inspects text itself.
type Input struct {
	Company     types.CompanyProfile
	Risks       types.RiskSignals
	Experience  types.ExperienceRequirement
	RoleUnclear bool
}

// Outcome is what a rule produces when it fires: the recommendation plus the
// canned explanation used when no LLM explanation is available.
type Outcome struct {
	Recommendation  types.Recommendation
	Reasoning       string
	WhatToDoInstead string
}

// Rule is one row of the ordered decision table.
type Rule struct {
	Name    string
	When    func(Input) bool
	Outcome Outcome
}

// Rules returns the decision table. Evaluation is strictly top to bottom,
// first match wins; the order is part of the contract and is pinned by tests.
// The final rule matches unconditionally, so the table is total.
func Rules() []Rule {
	return []Rule{
		{
			Name: "senior-service-role",
			When: func(in Input) bool {
				return in.Company.Type == types.CompanyService && hasYears(in, seniorYears)
			},
			Outcome: Outcome{
				Recommendation: types.RecommendSkip,
				Reasoning: "This role targets senior professionals in service-based delivery. " +
					"As a fresher or early-career engineer, you would be competing against " +
					"candidates with many years of experience. Look for roles explicitly " +
					"designed for your experience level.",
				WhatToDoInstead: "Focus on fresher programs at product companies, or entry-level roles " +
					"at startups where you can grow with the company.",
			},
		},
		{
			Name: "bond-or-payment-risk",
			When: func(in Input) bool {
				return in.Risks.Has(types.RiskBond) || in.Risks.Has(types.RiskPayment)
			},
			Outcome: Outcome{
				Recommendation: types.RecommendSkip,
				Reasoning: "This role has concerning terms around bonds or upfront payments. " +
					"Legitimate companies do not ask for financial commitments from candidates. " +
					"Even if the company is genuine, bonds limit your career mobility significantly.",
				WhatToDoInstead: "Look for companies that invest in retention through good work culture " +
					"and growth opportunities, not legal bindings.",
			},
		},
		{
			Name: "senior-role-any-company",
			When: func(in Input) bool {
				return hasYears(in, experiencedYears)
			},
			Outcome: Outcome{
				Recommendation: types.RecommendSkip,
				Reasoning: "This role requires 5+ years of experience. Applying as a fresher " +
					"is unlikely to succeed and may waste your time and energy. Focus on " +
					"roles that match your current experience level.",
				WhatToDoInstead: "Apply to entry-level or associate positions. Build experience for " +
					"2-3 years before targeting senior roles.",
			},
		},
		{
			Name: "service-with-risks",
			When: func(in Input) bool {
				return in.Company.Type == types.CompanyService && !in.Risks.Empty()
			},
			Outcome: Outcome{
				Recommendation: types.RecommendCaution,
				Reasoning: "Service-based roles often involve project-based work where your " +
					"actual responsibilities depend on client allocation. The detected " +
					"concerns suggest you should clarify the specific role and growth path " +
					"before accepting an offer.",
				WhatToDoInstead: "During interviews, ask about: the specific project you'll join, " +
					"the technology stack, and the typical career progression timeline.",
			},
		},
		{
			Name: "startup-unclear-role",
			When: func(in Input) bool {
				return in.Company.Type == types.CompanyStartup && in.RoleUnclear
			},
			Outcome: Outcome{
				Recommendation: types.RecommendCaution,
				Reasoning: "Startups can offer great learning but also carry risks like unclear roles, " +
					"high workload, or instability. The job description lacks clarity on some " +
					"important aspects.",
				WhatToDoInstead: "Research the startup's funding status, ask about runway, and clarify " +
					"your specific responsibilities before joining.",
			},
		},
		{
			Name: "service-no-risks",
			When: func(in Input) bool {
				return in.Company.Type == types.CompanyService
			},
			Outcome: Outcome{
				Recommendation: types.RecommendCaution,
				Reasoning: "Service companies can provide good starting experience but may limit " +
					"deep technical growth. Your work will depend on client projects, which " +
					"you have limited control over.",
				WhatToDoInstead: "If you join, try to get into product-oriented teams or internal R&D " +
					"groups within the company for better learning opportunities.",
			},
		},
		{
			Name: "product-company",
			When: func(in Input) bool {
				return in.Company.Type == types.CompanyProduct
			},
			Outcome: Outcome{
				Recommendation: types.RecommendApply,
				Reasoning: "Product companies generally offer better ownership and technical depth. " +
					"This role appears to be a good fit for building strong engineering foundations.",
				WhatToDoInstead: "Prepare a strong resume highlighting projects and problem-solving skills. " +
					"Practice system design basics and coding fundamentals for interviews.",
			},
		},
		{
			Name: "captive-center",
			When: func(in Input) bool {
				return in.Company.Type == types.CompanyCaptive
			},
			Outcome: Outcome{
				Recommendation: types.RecommendApply,
				Reasoning: "Captive centers of established companies often offer stability, structured " +
					"work, and exposure to global practices. Good choice for work-life balance " +
					"and steady growth.",
				WhatToDoInstead: "Prepare by understanding the parent company's domain. Highlight any " +
					"relevant coursework or projects in that area.",
			},
		},
		{
			Name: "default-apply",
			When: func(Input) bool { return true },
			Outcome: Outcome{
				Recommendation: types.RecommendApply,
				Reasoning: "Based on the available information, this role appears suitable for " +
					"early-career engineers. No major concerns detected.",
				WhatToDoInstead: "Prepare a strong resume and practice fundamentals. Research the company " +
					"culture before interviews.",
			},
		},
	}
}

// Result is the full engine output: the verdict plus the name of the rule
// that fired and its canned explanation strings.
type Result struct {
	Verdict types.Verdict
	Rule    string
	Outcome Outcome
}

// Evaluate runs the decision table against the input. Total over all inputs:
// sentinel values (nil years, Unknown company, empty risk set) fall through
// to the default rule, never an error.
func Evaluate(in Input) Result {
	for _, rule := range Rules() {
		if rule.When(in) {
			return Result{
				Verdict: types.Verdict{
					Recommendation:   rule.Outcome.Recommendation,
					RiskLevel:        riskLevel(in),
					FresherAlignment: fresherAlignment(in),
				},
				Rule:    rule.Name,
				Outcome: rule.Outcome,
			}
		}
	}

	// Unreachable: the last rule matches unconditionally.
	panic("decision: rule table is not total")
}

// riskLevel grades overall risk, first match wins, independent of the
// recommendation table.
func riskLevel(in Input) types.RiskLevel {
	switch {
	case in.Risks.Has(types.RiskBond) || in.Risks.Has(types.RiskPayment):
		return types.RiskHigh
	case !in.Risks.Empty() || in.Company.Type == types.CompanyService:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

// fresherAlignment states whether the role makes sense for a fresher. The
// NotApplicable branch requires both an unknown company and no experience
// figure; it is checked first since its condition is a subset of "nil years".
func fresherAlignment(in Input) types.FresherAlignment {
	years := in.Experience.Years
	switch {
	case in.Company.Type == types.CompanyUnknown && years == nil:
		return types.AlignmentNotApplicable
	case years == nil || *years <= 2:
		return types.AlignmentGood
	default:
		return types.AlignmentPoor
	}
}

func hasYears(in Input, threshold int) bool {
	return in.Experience.Years != nil && *in.Experience.Years >= threshold
}
