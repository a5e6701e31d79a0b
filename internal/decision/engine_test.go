package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/analyzejd/analyzejd/internal/types"
)

func years(n int) *int { return &n }

func risks(cats ...types.RiskCategory) types.RiskSignals {
	s := types.NewRiskSignals()
	for _, c := range cats {
		s.Add(c)
	}
	return s
}

// The rule order is part of the engine's contract: a bond at a service
// company must skip for the bond, a senior service role must skip for the
// seniority. Reordering the table changes observable output.
func TestRuleOrder(t *testing.T) {
	want := []string{
		"senior-service-role",
		"bond-or-payment-risk",
		"senior-role-any-company",
		"service-with-risks",
		"startup-unclear-role",
		"service-no-risks",
		"product-company",
		"captive-center",
		"default-apply",
	}
	rules := Rules()
	require.Len(t, rules, len(want))
	for i, r := range rules {
		assert.Equal(t, want[i], r.Name, "rule at position %d", i)
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		wantRec   types.Recommendation
		wantRisk  types.RiskLevel
		wantAlign types.FresherAlignment
		wantRule  string
	}{
		{
			name: "product two years clean",
			in: Input{
				Company:    types.CompanyProfile{Name: "Google", Type: types.CompanyProduct, Tier: types.TierFAANGM},
				Risks:      risks(),
				Experience: types.ExperienceRequirement{Years: years(2)},
			},
			wantRec:   types.RecommendApply,
			wantRisk:  types.RiskLow,
			wantAlign: types.AlignmentGood,
			wantRule:  "product-company",
		},
		{
			name: "service eight years clean",
			in: Input{
				Company:    types.CompanyProfile{Name: "TCS", Type: types.CompanyService, Tier: types.TierOne},
				Risks:      risks(),
				Experience: types.ExperienceRequirement{Years: years(8)},
			},
			wantRec:   types.RecommendSkip,
			wantRisk:  types.RiskMedium,
			wantAlign: types.AlignmentPoor,
			wantRule:  "senior-service-role",
		},
		{
			name: "service two years with bond",
			in: Input{
				Company:    types.CompanyProfile{Name: "TCS", Type: types.CompanyService, Tier: types.TierOne},
				Risks:      risks(types.RiskBond),
				Experience: types.ExperienceRequirement{Years: years(2)},
			},
			wantRec:   types.RecommendSkip,
			wantRisk:  types.RiskHigh,
			wantAlign: types.AlignmentGood,
			wantRule:  "bond-or-payment-risk",
		},
		{
			name: "startup no years unclear role",
			in: Input{
				Company:     types.CompanyProfile{Name: "Stealth", Type: types.CompanyStartup, Tier: types.TierUnknown},
				Risks:       risks(),
				RoleUnclear: true,
			},
			wantRec:   types.RecommendCaution,
			wantRisk:  types.RiskLow,
			wantAlign: types.AlignmentGood,
			wantRule:  "startup-unclear-role",
		},
		{
			name: "unknown company no years",
			in: Input{
				Company: types.CompanyProfile{Name: "", Type: types.CompanyUnknown, Tier: types.TierUnknown},
				Risks:   risks(),
			},
			wantRec:   types.RecommendApply,
			wantRisk:  types.RiskLow,
			wantAlign: types.AlignmentNotApplicable,
			wantRule:  "default-apply",
		},
		{
			name: "five years at product company",
			in: Input{
				Company:    types.CompanyProfile{Name: "Adobe", Type: types.CompanyProduct, Tier: types.TierOne},
				Risks:      risks(),
				Experience: types.ExperienceRequirement{Years: years(5)},
			},
			wantRec:   types.RecommendSkip,
			wantRisk:  types.RiskLow,
			wantAlign: types.AlignmentPoor,
			wantRule:  "senior-role-any-company",
		},
		{
			name: "service with workload risk only",
			in: Input{
				Company:    types.CompanyProfile{Name: "Infosys", Type: types.CompanyService, Tier: types.TierOne},
				Risks:      risks(types.RiskWork),
				Experience: types.ExperienceRequirement{Years: years(1)},
			},
			wantRec:   types.RecommendCaution,
			wantRisk:  types.RiskMedium,
			wantAlign: types.AlignmentGood,
			wantRule:  "service-with-risks",
		},
		{
			name: "service clean fresher",
			in: Input{
				Company:    types.CompanyProfile{Name: "Infosys", Type: types.CompanyService, Tier: types.TierOne},
				Risks:      risks(),
				Experience: types.ExperienceRequirement{Years: years(0)},
			},
			wantRec:   types.RecommendCaution,
			wantRisk:  types.RiskMedium,
			wantAlign: types.AlignmentGood,
			wantRule:  "service-no-risks",
		},
		{
			name: "captive clean",
			in: Input{
				Company:    types.CompanyProfile{Name: "JP Morgan", Type: types.CompanyCaptive, Tier: types.TierOne},
				Risks:      risks(),
				Experience: types.ExperienceRequirement{Years: years(1)},
			},
			wantRec:   types.RecommendApply,
			wantRisk:  types.RiskLow,
			wantAlign: types.AlignmentGood,
			wantRule:  "captive-center",
		},
		{
			name: "payment risk at unknown company",
			in: Input{
				Company: types.CompanyProfile{Name: "", Type: types.CompanyUnknown, Tier: types.TierUnknown},
				Risks:   risks(types.RiskPayment),
			},
			wantRec:   types.RecommendSkip,
			wantRisk:  types.RiskHigh,
			wantAlign: types.AlignmentNotApplicable,
			wantRule:  "bond-or-payment-risk",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.in)
			assert.Equal(t, tt.wantRec, got.Verdict.Recommendation)
			assert.Equal(t, tt.wantRisk, got.Verdict.RiskLevel)
			assert.Equal(t, tt.wantAlign, got.Verdict.FresherAlignment)
			assert.Equal(t, tt.wantRule, got.Rule)
			assert.NotEmpty(t, got.Outcome.Reasoning)
			assert.NotEmpty(t, got.Outcome.WhatToDoInstead)
		})
	}
}

// A bond is a skip regardless of everything else about the company, except
// when the role is also a senior service role, which skips first.
func TestBondAlwaysSkips(t *testing.T) {
	for _, typ := range []types.CompanyType{
		types.CompanyProduct, types.CompanyService, types.CompanyStartup,
		types.CompanyCaptive, types.CompanyUnknown,
	} {
		got := Evaluate(Input{
			Company:    types.CompanyProfile{Name: "X", Type: typ},
			Risks:      risks(types.RiskBond),
			Experience: types.ExperienceRequirement{Years: years(1)},
		})
		assert.Equal(t, types.RecommendSkip, got.Verdict.Recommendation, "company type %s", typ)
		assert.Equal(t, types.RiskHigh, got.Verdict.RiskLevel, "company type %s", typ)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	in := Input{
		Company:    types.CompanyProfile{Name: "Infosys", Type: types.CompanyService, Tier: types.TierOne},
		Risks:      risks(types.RiskWork, types.RiskPayment),
		Experience: types.ExperienceRequirement{Years: years(3)},
	}
	first := Evaluate(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Evaluate(in))
	}
}
