package explain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/analyzejd/analyzejd/internal/types"
)

func TestCompanyContext_AllTypesCovered(t *testing.T) {
	for _, typ := range []types.CompanyType{
		types.CompanyProduct, types.CompanyService, types.CompanyStartup,
		types.CompanyCaptive, types.CompanyUnknown,
	} {
		assert.NotEmpty(t, CompanyContext(typ), "company type %s", typ)
	}
	// Unrecognized values fall back to the Unknown text.
	assert.Equal(t, CompanyContext(types.CompanyUnknown), CompanyContext(types.CompanyType("Nonsense")))
}

func TestCareer_AllTypesCovered(t *testing.T) {
	for _, typ := range []types.CompanyType{
		types.CompanyProduct, types.CompanyService, types.CompanyStartup,
		types.CompanyCaptive, types.CompanyUnknown,
	} {
		c := Career(typ)
		assert.NotEmpty(t, c.SkillsYouWillBuild, "company type %s", typ)
		assert.NotEmpty(t, c.SkillsYouMayMiss, "company type %s", typ)
		assert.NotEmpty(t, c.LongTermImpact, "company type %s", typ)
	}
}

func TestRoleReality_PatternOrder(t *testing.T) {
	noRisks := types.NewRiskSignals()
	withRisk := types.NewRiskSignals()
	withRisk.Add(types.RiskWork)

	tests := []struct {
		name     string
		text     string
		typ      types.CompanyType
		risks    types.RiskSignals
		fragment string
	}{
		{
			name:     "qa role",
			text:     "We need engineers for test automation of our platform.",
			typ:      types.CompanyProduct,
			risks:    noRisks,
			fragment: "quality assurance and testing",
		},
		{
			name:     "support role",
			text:     "L1/L2 incident management for enterprise clients.",
			typ:      types.CompanyService,
			risks:    withRisk,
			fragment: "support or operations role",
		},
		{
			name:     "migration role",
			text:     "Drive legacy modernization for banking systems.",
			typ:      types.CompanyService,
			risks:    noRisks,
			fragment: "migrating or maintaining existing systems",
		},
		{
			name:     "consulting role",
			text:     "Pre-sales consultant for our advisory practice.",
			typ:      types.CompanyService,
			risks:    noRisks,
			fragment: "client-facing consulting role",
		},
		{
			name:     "service delivery with risks",
			text:     "Java developer needed for our delivery center.",
			typ:      types.CompanyService,
			risks:    withRisk,
			fragment: "client-delivery role",
		},
		{
			name:     "product engineering",
			text:     "Build core features of our payments product.",
			typ:      types.CompanyProduct,
			risks:    noRisks,
			fragment: "company's own product",
		},
		{
			name:     "generic fallback",
			text:     "Software engineer needed. Write code.",
			typ:      types.CompanyUnknown,
			risks:    noRisks,
			fragment: "general engineering role",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, RoleReality(tt.text, tt.typ, tt.risks), tt.fragment)
		})
	}
}

func TestFresherExplanation(t *testing.T) {
	assert.Contains(t, FresherExplanation(types.AlignmentGood), "suitable for freshers")
	assert.Contains(t, FresherExplanation(types.AlignmentPoor), "more experienced professionals")
	assert.Contains(t, FresherExplanation(types.AlignmentNotApplicable), "requirements are unclear")
}

func TestResumeBullets_ExactlyThree(t *testing.T) {
	texts := []string{
		"Backend engineer working on APIs and SQL databases.",
		"Frontend developer with React experience.",
		"Full stack engineer for our platform.",
		"Machine learning engineer for analytics.",
		"DevOps engineer with Kubernetes and Docker.",
		"QA engineer for test automation.",
		"Generalist software role.",
	}
	for _, text := range texts {
		bullets := ResumeBullets(text)
		assert.Len(t, bullets, 3, "text: %s", text)
		for _, b := range bullets {
			assert.NotEmpty(t, b)
		}
	}
}

func TestResumeBullets_RoleFamily(t *testing.T) {
	backend := ResumeBullets("Design microservices and REST APIs.")
	assert.Contains(t, backend[0], "RESTful APIs")

	generic := ResumeBullets("Software engineer position at our office.")
	assert.Contains(t, generic[0], "scalable software components")
}

func TestEnsureBullets(t *testing.T) {
	text := "Backend role with APIs."

	// Enough LLM bullets: keep the first three.
	got := EnsureBullets([]string{"a", "b", "c", "d"}, text)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	// Too few: fall back to templates.
	got = EnsureBullets([]string{"only one"}, text)
	assert.Len(t, got, 3)
	assert.Contains(t, got[0], "RESTful APIs")

	// Blank entries do not count.
	got = EnsureBullets([]string{"a", "  ", ""}, text)
	assert.Len(t, got, 3)
	assert.Contains(t, got[0], "RESTful APIs")
}
