// Package explain provides deterministic fallback text for every explanatory
// field of an analysis. The pipeline prefers LLM-generated explanations; when
// the call fails or returns an empty field, the templates here fill the gap
// so the response shape never degrades.
package explain

import (
	"strings"

	"github.com/analyzejd/analyzejd/internal/types"
)

var companyContext = map[types.CompanyType]string{
	types.CompanyProduct: "Product companies build and sell their own software. Engineers typically work on " +
		"core product features, have more ownership, and see direct impact of their work. " +
		"Career growth often depends on technical depth and product impact.",
	types.CompanyService: "Service companies deliver projects for other businesses. Work varies by client " +
		"assignment; you may work on different technologies across projects. Career growth " +
		"often involves client management and broader exposure, but less depth in any single domain.",
	types.CompanyStartup: "Startups are early-stage companies with high uncertainty but potentially high reward. " +
		"Expect fast pace, broad responsibilities, and less structure. Good for learning quickly, " +
		"but job security and mentorship may be limited.",
	types.CompanyCaptive: "Captive centers are offshore R&D units of foreign companies. Work is often stable " +
		"and well-structured, but you may be distant from core business decisions. " +
		"Good for work-life balance; growth depends on parent company culture.",
	types.CompanyUnknown: "Unable to determine company type from the job description. Research the company " +
		"independently: check LinkedIn, Glassdoor, and speak to current employees before applying.",
}

// CompanyContext describes what working at this type of company is like.
func CompanyContext(t types.CompanyType) string {
	if ctx, ok := companyContext[t]; ok {
		return ctx
	}
	return companyContext[types.CompanyUnknown]
}

// CareerImplications is the template counterpart of the LLM's career fields.
type CareerImplications struct {
	SkillsYouWillBuild []string
	SkillsYouMayMiss   []string
	LongTermImpact     string
}

var careerImplications = map[types.CompanyType]CareerImplications{
	types.CompanyProduct: {
		SkillsYouWillBuild: []string{
			"Deep product thinking and user empathy",
			"Ownership of features end-to-end",
			"Technical depth in specific domains",
		},
		SkillsYouMayMiss: []string{
			"Client-facing communication",
			"Broad technology exposure",
			"Project management across contexts",
		},
		LongTermImpact: "Strong foundation for product engineering roles. Easier transitions " +
			"to other product companies or startups. May require deliberate effort " +
			"to broaden technology stack.",
	},
	types.CompanyService: {
		SkillsYouWillBuild: []string{
			"Adaptability across different projects",
			"Client communication and requirements gathering",
			"Exposure to diverse technologies",
		},
		SkillsYouMayMiss: []string{
			"Deep ownership of a single product",
			"Long-term architectural decisions",
			"Direct user feedback loops",
		},
		LongTermImpact: "Broad exposure but potentially shallow depth. Transitioning to product " +
			"companies later may require demonstrating depth through side projects " +
			"or open source contributions.",
	},
	types.CompanyStartup: {
		SkillsYouWillBuild: []string{
			"End-to-end ownership and scrappiness",
			"Fast learning and adaptability",
			"Wearing multiple hats (dev, ops, sometimes PM)",
		},
		SkillsYouMayMiss: []string{
			"Structured mentorship and code review culture",
			"Large-scale system design experience",
			"Process-driven engineering practices",
		},
		LongTermImpact: "Great for learning quickly and building a broad skill set. May need to " +
			"seek structured environments later to deepen specific expertise. " +
			"Startup experience is valued but stability matters too.",
	},
	types.CompanyCaptive: {
		SkillsYouWillBuild: []string{
			"Structured engineering practices",
			"Collaboration with global teams",
			"Domain expertise in parent company's area",
		},
		SkillsYouMayMiss: []string{
			"Product ownership and roadmap influence",
			"Startup-style scrappiness",
			"Local market understanding",
		},
		LongTermImpact: "Stable career path with good work-life balance. Growth depends on " +
			"parent company's investment in the India center. May feel distant " +
			"from core business decisions.",
	},
	types.CompanyUnknown: {
		SkillsYouWillBuild: []string{"Unable to determine without more context"},
		SkillsYouMayMiss:   []string{"Unable to determine without more context"},
		LongTermImpact: "Research the company independently before making a decision. " +
			"Understanding the company type is important for career planning.",
	},
}

// Career returns the career implications template for a company type.
func Career(t types.CompanyType) CareerImplications {
	if c, ok := careerImplications[t]; ok {
		return c
	}
	return careerImplications[types.CompanyUnknown]
}

// FresherExplanation explains the fresher-alignment verdict in plain words.
func FresherExplanation(a types.FresherAlignment) string {
	switch a {
	case types.AlignmentGood:
		return "This role appears suitable for freshers or early-career engineers. " +
			"The experience requirements and role type suggest a reasonable starting point."
	case types.AlignmentPoor:
		return "This role targets more experienced professionals. As a fresher, you may " +
			"struggle to meet expectations or miss out on proper mentorship. Consider " +
			"roles explicitly designed for early-career engineers."
	default:
		return "The experience requirements are unclear. Research the role further and " +
			"ask directly about the expected experience level during the application process."
	}
}

// GoodFor says who benefits most from this type of company.
func GoodFor(t types.CompanyType) string {
	switch t {
	case types.CompanyProduct:
		return "Engineers who want deep ownership, product impact, and technical depth."
	case types.CompanyService:
		return "Engineers comfortable with client work and seeking diverse project exposure."
	case types.CompanyStartup:
		return "Self-starters who thrive in ambiguity and want to learn fast."
	case types.CompanyCaptive:
		return "Engineers seeking stability, global exposure, and work-life balance."
	default:
		return "Unclear without more information about the company."
	}
}

// AvoidIf says who should look elsewhere.
func AvoidIf(t types.CompanyType) string {
	switch t {
	case types.CompanyProduct:
		return "You prefer variety across projects or want broad technology exposure."
	case types.CompanyService:
		return "You want deep product ownership or dislike project-based assignments."
	case types.CompanyStartup:
		return "You need structured mentorship or job security is a priority."
	case types.CompanyCaptive:
		return "You want to influence product direction or prefer fast-moving environments."
	default:
		return "You are risk-averse and prefer clarity before committing."
	}
}

// RoleReality gives a plain-language account of what the day-to-day work
// actually involves, inferred from role-pattern keywords. Pattern checks run
// in a fixed order: QA, support, migration, consulting, then company-type
// fallbacks.
func RoleReality(text string, companyType types.CompanyType, risks types.RiskSignals) string {
	lower := strings.ToLower(text)

	contains := func(kws ...string) bool {
		for _, kw := range kws {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("qa", "quality assurance", "testing", "test automation"):
		return "This role focuses on quality assurance and testing rather than core development. " +
			"Day-to-day work likely involves writing test cases, automation scripts, and " +
			"coordinating with development teams. If you want to build products, this may " +
			"not be the right path."
	case contains("support", "l1", "l2", "incident", "helpdesk"):
		return "This is primarily a support or operations role. Expect to handle tickets, " +
			"troubleshoot issues, and work in shifts. Technical learning may be limited " +
			"to the systems you support. Not ideal if you want to build new things."
	case contains("migration", "legacy", "modernization", "transformation"):
		return "This role involves migrating or maintaining existing systems rather than " +
			"building new features. Work may feel repetitive and focused on legacy code. " +
			"Good for stability but may limit exposure to modern architectures."
	case contains("consultant", "advisory", "pre-sales"):
		return "This is a client-facing consulting role. Expect presentations, requirement " +
			"gathering, and project coordination. Less hands-on coding than engineering roles. " +
			"Good if you enjoy communication; less ideal for deep technical growth."
	case companyType == types.CompanyService && !risks.Empty():
		return "This appears to be a client-delivery role where your work depends on project " +
			"allocation. Actual responsibilities may differ from what's advertised. " +
			"Clarify the specific project and tech stack during interviews."
	case companyType == types.CompanyProduct:
		return "This role involves working on the company's own product. Expect ownership " +
			"of features, collaboration with product teams, and visible impact. " +
			"Good environment for engineering depth and product thinking."
	default:
		return "Based on the job description, this appears to be a general engineering role. " +
			"Clarify specific responsibilities, team structure, and projects during the " +
			"interview process to understand what you'll actually be doing."
	}
}
