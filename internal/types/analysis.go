// Package types provides type definitions for structured data used throughout the analyzejd system.
package types

// CompanyType classifies the hiring company's business model.
type CompanyType string

// Company type constants. "Captive" is an offshore R&D unit of a foreign company.
const (
	CompanyProduct CompanyType = "Product"
	CompanyService CompanyType = "Service"
	CompanyStartup CompanyType = "Startup"
	CompanyCaptive CompanyType = "Captive"
	CompanyUnknown CompanyType = "Unknown"
)

// CompanyTier ranks the company's standing in the Indian tech-hiring market.
type CompanyTier string

// Company tier constants
const (
	TierFAANGM  CompanyTier = "FAANGM"
	TierOne     CompanyTier = "Tier-1"
	TierTwo     CompanyTier = "Tier-2"
	TierThree   CompanyTier = "Tier-3"
	TierUnknown CompanyTier = "Unknown"
)

// Recommendation is the final action verdict for a job description.
type Recommendation string

// Recommendation constants. The string values are part of the API contract.
const (
	RecommendApply   Recommendation = "Apply"
	RecommendCaution Recommendation = "Apply with Caution"
	RecommendSkip    Recommendation = "Skip"
)

// RiskLevel grades the overall risk for early-career candidates.
type RiskLevel string

// Risk level constants
const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// FresherAlignment states whether the role makes sense for a fresher.
type FresherAlignment string

// Fresher alignment constants
const (
	AlignmentGood          FresherAlignment = "Good"
	AlignmentPoor          FresherAlignment = "Poor"
	AlignmentNotApplicable FresherAlignment = "Not Applicable"
)

// RiskCategory identifies a class of risk signal detected in job description text.
type RiskCategory string

// Risk category constants. Bond covers contractual service commitments,
// PaymentRisk covers upfront financial demands, Workload covers shift and
// schedule red flags.
const (
	RiskBond    RiskCategory = "Bond"
	RiskPayment RiskCategory = "PaymentRisk"
	RiskWork    RiskCategory = "Workload"
	RiskOther   RiskCategory = "Other"
)

// CompanyProfile is the resolved company identity passed into the decision
// engine. It is produced by the companies catalog (optionally refined by the
// LLM classification) and never modified afterwards.
type CompanyProfile struct {
	Name string      `json:"name,omitempty"`
	Type CompanyType `json:"type"`
	Tier CompanyTier `json:"tier"`
}

// RiskSignals is a set of detected risk categories. Duplicates collapse;
// order is irrelevant.
type RiskSignals map[RiskCategory]bool

// NewRiskSignals builds a set from the given categories.
func NewRiskSignals(categories ...RiskCategory) RiskSignals {
	s := make(RiskSignals, len(categories))
	for _, c := range categories {
		s[c] = true
	}
	return s
}

// Has reports whether the category was detected.
func (s RiskSignals) Has(c RiskCategory) bool { return s[c] }

// Add marks a category as detected.
func (s RiskSignals) Add(c RiskCategory) { s[c] = true }

// Empty reports whether no signals were detected.
func (s RiskSignals) Empty() bool { return len(s) == 0 }

// List returns the detected categories in a stable order.
func (s RiskSignals) List() []RiskCategory {
	ordered := []RiskCategory{RiskBond, RiskPayment, RiskWork, RiskOther}
	out := make([]RiskCategory, 0, len(s))
	for _, c := range ordered {
		if s[c] {
			out = append(out, c)
		}
	}
	return out
}

// ExperienceRequirement is the best-effort experience estimate parsed from
// the job description. Years is nil when no figure could be determined.
type ExperienceRequirement struct {
	Years *int   `json:"years"`
	Label string `json:"label"`
}

// Verdict is the decision engine's output. All three fields are pure
// functions of (CompanyProfile, RiskSignals, ExperienceRequirement) plus the
// role-clarity fact; explanation text never changes them.
type Verdict struct {
	Recommendation   Recommendation   `json:"recommendation"`
	RiskLevel        RiskLevel        `json:"risk_level"`
	FresherAlignment FresherAlignment `json:"fresher_alignment"`
}
