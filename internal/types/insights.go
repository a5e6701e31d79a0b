package types

// CompanyClassification is the LLM's guess at company type and tier. The
// deterministic catalog lookup overrides it when the company is known.
type CompanyClassification struct {
	CompanyType string `json:"company_type"`
	Tier        string `json:"tier"`
	Industry    string `json:"industry,omitempty"`
}

// RoleAnalysis carries the LLM's read of the role itself.
type RoleAnalysis struct {
	ClarityScore   float64  `json:"clarity_score"`
	SeniorityLevel string   `json:"seniority_level,omitempty"`
	KeySkills      []string `json:"key_skills,omitempty"`
	RedFlags       []string `json:"red_flags,omitempty"`
}

// Explanations holds the LLM-generated explanation strings. These are
// attached to the verdict for display but never influence the decision
// fields themselves.
type Explanations struct {
	RoleReality           string   `json:"role_reality,omitempty"`
	ExperienceExplanation string   `json:"experience_explanation,omitempty"`
	SkillsYouWillBuild    []string `json:"skills_you_will_build,omitempty"`
	SkillsYouMayMiss      []string `json:"skills_you_may_miss,omitempty"`
	LongTermImpact        string   `json:"long_term_impact,omitempty"`
	KeyConcerns           []string `json:"key_concerns,omitempty"`
	GoodFor               string   `json:"good_for,omitempty"`
	AvoidIf               string   `json:"avoid_if,omitempty"`
	Reasoning             string   `json:"reasoning,omitempty"`
	WhatToDoInstead       string   `json:"what_to_do_instead,omitempty"`
}

// CandidateInsights describes what candidates typically discover after joining.
type CandidateInsights struct {
	WhatTheyDiscover      string `json:"what_they_discover,omitempty"`
	GrowthPotential       string `json:"growth_potential,omitempty"`
	WorkLifeBalance       string `json:"work_life_balance,omitempty"`
	LearningOpportunities string `json:"learning_opportunities,omitempty"`
}

// RiskAssessment is the LLM's own risk read, kept for display only.
type RiskAssessment struct {
	RiskLevel string   `json:"risk_level,omitempty"`
	Concerns  []string `json:"concerns,omitempty"`
	Positives []string `json:"positives,omitempty"`
}

// InsightsMeta records which source produced the insights (model name,
// "fallback:<reason>", etc.) for debugging.
type InsightsMeta struct {
	Source string `json:"source"`
	Model  string `json:"model,omitempty"`
}

// Insights is the full structured output of the single LLM analysis call.
// Every field is optional: when the call fails the pipeline substitutes
// template text, so consumers must tolerate zero values throughout.
type Insights struct {
	CompanyName           string                `json:"company_name,omitempty"`
	CompanyClassification CompanyClassification `json:"company_classification"`
	RoleAnalysis          RoleAnalysis          `json:"role_analysis"`
	Explanations          Explanations          `json:"explanations"`
	ATSOptimizedBullets   []string              `json:"ats_optimized_bullets,omitempty"`
	CandidateInsights     CandidateInsights     `json:"candidate_insights"`
	RiskAssessment        RiskAssessment        `json:"risk_assessment"`
	Meta                  InsightsMeta          `json:"_meta"`
}
