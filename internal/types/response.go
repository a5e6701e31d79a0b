package types

import "github.com/go-playground/validator/v10"

// AnalyzeRequest is the request payload for POST /analyze.
type AnalyzeRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=50"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Company is the company section of the response.
type Company struct {
	Name    string      `json:"name"`
	Type    CompanyType `json:"type"`
	Context string      `json:"context"`
}

// Understanding explains what the role is really about.
type Understanding struct {
	Company     Company `json:"company"`
	RoleReality string  `json:"role_reality"`
}

// ExperienceFit describes how the role aligns with fresher profiles.
type ExperienceFit struct {
	RequiredExperience string           `json:"required_experience"`
	FresherAlignment   FresherAlignment `json:"fresher_alignment"`
	Explanation        string           `json:"explanation"`
}

// CareerImplications describes the long-term impact of taking the role.
type CareerImplications struct {
	SkillsYouWillBuild []string `json:"skills_you_will_build"`
	SkillsYouMayMiss   []string `json:"skills_you_may_miss"`
	LongTermImpact     string   `json:"long_term_impact"`
}

// RiskAndTradeoffs carries the risk grade and profile matching.
type RiskAndTradeoffs struct {
	RiskLevel   RiskLevel `json:"risk_level"`
	KeyConcerns []string  `json:"key_concerns"`
	GoodFor     string    `json:"good_for"`
	AvoidIf     string    `json:"avoid_if"`
}

// DecisionGuidance carries the recommendation and its explanation.
type DecisionGuidance struct {
	Recommendation  Recommendation `json:"recommendation"`
	Reasoning       string         `json:"reasoning"`
	WhatToDoInstead string         `json:"what_to_do_instead"`
}

// ResumeGuidance holds exactly three ATS-optimized resume bullets.
type ResumeGuidance struct {
	ATSOptimizedBullets []string `json:"ats_optimized_bullets"`
}

// Confidence is the overall analysis confidence score.
type Confidence struct {
	OverallConfidence float64 `json:"overall_confidence"`
}

// AnalysisResponse is the complete JD analysis returned by POST /analyze.
// Field names are part of the API contract with the frontend.
type AnalysisResponse struct {
	ID                 string             `json:"id,omitempty"`
	Understanding      Understanding      `json:"understanding"`
	ExperienceFit      ExperienceFit      `json:"experience_fit"`
	CareerImplications CareerImplications `json:"career_implications"`
	RiskAndTradeoffs   RiskAndTradeoffs   `json:"risk_and_tradeoffs"`
	DecisionGuidance   DecisionGuidance   `json:"decision_guidance"`
	ResumeGuidance     ResumeGuidance     `json:"resume_guidance"`
	Confidence         Confidence         `json:"confidence"`
}
