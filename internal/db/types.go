package db

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is one stored analysis. FullResult holds the complete
// response JSON; the scalar columns are denormalized for filtering.
type AnalysisRecord struct {
	ID               uuid.UUID `json:"id"`
	JDText           string    `json:"jd_text"`
	CompanyName      string    `json:"company_name"`
	CompanyType      string    `json:"company_type"`
	Recommendation   string    `json:"recommendation"`
	RiskLevel        string    `json:"risk_level"`
	FresherAlignment string    `json:"fresher_alignment"`
	ConfidenceScore  float64   `json:"confidence_score"`
	FullResult       []byte    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	IsSaved          bool      `json:"is_saved"`
}

// AnalysisSummary is the lightweight listing view of an analysis.
type AnalysisSummary struct {
	ID              uuid.UUID `json:"id"`
	CompanyName     string    `json:"company_name"`
	CompanyType     string    `json:"company_type"`
	Recommendation  string    `json:"recommendation"`
	RiskLevel       string    `json:"risk_level"`
	ConfidenceScore float64   `json:"confidence_score"`
	CreatedAt       time.Time `json:"created_at"`
	IsSaved         bool      `json:"is_saved"`
}

// AnalysisFilters holds optional filters for listing analyses.
type AnalysisFilters struct {
	Skip           int
	Limit          int
	Recommendation string
}

// CompanyRecord is one row of the companies catalog table.
type CompanyRecord struct {
	ID      uuid.UUID `json:"-"`
	Name    string    `json:"name"`
	Aliases []string  `json:"aliases"`
	Type    string    `json:"type"`
	Tier    string    `json:"tier"`
}
