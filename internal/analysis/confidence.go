package analysis

import (
	"math"

	"github.com/analyzejd/analyzejd/internal/types"
)

// Confidence weights. They must sum to 1.0.
const (
	weightRecognition = 0.25
	weightRisk        = 0.30
	weightClarity     = 0.25
	weightTier        = 0.20
)

const (
	recognizedScore   = 1.0
	unrecognizedScore = 0.3

	riskPenalty  = 0.15
	riskFloor    = 0.2
	tierFallback = 0.4
)

var tierScores = map[types.CompanyTier]float64{
	types.TierFAANGM:  1.0,
	types.TierOne:     0.85,
	types.TierTwo:     0.65,
	types.TierThree:   0.5,
	types.TierUnknown: 0.4,
}

// ConfidenceBreakdown exposes the component scores behind the overall
// confidence figure for debugging and storage.
type ConfidenceBreakdown struct {
	CompanyRecognition float64 `json:"company_recognition"`
	RiskSignals        float64 `json:"risk_signals"`
	RoleClarity        float64 `json:"role_clarity"`
	CompanyTier        float64 `json:"company_tier"`
}

// ConfidenceScore computes the weighted analysis confidence: company
// recognition 25%, risk signals 30%, role clarity 25%, company tier 20%.
// Both the overall score and each component are rounded to two decimals.
func ConfidenceScore(companyName string, tier types.CompanyTier, riskCount int, roleClarity float64) (float64, ConfidenceBreakdown) {
	recognition := unrecognizedScore
	if companyName != "" {
		recognition = recognizedScore
	}

	risk := math.Max(riskFloor, 1.0-float64(riskCount)*riskPenalty)

	clarity := math.Min(1.0, math.Max(0.0, roleClarity))

	tierScore, ok := tierScores[tier]
	if !ok {
		tierScore = tierFallback
	}

	overall := recognition*weightRecognition +
		risk*weightRisk +
		clarity*weightClarity +
		tierScore*weightTier

	breakdown := ConfidenceBreakdown{
		CompanyRecognition: round2(recognition),
		RiskSignals:        round2(risk),
		RoleClarity:        round2(clarity),
		CompanyTier:        round2(tierScore),
	}
	return round2(overall), breakdown
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
