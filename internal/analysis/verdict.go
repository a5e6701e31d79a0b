package analysis

import (
	"fmt"
	"strings"

	"github.com/analyzejd/analyzejd/internal/types"
)

// Thresholds for the human-readable verdict bands.
const (
	strongConfidence  = 0.8
	cautionConfidence = 0.6
)

// maxWisdomLen bounds the insider-perspective quote appended to the verdict.
const maxWisdomLen = 100

// FinalVerdict renders a short human-readable summary of the analysis,
// banded by confidence score.
func FinalVerdict(confidence float64, companyName string, tier types.CompanyTier, concerns []string, whatTheyDiscover string) string {
	display := companyName
	if display == "" {
		display = "this company"
	}

	var sb strings.Builder
	switch {
	case confidence >= strongConfidence:
		fmt.Fprintf(&sb, "Strong opportunity at %s. ", display)
		if tier == types.TierFAANGM || tier == types.TierOne {
			fmt.Fprintf(&sb, "This %s company offers solid career growth. ", tier)
		}
		sb.WriteString("The role is well-defined with clear expectations. Worth applying with a tailored resume.")

	case confidence >= cautionConfidence:
		fmt.Fprintf(&sb, "Proceed with caution for %s. ", display)
		if len(concerns) > 0 {
			fmt.Fprintf(&sb, "Noted concerns: %s. ", strings.Join(firstN(concerns, 2), ", "))
		}
		sb.WriteString("Research the team culture during interviews. Ask specific questions about growth paths and expectations.")

	default:
		fmt.Fprintf(&sb, "Multiple concerns detected for %s. ", display)
		if len(concerns) > 0 {
			fmt.Fprintf(&sb, "Red flags: %s. ", strings.Join(firstN(concerns, 3), ", "))
		}
		sb.WriteString("Consider carefully before applying. The role may have unclear expectations or limited growth potential.")
	}

	if wisdom := strings.TrimSpace(whatTheyDiscover); wisdom != "" {
		if len(wisdom) > maxWisdomLen {
			wisdom = wisdom[:maxWisdomLen] + "..."
		}
		fmt.Fprintf(&sb, "\n\nInsider perspective: %s", wisdom)
	}

	return sb.String()
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
