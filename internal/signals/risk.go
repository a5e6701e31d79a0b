// Package signals extracts discrete facts from raw job-description text:
// risk-signal categories, an experience-years estimate, and an advertised
// CTC figure. Everything here is a pure function of the input text and a
// static keyword table.
package signals

import (
	"strings"

	"github.com/analyzejd/analyzejd/internal/types"
)

// KeywordTable maps each risk category to the substrings that trigger it.
// Matching is case-insensitive; a category fires when any of its keywords
// appears anywhere in the text. Categories are independent.
type KeywordTable map[types.RiskCategory][]string

// DefaultKeywordTable returns the recognized categories and their keyword
// lists. Callers may inject a different table; this is the documented default.
func DefaultKeywordTable() KeywordTable {
	return KeywordTable{
		types.RiskBond:    {"bond", "service agreement", "liquidated damages"},
		types.RiskPayment: {"cheque", "bank guarantee", "training cost"},
		types.RiskWork:    {"rotational shifts", "night shift", "6 days"},
	}
}

// DetectRiskSignals scans the text against the keyword table and returns the
// set of categories that fired. Zero, one, or many categories may be present.
func DetectRiskSignals(text string, table KeywordTable) types.RiskSignals {
	found := types.NewRiskSignals()
	lower := strings.ToLower(text)
	for category, keywords := range table {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				found.Add(category)
				break
			}
		}
	}
	return found
}

// MatchedKeywords returns the individual keywords that fired, for display as
// key concerns. Order follows the stable category order.
func MatchedKeywords(text string, table KeywordTable) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, category := range []types.RiskCategory{types.RiskBond, types.RiskPayment, types.RiskWork, types.RiskOther} {
		for _, kw := range table[category] {
			if strings.Contains(lower, kw) {
				matched = append(matched, kw)
			}
		}
	}
	return matched
}
