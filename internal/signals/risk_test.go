package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/analyzejd/analyzejd/internal/types"
)

func TestDetectRiskSignals_SingleCategory(t *testing.T) {
	text := "Selected candidates sign a 2-year service agreement with the company."

	found := DetectRiskSignals(text, DefaultKeywordTable())

	assert.True(t, found.Has(types.RiskBond))
	assert.False(t, found.Has(types.RiskPayment))
	assert.False(t, found.Has(types.RiskWork))
}

func TestDetectRiskSignals_MultipleCategories(t *testing.T) {
	text := "Role involves rotational shifts. A training cost of 1.5 lakhs applies, " +
		"recovered via BOND if you leave within two years."

	found := DetectRiskSignals(text, DefaultKeywordTable())

	assert.True(t, found.Has(types.RiskBond), "matching must be case-insensitive")
	assert.True(t, found.Has(types.RiskPayment))
	assert.True(t, found.Has(types.RiskWork))
}

func TestDetectRiskSignals_CleanText(t *testing.T) {
	text := "We are a product company looking for a backend engineer. Flexible hours, remote-friendly."

	found := DetectRiskSignals(text, DefaultKeywordTable())

	assert.True(t, found.Empty())
}

func TestDetectRiskSignals_InjectedTable(t *testing.T) {
	table := KeywordTable{
		types.RiskOther: {"unpaid internship"},
	}

	found := DetectRiskSignals("This is an unpaid internship for 6 months.", table)

	assert.Equal(t, []types.RiskCategory{types.RiskOther}, found.List())
}

func TestMatchedKeywords(t *testing.T) {
	text := "Night shift work; candidates must submit a blank cheque as security."

	matched := MatchedKeywords(text, DefaultKeywordTable())

	assert.Equal(t, []string{"cheque", "night shift"}, matched, "PaymentRisk keywords come before Workload")
}
