// Package companies provides deterministic company extraction and
// classification backed by a static alias catalog. It is the lookup
// collaborator for the analysis pipeline: when the catalog knows a company,
// its classification overrides whatever the LLM guessed.
package companies

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/analyzejd/analyzejd/internal/types"
)

// Entry describes one known company.
type Entry struct {
	Name    string
	Aliases []string
	Type    types.CompanyType
	Tier    types.CompanyTier
}

// catalog is the built-in company database, keyed by canonical lowercase name.
var catalog = map[string]Entry{
	// FAANGM
	"meta":      {Name: "Meta", Aliases: []string{"meta", "meta platforms", "facebook"}, Type: types.CompanyProduct, Tier: types.TierFAANGM},
	"google":    {Name: "Google", Aliases: []string{"google", "alphabet", "google llc"}, Type: types.CompanyProduct, Tier: types.TierFAANGM},
	"amazon":    {Name: "Amazon", Aliases: []string{"amazon", "amazon.com", "amazon india"}, Type: types.CompanyProduct, Tier: types.TierFAANGM},
	"microsoft": {Name: "Microsoft", Aliases: []string{"microsoft", "microsoft india"}, Type: types.CompanyProduct, Tier: types.TierFAANGM},
	"apple":     {Name: "Apple", Aliases: []string{"apple", "apple india"}, Type: types.CompanyProduct, Tier: types.TierFAANGM},
	"netflix":   {Name: "Netflix", Aliases: []string{"netflix"}, Type: types.CompanyProduct, Tier: types.TierFAANGM},

	// Semiconductor
	"qualcomm": {Name: "Qualcomm", Aliases: []string{"qualcomm", "qualcomm india", "qualcomm india private limited"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"intel":    {Name: "Intel", Aliases: []string{"intel", "intel india", "intel corporation"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"nvidia":   {Name: "Nvidia", Aliases: []string{"nvidia", "nvidia india", "nvidia corporation"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"amd":      {Name: "AMD", Aliases: []string{"amd", "advanced micro devices"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"broadcom": {Name: "Broadcom", Aliases: []string{"broadcom", "broadcom india"}, Type: types.CompanyProduct, Tier: types.TierOne},

	// Indian IT services, tier 1
	"wipro":         {Name: "Wipro", Aliases: []string{"wipro", "wipro limited", "wipro technologies"}, Type: types.CompanyService, Tier: types.TierOne},
	"tcs":           {Name: "TCS", Aliases: []string{"tcs", "tata consultancy services", "tata consultancy"}, Type: types.CompanyService, Tier: types.TierOne},
	"infosys":       {Name: "Infosys", Aliases: []string{"infosys", "infosys limited", "infosys technologies"}, Type: types.CompanyService, Tier: types.TierOne},
	"hcl":           {Name: "HCL", Aliases: []string{"hcl", "hcl technologies", "hcltech"}, Type: types.CompanyService, Tier: types.TierOne},
	"tech mahindra": {Name: "Tech Mahindra", Aliases: []string{"tech mahindra", "techmahindra"}, Type: types.CompanyService, Tier: types.TierOne},
	"cognizant":     {Name: "Cognizant", Aliases: []string{"cognizant", "cognizant technology solutions", "cts"}, Type: types.CompanyService, Tier: types.TierOne},
	"capgemini":     {Name: "Capgemini", Aliases: []string{"capgemini", "cap gemini"}, Type: types.CompanyService, Tier: types.TierOne},
	"accenture":     {Name: "Accenture", Aliases: []string{"accenture", "accenture india"}, Type: types.CompanyService, Tier: types.TierOne},

	// Indian IT services, tier 2
	"ltimindtree": {Name: "LTIMindtree", Aliases: []string{"ltimindtree", "lti", "mindtree", "l&t infotech"}, Type: types.CompanyService, Tier: types.TierTwo},
	"mphasis":     {Name: "Mphasis", Aliases: []string{"mphasis"}, Type: types.CompanyService, Tier: types.TierTwo},
	"persistent":  {Name: "Persistent", Aliases: []string{"persistent", "persistent systems"}, Type: types.CompanyService, Tier: types.TierTwo},
	"hexaware":    {Name: "Hexaware", Aliases: []string{"hexaware", "hexaware technologies"}, Type: types.CompanyService, Tier: types.TierTwo},
	"cyient":      {Name: "Cyient", Aliases: []string{"cyient", "cyient limited"}, Type: types.CompanyService, Tier: types.TierTwo},
	"zensar":      {Name: "Zensar", Aliases: []string{"zensar", "zensar technologies"}, Type: types.CompanyService, Tier: types.TierTwo},

	// Indian product companies and unicorns
	"flipkart": {Name: "Flipkart", Aliases: []string{"flipkart"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"swiggy":   {Name: "Swiggy", Aliases: []string{"swiggy"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"zomato":   {Name: "Zomato", Aliases: []string{"zomato"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"razorpay": {Name: "Razorpay", Aliases: []string{"razorpay"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"phonepe":  {Name: "PhonePe", Aliases: []string{"phonepe", "phone pe"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"paytm":    {Name: "Paytm", Aliases: []string{"paytm", "one97"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"zerodha":  {Name: "Zerodha", Aliases: []string{"zerodha"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"cred":     {Name: "CRED", Aliases: []string{"cred"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"meesho":   {Name: "Meesho", Aliases: []string{"meesho"}, Type: types.CompanyProduct, Tier: types.TierOne},

	// Captive centers
	"goldman sachs":  {Name: "Goldman Sachs", Aliases: []string{"goldman sachs", "goldman"}, Type: types.CompanyCaptive, Tier: types.TierOne},
	"jp morgan":      {Name: "JP Morgan", Aliases: []string{"jp morgan", "jpmorgan", "jpm"}, Type: types.CompanyCaptive, Tier: types.TierOne},
	"morgan stanley": {Name: "Morgan Stanley", Aliases: []string{"morgan stanley"}, Type: types.CompanyCaptive, Tier: types.TierOne},
	"deutsche bank":  {Name: "Deutsche Bank", Aliases: []string{"deutsche bank"}, Type: types.CompanyCaptive, Tier: types.TierOne},
	"barclays":       {Name: "Barclays", Aliases: []string{"barclays"}, Type: types.CompanyCaptive, Tier: types.TierOne},

	// Global product
	"adobe":      {Name: "Adobe", Aliases: []string{"adobe", "adobe systems"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"salesforce": {Name: "Salesforce", Aliases: []string{"salesforce"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"oracle":     {Name: "Oracle", Aliases: []string{"oracle"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"sap":        {Name: "SAP", Aliases: []string{"sap", "sap labs"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"atlassian":  {Name: "Atlassian", Aliases: []string{"atlassian"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"uber":       {Name: "Uber", Aliases: []string{"uber"}, Type: types.CompanyProduct, Tier: types.TierOne},
	"linkedin":   {Name: "LinkedIn", Aliases: []string{"linkedin"}, Type: types.CompanyProduct, Tier: types.TierOne},
}

// capturedName matches a company name as one or more capitalized tokens.
// Requiring capitalization keeps trailing prose out of the capture
// ("Join Acme today" yields "Acme", not "Acme today").
const capturedName = `([A-Z][A-Za-z0-9&.\-]*(?: [A-Z][A-Za-z0-9&.\-]*)*)`

// Heuristic fallbacks for companies the catalog does not know. The cue
// words are case-insensitive since they can open a sentence or appear
// mid-text; the name itself stays case-sensitive.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?i:about)\s+` + capturedName),
	regexp.MustCompile(capturedName + `\s+(?i:is\s+seeking)\b`),
	regexp.MustCompile(`\b(?i:join)\s+` + capturedName),
	regexp.MustCompile(capturedName + `\s+(?i:is\s+hiring)\b`),
}

type aliasMatcher struct {
	re   *regexp.Regexp
	name string
}

// aliasMatchers is compiled once, ordered by canonical key so that a text
// mentioning several known companies always resolves to the same one.
var aliasMatchers = buildAliasMatchers()

func buildAliasMatchers() []aliasMatcher {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var matchers []aliasMatcher
	for _, k := range keys {
		entry := catalog[k]
		for _, alias := range entry.Aliases {
			matchers = append(matchers, aliasMatcher{
				re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\b`),
				name: entry.Name,
			})
		}
	}
	return matchers
}

// ExtractName pulls the company name out of job-description text. Known
// aliases are tried first for precision (word-boundary, case-insensitive);
// the "About X" style heuristics run only as a fallback. Returns "" when
// nothing matches.
func ExtractName(text string) string {
	lower := strings.ToLower(text)

	for _, m := range aliasMatchers {
		if m.re.MatchString(lower) {
			return m.name
		}
	}

	for _, pattern := range namePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	return ""
}

// Classify returns the deterministic classification for a known company.
// The boolean is false when the catalog has no entry for the name.
func Classify(name string) (types.CompanyType, types.CompanyTier, bool) {
	if name == "" {
		return types.CompanyUnknown, types.TierUnknown, false
	}

	lower := strings.ToLower(name)
	if entry, ok := catalog[lower]; ok {
		return entry.Type, entry.Tier, true
	}
	for _, entry := range catalog {
		for _, alias := range entry.Aliases {
			if alias == lower {
				return entry.Type, entry.Tier, true
			}
		}
	}

	return types.CompanyUnknown, types.TierUnknown, false
}

// Override resolves the final classification: the catalog wins when it knows
// the company, otherwise the LLM's guess stands (normalized to the enum).
func Override(name string, llmType, llmTier string) (types.CompanyType, types.CompanyTier) {
	if t, tier, ok := Classify(name); ok {
		return t, tier
	}
	return NormalizeType(llmType), NormalizeTier(llmTier)
}

// NormalizeType maps a free-form type string onto the CompanyType enum.
func NormalizeType(s string) types.CompanyType {
	switch types.CompanyType(strings.TrimSpace(s)) {
	case types.CompanyProduct, types.CompanyService, types.CompanyStartup, types.CompanyCaptive:
		return types.CompanyType(strings.TrimSpace(s))
	default:
		return types.CompanyUnknown
	}
}

// NormalizeTier maps a free-form tier string onto the CompanyTier enum.
func NormalizeTier(s string) types.CompanyTier {
	switch types.CompanyTier(strings.TrimSpace(s)) {
	case types.TierFAANGM, types.TierOne, types.TierTwo, types.TierThree:
		return types.CompanyTier(strings.TrimSpace(s))
	default:
		return types.TierUnknown
	}
}

// All returns every catalog entry sorted by canonical name, for seeding the
// companies table and the GET /companies listing.
func All() []Entry {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, catalog[k])
	}
	return entries
}

// Lookup returns the entry for a canonical or aliased name.
func Lookup(name string) (Entry, error) {
	lower := strings.ToLower(name)
	if entry, ok := catalog[lower]; ok {
		return entry, nil
	}
	for _, entry := range catalog {
		for _, alias := range entry.Aliases {
			if alias == lower {
				return entry, nil
			}
		}
	}
	return Entry{}, fmt.Errorf("unknown company: %s", name)
}
