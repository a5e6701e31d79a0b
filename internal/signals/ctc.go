package signals

import (
	"regexp"
	"strings"
)

// Many product-company JDs omit CTC entirely; an empty result is normal.
var ctcPattern = regexp.MustCompile(`(\d+(?:\.\d+)?\s*(?:lpa|lakhs?|ctc))`)

// ExtractCTC returns the advertised CTC figure if one appears in the text,
// or "" when absent. The value is display-only and never affects the verdict.
func ExtractCTC(text string) string {
	m := ctcPattern.FindString(strings.ToLower(text))
	return m
}
