package signals

import (
	"regexp"
	"strconv"
	"strings"
)

// maxPlausibleYears caps the parsed experience figure. Anything above this is
// treated as noise (a salary figure or headcount caught by the regex) and the
// match is discarded.
const maxPlausibleYears = 40

var (
	// "5 years", "5+ yrs", "5-8 years", "5 - 8 years of experience"
	yearsPattern = regexp.MustCompile(`(\d{1,3})\s*(?:\+|\s*-\s*(\d{1,3}))?\s*(?:years?|yrs?)`)
	// "experience of 5", "experience: 5"
	experiencePattern = regexp.MustCompile(`experience\s*(?:of|:)?\s*(\d{1,3})`)
	fresherPattern    = regexp.MustCompile(`\bfreshers?\b`)
)

// ExtractExperienceYears parses a best-effort required-experience estimate
// from the text. For ranges ("5-8 years") the lower bound is the requirement.
// Across multiple matches the maximum plausible figure wins. Returns nil when
// nothing parseable is found, including when every candidate exceeds the
// plausibility cap.
func ExtractExperienceYears(text string) *int {
	lower := strings.ToLower(text)

	best := -1
	for _, m := range yearsPattern.FindAllStringSubmatch(lower, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n > maxPlausibleYears {
			continue
		}
		if n > best {
			best = n
		}
	}
	if best < 0 {
		for _, m := range experiencePattern.FindAllStringSubmatch(lower, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil || n > maxPlausibleYears {
				continue
			}
			if n > best {
				best = n
			}
		}
	}
	if best < 0 {
		// A JD that addresses freshers explicitly is a zero-experience role.
		if fresherPattern.MatchString(lower) {
			zero := 0
			return &zero
		}
		return nil
	}
	return &best
}

// ExperienceLabel renders the parsed years as the human-readable bracket used
// in the response's required_experience field.
func ExperienceLabel(years *int) string {
	switch {
	case years == nil:
		return "Not explicitly specified"
	case *years <= 1:
		return "0-1 Years (Fresher-friendly)"
	case *years <= 2:
		return "1-2 Years (Early career)"
	case *years <= 4:
		return "2-5 Years (Mid-level)"
	case *years <= 7:
		return "5-8 Years (Senior)"
	default:
		return "8+ Years (Lead/Principal)"
	}
}
