package camp

import (
	"regexp"
	"strconv"
	"strings"
)

// AgeInterval is a numeric age range parsed from a free-text label.
type AgeInterval struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// openEndedMaxAge stands in for "no upper bound" on labels like "18+".
const openEndedMaxAge = 100

var yearsSuffix = regexp.MustCompile(`years?`)

// ExtractAgeRange parses labels like "10-14", "18+ years", or "12" into an
// interval. A trailing "+" maps to an unbounded max, a bare integer to
// {X,X}. Returns false for strings that carry no parseable age.
func ExtractAgeRange(ageString string) (AgeInterval, bool) {
	cleaned := strings.TrimSpace(yearsSuffix.ReplaceAllString(strings.ToLower(ageString), ""))

	if strings.Contains(cleaned, "+") {
		min, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(cleaned, "+", "")))
		if err != nil {
			return AgeInterval{}, false
		}
		return AgeInterval{Min: min, Max: openEndedMaxAge}, true
	}

	if strings.Contains(cleaned, "-") {
		parts := strings.SplitN(cleaned, "-", 2)
		min, minErr := strconv.Atoi(strings.TrimSpace(parts[0]))
		max, maxErr := strconv.Atoi(strings.TrimSpace(parts[1]))
		if minErr == nil && maxErr == nil {
			return AgeInterval{Min: min, Max: max}, true
		}
		return AgeInterval{}, false
	}

	if single, err := strconv.Atoi(cleaned); err == nil {
		return AgeInterval{Min: single, Max: single}, true
	}

	return AgeInterval{}, false
}

// AgeIntervalsOverlap reports whether two intervals share at least one age.
// Touching boundaries count as overlap.
func AgeIntervalsOverlap(a, b AgeInterval) bool {
	return a.Min <= b.Max && b.Min <= a.Max
}
