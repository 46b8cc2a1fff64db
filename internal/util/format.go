package util

import (
	"fmt"
	"math"
)

// FormatConfidenceLevel maps a 0..1 confidence to its display label.
func FormatConfidenceLevel(confidence float64) string {
	switch {
	case confidence >= 0.9:
		return "Very High"
	case confidence >= 0.7:
		return "High"
	case confidence >= 0.5:
		return "Moderate"
	default:
		return "Low"
	}
}

// FormatPercentage renders a 0..1 ratio as a whole percentage.
func FormatPercentage(ratio float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(ratio*100)))
}

// FormatStenScore labels a 1..10 sten score.
func FormatStenScore(score float64) string {
	switch {
	case score >= 9:
		return "Very High"
	case score >= 7:
		return "High"
	case score >= 6:
		return "Above Average"
	case score >= 5:
		return "Average"
	case score >= 3:
		return "Below Average"
	default:
		return "Low"
	}
}

// FormatProcessingTime renders seconds as s, m or h.
func FormatProcessingTime(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", int(math.Round(seconds)))
	case seconds < 3600:
		return fmt.Sprintf("%dm", int(math.Round(seconds/60)))
	default:
		return fmt.Sprintf("%dh", int(math.Round(seconds/3600)))
	}
}

var aptitudeDomains = map[string]string{
	"Ca": "Verbal Reasoning",
	"Cl": "Clerical",
	"Ma": "Mathematical Reasoning",
	"Na": "Numerical Ability",
	"Pm": "Perceptual Reasoning",
	"Ra": "Rotational Reasoning",
	"Sa": "Spatial Reasoning",
	"Va": "Verbal Fluency",
}

// FormatAptitudeDomain expands a DBDA domain code; unknown codes pass through.
func FormatAptitudeDomain(code string) string {
	if name, ok := aptitudeDomains[code]; ok {
		return name
	}
	return code
}
