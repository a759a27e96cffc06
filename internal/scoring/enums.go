package scoring

import (
	"fmt"
	"strings"
)

// Level is the predicted addiction level.
type Level string

const (
	LevelVeryLow  Level = "Very Low"
	LevelLow      Level = "Low"
	LevelModerate Level = "Moderate"
	LevelHigh     Level = "High"
)

func (l Level) Valid() bool {
	switch l {
	case LevelVeryLow, LevelLow, LevelModerate, LevelHigh:
		return true
	}
	return false
}

// Order returns the bucket index (0 = Very Low, 3 = High, -1 if invalid).
func (l Level) Order() int {
	switch l {
	case LevelVeryLow:
		return 0
	case LevelLow:
		return 1
	case LevelModerate:
		return 2
	case LevelHigh:
		return 3
	default:
		return -1
	}
}

// Slug is the CSS class used for the level badge.
func (l Level) Slug() string { return slug(string(l)) }

// Risk is the risk label paired with a Level.
type Risk string

const (
	RiskMinimal  Risk = "Minimal Risk"
	RiskLow      Risk = "Low Risk"
	RiskModerate Risk = "Moderate Risk"
	RiskHigh     Risk = "High Risk"
)

func (r Risk) Valid() bool {
	switch r {
	case RiskMinimal, RiskLow, RiskModerate, RiskHigh:
		return true
	}
	return false
}

func (r Risk) Slug() string { return slug(string(r)) }

// slug lowercases and replaces the first space only, matching the badge
// classes used by the stylesheet ("very-low", "high-risk").
func slug(s string) string {
	return strings.Replace(strings.ToLower(s), " ", "-", 1)
}

// ParseLevel accepts a level name or slug, case-insensitively.
func ParseLevel(s string) (Level, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	for _, l := range []Level{LevelVeryLow, LevelLow, LevelModerate, LevelHigh} {
		if strings.ToLower(string(l)) == norm {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q (want very-low, low, moderate, or high)", s)
}

// MeetsThreshold reports whether l is at or above threshold.
// Invalid levels never meet a threshold.
func MeetsThreshold(l, threshold Level) bool {
	if !l.Valid() || !threshold.Valid() {
		return false
	}
	return l.Order() >= threshold.Order()
}
