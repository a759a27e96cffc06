package scoring

import "github.com/dshills/screentime/internal/survey"

// Recommendation texts, one per score bucket.
const (
	RecommendHigh     = "Consider professional help and implement strict phone usage limits. Focus on alternative activities and social interactions."
	RecommendModerate = "Set daily phone usage limits and prioritize sleep. Engage in more offline activities and social interactions."
	RecommendLow      = "Monitor usage patterns and maintain healthy habits. Consider setting specific time limits for social media."
	RecommendVeryLow  = "Maintain current healthy phone usage patterns. Continue balancing digital and offline activities."
)

// Score thresholds, checked in descending order.
var thresholds = [...]float64{8, 6, 4}

// Level, risk and recommendation share one bucket index so they cannot disagree.
var (
	levels          = [...]Level{LevelHigh, LevelModerate, LevelLow, LevelVeryLow}
	risks           = [...]Risk{RiskHigh, RiskModerate, RiskLow, RiskMinimal}
	recommendations = [...]string{RecommendHigh, RecommendModerate, RecommendLow, RecommendVeryLow}
)

func scoreBucket(score float64) int {
	for i, t := range thresholds {
		if score >= t {
			return i
		}
	}
	return len(thresholds)
}

// ClassifyLevel maps a score to its addiction level.
func ClassifyLevel(score float64) Level { return levels[scoreBucket(score)] }

// ClassifyRisk maps a score to its risk label.
func ClassifyRisk(score float64) Risk { return risks[scoreBucket(score)] }

// Recommend returns the advisory text for a score.
func Recommend(score float64) string { return recommendations[scoreBucket(score)] }

// Predict scores a validated survey. It never fails: out-of-range answers
// are bucketed by the same thresholds as any other value.
func Predict(in survey.Input) Prediction {
	raw, factors := ComputeRawSum(in)
	score := Normalize(raw)
	b := scoreBucket(score)
	return Prediction{
		Score:          score,
		RawSum:         raw,
		Level:          levels[b],
		Risk:           risks[b],
		Recommendation: recommendations[b],
		Factors:        factors,
	}
}
