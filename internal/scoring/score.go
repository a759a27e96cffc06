package scoring

import (
	"math"

	"github.com/dshills/screentime/internal/survey"
)

// MaxScore is the upper clamp of Score.
const MaxScore = 10.0

// rule buckets one survey field. Thresholds are checked in order, most
// severe first; a value matching none falls into the last weight.
type rule struct {
	factor     string
	atLeast    bool // v >= threshold is severe; otherwise v <= threshold is
	thresholds []float64
	weights    []float64
	value      func(survey.Input) float64
}

func (r rule) bucket(v float64) int {
	for i, t := range r.thresholds {
		if (r.atLeast && v >= t) || (!r.atLeast && v <= t) {
			return i
		}
	}
	return len(r.thresholds)
}

// rules are summed in this order.
var rules = []rule{
	{
		factor: survey.FieldAge, thresholds: []float64{14, 16}, weights: []float64{0.3, 0.2, 0.1},
		value: func(in survey.Input) float64 { return float64(in.Age) },
	},
	{
		factor: survey.FieldDailyUsage, atLeast: true, thresholds: []float64{6, 4, 2}, weights: []float64{0.4, 0.3, 0.2, 0.1},
		value: func(in survey.Input) float64 { return in.DailyUsage },
	},
	{
		factor: survey.FieldSleepHours, thresholds: []float64{5, 7}, weights: []float64{0.3, 0.2, 0.1},
		value: func(in survey.Input) float64 { return in.SleepHours },
	},
	{
		factor: survey.FieldAcademicPerformance, thresholds: []float64{60, 80}, weights: []float64{0.2, 0.1, 0.05},
		value: func(in survey.Input) float64 { return float64(in.AcademicPerformance) },
	},
	{
		factor: survey.FieldSocialInteractions, thresholds: []float64{3, 6}, weights: []float64{0.2, 0.1, 0.05},
		value: func(in survey.Input) float64 { return float64(in.SocialInteractions) },
	},
	{
		factor: survey.FieldAnxietyLevel, atLeast: true, thresholds: []float64{7, 5}, weights: []float64{0.2, 0.1, 0.05},
		value: func(in survey.Input) float64 { return float64(in.AnxietyLevel) },
	},
	{
		factor: survey.FieldPhoneChecks, atLeast: true, thresholds: []float64{100, 70, 50}, weights: []float64{0.3, 0.2, 0.1, 0.05},
		value: func(in survey.Input) float64 { return float64(in.PhoneChecks) },
	},
}

// ComputeRawSum returns the unclamped weighted sum and the per-factor breakdown.
func ComputeRawSum(in survey.Input) (float64, []Contribution) {
	sum := 0.0
	factors := make([]Contribution, len(rules))
	for i, r := range rules {
		b := r.bucket(r.value(in))
		w := r.weights[b]
		sum += w
		factors[i] = Contribution{Factor: r.factor, Bucket: b, Value: w}
	}
	return sum, factors
}

// Normalize scales a raw sum by 10 and clamps it to [0, MaxScore].
// Raw sums above 1.0 saturate; this is not a normalization against the
// 1.9 ceiling.
func Normalize(raw float64) float64 {
	return math.Min(MaxScore, math.Max(0, raw*10))
}
