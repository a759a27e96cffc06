// Package render produces Markdown, text and HTML output from a prediction.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/screentime/internal/scoring"
	"github.com/dshills/screentime/internal/survey"
)

// Insight is one line of the "Key Insights" list echoing the survey.
type Insight struct {
	Label string
	Value string
}

// Insights echoes the raw answers shown next to a prediction.
func Insights(in survey.Input) []Insight {
	return []Insight{
		{"Daily Usage", formatFloat(in.DailyUsage) + " hours"},
		{"Sleep Pattern", formatFloat(in.SleepHours) + " hours"},
		{"Phone Checks", strconv.Itoa(in.PhoneChecks) + " times/day"},
		{"Social Interactions", strconv.Itoa(in.SocialInteractions) + "/10"},
	}
}

// FormatScore renders a score with one decimal place.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Markdown renders a prediction as a Markdown report.
func Markdown(p scoring.Prediction, in survey.Input) string {
	var b strings.Builder

	b.WriteString("# Prediction Results\n\n")
	fmt.Fprintf(&b, "**Score:** %s / 10\n", FormatScore(p.Score))
	fmt.Fprintf(&b, "**Level:** %s Addiction\n", p.Level)
	fmt.Fprintf(&b, "**Risk:** %s\n\n", p.Risk)

	b.WriteString("## Key Insights\n\n")
	for _, ins := range Insights(in) {
		fmt.Fprintf(&b, "- %s: %s\n", ins.Label, ins.Value)
	}
	b.WriteString("\n")

	b.WriteString("## Recommendations\n\n")
	fmt.Fprintf(&b, "%s\n\n", p.Recommendation)

	if len(p.Factors) > 0 {
		b.WriteString("## Factor Breakdown\n\n")
		b.WriteString("| Factor | Bucket | Contribution |\n")
		b.WriteString("|---|---|---|\n")
		for _, f := range p.Factors {
			fmt.Fprintf(&b, "| %s | %d | %.2f |\n", f.Factor, f.Bucket+1, f.Value)
		}
		fmt.Fprintf(&b, "| **raw sum** | | %.2f |\n\n", p.RawSum)
	}

	return b.String()
}

// Text renders a short plain-text summary for terminals.
func Text(p scoring.Prediction, in survey.Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Predicted Addiction Score: %s / 10\n", FormatScore(p.Score))
	fmt.Fprintf(&b, "Addiction Level: %s (%s)\n", p.Level, p.Risk)
	b.WriteString("Key Insights:\n")
	for _, ins := range Insights(in) {
		fmt.Fprintf(&b, "  - %s: %s\n", ins.Label, ins.Value)
	}
	fmt.Fprintf(&b, "Recommendation: %s\n", p.Recommendation)
	return b.String()
}
