// Package scoring computes the heuristic phone-addiction score for a survey.
package scoring

// Prediction is the classified result of scoring one survey.
type Prediction struct {
	Score          float64        `json:"score"`
	RawSum         float64        `json:"rawSum"`
	Level          Level          `json:"level"`
	Risk           Risk           `json:"risk"`
	Recommendation string         `json:"recommendation"`
	Factors        []Contribution `json:"factors"`
}

// Contribution records how one survey field was bucketed.
type Contribution struct {
	Factor string  `json:"factor"`
	Bucket int     `json:"bucket"` // 0 = most severe
	Value  float64 `json:"value"`
}
