// Package survey parses and validates screening survey answers into a typed Input.
package survey

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Field names as they appear in forms, JSON and YAML.
const (
	FieldAge                 = "age"
	FieldGender              = "gender"
	FieldDailyUsage          = "dailyUsage"
	FieldSleepHours          = "sleepHours"
	FieldAcademicPerformance = "academicPerformance"
	FieldSocialInteractions  = "socialInteractions"
	FieldAnxietyLevel        = "anxietyLevel"
	FieldPhoneChecks         = "phoneChecks"
)

// ScoredFields lists the required fields in the order they are scored.
var ScoredFields = []string{
	FieldAge,
	FieldDailyUsage,
	FieldSleepHours,
	FieldAcademicPerformance,
	FieldSocialInteractions,
	FieldAnxietyLevel,
	FieldPhoneChecks,
}

// Input is one respondent's answers, already coerced to numbers.
type Input struct {
	Age                 int     `json:"age" yaml:"age"`
	Gender              string  `json:"gender,omitempty" yaml:"gender,omitempty"`
	DailyUsage          float64 `json:"dailyUsage" yaml:"dailyUsage"`
	SleepHours          float64 `json:"sleepHours" yaml:"sleepHours"`
	AcademicPerformance int     `json:"academicPerformance" yaml:"academicPerformance"`
	SocialInteractions  int     `json:"socialInteractions" yaml:"socialInteractions"`
	AnxietyLevel        int     `json:"anxietyLevel" yaml:"anxietyLevel"`
	PhoneChecks         int     `json:"phoneChecks" yaml:"phoneChecks"`
}

// ErrInvalidInput matches any *InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single missing or malformed field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldError) Error() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// InvalidInputError collects every field problem found in one submission.
type InvalidInputError struct {
	Fields []FieldError
}

func (e *InvalidInputError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Genders accepted for the optional gender field.
var Genders = []string{"Male", "Female", "Other"}

// FromMap coerces raw string answers into an Input. Every problem is
// reported in a single *InvalidInputError; no partial Input is returned.
func FromMap(m map[string]string) (Input, error) {
	var in Input
	var errs []FieldError

	intField := func(name string, dst *int) {
		v, fe := parseInt(name, m)
		if fe != nil {
			errs = append(errs, *fe)
			return
		}
		*dst = v
	}
	floatField := func(name string, dst *float64) {
		v, fe := parseFloat(name, m)
		if fe != nil {
			errs = append(errs, *fe)
			return
		}
		*dst = v
	}

	intField(FieldAge, &in.Age)
	floatField(FieldDailyUsage, &in.DailyUsage)
	floatField(FieldSleepHours, &in.SleepHours)
	intField(FieldAcademicPerformance, &in.AcademicPerformance)
	intField(FieldSocialInteractions, &in.SocialInteractions)
	intField(FieldAnxietyLevel, &in.AnxietyLevel)
	intField(FieldPhoneChecks, &in.PhoneChecks)

	if g := strings.TrimSpace(m[FieldGender]); g != "" {
		canon, ok := canonicalGender(g)
		if !ok {
			errs = append(errs, FieldError{FieldGender, fmt.Sprintf("must be one of %s, got %q", strings.Join(Genders, ", "), g)})
		}
		in.Gender = canon
	}

	if len(errs) > 0 {
		return Input{}, &InvalidInputError{Fields: errs}
	}
	return in, nil
}

// FromValues coerces an HTML form submission.
func FromValues(v url.Values) (Input, error) {
	m := make(map[string]string, len(ScoredFields)+1)
	for _, name := range append([]string{FieldGender}, ScoredFields...) {
		if v.Has(name) {
			m[name] = v.Get(name)
		}
	}
	return FromMap(m)
}

// FromAny coerces a decoded JSON or YAML object. Numbers and numeric
// strings are both accepted; any other value type is rejected by the
// numeric parser.
func FromAny(raw map[string]any) (Input, error) {
	m := make(map[string]string, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case nil:
			m[k] = ""
		case string:
			m[k] = t
		case int:
			m[k] = strconv.Itoa(t)
		case int64:
			m[k] = strconv.FormatInt(t, 10)
		case float64:
			m[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case fmt.Stringer:
			m[k] = t.String()
		default:
			m[k] = fmt.Sprint(t)
		}
	}
	return FromMap(m)
}

func parseFloat(name string, m map[string]string) (float64, *FieldError) {
	s := strings.TrimSpace(m[name])
	if s == "" {
		return 0, &FieldError{name, "required"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FieldError{name, fmt.Sprintf("not a number: %q", s)}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{name, fmt.Sprintf("must be finite, got %q", s)}
	}
	return v, nil
}

// parseInt truncates decimal answers toward zero. Values beyond the int
// range saturate at math.MaxInt or math.MinInt.
func parseInt(name string, m map[string]string) (int, *FieldError) {
	v, fe := parseFloat(name, m)
	if fe != nil {
		return 0, fe
	}
	switch {
	case v >= math.MaxInt:
		return math.MaxInt, nil
	case v <= math.MinInt:
		return math.MinInt, nil
	}
	return int(math.Trunc(v)), nil
}

func canonicalGender(g string) (string, bool) {
	for _, known := range Genders {
		if strings.EqualFold(g, known) {
			return known, true
		}
	}
	return g, false
}

// Values renders the input back into form values, the inverse of FromValues.
func (in Input) Values() url.Values {
	v := url.Values{}
	v.Set(FieldAge, strconv.Itoa(in.Age))
	if in.Gender != "" {
		v.Set(FieldGender, in.Gender)
	}
	v.Set(FieldDailyUsage, strconv.FormatFloat(in.DailyUsage, 'f', -1, 64))
	v.Set(FieldSleepHours, strconv.FormatFloat(in.SleepHours, 'f', -1, 64))
	v.Set(FieldAcademicPerformance, strconv.Itoa(in.AcademicPerformance))
	v.Set(FieldSocialInteractions, strconv.Itoa(in.SocialInteractions))
	v.Set(FieldAnxietyLevel, strconv.Itoa(in.AnxietyLevel))
	v.Set(FieldPhoneChecks, strconv.Itoa(in.PhoneChecks))
	return v
}
