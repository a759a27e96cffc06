package survey

import (
	"errors"
	"math"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validMap() map[string]string {
	return map[string]string{
		FieldAge:                 "15",
		FieldDailyUsage:          "4.5",
		FieldSleepHours:          "6.5",
		FieldAcademicPerformance: "72",
		FieldSocialInteractions:  "5",
		FieldAnxietyLevel:        "6",
		FieldPhoneChecks:         "80",
	}
}

func TestFromMapValid(t *testing.T) {
	in, err := FromMap(validMap())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Input{
		Age: 15, DailyUsage: 4.5, SleepHours: 6.5,
		AcademicPerformance: 72, SocialInteractions: 5,
		AnxietyLevel: 6, PhoneChecks: 80,
	}
	if in != want {
		t.Errorf("FromMap() = %+v, want %+v", in, want)
	}
}

func TestFromMapTrimsAndTruncates(t *testing.T) {
	m := validMap()
	m[FieldAge] = " 14.9 "
	m[FieldPhoneChecks] = "99.99"
	m[FieldDailyUsage] = "-1"
	in, err := FromMap(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Age != 14 {
		t.Errorf("Age = %d, want 14", in.Age)
	}
	if in.PhoneChecks != 99 {
		t.Errorf("PhoneChecks = %d, want 99", in.PhoneChecks)
	}
	if in.DailyUsage != -1 {
		t.Errorf("negative hours must pass through, got %v", in.DailyUsage)
	}
}

func TestFromMapReportsEveryField(t *testing.T) {
	m := validMap()
	delete(m, FieldAge)
	m[FieldSleepHours] = "lots"
	m[FieldAnxietyLevel] = "NaN"
	m[FieldPhoneChecks] = "+Inf"

	_, err := FromMap(m)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected errors.Is(err, ErrInvalidInput), got %v", err)
	}
	var ie *InvalidInputError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InvalidInputError, got %T", err)
	}

	got := map[string]string{}
	for _, fe := range ie.Fields {
		got[fe.Field] = fe.Message
	}
	tests := []struct {
		field string
		want  string
	}{
		{FieldAge, "required"},
		{FieldSleepHours, "not a number"},
		{FieldAnxietyLevel, "must be finite"},
		{FieldPhoneChecks, "must be finite"},
	}
	for _, tt := range tests {
		msg, ok := got[tt.field]
		if !ok {
			t.Errorf("missing error for %s", tt.field)
			continue
		}
		if !strings.Contains(msg, tt.want) {
			t.Errorf("%s: message %q does not contain %q", tt.field, msg, tt.want)
		}
	}
	if len(ie.Fields) != len(tests) {
		t.Errorf("got %d field errors, want %d: %v", len(ie.Fields), len(tests), ie.Fields)
	}
}

func TestFromMapEmptyIsRequired(t *testing.T) {
	_, err := FromMap(map[string]string{})
	var ie *InvalidInputError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InvalidInputError, got %v", err)
	}
	if len(ie.Fields) != len(ScoredFields) {
		t.Errorf("got %d field errors, want %d", len(ie.Fields), len(ScoredFields))
	}
	for i, fe := range ie.Fields {
		if fe.Field != ScoredFields[i] {
			t.Errorf("[%d] field = %s, want %s", i, fe.Field, ScoredFields[i])
		}
	}
}

func TestFromMapLargeInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"3000000000", 3000000000},
		{"-3000000000", -3000000000},
		{"1e300", math.MaxInt},
		{"-1e300", math.MinInt},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			m := validMap()
			m[FieldPhoneChecks] = tt.raw
			in, err := FromMap(m)
			if err != nil {
				t.Fatalf("large values are not range-checked, got %v", err)
			}
			if in.PhoneChecks != tt.want {
				t.Errorf("PhoneChecks = %d, want %d", in.PhoneChecks, tt.want)
			}
		})
	}
}

func TestFromMapExponentInt(t *testing.T) {
	m := validMap()
	m[FieldAge] = "1e1"
	m[FieldPhoneChecks] = "1.5e2"
	in, err := FromMap(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// exponent forms are read as full numbers, then truncated
	if in.Age != 10 || in.PhoneChecks != 150 {
		t.Errorf("got age %d, phoneChecks %d; want 10, 150", in.Age, in.PhoneChecks)
	}
}

func TestGender(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"female", "Female", false},
		{"MALE", "Male", false},
		{"Other", "Other", false},
		{"unknown", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			m := validMap()
			m[FieldGender] = tt.raw
			in, err := FromMap(m)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if in.Gender != tt.want {
				t.Errorf("Gender = %q, want %q", in.Gender, tt.want)
			}
		})
	}
}

func TestFromValues(t *testing.T) {
	v := url.Values{}
	for k, val := range validMap() {
		v.Set(k, val)
	}
	v.Set("unrelated", "ignored")
	in, err := FromValues(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.PhoneChecks != 80 {
		t.Errorf("PhoneChecks = %d, want 80", in.PhoneChecks)
	}

	back, err := FromValues(in.Values())
	if err != nil {
		t.Fatalf("Values() produced invalid form: %v", err)
	}
	if back != in {
		t.Errorf("Values() mismatch: %+v vs %+v", back, in)
	}
}

func TestFromAnyTypes(t *testing.T) {
	raw := map[string]any{
		FieldAge:                 14,
		FieldDailyUsage:          6.25,
		FieldSleepHours:          "5",
		FieldAcademicPerformance: int64(60),
		FieldSocialInteractions:  3,
		FieldAnxietyLevel:        7,
		FieldPhoneChecks:         true,
	}
	_, err := FromAny(raw)
	var ie *InvalidInputError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InvalidInputError, got %v", err)
	}
	if len(ie.Fields) != 1 || ie.Fields[0].Field != FieldPhoneChecks {
		t.Errorf("expected only phoneChecks to fail, got %v", ie.Fields)
	}

	raw[FieldPhoneChecks] = 100
	in, err := FromAny(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.DailyUsage != 6.25 || in.SleepHours != 5 || in.AcademicPerformance != 60 {
		t.Errorf("unexpected input: %+v", in)
	}
}

func TestDecodeYAMLAndJSON(t *testing.T) {
	yamlDoc := `
age: 16
gender: other
dailyUsage: 3
sleepHours: 7.5
academicPerformance: 85
socialInteractions: 7
anxietyLevel: 4
phoneChecks: 55
`
	jsonDoc := `{"age": 16, "gender": "other", "dailyUsage": "3", "sleepHours": 7.5,
"academicPerformance": 85, "socialInteractions": 7, "anxietyLevel": 4, "phoneChecks": 55}`

	for name, doc := range map[string]string{"yaml": yamlDoc, "json": jsonDoc} {
		t.Run(name, func(t *testing.T) {
			in, err := Decode([]byte(doc))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if in.Age != 16 || in.Gender != "Other" || in.DailyUsage != 3 || in.PhoneChecks != 55 {
				t.Errorf("unexpected input: %+v", in)
			}
		})
	}
}

func TestDecodeRejectsNonMapping(t *testing.T) {
	_, err := Decode([]byte("- 1\n- 2\n"))
	if err == nil {
		t.Fatal("expected error for sequence document")
	}
	if errors.Is(err, ErrInvalidInput) {
		t.Error("malformed document should not be reported as invalid input")
	}
}

func TestDecodeNaN(t *testing.T) {
	doc := `{age: 15, dailyUsage: .nan, sleepHours: 7, academicPerformance: 70, socialInteractions: 5, anxietyLevel: 5, phoneChecks: 60}`
	_, err := Decode([]byte(doc))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for NaN, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "survey.yaml")
	content := "age: 13\ndailyUsage: 8\nsleepHours: 4\nacademicPerformance: 55\nsocialInteractions: 2\nanxietyLevel: 9\nphoneChecks: 150\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.HasPrefix(f.Hash, "sha256:") || len(f.Hash) != len("sha256:")+64 {
		t.Errorf("unexpected hash %q", f.Hash)
	}
	if f.Input.Age != 13 || f.Input.PhoneChecks != 150 {
		t.Errorf("unexpected input: %+v", f.Input)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
