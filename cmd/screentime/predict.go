package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/screentime/internal/render"
	"github.com/dshills/screentime/internal/scoring"
	"github.com/dshills/screentime/internal/survey"
	"github.com/spf13/cobra"
)

type predictFlags struct {
	format  string
	out     string
	failOn  string
	verbose bool
	answers map[string]*string

	stdout io.Writer
}

// answerFlags maps CLI flag names to survey field names.
var answerFlags = []struct {
	flag, field, usage string
}{
	{"age", survey.FieldAge, "Age in years"},
	{"gender", survey.FieldGender, "Gender: Male, Female, or Other (not scored)"},
	{"daily-usage", survey.FieldDailyUsage, "Daily phone usage in hours"},
	{"sleep-hours", survey.FieldSleepHours, "Sleep per night in hours"},
	{"academic-performance", survey.FieldAcademicPerformance, "Academic performance, 0-100"},
	{"social-interactions", survey.FieldSocialInteractions, "Social interactions, 0-10"},
	{"anxiety-level", survey.FieldAnxietyLevel, "Anxiety level, 0-10"},
	{"phone-checks", survey.FieldPhoneChecks, "Phone checks per day"},
}

func newPredictCmd() *cobra.Command {
	f := &predictFlags{answers: map[string]*string{}}

	cmd := &cobra.Command{
		Use:   "predict [survey-file]",
		Short: "Score a survey given as a YAML/JSON file or as flags",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only explicitly set answer flags count as answers
			for _, af := range answerFlags {
				if !cmd.Flags().Changed(af.flag) {
					delete(f.answers, af.field)
				}
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runPredict(path, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "text", "Output format: text, json, or md")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit 2 if the level is at or above this: very-low, low, moderate, high")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")
	for _, af := range answerFlags {
		f.answers[af.field] = flags.String(af.flag, "", af.usage)
	}

	return cmd
}

// predictReport is the JSON output of the predict command.
type predictReport struct {
	Tool       string             `json:"tool"`
	Version    string             `json:"version"`
	Source     predictSource      `json:"source"`
	Survey     survey.Input       `json:"survey"`
	Prediction scoring.Prediction `json:"prediction"`
}

type predictSource struct {
	File string `json:"file,omitempty"`
	Hash string `json:"hash,omitempty"`
}

func runPredict(path string, f *predictFlags) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	var threshold scoring.Level
	if f.failOn != "" {
		l, err := scoring.ParseLevel(f.failOn)
		if err != nil {
			return exitError(3, "invalid --fail-on: %v", err)
		}
		threshold = l
	}

	// 1. Collect answers
	var in survey.Input
	var src predictSource
	switch {
	case path != "" && len(f.answers) > 0:
		return exitError(3, "give answers either as a survey file or as flags, not both")
	case path != "":
		verbose("Loading survey: %s", path)
		sf, err := survey.Load(path)
		if err != nil {
			return inputError(err)
		}
		in = sf.Input
		src = predictSource{File: filepath.Base(path), Hash: sf.Hash}
	default:
		verbose("Reading answers from flags")
		m := make(map[string]string, len(f.answers))
		for field, v := range f.answers {
			m[field] = *v
		}
		var err error
		in, err = survey.FromMap(m)
		if err != nil {
			return inputError(err)
		}
	}

	// 2. Score
	p := scoring.Predict(in)
	verbose("Raw sum %.2f, score %.1f, level %s", p.RawSum, p.Score, p.Level)

	// 3. Output
	var output string
	switch f.format {
	case "text":
		output = render.Text(p, in)
	case "md":
		output = render.Markdown(p, in)
	case "json":
		data, err := json.MarshalIndent(predictReport{
			Tool:       "screentime",
			Version:    version,
			Source:     src,
			Survey:     in,
			Prediction: p,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	if f.out != "" {
		verbose("Writing output to %s", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		w := f.stdout
		if w == nil {
			w = os.Stdout
		}
		fmt.Fprint(w, output)
	}

	// 4. Exit code based on --fail-on
	if threshold != "" && scoring.MeetsThreshold(p.Level, threshold) {
		return exitError(2, "level %s meets fail threshold %s", p.Level, threshold)
	}
	return nil
}

func inputError(err error) error {
	var ie *survey.InvalidInputError
	if errors.As(err, &ie) {
		lines := make([]string, len(ie.Fields))
		for i, fe := range ie.Fields {
			lines[i] = "  " + fe.Error()
		}
		return exitError(3, "invalid survey input:\n%s", strings.Join(lines, "\n"))
	}
	return exitError(3, "failed to load survey: %v", err)
}
