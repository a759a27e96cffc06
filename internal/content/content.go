// Package content loads the informational page content shown around the predictor.
package content

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Site is the copy rendered on the page and by the content command.
type Site struct {
	Name              string   `yaml:"name" json:"name"`
	Title             string   `yaml:"title" json:"title"`
	Tagline           string   `yaml:"tagline" json:"tagline"`
	Metrics           []Metric `yaml:"metrics" json:"metrics"`
	Highlights        []string `yaml:"highlights" json:"highlights"`
	Findings          []string `yaml:"findings" json:"findings"`
	Performance       []Metric `yaml:"performance" json:"performance"`
	FeatureImportance []string `yaml:"feature_importance" json:"feature_importance"`
	Purpose           string   `yaml:"purpose" json:"purpose"`
	Methodology       []string `yaml:"methodology" json:"methodology"`
	TechStack         []string `yaml:"tech_stack" json:"tech_stack"`
	Disclaimer        string   `yaml:"disclaimer" json:"disclaimer"`
	License           string   `yaml:"license" json:"license"`
}

// Metric is a labelled headline figure.
type Metric struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// LoadBuiltin loads a built-in content set by name.
func LoadBuiltin(name string) (*Site, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("content.LoadBuiltin: unknown content %q: %w", name, err)
	}
	s, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("content.LoadBuiltin: parse %q: %w", name, err)
	}
	return s, nil
}

// Load reads a content file from disk, for sites that override the built-in copy.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content.Load: %w", err)
	}
	s, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("content.Load: parse %s: %w", path, err)
	}
	return s, nil
}

// Resolve treats ref as a file path when it names an existing file and as a
// built-in name otherwise.
func Resolve(ref string) (*Site, error) {
	if st, err := os.Stat(ref); err == nil && !st.IsDir() {
		return Load(ref)
	}
	return LoadBuiltin(ref)
}

func parse(data []byte) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	return &s, nil
}

// List returns the names of all built-in content sets.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}

// Markdown renders the site copy as a Markdown document.
func Markdown(s *Site) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", s.Title)
	if s.Tagline != "" {
		fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(s.Tagline))
	}

	if len(s.Metrics) > 0 {
		for _, m := range s.Metrics {
			fmt.Fprintf(&b, "- **%s:** %s\n", m.Label, m.Value)
		}
		b.WriteString("\n")
	}

	writeList(&b, "Project Highlights", s.Highlights)
	writeList(&b, "Key Findings", s.Findings)

	if len(s.Performance) > 0 {
		b.WriteString("## Model Performance\n\n")
		for _, m := range s.Performance {
			fmt.Fprintf(&b, "- %s: %s\n", m.Label, m.Value)
		}
		b.WriteString("\n")
	}

	if len(s.FeatureImportance) > 0 {
		b.WriteString("## Feature Importance\n\n")
		for i, f := range s.FeatureImportance {
			fmt.Fprintf(&b, "%d. %s\n", i+1, f)
		}
		b.WriteString("\n")
	}

	if s.Purpose != "" {
		fmt.Fprintf(&b, "## Research Purpose\n\n%s\n\n", strings.TrimSpace(s.Purpose))
	}
	writeList(&b, "Methodology", s.Methodology)
	writeList(&b, "Tech Stack", s.TechStack)

	if s.License != "" {
		fmt.Fprintf(&b, "**License:** %s\n\n", s.License)
	}
	if s.Disclaimer != "" {
		fmt.Fprintf(&b, "_%s_\n", strings.TrimSpace(s.Disclaimer))
	}
	return b.String()
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}
