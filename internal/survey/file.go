package survey

import (
	"crypto/sha256"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a survey loaded from disk.
type File struct {
	Path  string
	Hash  string
	Input Input
}

// Load reads a YAML or JSON survey file, hashes it, and validates its answers.
// Decode failures are wrapped; field problems surface as *InvalidInputError.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("survey.Load: %w", err)
	}
	in, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("survey.Load %s: %w", path, err)
	}
	h := sha256.Sum256(data)
	return &File{
		Path:  path,
		Hash:  fmt.Sprintf("sha256:%x", h),
		Input: in,
	}, nil
}

// Decode parses a YAML (or JSON) mapping of field names to answers.
func Decode(data []byte) (Input, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Input{}, fmt.Errorf("survey.Decode: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return FromAny(raw)
}
