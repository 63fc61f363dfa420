package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/devops-elearning/coursekit/internal/course"
	"go.yaml.in/yaml/v3"
)

// Definition is an author-supplied YAML file that seeds a new course.
// Every field is optional; values given on the command line win.
type Definition struct {
	ID                 string          `yaml:"id"`
	Title              string          `yaml:"title"`
	Description        string          `yaml:"description"`
	Category           string          `yaml:"category"`
	Difficulty         string          `yaml:"difficulty"`
	Duration           string          `yaml:"duration"`
	Instructor         string          `yaml:"instructor"`
	Version            string          `yaml:"version"`
	Tags               []string        `yaml:"tags"`
	Prerequisites      []string        `yaml:"prerequisites"`
	LearningObjectives []string        `yaml:"learningObjectives"`
	Modules            []course.Module `yaml:"modules"`
}

// Options converts the definition into metadata overrides.
func (d *Definition) Options() course.Options {
	return course.Options{
		Description:        d.Description,
		Category:           d.Category,
		Difficulty:         d.Difficulty,
		Duration:           d.Duration,
		Instructor:         d.Instructor,
		Version:            d.Version,
		Tags:               d.Tags,
		Prerequisites:      d.Prerequisites,
		LearningObjectives: d.LearningObjectives,
		Modules:            d.Modules,
	}
}

// ParseDefinition reads a course definition file, validates it against the
// definition schema, and decodes it.
func ParseDefinition(path string) (*Definition, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(KindDefinition, data)
	if err != nil {
		return nil, fmt.Errorf("validating definition %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid definition %s: %s", path, joinIssues(result.Issues))
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing definition %s: %w", path, err)
	}
	return &def, nil
}

// ParseMetadata reads a generated metadata.json file.
func ParseMetadata(path string) (*course.Metadata, error) {
	return parseJSON[course.Metadata](path)
}

// ParseQuiz reads a generated quiz file.
func ParseQuiz(path string) (*course.Quiz, error) {
	return parseJSON[course.Quiz](path)
}

// parseJSON reads a JSON file into a typed struct.
func parseJSON[T any](path string) (*T, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &v, nil
}

func joinIssues(issues []ValidationIssue) string {
	msgs := make([]string, 0, len(issues))
	for _, issue := range issues {
		msgs = append(msgs, issue.String())
	}
	return strings.Join(msgs, "; ")
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
