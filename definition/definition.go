package definition

import (
	"fmt"
	"os"
	"strings"

	"github.com/simonhull/firebird-suite/quill/question"
	"gopkg.in/yaml.v3"
)

// Definition is the YAML shape of one question. Bounds and membership
// entries are written as strings and converted through the declared answer
// type by Build, so "above: 2026-01-01" works for a date question.
type Definition struct {
	Prompt     string            `yaml:"prompt"`
	Type       string            `yaml:"type,omitempty"`
	Choices    []string          `yaml:"choices,omitempty"`
	Whitespace string            `yaml:"whitespace,omitempty"`
	Default    string            `yaml:"default,omitempty"`
	Pattern    string            `yaml:"pattern,omitempty"`
	Above      string            `yaml:"above,omitempty"`
	Below      string            `yaml:"below,omitempty"`
	In         []string          `yaml:"in,omitempty"`
	Responses  map[string]string `yaml:"responses,omitempty"`
}

// typeNames maps definition-file type spellings to constructors. "choice"
// is handled separately because it needs the choices list.
var typeNames = map[string]func() question.AnswerType{
	"":         question.Text,
	"text":     question.Text,
	"string":   question.Text,
	"integer":  question.Int,
	"int":      question.Int,
	"number":   question.Float,
	"float":    question.Float,
	"symbol":   question.Atom,
	"pattern":  question.Pattern,
	"date":     question.Date,
	"datetime": question.DateTime,
}

// Parse reads and parses a YAML question definition file.
func Parse(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses a definition from bytes.
func ParseBytes(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &def, nil
}

// Write writes a definition to a file.
func Write(path string, def *Definition) error {
	data, err := WriteBytes(def)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// WriteBytes marshals a definition to bytes.
func WriteBytes(def *Definition) ([]byte, error) {
	data, err := yaml.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal definition: %w", err)
	}
	return data, nil
}

// answerType resolves the declared type name. The definition must already
// have passed Validate; unknown names still return an error so Build never
// silently degrades to text.
func (d *Definition) answerType() (question.AnswerType, error) {
	name := strings.ToLower(strings.TrimSpace(d.Type))
	if name == "choice" {
		return question.OneOf(d.Choices...), nil
	}
	ctor, ok := typeNames[name]
	if !ok {
		return question.AnswerType{}, fmt.Errorf("unknown answer type %q", d.Type)
	}
	return ctor(), nil
}
