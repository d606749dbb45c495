// Package compiler turns workflow documents into validated action sequences.
package compiler

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/parley-sh/parley/pkg/domain"
)

// document is the on-disk shape. The defaults block is decoded loosely so
// users can write bare numbers and booleans as seed values.
type document struct {
	Name     string          `yaml:"name"`
	Defaults map[string]any  `yaml:"defaults"`
	Actions  []domain.Action `yaml:"actions"`
}

// Parser converts raw workflow bytes into a validated domain.Workflow.
type Parser struct{}

// NewParser creates a parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes and validates a YAML workflow document.
func (p *Parser) Parse(data []byte) (*domain.Workflow, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse workflow: %w", err)
	}

	wf := &domain.Workflow{
		Name:    doc.Name,
		Actions: doc.Actions,
	}

	if len(doc.Defaults) > 0 {
		seeds := map[string]string{}
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &seeds,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(doc.Defaults); err != nil {
			return nil, fmt.Errorf("%w: bad defaults block: %v", domain.ErrInvalidConfig, err)
		}
		wf.Defaults = domain.VarBag(seeds)
	}

	if err := wf.Validate(); err != nil {
		return nil, err
	}
	return wf, nil
}

// ParseFile reads and parses a workflow file.
func (p *Parser) ParseFile(path string) (*domain.Workflow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workflow %s: %w", path, err)
	}
	wf, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("workflow %s: %w", path, err)
	}
	return wf, nil
}
