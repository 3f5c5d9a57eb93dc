package quiz

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var builtinBank []byte

// bankSchema constrains the shape of a question bank document before the
// per-question invariants are checked.
var bankSchema = map[string]any{
	"type":     "object",
	"required": []any{"questions"},
	"properties": map[string]any{
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":                 "object",
				"required":             []any{"prompt", "choices", "correct"},
				"additionalProperties": false,
				"properties": map[string]any{
					"prompt": map[string]any{"type": "string", "minLength": 1},
					"choices": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
					"correct": map[string]any{"type": "integer", "minimum": 0},
				},
			},
		},
	},
	"additionalProperties": false,
}

const bankSchemaURL = "schema://quizbox/bank.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(bankSchemaURL, bankSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(bankSchemaURL)
	})
	return compiledSchema, compileErr
}

type bankDoc struct {
	Questions []Question `yaml:"questions"`
}

// ParseBank decodes a YAML question bank, checks it against the bank schema
// and validates every question.
func ParseBank(data []byte) ([]Question, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}

	// The validator wants plain JSON values, so round-trip through encoding/json.
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("convert bank: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("convert bank: %w", err)
	}

	sch, err := schema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuestion, err)
	}

	var bank bankDoc
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	for i, q := range bank.Questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return bank.Questions, nil
}

// DefaultQuestions returns the built-in question bank.
func DefaultQuestions() ([]Question, error) {
	return ParseBank(builtinBank)
}
