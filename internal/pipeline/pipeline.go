// Package pipeline implements the deterministic record pipeline: the
// transformation from a loosely-typed extraction result to a validated,
// rule-adjusted record ready for persistence. The pipeline performs no I/O.
package pipeline

import (
	"errors"
	"time"

	"github.com/jfmartinez/expensebot/internal/record"
)

// ErrNoExtraction signals that the extractor produced nothing for a
// message. The normalizer is never entered in that case.
var ErrNoExtraction = errors.New("extractor produced no fields")

// PromptNoExtraction is the user-facing reply for ErrNoExtraction.
const PromptNoExtraction = "😅 No pude entender el gasto. Decime el monto y una descripción corta (ej: 'comida almuerzo 28000')."

// Processor runs one raw extraction through normalization, mandatory-field
// validation and business rules. It holds only read-only configuration, so
// concurrent invocations are safe.
type Processor struct {
	fields     record.FieldSet
	normalizer *Normalizer
	engine     *Engine
}

// NewProcessor creates a processor with the shipped rule set.
func NewProcessor(fields record.FieldSet, loc *time.Location) *Processor {
	return &Processor{
		fields:     fields,
		normalizer: NewNormalizer(fields, loc),
		engine:     NewEngine(DefaultRules()...),
	}
}

// Process returns a persist-ready record, or an error that maps to a
// user-facing prompt: ErrNoExtraction when raw is nil, or a
// *MissingFieldError when the normalized record is incomplete.
func (p *Processor) Process(raw map[string]any) (*record.Record, error) {
	if raw == nil {
		return nil, ErrNoExtraction
	}

	rec := p.normalizer.Normalize(raw)
	if err := CheckMandatory(rec, p.fields); err != nil {
		return nil, err
	}
	return p.engine.Apply(rec), nil
}

// UserPrompt maps a pipeline failure to the reply the user should see.
// Unknown errors yield the empty string.
func UserPrompt(err error) string {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return missing.Prompt
	}
	if errors.Is(err, ErrNoExtraction) {
		return PromptNoExtraction
	}
	return ""
}
