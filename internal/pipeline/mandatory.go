package pipeline

import (
	"fmt"

	"github.com/jfmartinez/expensebot/internal/record"
)

// MissingField identifies which completeness requirement a record failed.
type MissingField string

const (
	MissingAmount      MissingField = "valor"
	MissingDescription MissingField = "descripcion"
	MissingAccount     MissingField = "cuenta"
)

// User-facing prompts, relayed verbatim by the caller.
const (
	PromptMissingAmount      = "💰 Me falta el valor del gasto. Envíame el monto (ej: 25000 o 28.500)."
	PromptMissingDescription = "📝 Necesito una descripción/categoría. Decime algo como: 'comida/almuerzo', 'transporte/taxi' o un detalle corto."
	PromptMissingAccount     = "🏦 Me falta la cuenta de donde salió el dinero. Por favor indícala (ej: colpatria, nu, rappi card, nequi, rappi cuenta)."
)

// MissingFieldError reports an incomplete record together with the exact
// prompt to send back to the user.
type MissingFieldError struct {
	Field  MissingField
	Prompt string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record incomplete: missing %s", e.Field)
}

// CheckMandatory verifies a normalized record meets the minimum
// completeness requirements: a parsed amount, at least one of category,
// subcategory or detail, and — when the field set carries an account column —
// a non-empty account. The first failing check wins.
func CheckMandatory(rec *record.Record, fields record.FieldSet) error {
	if !rec.Amount.Valid {
		return &MissingFieldError{Field: MissingAmount, Prompt: PromptMissingAmount}
	}
	if rec.Category == "" && rec.Subcategory == "" && rec.Detail == "" {
		return &MissingFieldError{Field: MissingDescription, Prompt: PromptMissingDescription}
	}
	if fields.Has(record.FieldAccount) && rec.Account == "" {
		return &MissingFieldError{Field: MissingAccount, Prompt: PromptMissingAccount}
	}
	return nil
}
