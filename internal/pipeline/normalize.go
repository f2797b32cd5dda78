package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/jfmartinez/expensebot/internal/record"
)

// Normalizer turns a raw extraction mapping into a canonical record. It
// reads the clock exactly once per record, in the configured time zone, so
// defaulted date and time always describe the same moment.
type Normalizer struct {
	fields record.FieldSet
	loc    *time.Location
	now    func() time.Time
}

// NewNormalizer creates a normalizer for the given field set and time zone.
func NewNormalizer(fields record.FieldSet, loc *time.Location) *Normalizer {
	return &Normalizer{fields: fields, loc: loc, now: time.Now}
}

// Normalize produces a fully populated canonical record from a raw
// extraction result. Individual field failures degrade to defaults or the
// missing-amount sentinel; no error ever escapes.
func (n *Normalizer) Normalize(raw map[string]any) *record.Record {
	now := n.now().In(n.loc)

	rec := &record.Record{}
	rec.Amount = record.ParseAmount(raw[record.FieldAmount])

	date := strings.TrimSpace(textValue(raw[record.FieldDate]))
	if !IsValidDate(date) {
		date = now.Format("2006-01-02")
	}
	rec.Date = date

	tm := strings.TrimSpace(textValue(raw[record.FieldTime]))
	if !IsValidTime(tm) {
		tm = now.Format("15:04")
	}
	rec.Time = tm

	// Every free-text field of the set ends up present and trimmed, even
	// when the extractor never produced the key.
	for _, name := range n.fields.TextFields() {
		rec.SetTextField(name, strings.TrimSpace(textValue(raw[name])))
	}

	return rec
}

// textValue coerces a raw extraction value to a string. Absent and null
// values become the empty string; stray numbers are formatted rather than
// dropped.
func textValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
