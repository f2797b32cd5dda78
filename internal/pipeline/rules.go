package pipeline

import (
	"strconv"
	"strings"

	"github.com/jfmartinez/expensebot/internal/record"
)

// Rule is one derived-field assignment: when the predicate holds, the
// assignment runs. Rules are evaluated in order against the same record, so
// a later rule may override an earlier one.
type Rule struct {
	Name string
	When func(*record.Record) bool
	Then func(*record.Record)
}

// Engine applies an ordered list of business rules to a record.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with the given rules, evaluated in order.
func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: rules}
}

// Apply mutates the record with every matching rule and returns it.
func (e *Engine) Apply(rec *record.Record) *record.Record {
	for _, r := range e.rules {
		if r.When(rec) {
			r.Then(rec)
		}
	}
	return rec
}

// DefaultRules returns the shipped rule set.
func DefaultRules() []Rule {
	return []Rule{DinnerRule()}
}

var foodCategories = map[string]bool{
	"alimentación": true,
	"alimentacion": true,
	"comida":       true,
}

// DinnerRule forces the subcategory to "cena" for food expenses between
// 18:00 and 01:59, a window that crosses midnight. The boundaries are kept
// exactly as they have always been.
func DinnerRule() Rule {
	return Rule{
		Name: "cena",
		When: func(rec *record.Record) bool {
			cat := strings.ToLower(strings.TrimSpace(rec.Category))
			if !foodCategories[cat] {
				return false
			}
			hh := hourOf(rec.Time)
			return hh >= 18 || (hh >= 0 && hh < 2)
		},
		Then: func(rec *record.Record) {
			rec.Subcategory = "cena"
		},
	}
}

// hourOf extracts the hour from an HH:MM string. Unparseable input yields
// -1, which falls outside every rule window.
func hourOf(t string) int {
	hh, _, _ := strings.Cut(strings.TrimSpace(t), ":")
	h, err := strconv.Atoi(hh)
	if err != nil {
		return -1
	}
	return h
}
