package pipeline

import (
	"testing"

	"github.com/jfmartinez/expensebot/internal/record"
)

func TestDinnerRule(t *testing.T) {
	tests := []struct {
		name     string
		category string
		time     string
		prior    string
		want     string
	}{
		{"evening food", "comida", "19:00", "", "cena"},
		{"evening overrides prior", "comida", "19:00", "almuerzo", "cena"},
		{"morning food untouched", "comida", "10:00", "desayuno", "desayuno"},
		{"after midnight", "comida", "01:30", "", "cena"},
		{"two am outside window", "comida", "02:00", "", ""},
		{"boundary start", "comida", "18:00", "", "cena"},
		{"just before window", "comida", "17:59", "", ""},
		{"accented category", "Alimentación", "20:15", "", "cena"},
		{"unaccented category", "ALIMENTACION", "23:00", "", "cena"},
		{"other category", "transporte", "19:00", "", ""},
		{"unparseable hour", "comida", "no-hora", "", ""},
		{"empty time", "comida", "", "", ""},
	}

	engine := NewEngine(DinnerRule())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &record.Record{Category: tt.category, Time: tt.time, Subcategory: tt.prior}
			engine.Apply(rec)
			if rec.Subcategory != tt.want {
				t.Errorf("Subcategory = %q, want %q", rec.Subcategory, tt.want)
			}
		})
	}
}

func TestEngineOrderLaterRuleWins(t *testing.T) {
	first := Rule{
		Name: "first",
		When: func(*record.Record) bool { return true },
		Then: func(r *record.Record) { r.Subcategory = "uno" },
	}
	second := Rule{
		Name: "second",
		When: func(r *record.Record) bool { return r.Subcategory == "uno" },
		Then: func(r *record.Record) { r.Subcategory = "dos" },
	}

	rec := NewEngine(first, second).Apply(&record.Record{})
	if rec.Subcategory != "dos" {
		t.Errorf("Subcategory = %q, want %q", rec.Subcategory, "dos")
	}
}

func TestHourOf(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"19:00", 19},
		{"00:30", 0},
		{"19", 19}, // bare hour still parses
		{"", -1},
		{"xx:30", -1},
	}

	for _, tt := range tests {
		if got := hourOf(tt.input); got != tt.want {
			t.Errorf("hourOf(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
