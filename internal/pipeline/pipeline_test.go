package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/jfmartinez/expensebot/internal/record"
)

func testProcessor(t *testing.T) *Processor {
	t.Helper()
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	p := NewProcessor(record.Default, loc)
	p.normalizer.now = func() time.Time {
		return time.Date(2024, 5, 6, 11, 20, 0, 0, loc)
	}
	return p
}

func TestProcessEndToEnd(t *testing.T) {
	p := testProcessor(t)

	rec, err := p.Process(map[string]any{
		"valor":     "28.500",
		"categoria": "comida",
		"detalle":   "almuerzo",
		"fecha":     "",
		"hora":      "19:30",
		"cuenta":    "nu",
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if rec.Amount.Units != 28500 || !rec.Amount.Valid {
		t.Errorf("Amount = %+v, want 28500", rec.Amount)
	}
	if rec.Date != "2024-05-06" {
		t.Errorf("Date = %q, want today", rec.Date)
	}
	if rec.Time != "19:30" {
		t.Errorf("Time = %q, want 19:30", rec.Time)
	}
	if rec.Subcategory != "cena" {
		t.Errorf("Subcategory = %q, want cena (dinner rule)", rec.Subcategory)
	}
	if rec.Account != "nu" {
		t.Errorf("Account = %q, want nu", rec.Account)
	}
}

func TestProcessMissingAmountShortCircuits(t *testing.T) {
	p := testProcessor(t)

	_, err := p.Process(map[string]any{
		"valor":     "",
		"categoria": "",
		"detalle":   "",
		"cuenta":    "nu",
	})

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("Process() error = %v, want *MissingFieldError", err)
	}
	if missing.Field != MissingAmount {
		t.Errorf("Field = %q, want %q", missing.Field, MissingAmount)
	}
	if UserPrompt(err) != PromptMissingAmount {
		t.Errorf("UserPrompt() = %q, want amount prompt", UserPrompt(err))
	}
}

func TestProcessNilRaw(t *testing.T) {
	p := testProcessor(t)

	_, err := p.Process(nil)
	if !errors.Is(err, ErrNoExtraction) {
		t.Fatalf("Process(nil) error = %v, want ErrNoExtraction", err)
	}
	if UserPrompt(err) != PromptNoExtraction {
		t.Errorf("UserPrompt() = %q, want extraction prompt", UserPrompt(err))
	}
}

func TestProcessValidatesBeforeRules(t *testing.T) {
	p := testProcessor(t)

	// An evening food record with no account must fail validation; the
	// dinner rule would otherwise have filled the subcategory.
	_, err := p.Process(map[string]any{
		"valor":     "15000",
		"categoria": "comida",
		"hora":      "20:00",
	})

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("Process() error = %v, want *MissingFieldError", err)
	}
	if missing.Field != MissingAccount {
		t.Errorf("Field = %q, want %q", missing.Field, MissingAccount)
	}
}

func TestUserPromptUnknownError(t *testing.T) {
	if got := UserPrompt(errors.New("boom")); got != "" {
		t.Errorf("UserPrompt(unknown) = %q, want empty", got)
	}
}
