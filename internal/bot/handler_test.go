package bot

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jfmartinez/expensebot/internal/extractor"
	"github.com/jfmartinez/expensebot/internal/logger"
	"github.com/jfmartinez/expensebot/internal/pipeline"
	"github.com/jfmartinez/expensebot/internal/record"
)

type mockExtractor struct {
	intent *extractor.Intent
	raw    map[string]any
	err    error
}

func (m *mockExtractor) Classify(ctx context.Context, text string) (*extractor.Intent, error) {
	return m.intent, m.err
}

func (m *mockExtractor) ExtractExpense(ctx context.Context, text string) (map[string]any, error) {
	return m.raw, m.err
}

type mockSheet struct {
	appended *record.Record
	err      error
}

func (m *mockSheet) Append(ctx context.Context, fields record.FieldSet, rec *record.Record) error {
	m.appended = rec
	return m.err
}

type mockPages struct {
	created *record.Record
	err     error
}

func (m *mockPages) CreateExpense(ctx context.Context, rec *record.Record) error {
	m.created = rec
	return m.err
}

type mockLedger struct {
	added   []string
	paid    []string
	listing string
	err     error
}

func (m *mockLedger) Add(ctx context.Context, kind extractor.EntryKind, detail string, total int64) error {
	m.added = append(m.added, string(kind)+":"+detail)
	return m.err
}

func (m *mockLedger) Pay(ctx context.Context, kind extractor.EntryKind, detail string, amount int64) error {
	m.paid = append(m.paid, string(kind)+":"+detail)
	return m.err
}

func (m *mockLedger) Outstanding(ctx context.Context, kind extractor.EntryKind) (string, error) {
	return m.listing, m.err
}

func newTestHandler(t *testing.T, ext Extractor, sheet *mockSheet, pages *mockPages, ledger *mockLedger) *Handler {
	t.Helper()
	loc, err := time.LoadLocation("America/Bogota")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	log := logger.NewWithWriter(io.Discard)
	proc := pipeline.NewProcessor(record.Default, loc)
	return NewHandler(log, record.Default, ext, proc, sheet, pages, ledger)
}

func expenseIntent() *extractor.Intent {
	return &extractor.Intent{Kind: extractor.KindExpense}
}

func TestHandleTextExpenseHappyPath(t *testing.T) {
	ext := &mockExtractor{
		intent: expenseIntent(),
		raw: map[string]any{
			"valor":     "28.500",
			"categoria": "comida",
			"detalle":   "almuerzo",
			"hora":      "19:30",
			"cuenta":    "nu",
		},
	}
	sheet := &mockSheet{}
	pages := &mockPages{}

	reply := newTestHandler(t, ext, sheet, pages, &mockLedger{}).HandleText(context.Background(), "comida almuerzo 28.500, nu")

	if !strings.HasPrefix(reply, "✅ Guardado: comida | $28500 |") {
		t.Errorf("reply = %q, want confirmation", reply)
	}
	if sheet.appended == nil {
		t.Fatal("record not appended to sheet")
	}
	if pages.created == nil {
		t.Fatal("record not mirrored to Notion")
	}
	if sheet.appended.Subcategory != "cena" {
		t.Errorf("Subcategory = %q, want cena", sheet.appended.Subcategory)
	}
}

func TestHandleTextExtractionMiss(t *testing.T) {
	ext := &mockExtractor{intent: expenseIntent(), raw: nil}
	sheet := &mockSheet{}

	reply := newTestHandler(t, ext, sheet, &mockPages{}, &mockLedger{}).HandleText(context.Background(), "???")

	if reply != pipeline.PromptNoExtraction {
		t.Errorf("reply = %q, want extraction prompt", reply)
	}
	if sheet.appended != nil {
		t.Error("nothing should be persisted on extraction failure")
	}
}

func TestHandleTextIncompleteRecord(t *testing.T) {
	ext := &mockExtractor{
		intent: expenseIntent(),
		raw:    map[string]any{"valor": "", "categoria": "", "detalle": "", "cuenta": "nu"},
	}
	sheet := &mockSheet{}

	reply := newTestHandler(t, ext, sheet, &mockPages{}, &mockLedger{}).HandleText(context.Background(), "nu")

	if reply != pipeline.PromptMissingAmount {
		t.Errorf("reply = %q, want amount prompt", reply)
	}
	if sheet.appended != nil {
		t.Error("incomplete record must not be persisted")
	}
}

func TestHandleTextClassificationUnusable(t *testing.T) {
	reply := newTestHandler(t, &mockExtractor{intent: nil}, &mockSheet{}, &mockPages{}, &mockLedger{}).
		HandleText(context.Background(), "blah")
	if reply != replyUnknown {
		t.Errorf("reply = %q, want unknown reply", reply)
	}
}

func TestHandleTextPersistFailure(t *testing.T) {
	ext := &mockExtractor{
		intent: expenseIntent(),
		raw: map[string]any{
			"valor":     "5000",
			"categoria": "transporte",
			"cuenta":    "nequi",
		},
	}
	sheet := &mockSheet{err: errors.New("quota exceeded")}

	reply := newTestHandler(t, ext, sheet, &mockPages{}, &mockLedger{}).HandleText(context.Background(), "taxi 5000, nequi")

	if reply != replyPersistFailed {
		t.Errorf("reply = %q, want persist-failed reply", reply)
	}
}

func TestHandleTextDebtFlow(t *testing.T) {
	tests := []struct {
		name       string
		intent     *extractor.Intent
		wantAdded  int
		wantPaid   int
		wantPrefix string
	}{
		{
			name: "new debt",
			intent: &extractor.Intent{
				Kind:   extractor.KindDebt,
				Detail: "novaventa",
				Amount: record.Amount{Units: 18000, Valid: true},
			},
			wantAdded:  1,
			wantPrefix: "Deuda novaventa 18000",
		},
		{
			name: "new debtor",
			intent: &extractor.Intent{
				Kind:   extractor.KindDebtor,
				Detail: "luis netflix julio",
				Amount: record.Amount{Units: 15000, Valid: true},
			},
			wantAdded:  1,
			wantPrefix: "Deudor luis netflix julio 15000",
		},
		{
			name: "payment",
			intent: &extractor.Intent{
				Kind:   extractor.KindPayment,
				Detail: "novaventa",
				Amount: record.Amount{Units: 15000, Valid: true},
			},
			wantPaid:   1,
			wantPrefix: "Pago novaventa 15000",
		},
		{
			name: "installment",
			intent: &extractor.Intent{
				Kind:   extractor.KindInstallment,
				Detail: "luis netflix julio",
				Amount: record.Amount{Units: 15000, Valid: true},
			},
			wantPaid:   1,
			wantPrefix: "Abono luis netflix julio 15000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &mockLedger{}
			reply := newTestHandler(t, &mockExtractor{intent: tt.intent}, &mockSheet{}, &mockPages{}, ledger).
				HandleText(context.Background(), "x")

			if !strings.HasPrefix(reply, tt.wantPrefix) {
				t.Errorf("reply = %q, want prefix %q", reply, tt.wantPrefix)
			}
			if len(ledger.added) != tt.wantAdded {
				t.Errorf("added = %v, want %d entries", ledger.added, tt.wantAdded)
			}
			if len(ledger.paid) != tt.wantPaid {
				t.Errorf("paid = %v, want %d entries", ledger.paid, tt.wantPaid)
			}
		})
	}
}

func TestHandleTextDebtMissingFields(t *testing.T) {
	noAmount := &extractor.Intent{Kind: extractor.KindDebt, Detail: "novaventa"}
	reply := newTestHandler(t, &mockExtractor{intent: noAmount}, &mockSheet{}, &mockPages{}, &mockLedger{}).
		HandleText(context.Background(), "deuda novaventa")
	if reply != replyDebtMissingAmount {
		t.Errorf("reply = %q, want missing-amount reply", reply)
	}

	noDetail := &extractor.Intent{Kind: extractor.KindDebt, Amount: record.Amount{Units: 18000, Valid: true}}
	reply = newTestHandler(t, &mockExtractor{intent: noDetail}, &mockSheet{}, &mockPages{}, &mockLedger{}).
		HandleText(context.Background(), "deuda 18000")
	if reply != replyDebtMissingDetail {
		t.Errorf("reply = %q, want missing-detail reply", reply)
	}
}

func TestHandleCommand(t *testing.T) {
	ledger := &mockLedger{listing: "Detalle: novaventa Total: 18000 Pagado: 0 Restante: 18000\n"}
	h := newTestHandler(t, &mockExtractor{}, &mockSheet{}, &mockPages{}, ledger)
	ctx := context.Background()

	if got := h.HandleCommand(ctx, "start"); !strings.Contains(got, "bot de gastos") {
		t.Errorf("start reply = %q", got)
	}
	if got := h.HandleCommand(ctx, "deudas"); got != ledger.listing {
		t.Errorf("deudas reply = %q, want listing", got)
	}
	if got := h.HandleCommand(ctx, "deudores"); got != ledger.listing {
		t.Errorf("deudores reply = %q, want listing", got)
	}
	if got := h.HandleCommand(ctx, "unknown"); got != "" {
		t.Errorf("unknown command reply = %q, want empty", got)
	}
}
