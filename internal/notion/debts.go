package notion

import (
	"context"
	"fmt"
	"strings"

	"github.com/jomei/notionapi"
)

// Entry is one open row of the debt or debtor ledger.
type Entry struct {
	PageID    string
	Detail    string
	Total     float64
	Paid      float64
	Remaining float64
}

// Ledger reads and updates the debt and debtor databases.
type Ledger struct {
	client *Client
}

// NewLedger creates a ledger over the given client.
func NewLedger(client *Client) *Ledger {
	return &Ledger{client: client}
}

// outstandingQuery matches entries whose restante formula is not zero.
func outstandingQuery() *notionapi.DatabaseQueryRequest {
	zero := float64(0)
	return &notionapi.DatabaseQueryRequest{
		Filter: notionapi.PropertyFilter{
			Property: "restante",
			Formula: &notionapi.FormulaFilterCondition{
				Number: &notionapi.NumberFilterCondition{DoesNotEqual: &zero},
			},
		},
	}
}

// detailQuery matches the entry whose Detalle title equals detail exactly.
// Title properties take rich_text filter conditions on the wire.
func detailQuery(detail string) *notionapi.DatabaseQueryRequest {
	return &notionapi.DatabaseQueryRequest{
		Filter: notionapi.PropertyFilter{
			Property: "Detalle",
			RichText: &notionapi.TextFilterCondition{Equals: detail},
		},
	}
}

// Outstanding lists the entries whose remaining balance is not zero.
func (l *Ledger) Outstanding(ctx context.Context, databaseID string) ([]Entry, error) {
	resp, err := l.client.QueryDatabase(ctx, databaseID, outstandingQuery())
	if err != nil {
		return nil, fmt.Errorf("list outstanding: %w", err)
	}

	entries := make([]Entry, 0, len(resp.Results))
	for _, page := range resp.Results {
		entries = append(entries, Entry{
			PageID:    string(page.ID),
			Detail:    titleValue(page.Properties["Detalle"]),
			Total:     numberValue(page.Properties["total"]),
			Paid:      numberValue(page.Properties["pagado"]),
			Remaining: formulaNumber(page.Properties["restante"]),
		})
	}
	return entries, nil
}

// Add creates a new ledger entry with nothing paid yet.
func (l *Ledger) Add(ctx context.Context, databaseID, detail string, total int64) error {
	if _, err := l.client.CreatePage(ctx, databaseID, DebtToProperties(detail, total)); err != nil {
		return fmt.Errorf("add ledger entry %q: %w", detail, err)
	}
	return nil
}

// ApplyPayment adds amount to the paid total of the entry whose title
// matches detail exactly.
func (l *Ledger) ApplyPayment(ctx context.Context, databaseID, detail string, amount int64) error {
	resp, err := l.client.QueryDatabase(ctx, databaseID, detailQuery(detail))
	if err != nil {
		return fmt.Errorf("find ledger entry %q: %w", detail, err)
	}
	if len(resp.Results) == 0 {
		return fmt.Errorf("no ledger entry matching %q", detail)
	}

	page := resp.Results[0]
	paid := numberValue(page.Properties["pagado"])

	_, err = l.client.UpdatePage(ctx, string(page.ID), notionapi.Properties{
		"pagado": notionapi.NumberProperty{Number: paid + float64(amount)},
	})
	if err != nil {
		return fmt.Errorf("apply payment to %q: %w", detail, err)
	}
	return nil
}

// FormatEntries renders ledger entries as the reply text sent to the user.
func FormatEntries(entries []Entry) string {
	if len(entries) == 0 {
		return "No hay registros pendientes."
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "Detalle: %s Total: %.0f Pagado: %.0f Restante: %.0f\n-----------------\n",
			e.Detail, e.Total, e.Paid, e.Remaining)
	}
	return b.String()
}
