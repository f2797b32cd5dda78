package notion

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jfmartinez/expensebot/internal/extractor"
	"github.com/jfmartinez/expensebot/internal/record"
)

// Store routes records and ledger operations into the year-scoped Notion
// databases. Expenses land in the database for the record's own year; debt
// and debtor operations always target the current year.
type Store struct {
	client   *Client
	registry *Registry
	ledger   *Ledger
	loc      *time.Location
	now      func() time.Time
	log      zerolog.Logger
}

// NewStore creates a store over the given client and registry.
func NewStore(client *Client, registry *Registry, loc *time.Location, log zerolog.Logger) *Store {
	return &Store{
		client:   client,
		registry: registry,
		ledger:   NewLedger(client),
		loc:      loc,
		now:      time.Now,
		log:      log,
	}
}

// CreateExpense mirrors a validated record into the expense database for
// the record's year.
func (s *Store) CreateExpense(ctx context.Context, rec *record.Record) error {
	props, err := ExpenseToProperties(rec, s.loc)
	if err != nil {
		return err
	}

	// rec.Date is a valid ISO date by pipeline invariant.
	year := rec.Date[:4]
	dbs, err := s.registry.Lookup(ctx, year)
	if err != nil {
		return err
	}

	if _, err := s.client.CreatePage(ctx, dbs.Expenses, props); err != nil {
		return err
	}
	s.log.Info().Str("year", year).Str("detalle", rec.Detail).Msg("Expense page created")
	return nil
}

// Add creates a new debt or debtor entry in the current year's ledger.
func (s *Store) Add(ctx context.Context, kind extractor.EntryKind, detail string, total int64) error {
	dbID, err := s.ledgerDatabase(ctx, kind)
	if err != nil {
		return err
	}
	return s.ledger.Add(ctx, dbID, detail, total)
}

// Pay applies a payment or installment against an existing ledger entry.
func (s *Store) Pay(ctx context.Context, kind extractor.EntryKind, detail string, amount int64) error {
	dbID, err := s.ledgerDatabase(ctx, kind)
	if err != nil {
		return err
	}
	return s.ledger.ApplyPayment(ctx, dbID, detail, amount)
}

// Outstanding returns the formatted list of open entries for the kind.
func (s *Store) Outstanding(ctx context.Context, kind extractor.EntryKind) (string, error) {
	dbID, err := s.ledgerDatabase(ctx, kind)
	if err != nil {
		return "", err
	}
	entries, err := s.ledger.Outstanding(ctx, dbID)
	if err != nil {
		return "", err
	}
	return FormatEntries(entries), nil
}

// ledgerDatabase maps an entry kind to this year's debt or debtor database.
// Debts and payments share a database, as do debtors and installments.
func (s *Store) ledgerDatabase(ctx context.Context, kind extractor.EntryKind) (string, error) {
	year := s.now().In(s.loc).Format("2006")
	dbs, err := s.registry.Lookup(ctx, year)
	if err != nil {
		return "", err
	}

	switch kind {
	case extractor.KindDebt, extractor.KindPayment:
		return dbs.Debts, nil
	case extractor.KindDebtor, extractor.KindInstallment:
		return dbs.Debtors, nil
	default:
		return "", fmt.Errorf("kind %q has no ledger database", kind)
	}
}
