// Package bot routes inbound messages through classification, extraction,
// the record pipeline and the persistence adapters. The handler is
// transport-independent: it takes message text and returns reply text, so
// the Telegram layer stays a thin loop in cmd/bot.
package bot

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jfmartinez/expensebot/internal/extractor"
	"github.com/jfmartinez/expensebot/internal/pipeline"
	"github.com/jfmartinez/expensebot/internal/record"
)

// Extractor classifies messages and extracts raw expense fields. A nil
// result with a nil error means the model produced nothing usable.
type Extractor interface {
	Classify(ctx context.Context, text string) (*extractor.Intent, error)
	ExtractExpense(ctx context.Context, text string) (map[string]any, error)
}

// SheetAppender appends a validated record to the spreadsheet.
type SheetAppender interface {
	Append(ctx context.Context, fields record.FieldSet, rec *record.Record) error
}

// PageWriter mirrors a validated record into the Notion expense database.
type PageWriter interface {
	CreateExpense(ctx context.Context, rec *record.Record) error
}

// DebtLedger maintains the debt and debtor databases.
type DebtLedger interface {
	Add(ctx context.Context, kind extractor.EntryKind, detail string, total int64) error
	Pay(ctx context.Context, kind extractor.EntryKind, detail string, amount int64) error
	Outstanding(ctx context.Context, kind extractor.EntryKind) (string, error)
}

// Handler routes one message at a time; it holds no per-message state.
type Handler struct {
	log       zerolog.Logger
	fields    record.FieldSet
	extractor Extractor
	processor *pipeline.Processor
	sheet     SheetAppender
	pages     PageWriter
	debts     DebtLedger
}

// NewHandler wires the handler's collaborators together.
func NewHandler(log zerolog.Logger, fields record.FieldSet, ext Extractor, proc *pipeline.Processor, sheet SheetAppender, pages PageWriter, debts DebtLedger) *Handler {
	return &Handler{
		log:       log,
		fields:    fields,
		extractor: ext,
		processor: proc,
		sheet:     sheet,
		pages:     pages,
		debts:     debts,
	}
}

// HandleCommand answers the bot commands. Unknown commands yield an empty
// reply, which the transport drops.
func (h *Handler) HandleCommand(ctx context.Context, command string) string {
	switch command {
	case "start":
		return startReply
	case "deudas":
		return h.listOutstanding(ctx, extractor.KindDebt)
	case "deudores":
		return h.listOutstanding(ctx, extractor.KindDebtor)
	default:
		return ""
	}
}

func (h *Handler) listOutstanding(ctx context.Context, kind extractor.EntryKind) string {
	out, err := h.debts.Outstanding(ctx, kind)
	if err != nil {
		h.log.Error().Err(err).Str("kind", string(kind)).Msg("Listing outstanding entries failed")
		return replyLedgerFailed
	}
	return out
}

// HandleText routes one free-text message end to end and returns the reply
// to send back. Every failure is terminal for the message; the user resends.
func (h *Handler) HandleText(ctx context.Context, text string) string {
	log := h.log.With().Str("message_id", uuid.NewString()).Logger()

	intent, err := h.extractor.Classify(ctx, text)
	if err != nil {
		log.Error().Err(err).Msg("Classification failed")
		return replyProcessingFailed
	}
	if intent == nil {
		return replyUnknown
	}

	switch intent.Kind {
	case extractor.KindDebt, extractor.KindDebtor:
		return h.handleLedgerAdd(ctx, log, intent)
	case extractor.KindPayment, extractor.KindInstallment:
		return h.handleLedgerPay(ctx, log, intent)
	default:
		return h.handleExpense(ctx, log, text)
	}
}

func (h *Handler) handleLedgerAdd(ctx context.Context, log zerolog.Logger, intent *extractor.Intent) string {
	if !intent.Amount.Valid {
		return replyDebtMissingAmount
	}
	if intent.Detail == "" {
		return replyDebtMissingDetail
	}

	if err := h.debts.Add(ctx, intent.Kind, intent.Detail, intent.Amount.Units); err != nil {
		log.Error().Err(err).Str("kind", string(intent.Kind)).Msg("Ledger add failed")
		return replyPersistFailed
	}
	log.Info().Str("kind", string(intent.Kind)).Str("detalle", intent.Detail).Msg("Ledger entry added")
	return fmt.Sprintf("%s %s %d registrado correctamente.", kindLabel(intent.Kind), intent.Detail, intent.Amount.Units)
}

func (h *Handler) handleLedgerPay(ctx context.Context, log zerolog.Logger, intent *extractor.Intent) string {
	if !intent.Amount.Valid {
		return replyDebtMissingAmount
	}
	if intent.Detail == "" {
		return replyDebtMissingDetail
	}

	if err := h.debts.Pay(ctx, intent.Kind, intent.Detail, intent.Amount.Units); err != nil {
		log.Error().Err(err).Str("kind", string(intent.Kind)).Msg("Ledger payment failed")
		return replyPersistFailed
	}
	log.Info().Str("kind", string(intent.Kind)).Str("detalle", intent.Detail).Msg("Ledger payment applied")
	return fmt.Sprintf("%s %s %d registrada correctamente.", kindLabel(intent.Kind), intent.Detail, intent.Amount.Units)
}

func (h *Handler) handleExpense(ctx context.Context, log zerolog.Logger, text string) string {
	raw, err := h.extractor.ExtractExpense(ctx, text)
	if err != nil {
		log.Error().Err(err).Msg("Expense extraction failed")
		return replyProcessingFailed
	}

	rec, err := h.processor.Process(raw)
	if err != nil {
		if prompt := pipeline.UserPrompt(err); prompt != "" {
			return prompt
		}
		log.Error().Err(err).Msg("Pipeline failed")
		return replyProcessingFailed
	}

	if err := h.sheet.Append(ctx, h.fields, rec); err != nil {
		log.Error().Err(err).Msg("Sheet append failed")
		return replyPersistFailed
	}
	if err := h.pages.CreateExpense(ctx, rec); err != nil {
		log.Error().Err(err).Msg("Notion page creation failed")
		return replyPersistFailed
	}

	log.Info().
		Str("categoria", rec.Category).
		Str("fecha", rec.Date).
		Str("hora", rec.Time).
		Int64("valor", rec.Amount.Units).
		Msg("Expense recorded")
	return confirmationReply(rec)
}
