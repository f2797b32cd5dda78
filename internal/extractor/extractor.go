// Package extractor turns free-text messages into raw field mappings via a
// Gemini chat-completion call. Extraction is non-deterministic and treated
// as a black box by the rest of the system: it returns either a mapping or
// nothing.
package extractor

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/jfmartinez/expensebot/internal/record"
)

// EntryKind is the first-pass classification of an inbound message. The
// wire values match the markers users put at the start of their messages.
type EntryKind string

const (
	KindExpense     EntryKind = "gasto"
	KindDebt        EntryKind = "-deuda"
	KindDebtor      EntryKind = "-deudor"
	KindPayment     EntryKind = "-pago"
	KindInstallment EntryKind = "-abono"
)

// Intent is the result of classifying one message.
type Intent struct {
	Kind   EntryKind
	Detail string
	Amount record.Amount
}

// Gemini calls the Gemini API for classification and expense extraction.
// The API key is taken from the environment by the genai client.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed extractor using the given model name.
func NewGemini(ctx context.Context, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Classify determines whether a message describes an expense, a debt, a
// debtor, or a payment against one of those. A nil Intent with a nil error
// means the model answered but produced nothing usable.
func (g *Gemini) Classify(ctx context.Context, text string) (*Intent, error) {
	obj, err := g.generate(ctx, classifyPrompt, text)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}

	kind := EntryKind(strings.ToLower(strings.TrimSpace(stringField(obj, "tipo"))))
	switch kind {
	case KindDebt, KindDebtor, KindPayment, KindInstallment:
	default:
		kind = KindExpense
	}

	return &Intent{
		Kind:   kind,
		Detail: strings.TrimSpace(stringField(obj, "detalle")),
		Amount: record.ParseAmount(obj["valor"]),
	}, nil
}

// ExtractExpense extracts the raw expense fields from a message. A nil map
// with a nil error means extraction found nothing; the caller reports that
// to the user without entering the pipeline.
func (g *Gemini) ExtractExpense(ctx context.Context, text string) (map[string]any, error) {
	return g.generate(ctx, expensePrompt, text)
}

func (g *Gemini) generate(ctx context.Context, system, text string) (map[string]any, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: system + "\n\nTexto: \"" + text + "\""},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	obj, err := parseJSONObject(resp.Text())
	if err != nil {
		// The model answered with something that is not JSON; that is an
		// extraction miss, not a transport failure.
		return nil, nil
	}
	return obj, nil
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
