package notion

import (
	"fmt"
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"github.com/jfmartinez/expensebot/internal/record"
)

// ExpenseToProperties maps a canonical record onto the expense database
// schema: Detalle (title), Cuenta (select, lowercased), Categoria,
// Subcategoria and Comercio (rich text), Valor (number) and Date (date,
// combined from the record's date and time, anchored in loc).
func ExpenseToProperties(rec *record.Record, loc *time.Location) (notionapi.Properties, error) {
	ts, err := time.ParseInLocation("2006-01-02 15:04", rec.Date+" "+rec.Time, loc)
	if err != nil {
		return nil, fmt.Errorf("parse record timestamp: %w", err)
	}
	start := notionapi.Date(ts)

	props := notionapi.Properties{
		"Detalle": notionapi.TitleProperty{
			Title: richText(rec.Detail),
		},
		"Categoria": notionapi.RichTextProperty{
			RichText: richText(rec.Category),
		},
		"Subcategoria": notionapi.RichTextProperty{
			RichText: richText(rec.Subcategory),
		},
		"Comercio": notionapi.RichTextProperty{
			RichText: richText(rec.Merchant),
		},
		"Valor": notionapi.NumberProperty{
			Number: float64(rec.Amount.Units),
		},
		"Date": notionapi.DateProperty{
			Date: &notionapi.DateObject{Start: &start},
		},
	}

	if rec.Account != "" {
		props["Cuenta"] = notionapi.SelectProperty{
			Select: notionapi.Option{Name: strings.ToLower(rec.Account)},
		}
	}

	return props, nil
}

// DebtToProperties builds the page for a new debt or debtor ledger entry.
// The "restante" column is a formula on the database side, so only the
// total and the paid amount are written.
func DebtToProperties(detail string, total int64) notionapi.Properties {
	return notionapi.Properties{
		"Detalle": notionapi.TitleProperty{
			Title: richText(detail),
		},
		"total": notionapi.NumberProperty{
			Number: float64(total),
		},
		"pagado": notionapi.NumberProperty{
			Number: 0,
		},
	}
}

func richText(s string) []notionapi.RichText {
	return []notionapi.RichText{
		{
			Type: notionapi.ObjectTypeText,
			Text: &notionapi.Text{Content: s},
		},
	}
}

// Property readers. Unmarshaled page properties arrive as pointer types;
// missing or differently-typed properties degrade to zero values.

func titleValue(p notionapi.Property) string {
	t, ok := p.(*notionapi.TitleProperty)
	if !ok || len(t.Title) == 0 {
		return ""
	}
	return plainText(t.Title[0])
}

func richTextValue(p notionapi.Property) string {
	rt, ok := p.(*notionapi.RichTextProperty)
	if !ok || len(rt.RichText) == 0 {
		return ""
	}
	return plainText(rt.RichText[0])
}

func numberValue(p notionapi.Property) float64 {
	n, ok := p.(*notionapi.NumberProperty)
	if !ok {
		return 0
	}
	return n.Number
}

func formulaNumber(p notionapi.Property) float64 {
	f, ok := p.(*notionapi.FormulaProperty)
	if !ok {
		return 0
	}
	return f.Formula.Number
}

func plainText(rt notionapi.RichText) string {
	if rt.PlainText != "" {
		return rt.PlainText
	}
	if rt.Text != nil {
		return rt.Text.Content
	}
	return ""
}
