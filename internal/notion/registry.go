package notion

import (
	"context"
	"fmt"

	"github.com/jomei/notionapi"
)

// Databases holds the per-year database IDs resolved from the master
// finances database.
type Databases struct {
	Expenses string
	Debts    string
	Debtors  string
}

// Registry resolves year-scoped database IDs. The master database has one
// row per year, keyed by a Year title, with the IDs stored in the
// id_gastos, id_deudas and id_deudores rich-text properties.
type Registry struct {
	client     *Client
	masterDBID string
}

// NewRegistry creates a registry backed by the master finances database.
func NewRegistry(client *Client, masterDBID string) *Registry {
	return &Registry{client: client, masterDBID: masterDBID}
}

// yearQuery matches the master row whose Year title equals year. Title
// properties take rich_text filter conditions on the wire.
func yearQuery(year string) *notionapi.DatabaseQueryRequest {
	return &notionapi.DatabaseQueryRequest{
		Filter: notionapi.PropertyFilter{
			Property: "Year",
			RichText: &notionapi.TextFilterCondition{Equals: year},
		},
	}
}

// Lookup returns the database IDs for the given year.
func (r *Registry) Lookup(ctx context.Context, year string) (*Databases, error) {
	resp, err := r.client.QueryDatabase(ctx, r.masterDBID, yearQuery(year))
	if err != nil {
		return nil, fmt.Errorf("lookup year %s: %w", year, err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("no finances entry for year %s", year)
	}

	props := resp.Results[0].Properties
	dbs := &Databases{
		Expenses: richTextValue(props["id_gastos"]),
		Debts:    richTextValue(props["id_deudas"]),
		Debtors:  richTextValue(props["id_deudores"]),
	}
	if dbs.Expenses == "" || dbs.Debts == "" || dbs.Debtors == "" {
		return nil, fmt.Errorf("finances entry for year %s is missing database ids", year)
	}
	return dbs, nil
}
