// Package sheets appends validated records to the Google Sheets system of
// record. The sheet's header row is derived from the same field set the
// pipeline uses, so column order never drifts from the canonical layout.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jfmartinez/expensebot/internal/record"
)

// Client wraps the Sheets API for a single spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	log           zerolog.Logger
}

// NewClient builds a Sheets client authenticated with a service-account
// credentials file.
func NewClient(ctx context.Context, credentialsFile, spreadsheetID string, log zerolog.Logger) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID, log: log}, nil
}

// EnsureHeader verifies that the first row of the sheet matches the field
// set's column order, case-insensitively. On mismatch the sheet is cleared
// and the header rewritten.
func (c *Client) EnsureHeader(ctx context.Context, fields record.FieldSet) error {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, "1:1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read header row: %w", err)
	}

	var have []string
	if len(resp.Values) > 0 {
		for _, cell := range resp.Values[0] {
			have = append(have, strings.ToLower(strings.TrimSpace(fmt.Sprint(cell))))
		}
	}
	if headerMatches(have, fields.Fields) {
		return nil
	}

	c.log.Warn().
		Strs("have", have).
		Strs("want", fields.Fields).
		Msg("Sheet header mismatch, rewriting sheet")

	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, "A:Z", &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear sheet: %w", err)
	}

	header := make([]any, len(fields.Fields))
	for i, f := range fields.Fields {
		header[i] = f
	}
	vr := &sheets.ValueRange{Values: [][]any{header}}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, "A1", vr).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	return nil
}

// Append writes one record as a new row in the field set's column order.
func (c *Client) Append(ctx context.Context, fields record.FieldSet, rec *record.Record) error {
	vr := &sheets.ValueRange{Values: [][]any{rec.Row(fields)}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, "A:Z", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

func headerMatches(have, want []string) bool {
	if len(have) != len(want) {
		return false
	}
	for i := range want {
		if have[i] != want[i] {
			return false
		}
	}
	return true
}
