// Package record defines the canonical representation of one financial
// event and the field-set configuration shared by the pipeline and the
// persistence adapters.
package record

// Record is the fully normalized form of one expense. Every field of the
// active field set is populated (empty string for unknown text fields), the
// date is a valid ISO calendar date and the time a valid 24-hour HH:MM
// string. A Record lives for the duration of one message only.
type Record struct {
	Date        string
	Time        string
	Amount      Amount
	Merchant    string
	Platform    string
	Store       string
	Category    string
	Subcategory string
	Detail      string
	Account     string
}

// TextField returns the value of a free-text field by its canonical name.
// Unknown names return the empty string.
func (r *Record) TextField(name string) string {
	switch name {
	case FieldMerchant:
		return r.Merchant
	case FieldPlatform:
		return r.Platform
	case FieldStore:
		return r.Store
	case FieldCategory:
		return r.Category
	case FieldSubcategory:
		return r.Subcategory
	case FieldDetail:
		return r.Detail
	case FieldAccount:
		return r.Account
	}
	return ""
}

// SetTextField sets a free-text field by its canonical name. Unknown names
// are ignored.
func (r *Record) SetTextField(name, value string) {
	switch name {
	case FieldMerchant:
		r.Merchant = value
	case FieldPlatform:
		r.Platform = value
	case FieldStore:
		r.Store = value
	case FieldCategory:
		r.Category = value
	case FieldSubcategory:
		r.Subcategory = value
	case FieldDetail:
		r.Detail = value
	case FieldAccount:
		r.Account = value
	}
}

// Row renders the record as one spreadsheet row in the field set's column
// order. A missing amount renders as an empty cell.
func (r *Record) Row(fs FieldSet) []any {
	row := make([]any, 0, len(fs.Fields))
	for _, name := range fs.Fields {
		switch name {
		case FieldDate:
			row = append(row, r.Date)
		case FieldTime:
			row = append(row, r.Time)
		case FieldAmount:
			if r.Amount.Valid {
				row = append(row, r.Amount.Units)
			} else {
				row = append(row, "")
			}
		default:
			row = append(row, r.TextField(name))
		}
	}
	return row
}
