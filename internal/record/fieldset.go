package record

// Canonical field names. They double as extraction keys and spreadsheet
// headers, so they stay in Spanish: the extractor prompt, the sheet header
// row and the Notion property mapping are all derived from them.
const (
	FieldDate        = "fecha"
	FieldTime        = "hora"
	FieldAmount      = "valor"
	FieldMerchant    = "comercio"
	FieldCategory    = "categoria"
	FieldSubcategory = "subcategoria"
	FieldDetail      = "detalle"
	FieldAccount     = "cuenta"
	FieldPlatform    = "plataforma"
	FieldStore       = "tienda"
)

// FieldSet describes one canonical record layout: which fields exist and in
// which order they appear as spreadsheet columns. The normalizer, the
// mandatory-field validator and both persistence adapters all consume the
// same field set, so the column order here is an external contract.
type FieldSet struct {
	Name   string
	Fields []string
}

// Has reports whether the field set contains the named field.
func (fs FieldSet) Has(name string) bool {
	for _, f := range fs.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// TextFields returns the free-text fields of the set, excluding the date,
// time and amount fields which carry their own validation.
func (fs FieldSet) TextFields() []string {
	out := make([]string, 0, len(fs.Fields))
	for _, f := range fs.Fields {
		switch f {
		case FieldDate, FieldTime, FieldAmount:
		default:
			out = append(out, f)
		}
	}
	return out
}

// Default is the current expense layout, account column included.
var Default = FieldSet{
	Name: "gastos",
	Fields: []string{
		FieldDate, FieldTime, FieldAmount, FieldMerchant,
		FieldCategory, FieldSubcategory, FieldDetail, FieldAccount,
	},
}

// NoAccount is the layout used before the account column was added.
var NoAccount = FieldSet{
	Name: "gastos-sin-cuenta",
	Fields: []string{
		FieldDate, FieldTime, FieldAmount, FieldMerchant,
		FieldCategory, FieldSubcategory, FieldDetail,
	},
}

// PlatformStore is the oldest layout, which tracked a platform and store
// instead of a single merchant field.
var PlatformStore = FieldSet{
	Name: "gastos-plataforma",
	Fields: []string{
		FieldDate, FieldTime, FieldAmount, FieldPlatform, FieldStore,
		FieldCategory, FieldSubcategory, FieldDetail,
	},
}

// Variant looks up a field set by its configured name.
func Variant(name string) (FieldSet, bool) {
	for _, fs := range []FieldSet{Default, NoAccount, PlatformStore} {
		if fs.Name == name {
			return fs, true
		}
	}
	return FieldSet{}, false
}
