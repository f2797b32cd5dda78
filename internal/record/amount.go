package record

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value in whole currency units (COP). Valid is false
// when the extractor produced nothing parseable; a missing amount renders as
// an empty spreadsheet cell, distinct from a real zero.
type Amount struct {
	Units int64
	Valid bool
}

// String renders the amount as a spreadsheet cell value.
func (a Amount) String() string {
	if !a.Valid {
		return ""
	}
	return strconv.FormatInt(a.Units, 10)
}

var amountJunk = regexp.MustCompile(`[^0-9,.]`)

// ParseAmount coerces a raw extraction value into an Amount. Strings follow
// the Colombian convention: "." separates thousands, "," separates decimals,
// so "28.500" is twenty-eight thousand five hundred. Values already numeric
// are accepted as-is. Anything unparseable yields a missing Amount; this
// function never fails.
func ParseAmount(v any) Amount {
	switch val := v.(type) {
	case float64:
		return Amount{Units: decimal.NewFromFloat(val).Round(0).IntPart(), Valid: true}
	case int:
		return Amount{Units: int64(val), Valid: true}
	case int64:
		return Amount{Units: val, Valid: true}
	case string:
		return parseAmountString(val)
	default:
		return Amount{}
	}
}

func parseAmountString(s string) Amount {
	s = amountJunk.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}
	}
	// decimal.Round rounds half away from zero, so "12,50" becomes 13.
	return Amount{Units: d.Round(0).IntPart(), Valid: true}
}
