package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cell coercion for the spreadsheet importer. These are total functions: any
// input yields a value, never an error — the importer prefers "always produce
// a row" over flagging bad data (see the import docs).

// coerceDecimal turns a spreadsheet cell into a number.
//
//	""            -> 0
//	"=D2*F2"      -> 0   (unevaluated formula marker; formulas are not evaluated)
//	"1,234.5"     -> 1234.5 (thousands separators stripped)
//	"1234.5"      -> 1234.5
//	anything else -> 0
func coerceDecimal(cell string) decimal.Decimal {
	s := strings.TrimSpace(cell)
	if s == "" || strings.HasPrefix(s, "=") {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// coerceDate parses YYYY-MM-DD; anything else falls back to now's date.
// The fallback is deliberate policy, not an error.
func coerceDate(cell string, now time.Time) time.Time {
	t, err := time.Parse(dateLayout, strings.TrimSpace(cell))
	if err != nil {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	return t
}

// isBlankRow reports whether every cell is empty or whitespace.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
