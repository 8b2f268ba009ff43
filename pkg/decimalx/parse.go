package decimalx

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FromCell parses a spreadsheet cell into a decimal. Depending on the
// sheet's formatting a cell may arrive as a raw number or as a string,
// possibly carrying a currency symbol or thousands separators.
func FromCell(v any) (decimal.Decimal, error) {
	switch c := v.(type) {
	case nil:
		return decimal.Zero, fmt.Errorf("empty cell")
	case float64:
		return decimal.NewFromFloat(c), nil
	case int:
		return decimal.NewFromInt(int64(c)), nil
	case int64:
		return decimal.NewFromInt(c), nil
	case string:
		s := strings.TrimSpace(c)
		s = strings.TrimPrefix(s, "₹")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return decimal.Zero, fmt.Errorf("empty cell")
		}
		return decimal.NewFromString(s)
	default:
		return decimal.NewFromString(strings.TrimSpace(fmt.Sprint(v)))
	}
}

// FromCellOrZero is FromCell with absent/blank cells mapped to zero.
// Parse errors on non-blank cells are still reported.
func FromCellOrZero(v any) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	return FromCell(v)
}
