package market

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNoQuote means the provider answered but had no usable price for
// the symbol. Callers treat it the same as any other lookup failure:
// the symbol is skipped for the current cycle.
var ErrNoQuote = errors.New("no quote available")

type QuoteService interface {
	LastClose(ctx context.Context, symbol string) (decimal.Decimal, error)
}
