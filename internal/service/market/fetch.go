package market

import (
	"context"
	"log/slog"
	"sync"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// FetchAll looks up the latest close for every symbol concurrently and
// joins the results. Each lookup is independent: a failure leaves that
// symbol absent from the returned map and never aborts or delays the
// others, so total latency is bounded by the slowest single lookup.
func FetchAll(ctx context.Context, svc QuoteService, symbols []string) map[string]decimal.Decimal {
	symbols = lo.Uniq(lo.Filter(symbols, func(s string, _ int) bool {
		return s != ""
	}))

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		prices = make(map[string]decimal.Decimal, len(symbols))
	)
	for _, symbol := range symbols {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			price, err := svc.LastClose(ctx, symbol)
			if err != nil {
				slog.Warn("price lookup failed", "symbol", symbol, "error", err)
				return
			}
			mu.Lock()
			prices[symbol] = price
			mu.Unlock()
		}(symbol)
	}
	wg.Wait()
	return prices
}
