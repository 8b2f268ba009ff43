package store

import (
	"context"

	"github.com/shopspring/decimal"
)

// WatchedStock is one watchlist row: a symbol and the all-time-high
// reference the buy signal compares against.
type WatchedStock struct {
	Symbol string
	ATH    decimal.Decimal
}

// Holding is one active position row. SMAShort is the 10-month moving
// average, SMALong the 20-month one; both are precomputed in the sheet.
type Holding struct {
	Symbol   string
	Owner    string
	BuyPrice decimal.Decimal
	SMAShort decimal.Decimal
	SMALong  decimal.Decimal
}

// User is a directory entry. Either contact field may be empty; a user
// with neither still takes part in evaluation but receives nothing.
type User struct {
	Name       string
	TelegramID string
	Email      string
}

func (u User) Reachable() bool {
	return u.TelegramID != "" || u.Email != ""
}

// Suppression is one append-only log row marking that buy alerts for
// (user, symbol) are exhausted for the given calendar month.
type Suppression struct {
	User      string
	Symbol    string
	YearMonth string // "2006-01"
}

// ReferenceStore exposes the externally maintained reference sheets.
// All reads return the full current row set; data is re-read every
// scan cycle and never cached here.
type ReferenceStore interface {
	Watchlist(ctx context.Context) ([]WatchedStock, error)
	Holdings(ctx context.Context) ([]Holding, error)
	Users(ctx context.Context) ([]User, error)
	Suppressions(ctx context.Context) ([]Suppression, error)
	AppendSuppression(ctx context.Context, s Suppression) error
}

// SuppressionSet indexes suppression rows for O(1) lookup during a scan.
type SuppressionSet map[string]struct{}

func NewSuppressionSet(rows []Suppression) SuppressionSet {
	set := make(SuppressionSet, len(rows))
	for _, r := range rows {
		set[suppressionKey(r.User, r.Symbol, r.YearMonth)] = struct{}{}
	}
	return set
}

func (s SuppressionSet) Contains(user, symbol, yearMonth string) bool {
	_, ok := s[suppressionKey(user, symbol, yearMonth)]
	return ok
}

func suppressionKey(user, symbol, yearMonth string) string {
	return user + "|" + symbol + "|" + yearMonth
}
