package alert

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindBuy  Kind = "buy"
	KindSell Kind = "sell"
)

// Key identifies one independent notification stream. Two alerts with
// different keys never share a counter.
//
// Buy keys scope to the ATH reference and the trigger day, so the
// counter resets whenever the calendar day (or the reference itself)
// changes. Sell keys scope to the reason text instead and carry no day,
// so they only reset when the reason changes or the process restarts.
type Key struct {
	Kind   Kind
	User   string
	Symbol string
	Scope  string
}

func BuyKey(user, symbol string, ath decimal.Decimal, day time.Time) Key {
	return Key{
		Kind:   KindBuy,
		User:   user,
		Symbol: symbol,
		Scope:  ath.String() + ":" + day.Format("2006-01-02"),
	}
}

func SellKey(user, symbol, reason string) Key {
	return Key{
		Kind:   KindSell,
		User:   user,
		Symbol: symbol,
		Scope:  reason,
	}
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s:%s", k.Kind, k.User, k.Symbol, k.Scope)
}

// YearMonth renders the coarser granularity used by the monthly
// suppression log.
func YearMonth(t time.Time) string {
	return t.Format("2006-01")
}
