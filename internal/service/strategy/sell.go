package strategy

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// SellEvaluator applies a regime-switched trailing stop. Positions that
// have not yet doubled are stopped on the 20-month SMA; once a position
// has doubled the stop tightens to the 10-month SMA. Exactly one branch
// is evaluated per holding, and a zero/unset SMA disables its branch.
type SellEvaluator struct{}

func NewSellEvaluator() SellEvaluator {
	return SellEvaluator{}
}

func (SellEvaluator) Evaluate(live, buyPrice, smaShort, smaLong decimal.Decimal) Signal {
	if live.LessThan(buyPrice.Mul(two)) {
		if smaLong.GreaterThan(decimal.Zero) && live.LessThan(smaLong) {
			return Signal{
				Triggered: true,
				Reason:    fmt.Sprintf("price below 20M SMA (%s)", smaLong),
			}
		}
		return Signal{}
	}

	if smaShort.GreaterThan(decimal.Zero) && live.LessThan(smaShort) {
		return Signal{
			Triggered: true,
			Reason:    fmt.Sprintf("price below 10M SMA (%s)", smaShort),
		}
	}
	return Signal{}
}
