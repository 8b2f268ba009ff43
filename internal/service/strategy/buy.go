package strategy

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BuyEvaluator flags watched stocks trading strictly above their
// all-time-high reference. Equal never triggers.
type BuyEvaluator struct{}

func NewBuyEvaluator() BuyEvaluator {
	return BuyEvaluator{}
}

func (BuyEvaluator) Evaluate(live, ath decimal.Decimal) Signal {
	if ath.LessThanOrEqual(decimal.Zero) {
		// no usable reference: treated as no signal
		return Signal{}
	}
	if !live.GreaterThan(ath) {
		return Signal{}
	}
	return Signal{
		Triggered: true,
		Reason:    fmt.Sprintf("price above ATH (%s)", ath),
	}
}
