package strategy

import (
	"testing"

	"github.com/quillon/stocksentry/pkg/decimalx"
	"github.com/stretchr/testify/assert"
)

func TestSellEvaluator_RegimeSwitch(t *testing.T) {
	eval := NewSellEvaluator()

	tests := []struct {
		name              string
		live, buy         string
		smaShort, smaLong string
		triggered         bool
		reason            string
	}{
		{
			name: "not doubled, below long SMA",
			live: "150", buy: "100", smaShort: "140", smaLong: "160",
			triggered: true, reason: "price below 20M SMA (160)",
		},
		{
			name: "not doubled, above long SMA",
			live: "150", buy: "100", smaShort: "200", smaLong: "140",
			triggered: false,
		},
		{
			name: "not doubled, zero long SMA guards",
			live: "150", buy: "100", smaShort: "160", smaLong: "0",
			triggered: false,
		},
		{
			name: "doubled, below short SMA",
			live: "210", buy: "100", smaShort: "220", smaLong: "230",
			triggered: true, reason: "price below 10M SMA (220)",
		},
		{
			name: "doubled, zero short SMA guards",
			live: "210", buy: "100", smaShort: "0", smaLong: "230",
			triggered: false,
		},
		{
			name: "exactly doubled uses short SMA branch",
			live: "200", buy: "100", smaShort: "210", smaLong: "0",
			triggered: true, reason: "price below 10M SMA (210)",
		},
		{
			name: "doubled, above short SMA",
			live: "300", buy: "100", smaShort: "250", smaLong: "400",
			triggered: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := eval.Evaluate(
				decimalx.MustFromString(tt.live),
				decimalx.MustFromString(tt.buy),
				decimalx.MustFromString(tt.smaShort),
				decimalx.MustFromString(tt.smaLong),
			)
			assert.Equal(t, tt.triggered, sig.Triggered)
			if tt.triggered {
				assert.Equal(t, tt.reason, sig.Reason)
			}
		})
	}
}
