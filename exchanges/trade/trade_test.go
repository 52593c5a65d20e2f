package trade

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goxchange/goxchange/currency"
	"github.com/goxchange/goxchange/exchanges/order"
)

func validTrade(id int64) Trade {
	return Trade{
		Side:      order.Bid,
		Amount:    decimal.NewFromInt(10),
		Pair:      currency.NewPair(currency.BTC, currency.USD),
		Price:     decimal.NewFromInt(100),
		Timestamp: time.UnixMilli(1447508357822).UTC(),
		ID:        id,
	}
}

func TestTradeValidate(t *testing.T) {
	t.Parallel()
	tr := validTrade(1)
	require.NoError(t, tr.Validate())

	tr = validTrade(1)
	tr.Amount = decimal.Zero
	assert.ErrorIs(t, tr.Validate(), order.ErrAmountIsInvalid)

	tr = validTrade(1)
	tr.Price = decimal.NewFromInt(-100)
	assert.ErrorIs(t, tr.Validate(), order.ErrPriceIsInvalid)
}

func TestUserTradeValidate(t *testing.T) {
	t.Parallel()
	ut := UserTrade{
		Trade:       validTrade(1),
		OrderID:     "55",
		FeeAmount:   decimal.NewFromFloat(0.01),
		FeeCurrency: currency.USD,
	}
	require.NoError(t, ut.Validate())

	ut.FeeAmount = decimal.NewFromFloat(-0.01)
	assert.ErrorIs(t, ut.Validate(), ErrFeeIsNegative)
}

func TestNewTradesHighWaterMark(t *testing.T) {
	t.Parallel()
	trades := NewTrades([]Trade{validTrade(3), validTrade(9), validTrade(7)}, SortByID)
	assert.Equal(t, int64(9), trades.LastTradeID)
	assert.Equal(t, SortByID, trades.SortType)

	empty := NewTrades(nil, SortByTimestamp)
	assert.Zero(t, empty.LastTradeID)
}

func TestNewUserTradesHighWaterMark(t *testing.T) {
	t.Parallel()
	uts := NewUserTrades([]UserTrade{
		{Trade: validTrade(12)},
		{Trade: validTrade(4)},
	}, SortByID)
	assert.Equal(t, int64(12), uts.LastTradeID)
}

func TestCalculateFee(t *testing.T) {
	t.Parallel()
	rate := decimal.NewFromFloat(0.002)
	amount := decimal.NewFromInt(10)
	price := decimal.NewFromInt(100)

	fee := CalculateFee(rate, amount, price, DefaultFeeScale, FeeRoundCeiling)
	assert.Equal(t, "2.00000000", fee.StringFixed(8))

	fee = CalculateFee(rate, amount, price, DefaultFeeScale, FeeRoundHalfUp)
	assert.Equal(t, "2.00000000", fee.StringFixed(8))
}

// 0.0025 * 0.3333 * 347.13 = 0.2892460725, which sits below the half-way
// point of the 8th decimal: ceiling and half-up must diverge.
func TestCalculateFeeRoundingModesDiverge(t *testing.T) {
	t.Parallel()
	rate := decimal.NewFromFloat(0.0025)
	amount := decimal.NewFromFloat(0.3333)
	price := decimal.NewFromFloat(347.13)

	ceil := CalculateFee(rate, amount, price, DefaultFeeScale, FeeRoundCeiling)
	assert.Equal(t, "0.28924608", ceil.StringFixed(8))

	halfUp := CalculateFee(rate, amount, price, DefaultFeeScale, FeeRoundHalfUp)
	assert.Equal(t, "0.28924607", halfUp.StringFixed(8))
}

func TestTradeString(t *testing.T) {
	t.Parallel()
	tr := validTrade(42)
	assert.Equal(t,
		"Trade{id=42, datetime=1447508357822, type=BID, pair=BTC/USD, price=100, amount=10}",
		tr.String())

	ut := UserTrade{
		Trade:       validTrade(42),
		OrderID:     "55",
		FeeAmount:   decimal.NewFromFloat(0.002),
		FeeCurrency: currency.USD,
	}
	assert.Equal(t,
		"UserTrade{id=42, datetime=1447508357822, type=BID, pair=BTC/USD, price=100, amount=10, orderId=55, fee=0.002 USD}",
		ut.String())
}
