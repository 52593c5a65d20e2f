package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goxchange/goxchange/currency"
)

func validOrder() LimitOrder {
	return LimitOrder{
		Side:      Ask,
		Amount:    decimal.NewFromFloat(0.5),
		Pair:      currency.NewPair(currency.BTC, currency.USD),
		ID:        "1337",
		Timestamp: time.UnixMilli(1447508357822).UTC(),
		Price:     decimal.NewFromFloat(347.13),
	}
}

func TestLimitOrderValidate(t *testing.T) {
	t.Parallel()
	o := validOrder()
	require.NoError(t, o.Validate())

	o = validOrder()
	o.Amount = decimal.Zero
	assert.ErrorIs(t, o.Validate(), ErrAmountIsInvalid)

	o = validOrder()
	o.Amount = decimal.NewFromInt(-1)
	assert.ErrorIs(t, o.Validate(), ErrAmountIsInvalid)

	o = validOrder()
	o.Price = decimal.Zero
	assert.ErrorIs(t, o.Validate(), ErrPriceIsInvalid)

	o = validOrder()
	o.Side = "BUY"
	assert.ErrorIs(t, o.Validate(), ErrSideIsInvalid)

	o = validOrder()
	o.Pair = currency.NewPair(currency.BTC, currency.BTC)
	assert.ErrorIs(t, o.Validate(), currency.ErrPairCodesEqual)
}

func TestLimitOrderString(t *testing.T) {
	t.Parallel()
	o := validOrder()
	assert.Equal(t,
		"Order{id=1337, datetime=2015-11-14T13:39:17.822Z, type=ASK, price=347.13, amount=0.5}",
		o.String())

	o.Timestamp = time.Time{}
	o.ID = ""
	assert.Equal(t,
		"Order{id=, datetime=, type=ASK, price=347.13, amount=0.5}",
		o.String())
}

func TestCancelResultString(t *testing.T) {
	t.Parallel()
	c := CancelResult{Succeeded: false, Status: "1005", Message: "order not found"}
	assert.Equal(t,
		"CancelResult{succeeded=false, status=1005, message=order not found}",
		c.String())
}
