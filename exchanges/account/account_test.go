package account

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goxchange/goxchange/currency"
)

func TestNewInfo(t *testing.T) {
	t.Parallel()
	info, err := NewInfo("trader", []Balance{
		{
			Currency:  currency.BTC,
			Total:     decimal.NewFromInt(10),
			Available: decimal.NewFromInt(7),
			Hold:      decimal.NewFromInt(3),
		},
		{
			Currency:  currency.USD,
			Total:     decimal.NewFromInt(1000),
			Available: decimal.NewFromInt(1000),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "trader", info.OwnerID)

	b, ok := info.GetBalance(currency.NewCode("btc"))
	require.True(t, ok)
	assert.True(t, b.Available.Equal(decimal.NewFromInt(7)))

	_, ok = info.GetBalance(currency.EUR)
	assert.False(t, ok)
}

// A balance built with a lowercase code must land under the normalized
// key, otherwise GetBalance can never see it.
func TestNewInfoNormalizesCurrencyKeys(t *testing.T) {
	t.Parallel()
	info, err := NewInfo("trader", []Balance{
		{
			Currency:  currency.Code("btc"),
			Total:     decimal.NewFromInt(2),
			Available: decimal.NewFromInt(2),
		},
	})
	require.NoError(t, err)

	b, ok := info.GetBalance(currency.BTC)
	require.True(t, ok)
	assert.True(t, b.Total.Equal(decimal.NewFromInt(2)))

	_, ok = info.Balances[currency.BTC]
	assert.True(t, ok)
}

func TestNewInfoAvailableExceedsTotal(t *testing.T) {
	t.Parallel()
	_, err := NewInfo("trader", []Balance{
		{
			Currency:  currency.BTC,
			Total:     decimal.NewFromInt(1),
			Available: decimal.NewFromInt(2),
		},
	})
	assert.ErrorIs(t, err, ErrAvailableExceedsTotal)
}

func TestInfoString(t *testing.T) {
	t.Parallel()
	info, err := NewInfo("trader", []Balance{
		{Currency: currency.USD, Total: decimal.NewFromInt(5), Available: decimal.NewFromInt(5)},
		{Currency: currency.BTC, Total: decimal.NewFromInt(1), Available: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"AccountInfo{owner=trader, balances=["+
			"Balance{currency=BTC, total=1, available=1, hold=0}, "+
			"Balance{currency=USD, total=5, available=5, hold=0}]}",
		info.String())
}

func TestFundingRecordString(t *testing.T) {
	t.Parallel()
	r := FundingRecord{
		ID:        99,
		Timestamp: time.UnixMilli(1447508357822).UTC(),
		Type:      FundingCrypto,
		Amount:    decimal.NewFromFloat(0.5),
		Status:    FundingFinished,
	}
	assert.Equal(t,
		"WithdrawalRequest{id=99, datetime=1447508357822, type=crypto, amount=0.5, status=finished}",
		r.String())

	assert.Equal(t, "unknown(7)", FundingStatus(7).String())
}
