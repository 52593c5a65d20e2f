package bitstamp

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goxchange/goxchange/common"
	"github.com/goxchange/goxchange/common/convert"
	"github.com/goxchange/goxchange/currency"
	"github.com/goxchange/goxchange/exchanges/account"
	"github.com/goxchange/goxchange/exchanges/order"
	"github.com/goxchange/goxchange/exchanges/trade"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	dec, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return dec
}

func TestAdaptTicker(t *testing.T) {
	t.Parallel()
	tick := &Ticker{
		Last:      d(t, "346.56"),
		High:      d(t, "354.66"),
		Low:       d(t, "342.36"),
		Vwap:      d(t, "345.52"),
		Volume:    d(t, "588.98"),
		Bid:       d(t, "346.14"),
		Ask:       d(t, "347.13"),
		Timestamp: 1447508357,
	}

	price := AdaptTicker(tick, currency.NewPair(currency.BTC, currency.USD))
	require.NotNil(t, price)
	assert.Equal(t, "346.56", price.Last.Decimal.String())
	assert.Equal(t, int64(1447508357000), price.Timestamp.UnixMilli())
	assert.Nil(t, AdaptTicker(nil, currency.NewPair(currency.BTC, currency.USD)))
}

func TestAdaptOrderBook(t *testing.T) {
	t.Parallel()
	ob := &Orderbook{
		Timestamp: 1447508357,
		Asks: []OrderbookEntry{
			{Price: d(t, "347.13"), Amount: d(t, "1")},
			{Price: d(t, "348.00"), Amount: d(t, "2")},
		},
		Bids: []OrderbookEntry{
			{Price: d(t, "346.14"), Amount: d(t, "3")},
		},
	}
	p := currency.NewPair(currency.BTC, currency.USD)

	book, err := AdaptOrderBook(ob, p, convert.TimeScaleSeconds)
	require.NoError(t, err)
	assert.Equal(t, time.UnixMilli(1447508357000).UTC(), book.LastUpdated)
	require.Len(t, book.Asks, 2)
	assert.Equal(t, order.Ask, book.Asks[0].Side)

	// streamed books already report milliseconds
	ob.Timestamp = 1447508357822
	book, err = AdaptOrderBook(ob, p, convert.TimeScaleMilliseconds)
	require.NoError(t, err)
	assert.Equal(t, int64(1447508357822), book.LastUpdated.UnixMilli())
}

// 0 must become a buy resting on the bid side and 1 a sell on the ask
// side, per the exchange's documented coding.
func TestSideCodeMapping(t *testing.T) {
	t.Parallel()
	txs := []Transaction{
		{Date: 1447508357, TradeID: 100, Price: d(t, "346.56"), Side: 0, Amount: d(t, "0.5")},
		{Date: 1447508360, TradeID: 103, Price: d(t, "346.60"), Side: 1, Amount: d(t, "1")},
	}

	trades, err := AdaptTrades(txs, currency.NewPair(currency.BTC, currency.USD))
	require.NoError(t, err)
	require.Len(t, trades.Trades, 2)
	assert.Equal(t, order.Bid, trades.Trades[0].Side)
	assert.Equal(t, order.Ask, trades.Trades[1].Side)
	assert.Equal(t, int64(103), trades.LastTradeID)
	assert.Equal(t, trade.SortByID, trades.SortType)

	txs[0].Side = 2
	_, err = AdaptTrades(txs, currency.NewPair(currency.BTC, currency.USD))
	assert.ErrorIs(t, err, common.ErrMalformedResponse)
}

func TestAdaptUserTrades(t *testing.T) {
	t.Parallel()
	txs := []UserTransaction{
		{
			ID:       201,
			Datetime: "2015-11-14 13:39:17",
			OrderID:  55,
			Side:     1,
			Price:    decimal.NewFromInt(100),
			Amount:   decimal.NewFromInt(10),
			FeeRate:  d(t, "0.002"),
			Pair:     "btc_usd",
		},
	}

	uts, err := AdaptUserTrades(txs)
	require.NoError(t, err)
	require.Len(t, uts.Trades, 1)
	ut := uts.Trades[0]
	assert.Equal(t, order.Ask, ut.Side)
	assert.Equal(t, "55", ut.OrderID)
	assert.True(t, ut.Pair.Equal(currency.NewPair(currency.BTC, currency.USD)))
	assert.Equal(t, time.Date(2015, 11, 14, 13, 39, 17, 0, time.UTC), ut.Timestamp)
	// fee settles half-up at 8 dp in the counter currency
	assert.Equal(t, "2.00000000", ut.FeeAmount.StringFixed(8))
	assert.Equal(t, currency.USD, ut.FeeCurrency)
}

func TestAdaptUserTradesFeeHalfUp(t *testing.T) {
	t.Parallel()
	txs := []UserTransaction{{
		ID:       1,
		Datetime: "2015-11-14 13:39:17",
		OrderID:  2,
		Side:     0,
		Price:    d(t, "347.13"),
		Amount:   d(t, "0.3333"),
		FeeRate:  d(t, "0.0025"),
		Pair:     "btc_usd",
	}}

	uts, err := AdaptUserTrades(txs)
	require.NoError(t, err)
	// 0.0025 * 0.3333 * 347.13 = 0.2892460725 rounds down under half-up
	// where a ceiling exchange would settle 0.28924608
	assert.Equal(t, "0.28924607", uts.Trades[0].FeeAmount.StringFixed(8))
}

func TestAdaptUserTradesMalformedDatetime(t *testing.T) {
	t.Parallel()
	txs := []UserTransaction{{
		ID:       1,
		Datetime: "14/11/2015",
		Side:     0,
		Price:    decimal.NewFromInt(100),
		Amount:   decimal.NewFromInt(1),
		Pair:     "btc_usd",
	}}
	_, err := AdaptUserTrades(txs)
	assert.ErrorIs(t, err, common.ErrMalformedResponse)
}

func TestAdaptAccountInfo(t *testing.T) {
	t.Parallel()
	balances := &Balances{
		BTCBalance:   decimal.NewFromInt(10),
		BTCAvailable: decimal.NewFromInt(7),
		BTCReserved:  decimal.NewFromInt(3),
		USDBalance:   decimal.NewFromInt(1000),
		USDAvailable: decimal.NewFromInt(1000),
	}

	info, err := AdaptAccountInfo(balances, "trader", currency.Codes{currency.BTC, currency.USD})
	require.NoError(t, err)
	assert.Len(t, info.Balances, 2)

	b, ok := info.GetBalance(currency.BTC)
	require.True(t, ok)
	assert.Equal(t, "7", b.Available.String())

	_, ok = info.GetBalance(currency.EUR)
	assert.False(t, ok)
}

func TestAdaptWithdrawals(t *testing.T) {
	t.Parallel()
	reqs := []WithdrawalRequest{
		{ID: 99, Datetime: "2015-11-14 13:39:17", Type: 1, Amount: d(t, "0.5"), Status: 2},
	}

	records, err := AdaptWithdrawals(reqs)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, account.FundingCrypto, records[0].Type)
	assert.Equal(t, account.FundingFinished, records[0].Status)

	reqs[0].Status = 9
	_, err = AdaptWithdrawals(reqs)
	assert.ErrorIs(t, err, common.ErrMalformedResponse)

	reqs[0].Status = 2
	reqs[0].Type = 7
	_, err = AdaptWithdrawals(reqs)
	assert.ErrorIs(t, err, common.ErrMalformedResponse)
}

func TestAdaptCancelOrderResult(t *testing.T) {
	t.Parallel()
	res, err := AdaptCancelOrderResult(&CancelOrderResponse{ID: 55})
	require.NoError(t, err)
	assert.True(t, res.Succeeded)
	assert.Equal(t, "ok", res.Status)

	res, err = AdaptCancelOrderResult(&CancelOrderResponse{Error: "Order not found"})
	require.NoError(t, err)
	assert.False(t, res.Succeeded)
	assert.Equal(t, "Order not found", res.Message)
}

func TestAdapterRejectsForeignTypes(t *testing.T) {
	t.Parallel()
	b := New()
	p := currency.NewPair(currency.BTC, currency.USD)

	_, err := b.AdaptTicker([]Ticker{}, p)
	assert.ErrorIs(t, err, common.ErrMalformedResponse)

	_, err = b.AdaptOrderBook("book", p, convert.TimeScaleSeconds)
	assert.ErrorIs(t, err, common.ErrMalformedResponse)

	_, err = b.AdaptUserTrades(77)
	assert.ErrorIs(t, err, common.ErrMalformedResponse)

	_, err = b.AdaptAccountInfo(Balances{}, "trader")
	assert.ErrorIs(t, err, common.ErrMalformedResponse)
}
