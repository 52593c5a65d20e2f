package bitstamp

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goxchange/goxchange/common"
	"github.com/goxchange/goxchange/common/convert"
	"github.com/goxchange/goxchange/currency"
	"github.com/goxchange/goxchange/exchanges"
	"github.com/goxchange/goxchange/exchanges/account"
	"github.com/goxchange/goxchange/exchanges/order"
	"github.com/goxchange/goxchange/exchanges/orderbook"
	"github.com/goxchange/goxchange/exchanges/ticker"
	"github.com/goxchange/goxchange/exchanges/trade"
	"github.com/goxchange/goxchange/log"
)

const (
	exchangeName   = "Bitstamp"
	datetimeFormat = "2006-01-02 15:04:05"

	sideBuy  = 0
	sideSell = 1
)

var _ exchanges.Adapter = (*Bitstamp)(nil)

// Bitstamp adapts Bitstamp REST payloads into the canonical model.
// Bitstamp tags sides with an integer, 0 buy and 1 sell, and settles fees
// at 8 decimal places rounded half-up.
type Bitstamp struct {
	// SupportedCurrencies is the balance allow-list; entries outside it
	// are silently dropped during account adaptation.
	SupportedCurrencies currency.Codes
}

// New returns a Bitstamp adapter with the exchange's default currency
// allow-list. Supply codes to override it.
func New(supported ...currency.Code) *Bitstamp {
	if len(supported) == 0 {
		supported = currency.Codes{currency.BTC, currency.XRP, currency.USD, currency.EUR}
	}
	return &Bitstamp{SupportedCurrencies: supported}
}

// Name returns the exchange name
func (b *Bitstamp) Name() string {
	return exchangeName
}

// sideFromCode maps Bitstamp's integer side tag: 0 buy (bid), 1 sell
// (ask). Anything else is malformed.
func sideFromCode(code int) (order.Side, error) {
	switch code {
	case sideBuy:
		return order.Bid, nil
	case sideSell:
		return order.Ask, nil
	}
	return "", fmt.Errorf("%w: unknown side code %d", common.ErrMalformedResponse, code)
}

// AdaptTicker implements exchanges.Adapter
func (b *Bitstamp) AdaptTicker(raw interface{}, p currency.Pair) (*ticker.Price, error) {
	tick, ok := raw.(*Ticker)
	if !ok {
		return nil, fmt.Errorf("%w: expected *bitstamp.Ticker, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptTicker(tick, p), nil
}

// AdaptTicker converts the per-pair ticker response. Bitstamp serves one
// ticker per request, so a nil payload means the pair is not listed.
func AdaptTicker(tick *Ticker, p currency.Pair) *ticker.Price {
	if tick == nil {
		return nil
	}
	return &ticker.Price{
		Pair:      p,
		Last:      ticker.Value(tick.Last),
		Bid:       ticker.Value(tick.Bid),
		Ask:       ticker.Value(tick.Ask),
		High:      ticker.Value(tick.High),
		Low:       ticker.Value(tick.Low),
		VWAP:      ticker.Value(tick.Vwap),
		Volume:    ticker.Value(tick.Volume),
		Timestamp: convert.UnixTimestampWithScale(tick.Timestamp, convert.TimeScaleSeconds),
	}
}

// AdaptOrderBook implements exchanges.Adapter
func (b *Bitstamp) AdaptOrderBook(raw interface{}, p currency.Pair, timeScale int64) (*orderbook.Base, error) {
	ob, ok := raw.(*Orderbook)
	if !ok {
		return nil, fmt.Errorf("%w: expected *bitstamp.Orderbook, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptOrderBook(ob, p, timeScale)
}

// AdaptOrderBook converts raw depth levels preserving the exchange
// ordering. Polled books report seconds, streamed books milliseconds;
// timeScale normalizes both to canonical milliseconds.
func AdaptOrderBook(ob *Orderbook, p currency.Pair, timeScale int64) (*orderbook.Base, error) {
	if ob == nil {
		return nil, fmt.Errorf("%w: orderbook", common.ErrNilResponse)
	}
	asks, err := createOrders(p, order.Ask, ob.Asks)
	if err != nil {
		return nil, err
	}
	bids, err := createOrders(p, order.Bid, ob.Bids)
	if err != nil {
		return nil, err
	}
	book := &orderbook.Base{
		Pair:        p,
		Asks:        asks,
		Bids:        bids,
		LastUpdated: convert.UnixTimestampWithScale(ob.Timestamp, timeScale),
	}
	if err := book.Verify(); err != nil {
		return nil, err
	}
	return book, nil
}

func createOrders(p currency.Pair, side order.Side, levels []OrderbookEntry) ([]order.LimitOrder, error) {
	merged := make([]order.LimitOrder, 0, len(levels))
	index := make(map[string]int, len(levels))
	for x := range levels {
		if at, ok := index[levels[x].Price.String()]; ok {
			merged[at].Amount = merged[at].Amount.Add(levels[x].Amount)
			continue
		}
		o := order.LimitOrder{
			Side:   side,
			Amount: levels[x].Amount,
			Pair:   p,
			Price:  levels[x].Price,
		}
		if err := o.Validate(); err != nil {
			return nil, err
		}
		index[o.Price.String()] = len(merged)
		merged = append(merged, o)
	}
	return merged, nil
}

// AdaptTrades implements exchanges.Adapter
func (b *Bitstamp) AdaptTrades(raw interface{}, p currency.Pair) (trade.Trades, error) {
	txs, ok := raw.([]Transaction)
	if !ok {
		return trade.Trades{}, fmt.Errorf("%w: expected []bitstamp.Transaction, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptTrades(txs, p)
}

// AdaptTrades maps raw public transactions. Trade ids are monotonic
// sequence numbers, so the collection sorts by id.
func AdaptTrades(txs []Transaction, p currency.Pair) (trade.Trades, error) {
	trades := make([]trade.Trade, 0, len(txs))
	for x := range txs {
		side, err := sideFromCode(txs[x].Side)
		if err != nil {
			return trade.Trades{}, err
		}
		t := trade.Trade{
			Side:      side,
			Amount:    txs[x].Amount,
			Pair:      p,
			Price:     txs[x].Price,
			Timestamp: convert.UnixTimestampWithScale(txs[x].Date, convert.TimeScaleSeconds),
			ID:        txs[x].TradeID,
		}
		if err := t.Validate(); err != nil {
			return trade.Trades{}, err
		}
		trades = append(trades, t)
	}
	return trade.NewTrades(trades, trade.SortByID), nil
}

// AdaptUserTrades implements exchanges.Adapter
func (b *Bitstamp) AdaptUserTrades(raw interface{}) (trade.UserTrades, error) {
	txs, ok := raw.([]UserTransaction)
	if !ok {
		return trade.UserTrades{}, fmt.Errorf("%w: expected []bitstamp.UserTransaction, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptUserTrades(txs)
}

// AdaptUserTrades maps the user's transaction history. The settlement fee
// is feeRate * amount * price rounded HALF-UP to 8 decimal places, paid in
// the counter currency.
func AdaptUserTrades(txs []UserTransaction) (trade.UserTrades, error) {
	trades := make([]trade.UserTrade, 0, len(txs))
	for x := range txs {
		side, err := sideFromCode(txs[x].Side)
		if err != nil {
			return trade.UserTrades{}, err
		}
		p, err := currency.NewPairFromString(txs[x].Pair)
		if err != nil {
			return trade.UserTrades{}, err
		}
		timestamp, err := parseDatetime(txs[x].Datetime)
		if err != nil {
			return trade.UserTrades{}, err
		}
		ut := trade.UserTrade{
			Trade: trade.Trade{
				Side:      side,
				Amount:    txs[x].Amount,
				Pair:      p,
				Price:     txs[x].Price,
				Timestamp: timestamp,
				ID:        txs[x].ID,
			},
			OrderID:     strconv.FormatInt(txs[x].OrderID, 10),
			FeeAmount:   trade.CalculateFee(txs[x].FeeRate, txs[x].Amount, txs[x].Price, trade.DefaultFeeScale, trade.FeeRoundHalfUp),
			FeeCurrency: p.Quote,
		}
		if err := ut.Validate(); err != nil {
			return trade.UserTrades{}, err
		}
		trades = append(trades, ut)
	}
	return trade.NewUserTrades(trades, trade.SortByID), nil
}

// AdaptAccountInfo implements exchanges.Adapter
func (b *Bitstamp) AdaptAccountInfo(raw interface{}, ownerID string) (*account.Info, error) {
	balances, ok := raw.(*Balances)
	if !ok {
		return nil, fmt.Errorf("%w: expected *bitstamp.Balances, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptAccountInfo(balances, ownerID, b.SupportedCurrencies)
}

// AdaptAccountInfo converts the fixed-currency balance payload, keeping
// only allow-listed currencies.
func AdaptAccountInfo(balances *Balances, ownerID string, supported currency.Codes) (*account.Info, error) {
	if balances == nil {
		return nil, fmt.Errorf("%w: balances", common.ErrNilResponse)
	}
	all := []account.Balance{
		{Currency: currency.BTC, Total: balances.BTCBalance, Available: balances.BTCAvailable, Hold: balances.BTCReserved},
		{Currency: currency.XRP, Total: balances.XRPBalance, Available: balances.XRPAvailable, Hold: balances.XRPReserved},
		{Currency: currency.USD, Total: balances.USDBalance, Available: balances.USDAvailable, Hold: balances.USDReserved},
		{Currency: currency.EUR, Total: balances.EURBalance, Available: balances.EURAvailable, Hold: balances.EURReserved},
	}
	kept := make([]account.Balance, 0, len(all))
	for x := range all {
		if !supported.Contains(all[x].Currency) {
			log.Warnf("%s: dropping unsupported currency %s for account %s", exchangeName, all[x].Currency, ownerID)
			continue
		}
		kept = append(kept, all[x])
	}
	return account.NewInfo(ownerID, kept)
}

// AdaptWithdrawals converts the withdrawal request history. Unknown type
// or status codes are malformed rather than guessed at.
func AdaptWithdrawals(reqs []WithdrawalRequest) ([]account.FundingRecord, error) {
	records := make([]account.FundingRecord, 0, len(reqs))
	for x := range reqs {
		if reqs[x].Type < int(account.FundingSEPA) || reqs[x].Type > int(account.FundingWire) {
			return nil, fmt.Errorf("%w: unknown withdrawal type %d", common.ErrMalformedResponse, reqs[x].Type)
		}
		if reqs[x].Status < int(account.FundingOpen) || reqs[x].Status > int(account.FundingFailed) {
			return nil, fmt.Errorf("%w: unknown withdrawal status %d", common.ErrMalformedResponse, reqs[x].Status)
		}
		timestamp, err := parseDatetime(reqs[x].Datetime)
		if err != nil {
			return nil, err
		}
		records = append(records, account.FundingRecord{
			ID:        reqs[x].ID,
			Timestamp: timestamp,
			Type:      account.FundingType(reqs[x].Type),
			Amount:    reqs[x].Amount,
			Status:    account.FundingStatus(reqs[x].Status),
		})
	}
	return records, nil
}

// AdaptCancelOrderResult implements exchanges.Adapter
func (b *Bitstamp) AdaptCancelOrderResult(raw interface{}) (order.CancelResult, error) {
	resp, ok := raw.(*CancelOrderResponse)
	if !ok {
		return order.CancelResult{}, fmt.Errorf("%w: expected *bitstamp.CancelOrderResponse, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptCancelOrderResult(resp)
}

// AdaptCancelOrderResult maps the cancel acknowledgement. Bitstamp has no
// status code; an empty error field is success.
func AdaptCancelOrderResult(resp *CancelOrderResponse) (order.CancelResult, error) {
	if resp == nil {
		return order.CancelResult{}, fmt.Errorf("%w: cancel order response", common.ErrNilResponse)
	}
	if resp.Error != "" {
		return order.CancelResult{Succeeded: false, Status: "error", Message: resp.Error}, nil
	}
	return order.CancelResult{Succeeded: true, Status: "ok"}, nil
}

func parseDatetime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(datetimeFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: cannot parse datetime %q", common.ErrMalformedResponse, s)
	}
	return t, nil
}
