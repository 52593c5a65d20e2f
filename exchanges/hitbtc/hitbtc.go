package hitbtc

import (
	"fmt"
	"strings"

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
	exchangeName   = "HitBTC"
	statusCanceled = "canceled"
)

var _ exchanges.Adapter = (*Hitbtc)(nil)

// Hitbtc adapts HitBTC REST payloads into the canonical model. HitBTC
// keys market data by concatenated symbol, reports millisecond timestamps
// and tags sides with "buy"/"sell" strings.
type Hitbtc struct {
	// SupportedCurrencies is the balance allow-list; entries outside it
	// are silently dropped during account adaptation.
	SupportedCurrencies currency.Codes
}

// New returns a HitBTC adapter with a default currency allow-list. Supply
// codes to override it.
func New(supported ...currency.Code) *Hitbtc {
	if len(supported) == 0 {
		supported = currency.Codes{currency.BTC, currency.USD, currency.EUR}
	}
	return &Hitbtc{SupportedCurrencies: supported}
}

// Name returns the exchange name
func (h *Hitbtc) Name() string {
	return exchangeName
}

// sideFromTag maps HitBTC's string side tag: "buy" rests on the bid side,
// "sell" on the ask side. Anything else is malformed.
func sideFromTag(tag string) (order.Side, error) {
	switch strings.ToLower(tag) {
	case "buy":
		return order.Bid, nil
	case "sell":
		return order.Ask, nil
	}
	return "", fmt.Errorf("%w: unknown side tag %q", common.ErrMalformedResponse, tag)
}

// AdaptTicker implements exchanges.Adapter
func (h *Hitbtc) AdaptTicker(raw interface{}, p currency.Pair) (*ticker.Price, error) {
	tickers, ok := raw.(map[string]Ticker)
	if !ok {
		return nil, fmt.Errorf("%w: expected map[string]hitbtc.Ticker, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptTicker(tickers, p), nil
}

// AdaptTicker locates the entry for the supplied pair inside the symbol
// keyed ticker map. A missing symbol yields nil, not an error, so callers
// can tell an unlisted pair from malformed data. HitBTC timestamps are
// already milliseconds and pass through unscaled.
func AdaptTicker(tickers map[string]Ticker, p currency.Pair) *ticker.Price {
	tick, ok := tickers[p.Format("", true).String()]
	if !ok {
		return nil
	}
	return &ticker.Price{
		Pair:      p,
		Last:      ticker.Value(tick.Last),
		Bid:       ticker.Value(tick.Bid),
		Ask:       ticker.Value(tick.Ask),
		High:      ticker.Value(tick.High),
		Low:       ticker.Value(tick.Low),
		Volume:    ticker.Value(tick.Volume),
		Timestamp: convert.UnixTimestampWithScale(tick.Timestamp, convert.TimeScaleMilliseconds),
	}
}

// AdaptOrderBook implements exchanges.Adapter
func (h *Hitbtc) AdaptOrderBook(raw interface{}, p currency.Pair, timeScale int64) (*orderbook.Base, error) {
	ob, ok := raw.(*Orderbook)
	if !ok {
		return nil, fmt.Errorf("%w: expected *hitbtc.Orderbook, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptOrderBook(ob, p, timeScale)
}

// AdaptOrderBook converts raw depth levels preserving the exchange
// ordering and merging duplicate price levels per side.
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
func (h *Hitbtc) AdaptTrades(raw interface{}, p currency.Pair) (trade.Trades, error) {
	txs, ok := raw.([]Trade)
	if !ok {
		return trade.Trades{}, fmt.Errorf("%w: expected []hitbtc.Trade, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptTrades(txs, p)
}

// AdaptTrades maps raw public executions. HitBTC trade ids are monotonic
// sequence numbers, so the collection sorts by id.
func AdaptTrades(txs []Trade, p currency.Pair) (trade.Trades, error) {
	trades := make([]trade.Trade, 0, len(txs))
	for x := range txs {
		side, err := sideFromTag(txs[x].Side)
		if err != nil {
			return trade.Trades{}, err
		}
		t := trade.Trade{
			Side:      side,
			Amount:    txs[x].Amount,
			Pair:      p,
			Price:     txs[x].Price,
			Timestamp: convert.UnixTimestampWithScale(txs[x].Timestamp, convert.TimeScaleMilliseconds),
			ID:        txs[x].TID,
		}
		if err := t.Validate(); err != nil {
			return trade.Trades{}, err
		}
		trades = append(trades, t)
	}
	return trade.NewTrades(trades, trade.SortByID), nil
}

// AdaptUserTrades implements exchanges.Adapter
func (h *Hitbtc) AdaptUserTrades(raw interface{}) (trade.UserTrades, error) {
	txs, ok := raw.([]OwnTrade)
	if !ok {
		return trade.UserTrades{}, fmt.Errorf("%w: expected []hitbtc.OwnTrade, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptUserTrades(txs)
}

// AdaptUserTrades maps the user's executions. HitBTC settles the fee on
// its side and reports the amount, so no derivation is applied here; the
// pair is decoded from the concatenated symbol.
func AdaptUserTrades(txs []OwnTrade) (trade.UserTrades, error) {
	trades := make([]trade.UserTrade, 0, len(txs))
	for x := range txs {
		side, err := sideFromTag(txs[x].Side)
		if err != nil {
			return trade.UserTrades{}, err
		}
		p, err := currency.NewPairFromConcat(txs[x].Symbol)
		if err != nil {
			return trade.UserTrades{}, err
		}
		ut := trade.UserTrade{
			Trade: trade.Trade{
				Side:      side,
				Amount:    txs[x].Quantity,
				Pair:      p,
				Price:     txs[x].Price,
				Timestamp: convert.UnixTimestampWithScale(txs[x].Timestamp, convert.TimeScaleMilliseconds),
				ID:        txs[x].ID,
			},
			OrderID:     txs[x].OrderID,
			FeeAmount:   txs[x].Fee,
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
func (h *Hitbtc) AdaptAccountInfo(raw interface{}, ownerID string) (*account.Info, error) {
	balances, ok := raw.([]Balance)
	if !ok {
		return nil, fmt.Errorf("%w: expected []hitbtc.Balance, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptAccountInfo(balances, ownerID, h.SupportedCurrencies)
}

// AdaptAccountInfo filters raw balance entries through the supported
// currency allow-list. Cash is the available portion, reserved the amount
// held in open orders.
func AdaptAccountInfo(balances []Balance, ownerID string, supported currency.Codes) (*account.Info, error) {
	adapted := make([]account.Balance, 0, len(balances))
	for x := range balances {
		code := currency.NewCode(balances[x].Currency)
		if !supported.Contains(code) {
			log.Warnf("%s: dropping unsupported currency %s for account %s", exchangeName, code, ownerID)
			continue
		}
		adapted = append(adapted, account.Balance{
			Currency:  code,
			Total:     balances[x].Cash.Add(balances[x].Reserved),
			Available: balances[x].Cash,
			Hold:      balances[x].Reserved,
		})
	}
	return account.NewInfo(ownerID, adapted)
}

// AdaptCancelOrderResult implements exchanges.Adapter
func (h *Hitbtc) AdaptCancelOrderResult(raw interface{}) (order.CancelResult, error) {
	report, ok := raw.(*ExecutionReport)
	if !ok {
		return order.CancelResult{}, fmt.Errorf("%w: expected *hitbtc.ExecutionReport, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptCancelOrderResult(report)
}

// AdaptCancelOrderResult maps the execution report acknowledging a
// cancel. Any status other than "canceled" is a failure with the original
// status preserved.
func AdaptCancelOrderResult(report *ExecutionReport) (order.CancelResult, error) {
	if report == nil {
		return order.CancelResult{}, fmt.Errorf("%w: execution report", common.ErrNilResponse)
	}
	return order.CancelResult{
		Succeeded: strings.EqualFold(report.OrderStatus, statusCanceled),
		Status:    report.OrderStatus,
		Message:   report.OrderRejectReason,
	}, nil
}
