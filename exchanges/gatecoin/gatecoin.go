package gatecoin

import (
	"fmt"
	"strings"

	"github.com/buger/jsonparser"

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
	exchangeName = "Gatecoin"
	statusOK     = "OK"
)

var _ exchanges.Adapter = (*Gatecoin)(nil)

// Gatecoin adapts Gatecoin REST payloads into the canonical model.
// Gatecoin settles fees at 8 decimal places rounded towards positive
// infinity; timestamps on public endpoints are second based.
type Gatecoin struct {
	// SupportedCurrencies is the balance allow-list; entries outside it
	// are silently dropped during account adaptation.
	SupportedCurrencies currency.Codes
}

// New returns a Gatecoin adapter with the exchange's default currency
// allow-list. Supply codes to override it.
func New(supported ...currency.Code) *Gatecoin {
	if len(supported) == 0 {
		supported = currency.Codes{currency.BTC, currency.USD, currency.HKD, currency.EUR}
	}
	return &Gatecoin{SupportedCurrencies: supported}
}

// Name returns the exchange name
func (g *Gatecoin) Name() string {
	return exchangeName
}

// AdaptTicker implements exchanges.Adapter
func (g *Gatecoin) AdaptTicker(raw interface{}, p currency.Pair) (*ticker.Price, error) {
	tickers, ok := raw.([]Ticker)
	if !ok {
		return nil, fmt.Errorf("%w: expected []gatecoin.Ticker, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptTicker(tickers, p), nil
}

// AdaptTicker locates the entry matching the supplied pair inside the raw
// ticker collection. Gatecoin keys tickers by concatenated pair code;
// a pair the exchange does not list yields nil, not an error.
func AdaptTicker(tickers []Ticker, p currency.Pair) *ticker.Price {
	key := p.Format("", true).String()
	for x := range tickers {
		if tickers[x].CurrencyPair != key {
			continue
		}
		return &ticker.Price{
			Pair:      p,
			Last:      ticker.Value(tickers[x].Last),
			Bid:       ticker.Value(tickers[x].Bid),
			Ask:       ticker.Value(tickers[x].Ask),
			High:      ticker.Value(tickers[x].High),
			Low:       ticker.Value(tickers[x].Low),
			VWAP:      ticker.Value(tickers[x].Vwap),
			Volume:    ticker.Value(tickers[x].Volume),
			Timestamp: convert.UnixTimestampWithScale(tickers[x].CreateDateTime, convert.TimeScaleSeconds),
		}
	}
	return nil
}

// AdaptOrderBook implements exchanges.Adapter
func (g *Gatecoin) AdaptOrderBook(raw interface{}, p currency.Pair, timeScale int64) (*orderbook.Base, error) {
	depth, ok := raw.(*DepthResult)
	if !ok {
		return nil, fmt.Errorf("%w: expected *gatecoin.DepthResult, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptOrderBook(depth, p, timeScale)
}

// AdaptOrderBook converts raw depth levels, preserving the exchange
// ordering and merging duplicate price levels per side. timeScale accounts
// for polled books reporting seconds against streamed milliseconds.
func AdaptOrderBook(depth *DepthResult, p currency.Pair, timeScale int64) (*orderbook.Base, error) {
	if depth == nil {
		return nil, fmt.Errorf("%w: depth result", common.ErrNilResponse)
	}
	asks, err := createOrders(p, order.Ask, depth.Asks)
	if err != nil {
		return nil, err
	}
	bids, err := createOrders(p, order.Bid, depth.Bids)
	if err != nil {
		return nil, err
	}
	book := &orderbook.Base{
		Pair:        p,
		Asks:        asks,
		Bids:        bids,
		LastUpdated: convert.UnixTimestampWithScale(depth.Timestamp, timeScale),
	}
	if err := book.Verify(); err != nil {
		return nil, err
	}
	return book, nil
}

func createOrders(p currency.Pair, side order.Side, levels []Depth) ([]order.LimitOrder, error) {
	merged := make([]order.LimitOrder, 0, len(levels))
	index := make(map[string]int, len(levels))
	for x := range levels {
		if at, ok := index[levels[x].Price.String()]; ok {
			merged[at].Amount = merged[at].Amount.Add(levels[x].Volume)
			continue
		}
		o := order.LimitOrder{
			Side:   side,
			Amount: levels[x].Volume,
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
func (g *Gatecoin) AdaptTrades(raw interface{}, p currency.Pair) (trade.Trades, error) {
	txs, ok := raw.([]Transaction)
	if !ok {
		return trade.Trades{}, fmt.Errorf("%w: expected []gatecoin.Transaction, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptTrades(txs, p)
}

// AdaptTrades maps raw public transactions. Transaction ids are monotonic
// sequence numbers, so the collection sorts by id and the high-water mark
// is the maximum id seen.
func AdaptTrades(txs []Transaction, p currency.Pair) (trade.Trades, error) {
	trades := make([]trade.Trade, 0, len(txs))
	for x := range txs {
		t := trade.Trade{
			Amount:    txs[x].Quantity,
			Pair:      p,
			Price:     txs[x].Price,
			Timestamp: convert.UnixTimestampWithScale(txs[x].TransactionTime, convert.TimeScaleSeconds),
			ID:        txs[x].TransactionID,
		}
		if err := t.Validate(); err != nil {
			return trade.Trades{}, err
		}
		trades = append(trades, t)
	}
	return trade.NewTrades(trades, trade.SortByID), nil
}

// AdaptUserTrades implements exchanges.Adapter
func (g *Gatecoin) AdaptUserTrades(raw interface{}) (trade.UserTrades, error) {
	result, ok := raw.(*TradeHistoryResult)
	if !ok {
		return trade.UserTrades{}, fmt.Errorf("%w: expected *gatecoin.TradeHistoryResult, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptUserTrades(result)
}

// AdaptUserTrades maps the user's trade history. The "way" tag maps
// "ask" to ASK and "bid" to BID; any other tag is malformed since an
// inverted side flips the trade's economic meaning. The settlement fee is
// feeRate * quantity * price rounded CEILING to 8 decimal places, paid in
// the counter currency. A nil result adapts to an empty collection.
func AdaptUserTrades(result *TradeHistoryResult) (trade.UserTrades, error) {
	if result == nil {
		return trade.NewUserTrades(nil, trade.SortByID), nil
	}
	trades := make([]trade.UserTrade, 0, len(result.Transactions))
	for x := range result.Transactions {
		tx := &result.Transactions[x]

		var side order.Side
		var orderID string
		switch strings.ToLower(tx.Way) {
		case "ask":
			side = order.Ask
			orderID = tx.AskOrderID
		case "bid":
			side = order.Bid
			orderID = tx.BidOrderID
		default:
			return trade.UserTrades{}, fmt.Errorf("%w: unknown way tag %q", common.ErrMalformedResponse, tx.Way)
		}

		p, err := currency.NewPairFromConcat(tx.CurrencyPair)
		if err != nil {
			return trade.UserTrades{}, err
		}

		ut := trade.UserTrade{
			Trade: trade.Trade{
				Side:      side,
				Amount:    tx.Quantity,
				Pair:      p,
				Price:     tx.Price,
				Timestamp: convert.UnixTimestampWithScale(tx.TransactionTime, convert.TimeScaleSeconds),
				ID:        tx.TransactionID,
			},
			OrderID:     orderID,
			FeeAmount:   trade.CalculateFee(tx.FeeRate, tx.Quantity, tx.Price, trade.DefaultFeeScale, trade.FeeRoundCeiling),
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
func (g *Gatecoin) AdaptAccountInfo(raw interface{}, ownerID string) (*account.Info, error) {
	balances, ok := raw.([]Balance)
	if !ok {
		return nil, fmt.Errorf("%w: expected []gatecoin.Balance, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptAccountInfo(balances, ownerID, g.SupportedCurrencies)
}

// AdaptAccountInfo filters raw balance entries through the supported
// currency allow-list. Unsupported currencies are dropped with a warning,
// never an error.
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
			Total:     balances[x].Balance,
			Available: balances[x].AvailableBalance,
			Hold:      balances[x].OpenOrder,
		})
	}
	return account.NewInfo(ownerID, adapted)
}

// AdaptCancelOrderResult implements exchanges.Adapter
func (g *Gatecoin) AdaptCancelOrderResult(raw interface{}) (order.CancelResult, error) {
	result, ok := raw.(*CancelOrderResult)
	if !ok {
		return order.CancelResult{}, fmt.Errorf("%w: expected *gatecoin.CancelOrderResult, got %T", common.ErrMalformedResponse, raw)
	}
	return AdaptCancelOrderResult(result)
}

// AdaptCancelOrderResult maps the acknowledgement envelope. Any status
// message other than "OK" is a failure, with the exchange's status and
// error code preserved for diagnostics.
func AdaptCancelOrderResult(result *CancelOrderResult) (order.CancelResult, error) {
	if result == nil {
		return order.CancelResult{}, fmt.Errorf("%w: cancel order result", common.ErrNilResponse)
	}
	status := result.ResponseStatus.ErrorCode
	if status == "" {
		status = result.ResponseStatus.Message
	}
	return order.CancelResult{
		Succeeded: strings.EqualFold(result.ResponseStatus.Message, statusOK),
		Status:    status,
		Message:   result.ResponseStatus.Message,
	}, nil
}

// ParseCancelOrderEnvelope probes a raw acknowledgement body without fully
// deserializing it, for drivers that keep the envelope opaque. A body
// missing the responseStatus message is malformed.
func ParseCancelOrderEnvelope(raw []byte) (order.CancelResult, error) {
	message, err := jsonparser.GetString(raw, "responseStatus", "message")
	if err != nil {
		return order.CancelResult{}, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}
	errorCode, err := jsonparser.GetString(raw, "responseStatus", "errorCode")
	if err != nil && err != jsonparser.KeyPathNotFoundError {
		return order.CancelResult{}, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}
	return AdaptCancelOrderResult(&CancelOrderResult{
		ResponseStatus: ResponseStatus{Message: message, ErrorCode: errorCode},
	})
}
