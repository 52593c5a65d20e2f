package hitbtc

import "github.com/shopspring/decimal"

// Ticker holds ticker information. HitBTC serves all tickers in one map
// keyed by concatenated symbol, e.g. "BTCUSD", with millisecond
// timestamps.
type Ticker struct {
	Ask       decimal.Decimal `json:"ask"`
	Bid       decimal.Decimal `json:"bid"`
	Last      decimal.Decimal `json:"last"`
	Low       decimal.Decimal `json:"low"`
	High      decimal.Decimal `json:"high"`
	Volume    decimal.Decimal `json:"volume"`
	Timestamp int64           `json:"timestamp"`
}

// OrderbookEntry holds a singular price level
type OrderbookEntry struct {
	Price  decimal.Decimal `json:"price"`
	Amount decimal.Decimal `json:"size"`
}

// Orderbook holds order book information with millisecond timestamps
type Orderbook struct {
	Asks      []OrderbookEntry `json:"asks"`
	Bids      []OrderbookEntry `json:"bids"`
	Timestamp int64            `json:"timestamp"`
}

// Trade holds a public market execution. Side is "buy" or "sell".
type Trade struct {
	TID       int64           `json:"tid"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	Side      string          `json:"side"`
	Timestamp int64           `json:"date"`
}

// OwnTrade holds one user execution. HitBTC reports the settled fee
// directly rather than a rate.
type OwnTrade struct {
	ID        int64           `json:"tradeId"`
	OrderID   string          `json:"clientOrderId"`
	Symbol    string          `json:"symbol"`
	Side      string          `json:"side"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Fee       decimal.Decimal `json:"fee"`
	Timestamp int64           `json:"timestamp"`
}

// Balance holds the funds of one currency
type Balance struct {
	Currency string          `json:"currency_code"`
	Cash     decimal.Decimal `json:"cash"`
	Reserved decimal.Decimal `json:"reserved"`
}

// ExecutionReport acknowledges order management requests; a cancel is
// confirmed with orderStatus "canceled"
type ExecutionReport struct {
	ClientOrderID     string `json:"clientOrderId"`
	OrderStatus       string `json:"orderStatus"`
	OrderRejectReason string `json:"orderRejectReason"`
}
