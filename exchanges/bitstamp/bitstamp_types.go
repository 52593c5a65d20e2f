package bitstamp

import "github.com/shopspring/decimal"

// Ticker holds ticker information. Timestamp is a second-based unix
// timestamp.
type Ticker struct {
	Last      decimal.Decimal `json:"last"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Vwap      decimal.Decimal `json:"vwap"`
	Volume    decimal.Decimal `json:"volume"`
	Bid       decimal.Decimal `json:"bid"`
	Ask       decimal.Decimal `json:"ask"`
	Timestamp int64           `json:"timestamp,string"`
}

// OrderbookEntry holds a singular price level
type OrderbookEntry struct {
	Price  decimal.Decimal
	Amount decimal.Decimal
}

// Orderbook holds order book information. The timestamp unit depends on
// the endpoint; the adapter is told via its timeScale argument.
type Orderbook struct {
	Timestamp int64 `json:"timestamp,string"`
	Bids      []OrderbookEntry
	Asks      []OrderbookEntry
}

// Transaction holds a public market execution. Side is 0 for buy (bid)
// and 1 for sell (ask).
type Transaction struct {
	Date    int64           `json:"date,string"`
	TradeID int64           `json:"tid"`
	Price   decimal.Decimal `json:"price"`
	Side    int             `json:"type,string"`
	Amount  decimal.Decimal `json:"amount"`
}

// UserTransaction holds one user execution. Side follows the same 0/1
// buy/sell coding as Transaction; FeeRate is the account's fee schedule
// rate applied to this fill.
type UserTransaction struct {
	ID       int64           `json:"id"`
	Datetime string          `json:"datetime"`
	OrderID  int64           `json:"order_id"`
	Side     int             `json:"type,string"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"`
	FeeRate  decimal.Decimal `json:"fee"`
	Pair     string          `json:"currency_pair"`
}

// Balances holds the account balance information
type Balances struct {
	USDBalance   decimal.Decimal `json:"usd_balance"`
	BTCBalance   decimal.Decimal `json:"btc_balance"`
	EURBalance   decimal.Decimal `json:"eur_balance"`
	XRPBalance   decimal.Decimal `json:"xrp_balance"`
	USDReserved  decimal.Decimal `json:"usd_reserved"`
	BTCReserved  decimal.Decimal `json:"btc_reserved"`
	EURReserved  decimal.Decimal `json:"eur_reserved"`
	XRPReserved  decimal.Decimal `json:"xrp_reserved"`
	USDAvailable decimal.Decimal `json:"usd_available"`
	BTCAvailable decimal.Decimal `json:"btc_available"`
	EURAvailable decimal.Decimal `json:"eur_available"`
	XRPAvailable decimal.Decimal `json:"xrp_available"`
}

// WithdrawalRequest holds one entry of the withdrawal request history.
// Type is 0 SEPA, 1 bitcoin, 2 wire transfer; Status is 0 open, 1 in
// process, 2 finished, 3 canceled, 4 failed.
type WithdrawalRequest struct {
	ID       int64           `json:"id"`
	Datetime string          `json:"datetime"`
	Type     int             `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Status   int             `json:"status"`
}

// CancelOrderResponse holds the cancel acknowledgement; Error is empty on
// success
type CancelOrderResponse struct {
	ID    int64  `json:"id"`
	Error string `json:"error"`
}
