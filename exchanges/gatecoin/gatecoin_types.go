package gatecoin

import "github.com/shopspring/decimal"

// ResponseStatus is the acknowledgement envelope wrapped around every
// Gatecoin private response. Message is "OK" on success; ErrorCode is only
// present on failure.
type ResponseStatus struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

// Ticker holds ticker information, keyed by a concatenated pair code.
// CreateDateTime is a second-based unix timestamp.
type Ticker struct {
	CurrencyPair   string          `json:"currencyPair"`
	Last           decimal.Decimal `json:"last"`
	Bid            decimal.Decimal `json:"bid"`
	Ask            decimal.Decimal `json:"ask"`
	High           decimal.Decimal `json:"high"`
	Low            decimal.Decimal `json:"low"`
	Vwap           decimal.Decimal `json:"vwap"`
	Volume         decimal.Decimal `json:"volume"`
	CreateDateTime int64           `json:"createDateTime,string"`
}

// Depth holds a single price and volume level
type Depth struct {
	Price  decimal.Decimal `json:"price"`
	Volume decimal.Decimal `json:"volume"`
}

// DepthResult holds the order book response
type DepthResult struct {
	ResponseStatus ResponseStatus `json:"responseStatus"`
	Asks           []Depth        `json:"asks"`
	Bids           []Depth        `json:"bids"`
	Timestamp      int64          `json:"timestamp"`
}

// Transaction holds a public market execution
type Transaction struct {
	TransactionID   int64           `json:"transactionId"`
	TransactionTime int64           `json:"transactionTime,string"`
	Price           decimal.Decimal `json:"price"`
	Quantity        decimal.Decimal `json:"quantity"`
	CurrencyPair    string          `json:"currencyPair"`
}

// TradeHistory holds one user execution. Way is the side tag, "ask" or
// "bid"; only the order id matching the side is populated by the exchange.
type TradeHistory struct {
	TransactionID   int64           `json:"transactionId"`
	TransactionTime int64           `json:"transactionTime,string"`
	AskOrderID      string          `json:"askOrderId"`
	BidOrderID      string          `json:"bidOrderId"`
	Way             string          `json:"way"`
	Price           decimal.Decimal `json:"price"`
	Quantity        decimal.Decimal `json:"quantity"`
	FeeRate         decimal.Decimal `json:"feeRate"`
	CurrencyPair    string          `json:"currencyPair"`
}

// TradeHistoryResult holds the user trade history response
type TradeHistoryResult struct {
	ResponseStatus ResponseStatus `json:"responseStatus"`
	Transactions   []TradeHistory `json:"transactions"`
}

// Balance holds the funds of one currency
type Balance struct {
	Currency         string          `json:"currency"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	OpenOrder        decimal.Decimal `json:"openOrder"`
}

// CancelOrderResult holds the cancel-order acknowledgement
type CancelOrderResult struct {
	ResponseStatus ResponseStatus `json:"responseStatus"`
}
