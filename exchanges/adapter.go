package exchanges

import (
	"github.com/goxchange/goxchange/currency"
	"github.com/goxchange/goxchange/exchanges/account"
	"github.com/goxchange/goxchange/exchanges/order"
	"github.com/goxchange/goxchange/exchanges/orderbook"
	"github.com/goxchange/goxchange/exchanges/ticker"
	"github.com/goxchange/goxchange/exchanges/trade"
)

// Adapter converts one exchange's deserialized REST payloads into the
// canonical model. Implementations are pure and safe for concurrent use on
// independent inputs; the raw argument is the exchange's own DTO and a
// foreign type is reported as a malformed response.
//
// Absent data is not an error: a ticker for an unsupported pair is
// (nil, nil) and an empty payload adapts to an empty collection, so
// callers can tell "exchange doesn't list this pair" from "exchange sent
// garbage".
type Adapter interface {
	// Name returns the exchange name the adapter serves
	Name() string

	// AdaptTicker locates the entry for the supplied pair inside a raw
	// ticker collection keyed by the exchange's own pair encoding
	AdaptTicker(raw interface{}, p currency.Pair) (*ticker.Price, error)

	// AdaptOrderBook converts raw depth levels, normalizing the book
	// timestamp to milliseconds via the supplied scale
	AdaptOrderBook(raw interface{}, p currency.Pair, timeScale int64) (*orderbook.Base, error)

	// AdaptTrades maps raw public transactions, deriving the collection
	// high-water mark and sort key
	AdaptTrades(raw interface{}, p currency.Pair) (trade.Trades, error)

	// AdaptUserTrades maps the user's trade history, applying the
	// exchange's side tag mapping and fee settlement rounding
	AdaptUserTrades(raw interface{}) (trade.UserTrades, error)

	// AdaptAccountInfo filters raw balances through the adapter's
	// supported-currency allow-list; unsupported currencies are dropped,
	// never an error
	AdaptAccountInfo(raw interface{}, ownerID string) (*account.Info, error)

	// AdaptCancelOrderResult maps a cancel acknowledgement envelope to a
	// canonical outcome, preserving the original status for diagnostics
	AdaptCancelOrderResult(raw interface{}) (order.CancelResult, error)
}
