package trade

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goxchange/goxchange/currency"
	"github.com/goxchange/goxchange/exchanges/order"
)

// SortType declares the key a trade collection is ordered by. Adapters use
// SortByID when the exchange issues monotonic sequence numbers, otherwise
// SortByTimestamp.
type SortType uint8

// Trade collection sort keys
const (
	SortByID SortType = iota
	SortByTimestamp
)

// ErrFeeIsNegative is returned when a user trade carries a negative fee
var ErrFeeIsNegative = errors.New("trade fee cannot be negative")

// String implements the stringer interface
func (s SortType) String() string {
	if s == SortByTimestamp {
		return "SortByTimestamp"
	}
	return "SortByID"
}

// Trade is a canonical public market execution. ID uniquely identifies the
// trade within one exchange and pair. Timestamp is milliseconds precision,
// UTC.
type Trade struct {
	Side      order.Side
	Amount    decimal.Decimal
	Pair      currency.Pair
	Price     decimal.Decimal
	Timestamp time.Time
	ID        int64
}

// Validate checks the trade invariants and returns the first violation
func (t *Trade) Validate() error {
	if err := t.Pair.Validate(); err != nil {
		return err
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: %s", order.ErrAmountIsInvalid, t.Amount)
	}
	if !t.Price.IsPositive() {
		return fmt.Errorf("%w: %s", order.ErrPriceIsInvalid, t.Price)
	}
	return nil
}

// String renders the trade with a fixed field order for logs and golden
// tests
func (t *Trade) String() string {
	return fmt.Sprintf("Trade{id=%d, datetime=%d, type=%s, pair=%s, price=%s, amount=%s}",
		t.ID, t.Timestamp.UnixMilli(), t.Side, t.Pair, t.Price, t.Amount)
}

// UserTrade is a canonical execution belonging to the authenticated user,
// extending Trade with the originating order and settlement fee.
type UserTrade struct {
	Trade
	OrderID     string
	FeeAmount   decimal.Decimal
	FeeCurrency currency.Code
}

// Validate checks the user trade invariants and returns the first violation
func (u *UserTrade) Validate() error {
	if err := u.Trade.Validate(); err != nil {
		return err
	}
	if u.FeeAmount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrFeeIsNegative, u.FeeAmount)
	}
	return nil
}

// String renders the user trade with a fixed field order
func (u *UserTrade) String() string {
	return fmt.Sprintf("UserTrade{id=%d, datetime=%d, type=%s, pair=%s, price=%s, amount=%s, orderId=%s, fee=%s %s}",
		u.ID, u.Timestamp.UnixMilli(), u.Side, u.Pair, u.Price, u.Amount,
		u.OrderID, u.FeeAmount, u.FeeCurrency)
}

// Trades is an adapted public trade collection. LastTradeID always equals
// the maximum trade ID present, or 0 when empty, and is the resumption
// high-water mark for history queries.
type Trades struct {
	Trades      []Trade
	LastTradeID int64
	SortType    SortType
}

// NewTrades builds a collection and derives its high-water mark
func NewTrades(trades []Trade, sortType SortType) Trades {
	var last int64
	for x := range trades {
		if trades[x].ID > last {
			last = trades[x].ID
		}
	}
	return Trades{Trades: trades, LastTradeID: last, SortType: sortType}
}

// UserTrades is an adapted user trade collection, see Trades
type UserTrades struct {
	Trades      []UserTrade
	LastTradeID int64
	SortType    SortType
}

// NewUserTrades builds a collection and derives its high-water mark
func NewUserTrades(trades []UserTrade, sortType SortType) UserTrades {
	var last int64
	for x := range trades {
		if trades[x].ID > last {
			last = trades[x].ID
		}
	}
	return UserTrades{Trades: trades, LastTradeID: last, SortType: sortType}
}
