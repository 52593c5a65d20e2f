package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goxchange/goxchange/currency"
)

// Side denotes the side of the book an order sits on
type Side string

// Order sides. Exchange-specific buy/sell tags are mapped onto these by
// each adapter.
const (
	Bid Side = "BID"
	Ask Side = "ASK"
)

var (
	// ErrSideIsInvalid is returned when a side is neither BID nor ASK
	ErrSideIsInvalid = errors.New("order side is invalid")
	// ErrAmountIsInvalid is returned when the tradable amount is not positive
	ErrAmountIsInvalid = errors.New("order amount must be greater than zero")
	// ErrPriceIsInvalid is returned when the limit price is not positive
	ErrPriceIsInvalid = errors.New("order price must be greater than zero")
)

// String implements the stringer interface
func (s Side) String() string {
	return string(s)
}

// Lower returns the side lower case string
func (s Side) Lower() string {
	return strings.ToLower(string(s))
}

// LimitOrder is a canonical resting order or depth level. ID and Timestamp
// are optional; several exchanges omit them on public depth.
type LimitOrder struct {
	Side      Side
	Amount    decimal.Decimal
	Pair      currency.Pair
	ID        string
	Timestamp time.Time
	Price     decimal.Decimal
}

// Validate checks the order invariants and returns the first violation
func (l *LimitOrder) Validate() error {
	if l.Side != Bid && l.Side != Ask {
		return fmt.Errorf("%w: %q", ErrSideIsInvalid, l.Side)
	}
	if err := l.Pair.Validate(); err != nil {
		return err
	}
	if !l.Amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrAmountIsInvalid, l.Amount)
	}
	if !l.Price.IsPositive() {
		return fmt.Errorf("%w: %s", ErrPriceIsInvalid, l.Price)
	}
	return nil
}

// String renders the order with a fixed field order for logs and golden
// tests
func (l *LimitOrder) String() string {
	return fmt.Sprintf("Order{id=%s, datetime=%s, type=%s, price=%s, amount=%s}",
		l.ID,
		formatTimestamp(l.Timestamp),
		l.Side,
		l.Price,
		l.Amount)
}

// CancelResult is the canonical outcome of a cancel-order acknowledgement.
// Status preserves the exchange's original status code for diagnostics;
// Message carries any error payload verbatim.
type CancelResult struct {
	Succeeded bool
	Status    string
	Message   string
}

// String renders the result with a fixed field order
func (c CancelResult) String() string {
	return fmt.Sprintf("CancelResult{succeeded=%t, status=%s, message=%s}",
		c.Succeeded, c.Status, c.Message)
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
