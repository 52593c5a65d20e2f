package ticker

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goxchange/goxchange/currency"
)

// Price holds a canonical ticker snapshot for a currency pair. All market
// fields are NullDecimal so an exchange omitting a field yields an explicit
// unknown, never zero. Timestamp is milliseconds precision, UTC.
type Price struct {
	Pair      currency.Pair
	Last      decimal.NullDecimal
	Bid       decimal.NullDecimal
	Ask       decimal.NullDecimal
	High      decimal.NullDecimal
	Low       decimal.NullDecimal
	VWAP      decimal.NullDecimal
	Volume    decimal.NullDecimal
	Timestamp time.Time
}

// Value wraps a known decimal for a ticker field
func Value(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// String renders the ticker with a fixed field order for logs and golden
// tests
func (p *Price) String() string {
	return fmt.Sprintf("Ticker{pair=%s, last=%s, bid=%s, ask=%s, high=%s, low=%s, vwap=%s, volume=%s, timestamp=%d}",
		p.Pair,
		render(p.Last),
		render(p.Bid),
		render(p.Ask),
		render(p.High),
		render(p.Low),
		render(p.VWAP),
		render(p.Volume),
		p.Timestamp.UnixMilli())
}

func render(d decimal.NullDecimal) string {
	if !d.Valid {
		return "null"
	}
	return d.Decimal.String()
}
