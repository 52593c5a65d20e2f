package orderbook

import (
	"errors"
	"fmt"
	"time"

	"github.com/goxchange/goxchange/exchanges/order"

	"github.com/goxchange/goxchange/currency"
)

// ErrDuplicatePriceLevel is returned by Verify when one side of the book
// carries the same price twice after adaptation. Adapters receiving
// duplicated levels must merge them before constructing a Base.
var ErrDuplicatePriceLevel = errors.New("orderbook side contains duplicate price level")

// Base holds a canonical order book. Asks are expected ascending by price
// and bids descending, preserving the exchange-supplied ordering.
// LastUpdated is milliseconds precision, UTC.
type Base struct {
	Pair        currency.Pair
	Asks        []order.LimitOrder
	Bids        []order.LimitOrder
	LastUpdated time.Time
}

// Verify checks both sides for duplicate price levels
func (b *Base) Verify() error {
	if err := verifySide(b.Asks); err != nil {
		return fmt.Errorf("asks: %w", err)
	}
	if err := verifySide(b.Bids); err != nil {
		return fmt.Errorf("bids: %w", err)
	}
	return nil
}

func verifySide(side []order.LimitOrder) error {
	seen := make(map[string]struct{}, len(side))
	for x := range side {
		key := side[x].Price.String()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePriceLevel, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// String renders a book summary with a fixed field order
func (b *Base) String() string {
	return fmt.Sprintf("OrderBook{pair=%s, asks=%d, bids=%d, lastUpdated=%d}",
		b.Pair, len(b.Asks), len(b.Bids), b.LastUpdated.UnixMilli())
}
