package account

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goxchange/goxchange/currency"
)

// ErrAvailableExceedsTotal is returned when a balance reports more
// available funds than its total
var ErrAvailableExceedsTotal = errors.New("available balance exceeds total balance")

// Balance holds the funds of one currency: the full balance, the portion
// available for trading and the amount reserved in open orders.
type Balance struct {
	Currency  currency.Code
	Total     decimal.Decimal
	Available decimal.Decimal
	Hold      decimal.Decimal
}

// Validate checks the balance invariant available <= total
func (b *Balance) Validate() error {
	if b.Available.GreaterThan(b.Total) {
		return fmt.Errorf("%w: %s available %s total %s",
			ErrAvailableExceedsTotal, b.Currency, b.Available, b.Total)
	}
	return nil
}

// String renders the balance with a fixed field order
func (b Balance) String() string {
	return fmt.Sprintf("Balance{currency=%s, total=%s, available=%s, hold=%s}",
		b.Currency, b.Total, b.Available, b.Hold)
}

// Info holds the adapted account snapshot for one owner. Balances is keyed
// by currency code; currencies outside the adapter's allow-list never
// appear here.
type Info struct {
	OwnerID  string
	Balances map[currency.Code]Balance
}

// NewInfo builds an account snapshot, validating every balance
func NewInfo(ownerID string, balances []Balance) (*Info, error) {
	info := &Info{
		OwnerID:  ownerID,
		Balances: make(map[currency.Code]Balance, len(balances)),
	}
	for x := range balances {
		if err := balances[x].Validate(); err != nil {
			return nil, err
		}
		// key normalized the same way GetBalance normalizes its lookup
		info.Balances[currency.NewCode(balances[x].Currency.String())] = balances[x]
	}
	return info, nil
}

// GetBalance looks up the balance for a currency code, ignoring case
func (i *Info) GetBalance(c currency.Code) (Balance, bool) {
	b, ok := i.Balances[currency.NewCode(c.String())]
	return b, ok
}

// String renders the account with balances in code order so output is
// deterministic
func (i *Info) String() string {
	codes := make([]string, 0, len(i.Balances))
	for c := range i.Balances {
		codes = append(codes, c.String())
	}
	sort.Strings(codes)
	parts := make([]string, len(codes))
	for x := range codes {
		parts[x] = i.Balances[currency.Code(codes[x])].String()
	}
	return fmt.Sprintf("AccountInfo{owner=%s, balances=[%s]}",
		i.OwnerID, strings.Join(parts, ", "))
}
