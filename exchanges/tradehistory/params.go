package tradehistory

import (
	"errors"
	"fmt"
	"time"

	"github.com/goxchange/goxchange/currency"
)

// Defaults applied by New when the corresponding Config field is unset
const (
	DefaultPageLength        = 20
	DefaultTradeCountLimit   = 500
	DefaultAPICallCountLimit = 50
)

// ErrInvalidPageLength is returned for a negative or explicitly zero page
// length
var ErrInvalidPageLength = errors.New("page length must be greater than zero")

// State describes where a history query session sits between round-trips
type State uint8

// Session states. Exhausted covers both a consumed budget and an exchange
// that signaled the end of its data.
const (
	Fresh State = iota
	InProgress
	Exhausted
)

// String implements the stringer interface
func (s State) String() string {
	switch s {
	case Fresh:
		return "FRESH"
	case InProgress:
		return "IN_PROGRESS"
	case Exhausted:
		return "EXHAUSTED"
	}
	return fmt.Sprintf("unknown(%d)", uint8(s))
}

// PairFilter restricts a history query to one currency pair
type PairFilter struct {
	Pair currency.Pair
}

// TimeSpan restricts a history query to an inclusive time window
type TimeSpan struct {
	Start time.Time
	End   time.Time
}

// Paging sets the page size and number forwarded to the exchange
type Paging struct {
	PageLength int
	PageNumber int
}

// AccountFilter restricts a history query to one exchange account
type AccountFilter struct {
	Account string
}

// Config merges the independent filter options into one construction value
type Config struct {
	PairFilter
	TimeSpan
	Paging
	AccountFilter
	TradeCountLimit   int
	APICallCountLimit int
}

// Params is the mutable session state of one resumable trade-history
// query. It records filters, the opaque resumption cursor and two
// independent consumption counters. It never enforces its limits: the
// query driver must check them before each round-trip. Not safe for
// concurrent use; one session owns one Params.
type Params struct {
	PairFilter
	TimeSpan
	Paging
	AccountFilter

	// HashLimit is the opaque watermark from the previous response; when
	// set, the next request must ask for data strictly beyond it.
	HashLimit string

	PreferredBaseCurrencies    currency.Codes
	PreferredCounterCurrencies currency.Codes

	apiCallCount      int
	apiCallCountLimit int
	tradeCount        int
	tradeCountLimit   int
	noMoreData        bool
}

// New constructs session state from the merged filter configuration. An
// unset page length defaults to DefaultPageLength; a negative one is a
// configuration error.
func New(cfg Config) (*Params, error) {
	if cfg.PageLength < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageLength, cfg.PageLength)
	}
	if cfg.PageLength == 0 {
		cfg.PageLength = DefaultPageLength
	}
	if cfg.TradeCountLimit == 0 {
		cfg.TradeCountLimit = DefaultTradeCountLimit
	}
	if cfg.APICallCountLimit == 0 {
		cfg.APICallCountLimit = DefaultAPICallCountLimit
	}
	return &Params{
		PairFilter:        cfg.PairFilter,
		TimeSpan:          cfg.TimeSpan,
		Paging:            cfg.Paging,
		AccountFilter:     cfg.AccountFilter,
		apiCallCountLimit: cfg.APICallCountLimit,
		tradeCountLimit:   cfg.TradeCountLimit,
	}, nil
}

// SetPageLength overrides the page size; zero and negative values are
// rejected
func (p *Params) SetPageLength(length int) error {
	if length <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPageLength, length)
	}
	p.PageLength = length
	return nil
}

// IncrementAPICallCount records one round-trip to the exchange, made
// regardless of its result
func (p *Params) IncrementAPICallCount() {
	p.apiCallCount++
}

// APICallCount returns the number of round-trips made this session
func (p *Params) APICallCount() int {
	return p.apiCallCount
}

// APICallCountLimit returns the round-trip budget
func (p *Params) APICallCountLimit() int {
	return p.apiCallCountLimit
}

// SetAPICallCountLimit overrides the round-trip budget
func (p *Params) SetAPICallCountLimit(limit int) {
	p.apiCallCountLimit = limit
}

// IncrementTradeCount records the number of trades the last round-trip
// returned
func (p *Params) IncrementTradeCount(n int) {
	p.tradeCount += n
}

// TradeCount returns the number of trades accumulated this session
func (p *Params) TradeCount() int {
	return p.tradeCount
}

// TradeCountLimit returns the trade budget
func (p *Params) TradeCountLimit() int {
	return p.tradeCountLimit
}

// SetTradeCountLimit overrides the trade budget
func (p *Params) SetTradeCountLimit(limit int) {
	p.tradeCountLimit = limit
}

// APICallLimitReached reports whether the round-trip budget is consumed.
// The driver checks this before issuing another call.
func (p *Params) APICallLimitReached() bool {
	return p.apiCallCount >= p.apiCallCountLimit
}

// TradeLimitReached reports whether the trade budget is consumed
func (p *Params) TradeLimitReached() bool {
	return p.tradeCount >= p.tradeCountLimit
}

// SetNoMoreData records that the exchange signaled the end of its history
func (p *Params) SetNoMoreData() {
	p.noMoreData = true
}

// State derives the session state from the counters and cursor
func (p *Params) State() State {
	if p.noMoreData || p.APICallLimitReached() || p.TradeLimitReached() {
		return Exhausted
	}
	if p.apiCallCount > 0 || p.tradeCount > 0 || p.HashLimit != "" {
		return InProgress
	}
	return Fresh
}

// AddPreferredBaseCurrency records a base currency the query should
// prioritise
func (p *Params) AddPreferredBaseCurrency(c currency.Code) {
	p.PreferredBaseCurrencies = p.PreferredBaseCurrencies.Add(c)
}

// AddPreferredCounterCurrency records a counter currency the query should
// prioritise
func (p *Params) AddPreferredCounterCurrency(c currency.Code) {
	p.PreferredCounterCurrencies = p.PreferredCounterCurrencies.Add(c)
}

// Reset zeroes both counters and clears the resumption cursor while
// keeping every filter field, returning the session to FRESH so the same
// logical query can be restarted.
func (p *Params) Reset() {
	p.apiCallCount = 0
	p.tradeCount = 0
	p.HashLimit = ""
	p.noMoreData = false
}
