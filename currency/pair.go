package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goxchange/goxchange/common"
)

// concatPairLength is the length of a concatenated pair encoding with two
// three-letter codes, e.g. BTCUSD.
const concatPairLength = 6

var (
	// ErrPairIsEmpty is returned when a pair is missing a currency code
	ErrPairIsEmpty = errors.New("currency pair is empty")
	// ErrPairCodesEqual is returned when base and quote are the same code
	ErrPairCodesEqual = errors.New("currency pair base and quote cannot be equal")
)

// Pair holds currency pair information. The canonical string form is
// BASE/COUNTER; exchange-specific encodings are derived via Format.
type Pair struct {
	Delimiter string `json:"delimiter"`
	Base      Code   `json:"base"`
	Quote     Code   `json:"quote"`
}

// NewPair returns a currency pair with the canonical "/" delimiter
func NewPair(base, quote Code) Pair {
	return Pair{
		Base:      NewCode(base.String()),
		Quote:     NewCode(quote.String()),
		Delimiter: "/",
	}
}

// NewPairFromStrings returns a currency pair from the supplied code strings
func NewPairFromStrings(base, quote string) Pair {
	return NewPair(NewCode(base), NewCode(quote))
}

// NewPairWithDelimiter returns a currency pair with the supplied delimiter
func NewPairWithDelimiter(base, quote, delimiter string) Pair {
	return Pair{
		Base:      NewCode(base),
		Quote:     NewCode(quote),
		Delimiter: delimiter,
	}
}

// NewPairDelimiter splits the desired currency string at the delimiter and
// returns a Pair struct
func NewPairDelimiter(currencyPair, delimiter string) (Pair, error) {
	result := strings.Split(currencyPair, delimiter)
	if len(result) != 2 {
		return Pair{}, fmt.Errorf("%w: cannot split %q on %q",
			common.ErrMalformedResponse, currencyPair, delimiter)
	}
	return NewPairWithDelimiter(result[0], result[1], delimiter), nil
}

// NewPairFromConcat converts a concatenated six-letter pair encoding, e.g.
// BTCUSD, into a Pair. Shorter input is structurally malformed.
func NewPairFromConcat(currencyPair string) (Pair, error) {
	if len(currencyPair) < concatPairLength {
		return Pair{}, fmt.Errorf("%w: currency pair %q shorter than %d characters",
			common.ErrMalformedResponse, currencyPair, concatPairLength)
	}
	return NewPairFromStrings(currencyPair[0:3], currencyPair[3:]), nil
}

// NewPairFromString converts a currency string into a Pair with or without
// a delimiter
func NewPairFromString(currencyPair string) (Pair, error) {
	for _, delimiter := range []string{"_", "-", "/", ":"} {
		if strings.Contains(currencyPair, delimiter) {
			return NewPairDelimiter(currencyPair, delimiter)
		}
	}
	return NewPairFromConcat(currencyPair)
}

// String returns the currency pair string form, e.g. BTC/USD
func (p Pair) String() string {
	return p.Base.String() + p.Delimiter + p.Quote.String()
}

// Format changes the pair encoding, overriding the default String display.
// An empty delimiter yields the concatenated form used by several
// exchanges.
func (p Pair) Format(delimiter string, uppercase bool) Pair {
	p.Delimiter = delimiter
	if uppercase {
		return p.Upper()
	}
	return p.Lower()
}

// Upper converts the pair to upper case
func (p Pair) Upper() Pair {
	return Pair{
		Delimiter: p.Delimiter,
		Base:      NewCode(p.Base.String()),
		Quote:     NewCode(p.Quote.String()),
	}
}

// Lower converts the pair to lower case
func (p Pair) Lower() Pair {
	return Pair{
		Delimiter: p.Delimiter,
		Base:      Code(p.Base.Lower()),
		Quote:     Code(p.Quote.Lower()),
	}
}

// Equal compares two pairs ignoring case and delimiter
func (p Pair) Equal(cPair Pair) bool {
	return p.Base.Match(cPair.Base) && p.Quote.Match(cPair.Quote)
}

// IsEmpty returns whether or not the pair is missing a currency code
func (p Pair) IsEmpty() bool {
	return p.Base.IsEmpty() || p.Quote.IsEmpty()
}

// IsInvalid checks invalid pair if base and quote are the same
func (p Pair) IsInvalid() bool {
	return p.Base.Match(p.Quote)
}

// Swap turns the currency pair into its reciprocal
func (p Pair) Swap() Pair {
	p.Base, p.Quote = p.Quote, p.Base
	return p
}

// Validate enforces the pair invariants: both codes set, base != quote
func (p Pair) Validate() error {
	if p.IsEmpty() {
		return ErrPairIsEmpty
	}
	if p.IsInvalid() {
		return fmt.Errorf("%w: %s", ErrPairCodesEqual, p.Base)
	}
	return nil
}
