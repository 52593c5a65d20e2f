package currency

import "strings"

// Code defines a case-normalized currency code, e.g. BTC or USD.
type Code string

// Commonly referenced currency codes.
const (
	BTC Code = "BTC"
	XRP Code = "XRP"
	USD Code = "USD"
	EUR Code = "EUR"
	HKD Code = "HKD"
)

// NewCode returns a Code normalized to upper case with surrounding
// whitespace removed.
func NewCode(c string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(c)))
}

// String implements the stringer interface
func (c Code) String() string {
	return string(c)
}

// Lower returns the code in lower case
func (c Code) Lower() string {
	return strings.ToLower(string(c))
}

// IsEmpty returns whether or not the code is empty
func (c Code) IsEmpty() bool {
	return c == ""
}

// Match compares c against another code ignoring case
func (c Code) Match(o Code) bool {
	return strings.EqualFold(string(c), string(o))
}

// Codes defines a list of currency codes
type Codes []Code

// Contains checks whether the list holds the supplied code, ignoring case
func (c Codes) Contains(check Code) bool {
	for x := range c {
		if c[x].Match(check) {
			return true
		}
	}
	return false
}

// Add appends the supplied code if it is not already present and returns
// the resulting list
func (c Codes) Add(check Code) Codes {
	if c.Contains(check) {
		return c
	}
	return append(c, NewCode(check.String()))
}

// Strings returns the list as plain strings
func (c Codes) Strings() []string {
	s := make([]string, len(c))
	for x := range c {
		s[x] = c[x].String()
	}
	return s
}
