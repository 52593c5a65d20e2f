package common

import "errors"

// Shared sentinel errors used across the exchanges packages. Wrap with
// fmt.Errorf("%w: ...") and test with errors.Is.
var (
	// ErrMalformedResponse is returned when an exchange payload is
	// structurally unusable, e.g. a concatenated currency pair shorter
	// than six characters or a foreign DTO type handed to an adapter.
	ErrMalformedResponse = errors.New("malformed exchange response")

	// ErrNilResponse is returned when a required payload is nil.
	ErrNilResponse = errors.New("nil exchange response")
)
