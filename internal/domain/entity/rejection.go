package entity

import (
	"errors"
	"fmt"
)

// Row rejection causes. All of them are row-local and non-fatal.
var (
	ErrMissingField           = errors.New("missing field")
	ErrMalformedAmount        = errors.New("invalid amount format")
	ErrNonPositiveAmount      = errors.New("amount must be positive")
	ErrUnknownTransactionType = errors.New("invalid transaction type")
	ErrMalformedDate          = errors.New("invalid date format")
)

// Rejection explains why a RawRow did not become a Record.
type Rejection struct {
	Err   error
	Field string
	Value string
}

// Error implementa a interface error.
func (r *Rejection) Error() string {
	switch {
	case errors.Is(r.Err, ErrMissingField):
		return fmt.Sprintf("%s: %s", r.Err, r.Field)
	case r.Value != "":
		return fmt.Sprintf("%s: %s %q", r.Err, r.Field, r.Value)
	default:
		return fmt.Sprintf("%s: %s", r.Err, r.Field)
	}
}

func (r *Rejection) Unwrap() error { return r.Err }

// Code returns the taxonomy name of the rejection, e.g. "MalformedAmount".
func (r *Rejection) Code() string {
	switch {
	case errors.Is(r.Err, ErrMissingField):
		return "MissingField"
	case errors.Is(r.Err, ErrMalformedAmount):
		return "MalformedAmount"
	case errors.Is(r.Err, ErrNonPositiveAmount):
		return "NonPositiveAmount"
	case errors.Is(r.Err, ErrUnknownTransactionType):
		return "UnknownTransactionType"
	case errors.Is(r.Err, ErrMalformedDate):
		return "MalformedDate"
	default:
		return "Unknown"
	}
}
