package account

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FundingType is the integer withdrawal-type code shared by the supported
// exchanges
type FundingType int

// Withdrawal request types
const (
	FundingSEPA FundingType = iota
	FundingCrypto
	FundingWire
)

// FundingStatus is the integer withdrawal-status code shared by the
// supported exchanges
type FundingStatus int

// Withdrawal request statuses
const (
	FundingOpen FundingStatus = iota
	FundingInProcess
	FundingFinished
	FundingCanceled
	FundingFailed
)

// String implements the stringer interface
func (f FundingType) String() string {
	switch f {
	case FundingSEPA:
		return "SEPA"
	case FundingCrypto:
		return "crypto"
	case FundingWire:
		return "wire"
	}
	return fmt.Sprintf("unknown(%d)", int(f))
}

// String implements the stringer interface
func (f FundingStatus) String() string {
	switch f {
	case FundingOpen:
		return "open"
	case FundingInProcess:
		return "in_process"
	case FundingFinished:
		return "finished"
	case FundingCanceled:
		return "canceled"
	case FundingFailed:
		return "failed"
	}
	return fmt.Sprintf("unknown(%d)", int(f))
}

// FundingRecord is a canonical withdrawal (or deposit) history entry.
// Timestamp is milliseconds precision, UTC.
type FundingRecord struct {
	ID        int64
	Timestamp time.Time
	Type      FundingType
	Amount    decimal.Decimal
	Status    FundingStatus
}

// String renders the record with a fixed field order
func (f *FundingRecord) String() string {
	return fmt.Sprintf("WithdrawalRequest{id=%d, datetime=%d, type=%s, amount=%s, status=%s}",
		f.ID, f.Timestamp.UnixMilli(), f.Type, f.Amount, f.Status)
}
