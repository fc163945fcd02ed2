package payout

import (
	"errors"
	"fmt"
)

var (
	// ErrStakeNotStarted is returned when the payout of a stake is requested
	// before it has accrued its first day.
	ErrStakeNotStarted = errors.New("stake has not accrued any day yet")
	ErrZeroStakedDays  = errors.New("staked days must be greater than 0")
)

// DataInconsistencyError means chain data cannot satisfy a payout formula,
// either through a zero divisor or a result wider than 256 bits.
type DataInconsistencyError struct {
	Op      string
	Message string
}

func (e *DataInconsistencyError) Error() string {
	return fmt.Sprintf("data inconsistency in %s: %s", e.Op, e.Message)
}

func IsDataInconsistencyError(err error) bool {
	var target *DataInconsistencyError
	return errors.As(err, &target)
}

func newDataInconsistencyError(op, format string, args ...any) *DataInconsistencyError {
	return &DataInconsistencyError{
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}
