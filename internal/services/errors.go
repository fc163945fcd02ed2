package services

import (
	"errors"
	"fmt"
)

// FetchFailureError is returned when the contract reader fails. Index is set
// for per-stake operations.
type FetchFailureError struct {
	Op    string
	Index *uint64
	Err   error
}

func (e *FetchFailureError) Error() string {
	if e.Index != nil {
		return fmt.Sprintf("failed to fetch %s at index %d: %v", e.Op, *e.Index, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.Op, e.Err)
}

func (e *FetchFailureError) Unwrap() error {
	return e.Err
}

func IsFetchFailureError(err error) bool {
	var e *FetchFailureError
	return errors.As(err, &e)
}

func newFetchFailure(op string, err error) *FetchFailureError {
	return &FetchFailureError{Op: op, Err: err}
}

func newStakeFetchFailure(op string, index uint64, err error) *FetchFailureError {
	return &FetchFailureError{Op: op, Index: &index, Err: err}
}
