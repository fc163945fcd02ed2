package types

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	BadRequest           ErrorCode = "BAD_REQUEST"
	NotFound             ErrorCode = "NOT_FOUND"
	ServiceUnavailable   ErrorCode = "SERVICE_UNAVAILABLE"
)

func (e ErrorCode) String() string {
	return string(e)
}

// Error carries the http status and a machine readable code to the api layer.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		Err:        err,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return &Error{
		Err:        errors.New(msg),
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		Err:        fmt.Errorf("internal service error: %w", err),
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
	}
}

func NewBadRequestError(msg string) *Error {
	return NewErrorWithMsg(http.StatusBadRequest, BadRequest, msg)
}
