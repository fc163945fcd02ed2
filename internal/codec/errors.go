package codec

import (
	"errors"
	"fmt"
)

// DecodeError means a packed value does not match the layout it is decoded
// with. It indicates ABI drift or a caller bug and is never recovered from.
type DecodeError struct {
	Layout  string
	Message string
}

func (e *DecodeError) Error() string {
	if e.Layout == "" {
		return "decode: " + e.Message
	}
	return fmt.Sprintf("decode %s: %s", e.Layout, e.Message)
}

func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

func newDecodeError(layout, format string, args ...any) *DecodeError {
	return &DecodeError{
		Layout:  layout,
		Message: fmt.Sprintf(format, args...),
	}
}
