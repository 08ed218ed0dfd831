package sqltype

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes type-system errors.
type ErrorCode string

const (
	// ErrCodeNoConversion indicates no catalog entry exists for a type pair.
	ErrCodeNoConversion ErrorCode = "NO_CONVERSION"

	// ErrCodeOutOfRange indicates a narrowing conversion's source value does
	// not fit the target's representable range.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"

	// ErrCodeBadCast indicates a value could not be parsed or cast to the
	// requested target type.
	ErrCodeBadCast ErrorCode = "BAD_CAST"
)

// Error is a query-facing type-system failure. The message is the complete
// user-visible text; Code and the structured fields exist so callers can
// dispatch without string matching.
type Error struct {
	Code    ErrorCode
	Message string

	// From and To are set for NO_CONVERSION errors.
	From DataType
	To   DataType

	// Value is the offending value for OUT_OF_RANGE and BAD_CAST errors.
	Value any

	// Target is the target type label for OUT_OF_RANGE and BAD_CAST errors.
	Target string

	// Cause is the underlying parse diagnostic, when one exists.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap exposes the underlying parse diagnostic for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.Cause }

func newNoConversionError(from, to DataType) *Error {
	return &Error{
		Code:    ErrCodeNoConversion,
		Message: fmt.Sprintf("cannot convert from [%s] to [%s]", from, to),
		From:    from,
		To:      to,
	}
}

func newRangeError(value any, target string) *Error {
	return &Error{
		Code:    ErrCodeOutOfRange,
		Message: fmt.Sprintf("[%v] out of [%s] range", value, target),
		Value:   value,
		Target:  target,
	}
}

func newCastError(value any, target string, cause error) *Error {
	msg := fmt.Sprintf("cannot cast [%v] to [%s]", value, target)
	if cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, cause)
	}
	return &Error{
		Code:    ErrCodeBadCast,
		Message: msg,
		Value:   value,
		Target:  target,
		Cause:   cause,
	}
}

// IsNoConversion returns true if the error reports a missing catalog entry.
// Uses errors.As to handle wrapped errors.
func IsNoConversion(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Code == ErrCodeNoConversion
}

// IsOutOfRange returns true if the error reports a narrowing overflow.
// Uses errors.As to handle wrapped errors.
func IsOutOfRange(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Code == ErrCodeOutOfRange
}

// IsBadCast returns true if the error reports a failed cast or parse.
// Uses errors.As to handle wrapped errors.
func IsBadCast(err error) bool {
	var te *Error
	return errors.As(err, &te) && te.Code == ErrCodeBadCast
}
