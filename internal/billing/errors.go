package billing

import "errors"

// ValidationError reports malformed or missing billing input. It is raised
// before any write and its message is surfaced verbatim to the caller.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func NewValidationError(msg string) error { return &ValidationError{msg: msg} }

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrInsufficientPayment is returned when the tendered payments sum short of
// the net amount at cent precision. Nothing has been written when it fires.
var ErrInsufficientPayment = errors.New("total payment is less than bill amount")
