package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDeity = errors.New("invalid deity")
	ErrInvalidSpeed = errors.New("invalid speed")
	ErrMissingField = errors.New("missing field")
	ErrInvalidDate  = errors.New("invalid session date")

	// ErrSlotConflict is returned by a store when the database rejected an
	// insert on the (session date, deity) unique key.
	ErrSlotConflict = errors.New("slot already taken")

	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ValidationError is a caller-fixable problem with a submit request.
// Kind is one of ErrInvalidDeity, ErrInvalidSpeed, ErrMissingField.
type ValidationError struct {
	Kind  error
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s %q", e.Kind, e.Field, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Field)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// KindName is the stable identifier sent to clients.
func (e *ValidationError) KindName() string {
	switch e.Kind {
	case ErrInvalidDeity:
		return "InvalidDeity"
	case ErrInvalidSpeed:
		return "InvalidSpeed"
	case ErrMissingField:
		return "MissingField"
	default:
		return "ValidationError"
	}
}

func InvalidDeity(value string) error {
	return &ValidationError{Kind: ErrInvalidDeity, Field: "deity", Value: value}
}

func InvalidSpeed(value string) error {
	return &ValidationError{Kind: ErrInvalidSpeed, Field: "speed", Value: value}
}

func MissingField(field string) error {
	return &ValidationError{Kind: ErrMissingField, Field: field}
}

// IsValidation reports whether err is a ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
