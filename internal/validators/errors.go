package validators

import (
	"errors"
	"strings"
)

var (
	ErrInvalidProfile  = errors.New("invalid validation profile")
	ErrUnknownProfile  = errors.New("unknown validation profile")
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrValidationFailed = errors.New("validation failed")
)

// ErrorKind classifies a FieldError.
type ErrorKind int

const (
	// UnexpectedField reports payload keys outside the profile's allow-list.
	UnexpectedField ErrorKind = iota + 1

	// MissingField reports a required field that is absent or empty after
	// normalization.
	MissingField

	// Shape reports a present field that fails a format, pattern, length or
	// composition check.
	Shape
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedField:
		return "unexpected_field"
	case MissingField:
		return "missing_field"
	case Shape:
		return "shape"
	default:
		return "unknown"
	}
}

// FieldError is a single validation failure. Field is empty for failures
// that concern the payload as a whole.
type FieldError struct {
	Field   string    `json:"field"`
	Message string    `json:"message"`
	Kind    ErrorKind `json:"-"`
}

// ValidationError carries every failure a profile reported for one input.
// It matches [ErrValidationFailed] with errors.Is.
type ValidationError struct {
	Profile string
	Errors  []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		if fe.Field == "" {
			messages = append(messages, fe.Message)
			continue
		}
		messages = append(messages, fe.Field+": "+fe.Message)
	}

	return ErrValidationFailed.Error() + " (" + e.Profile + "): " + strings.Join(messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
