package model

import (
	"errors"
	"fmt"
)

// ErrContract is the sentinel every FieldError unwraps to.
var ErrContract = errors.New("questionnaire contract violation")

// FieldErrorKind classifies a contract violation.
type FieldErrorKind string

const (
	FieldMissing       FieldErrorKind = "missing"
	FieldInvalidType   FieldErrorKind = "invalid_type"
	FieldInvalidOption FieldErrorKind = "invalid_option"
	FieldOutOfRange    FieldErrorKind = "out_of_range"
	FieldUnknown       FieldErrorKind = "unknown"
)

// FieldError names the answer that broke the questionnaire contract.
type FieldError struct {
	Field  string         `json:"field"`
	Kind   FieldErrorKind `json:"kind"`
	Detail string         `json:"detail,omitempty"`
}

// NewFieldError creates a FieldError without detail.
func NewFieldError(field string, kind FieldErrorKind) *FieldError {
	return &FieldError{Field: field, Kind: kind}
}

func (e *FieldError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("field %q: %s: %s", e.Field, e.Kind, e.Detail)
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Kind)
}

func (e *FieldError) Unwrap() error {
	return ErrContract
}

// AsFieldError extracts a FieldError from err's chain.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
