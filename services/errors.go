package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Controllers map these to HTTP
// status codes.
var (
	ErrUnauthorized  = errors.New("Não autorizado")
	ErrQuotaExceeded = errors.New("Você atingiu seu limite diário de matches! Assine o Elo Pro para matches ilimitados.")
)

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a user-facing message.
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// UpstreamError reports a failure from the persistence or identity
// collaborator. The collaborator's message is preserved.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func upstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}
