package usecase

import (
	"errors"
	"fmt"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase/interfaces"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrNotAuthorized        = errors.New("not authorized")
	ErrGigNotFound          = errors.New("gig not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrDuplicateApplication = errors.New("already applied to this gig")
	ErrSelfApplication      = errors.New("cannot apply to your own gig")
	ErrGigUnavailable       = errors.New("gig is not accepting applications")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrAlreadyFeatured      = errors.New("gig is already featured")
	ErrPaymentGateway       = errors.New("payment gateway error")
	ErrInvalidSignature     = interfaces.ErrInvalidSignature
)

// ValidationError reports malformed input on a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// InvalidTransitionError is returned when a status change is not allowed from
// the current status, including when a concurrent writer got there first.
type InvalidTransitionError struct {
	From   entities.ApplicationStatus
	To     entities.ApplicationStatus
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid status transition %s -> %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// PaymentGatewayError wraps a failed call to the external gateway.
type PaymentGatewayError struct {
	Op      string
	Timeout bool
	Err     error
}

func (e *PaymentGatewayError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("payment gateway %s timed out: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("payment gateway %s failed: %v", e.Op, e.Err)
}

func (e *PaymentGatewayError) Is(target error) bool { return target == ErrPaymentGateway }

func (e *PaymentGatewayError) Unwrap() error { return e.Err }
