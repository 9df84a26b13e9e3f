package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidOrderState    = "INVALID_ORDER_STATE"
	ErrCodeConfiguration        = "CONFIGURATION_ERROR"
	ErrCodeCurrencyResolution   = "CURRENCY_RESOLUTION_ERROR"
	ErrCodeRetryNotAllowed      = "RETRY_NOT_ALLOWED"
	ErrCodeInvalidTransition    = "INVALID_TRANSITION"
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeUnsupportedSignature = "UNSUPPORTED_SIGNATURE_SCHEME"
	ErrCodeInvalidCartLine      = "INVALID_CART_LINE"
)

var (
	ErrInvalidOrderState          = errors.New("invalid order state")
	ErrConfiguration              = errors.New("gateway is not configured")
	ErrCurrencyResolution         = errors.New("currency could not be resolved")
	ErrRetryNotAllowed            = errors.New("payment retry is not allowed yet")
	ErrInvalidTransition          = errors.New("invalid payment status transition")
	ErrMissingRequiredField       = errors.New("missing required field")
	ErrUnsupportedSignatureScheme = errors.New("unsupported signature scheme")
	ErrInvalidCartLine            = errors.New("invalid cart line")
)

func NewInvalidOrderStateError(reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidOrderState,
		Message: fmt.Sprintf("invalid order state: %s", reason),
		Err:     ErrInvalidOrderState,
	}
}

func NewConfigurationError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeConfiguration,
		Message: fmt.Sprintf("gateway settings: %s is required", field),
		Err:     ErrConfiguration,
	}
}

func NewCurrencyResolutionError(currencyID int64, cause error) *DomainError {
	msg := fmt.Sprintf("currency %d could not be resolved", currencyID)
	if cause != nil {
		return &DomainError{
			Code:    ErrCodeCurrencyResolution,
			Message: msg,
			Err:     fmt.Errorf("%w: %v", ErrCurrencyResolution, cause),
		}
	}
	return &DomainError{
		Code:    ErrCodeCurrencyResolution,
		Message: msg,
		Err:     ErrCurrencyResolution,
	}
}

func NewRetryNotAllowedError(orderID int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeRetryNotAllowed,
		Message: fmt.Sprintf("order %d cannot be re-posted yet", orderID),
		Err:     ErrRetryNotAllowed,
	}
}

func NewInvalidTransitionError(from, to PaymentStatus) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
		Err:     ErrInvalidTransition,
	}
}

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
		Err:     ErrMissingRequiredField,
	}
}

func NewUnsupportedSignatureSchemeError(scheme string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUnsupportedSignature,
		Message: fmt.Sprintf("signature scheme %q is not supported", scheme),
		Err:     ErrUnsupportedSignatureScheme,
	}
}

func NewInvalidCartLineError(line int, reason string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCartLine,
		Message: fmt.Sprintf("cart line %d: %s", line, reason),
		Err:     ErrInvalidCartLine,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
