package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/moneta-checkout/internal/domain"
)

// ErrorCategory represents the nature of an error for logging and response mapping
type ErrorCategory string

const (
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryConfiguration  ErrorCategory = "CONFIGURATION"
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines the error category
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	// Store misconfiguration must be fixed by an administrator
	if errors.Is(err, domain.ErrConfiguration) ||
		errors.Is(err, domain.ErrCurrencyResolution) ||
		errors.Is(err, domain.ErrUnsupportedSignatureScheme) ||
		errors.Is(err, ErrSettingsNotFound) {
		return CategoryConfiguration
	}

	if errors.Is(err, domain.ErrInvalidOrderState) ||
		errors.Is(err, domain.ErrRetryNotAllowed) ||
		errors.Is(err, domain.ErrInvalidTransition) {
		return CategoryBusinessRule
	}

	if errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrCurrencyNotFound) ||
		errors.Is(err, domain.ErrMissingRequiredField) ||
		errors.Is(err, domain.ErrInvalidCartLine) {
		return CategoryClientError
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput, ErrCodeNotFound:
			return CategoryClientError
		case ErrCodeTimeout:
			return CategoryTransient
		}
	}

	return CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case errors.Is(err, domain.ErrMissingRequiredField),
		errors.Is(err, domain.ErrInvalidCartLine):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrInvalidOrderState),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrRetryNotAllowed):
		return http.StatusConflict

	case errors.Is(err, ErrOrderNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrConfiguration),
		errors.Is(err, domain.ErrUnsupportedSignatureScheme):
		return http.StatusServiceUnavailable

	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if errors.Is(err, ErrOrderNotFound) {
		return "ORDER_NOT_FOUND"
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}
