package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/domain"
)

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode := application.ToHTTPStatus(err)
	errorCode := application.ToErrorCode(err)
	category := application.CategorizeError(err)

	switch category {
	case application.CategoryInfrastructure, application.CategoryConfiguration:
		logger.Error("request failed",
			"code", errorCode,
			"category", category,
			"status", statusCode,
			"error", err,
		)
	default:
		logger.Warn("request rejected",
			"code", errorCode,
			"category", category,
			"status", statusCode,
			"error", err,
		)
	}

	writeJSON(w, statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    errorCode,
			Message: publicMessage(err, statusCode),
		},
	})
}

// publicMessage hides infrastructure details from clients
func publicMessage(err error, status int) string {
	if svcErr, ok := application.IsServiceError(err); ok {
		if svcErr.Code == application.ErrCodeInvalidInput && svcErr.Err != nil {
			return svcErr.Message + ": " + svcErr.Err.Error()
		}
		return svcErr.Message
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}

	if status >= http.StatusInternalServerError {
		return "An internal error occurred"
	}
	return err.Error()
}
