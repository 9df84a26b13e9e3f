package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/moneta-checkout/internal/application"
	"github.com/DanielPopoola/moneta-checkout/internal/interfaces/rest"
)

// Timeout bounds handler run time. The request context carries the deadline so
// repository calls stop with it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	timeoutErr := application.NewTimeoutError()
	body, _ := json.Marshal(rest.APIResponse{
		Success: false,
		Error: &rest.APIError{
			Code:    timeoutErr.Code,
			Message: timeoutErr.Message,
		},
	})

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, string(body))
	}
}
