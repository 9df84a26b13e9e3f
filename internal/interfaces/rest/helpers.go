package rest

import (
	"encoding/json"
	"net/http"
)

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithJSON wraps data in the response envelope
func RespondWithJSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	})
}

// RespondWithFailure reports a failed operation together with its result
func RespondWithFailure(w http.ResponseWriter, status int, code, message string, data any) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Data:    data,
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
