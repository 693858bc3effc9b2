// Package response renders the API's uniform JSON envelope. Every endpoint,
// success or failure, replies with the same shape so mobile clients can
// decode responses with a single model.
package response

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the envelope written on every reply. Data carries the
// payload on success; Errors carries field-level detail on validation
// failures.
type APIResponse struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

// Success writes a 200 envelope wrapping data.
func Success(w http.ResponseWriter, data any, message string) {
	JSON(w, http.StatusOK, APIResponse{
		Status:  http.StatusOK,
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope. errs may be nil when there is no
// field-level detail to report.
func Error(w http.ResponseWriter, statusCode int, message string, errs any) {
	JSON(w, statusCode, APIResponse{
		Status:  statusCode,
		Success: false,
		Message: message,
		Errors:  errs,
	})
}
