package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/crandicha/acncheck/pkg/logger"
)

// Response is the JSON envelope of every API response.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes.
const (
	CodeInvalidRequest   = "invalid_request"
	CodeNotFound         = "not_found"
	CodeMethodNotAllowed = "method_not_allowed"
	CodeInternal         = "internal_error"
)

func writeJSON(w http.ResponseWriter, status int, body Response) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func (a *api) respond(w http.ResponseWriter, r *http.Request, data any) {
	if err := writeJSON(w, http.StatusOK, Response{Data: data}); err != nil {
		a.logger.WarnContext(r.Context(), "failed to write response", logger.Error(err))
	}
}

func (a *api) fail(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	if err := writeJSON(w, status, Response{Error: &ErrorDetail{Code: code, Message: message}}); err != nil {
		a.logger.WarnContext(r.Context(), "failed to write error response", logger.Error(err))
	}
}
