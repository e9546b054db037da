package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"todo-api/internal/errors"
)

// Problem is the body of every error response
type Problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

const problemContentType = "application/problem+json"

// StatusFor maps an error to the HTTP status reported to the caller
func StatusFor(err error) int {
	switch {
	case errors.IsErrorType(err, errors.ErrorTypeValidation), errors.IsErrorType(err, errors.ErrorTypeInvalidInput):
		return http.StatusBadRequest
	case errors.IsErrorType(err, errors.ErrorTypeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err with the operation attributes and writes a problem response
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error, attrs ...any) {
	status := StatusFor(err)

	level := slog.LevelWarn
	if errors.ShouldLogError(err) {
		level = slog.LevelError
	}
	attrs = append([]any{"op", op, "status", status, "code", errors.GetErrorCode(err), "error", err}, attrs...)
	h.logger.Log(r.Context(), level, "request failed", attrs...)

	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Problem{
		Title:  http.StatusText(status),
		Status: status,
		Detail: errors.GetUserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
