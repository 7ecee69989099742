// Package respond holds the JSON response writers shared by the handler
// packages, including the mapping from service errors to status codes.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkk-1817/crm-backend/internal/apperr"
)

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid credentials"`
	Message string `json:"message,omitempty" example:"Email or password is incorrect"`
}

func JSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func Error(w http.ResponseWriter, statusCode int, errLabel string, message string) {
	JSON(w, statusCode, ErrorResponse{Error: errLabel, Message: message})
}

// Err maps a service error onto the HTTP error taxonomy. Anything outside the
// known sentinels is a server error and its detail stays out of the body.
func Err(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		Error(w, http.StatusBadRequest, "validation failed", err.Error())
	case errors.Is(err, apperr.ErrConflict):
		Error(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		Error(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired credentials")
	case errors.Is(err, apperr.ErrNotFound):
		Error(w, http.StatusNotFound, "not found", err.Error())
	default:
		Error(w, http.StatusInternalServerError, "server error", "An internal error occurred")
	}
}
