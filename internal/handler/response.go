package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"fsanano/stockmgmt/internal/apperr"

	"github.com/go-chi/chi/v5/middleware"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

// decodeJSON reads the request body into v, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// writeError answers with the client message of an *apperr.Error. Any other
// error is logged and answered with 500 and fallback.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Kind != apperr.KindStore {
		writeMessage(w, appErr.Kind.HTTPStatus(), appErr.Message)
		return
	}

	slog.ErrorContext(r.Context(), fallback,
		"error", err,
		"request_id", middleware.GetReqID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
	)
	writeMessage(w, http.StatusInternalServerError, fallback)
}

// emptyIfNil keeps empty collections encoded as [] instead of null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
