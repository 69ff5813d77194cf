// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"lingopress/internal/usecase"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// writeJSON encodes data as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// statusFor maps a use-case error id to an HTTP status.
func statusFor(err error) int {
	switch {
	case usecase.IsNotFound(err):
		return http.StatusNotFound
	case usecase.IsInvalid(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes a use-case error. Anything that is not a use-case
// error is reported as an opaque internal error.
func writeError(w http.ResponseWriter, err error) {
	id := usecase.ErrorID(err)
	if id == "" {
		slog.Error("unexpected handler error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: errorDetail{ID: "internal_error", Message: "internal error"}})
		return
	}
	var ue *usecase.Error
	errors.As(err, &ue)
	writeJSON(w, statusFor(err), errorBody{Error: errorDetail{ID: id, Message: ue.Message}})
}

// writeBadRequest rejects a malformed query before any use case runs.
func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{ID: "invalid_query", Message: msg}})
}
