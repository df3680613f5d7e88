package api

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the boundary-layer failure envelope: a fixed user-facing
// message plus the raw error string for diagnostics.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message, details string) {
	WriteJSON(w, status, ErrorResponse{Error: message, Details: details})
}

func BadRequest(w http.ResponseWriter, message, details string) {
	WriteError(w, http.StatusBadRequest, message, details)
}

func NotFound(w http.ResponseWriter, message, details string) {
	WriteError(w, http.StatusNotFound, message, details)
}

func Internal(w http.ResponseWriter, message, details string) {
	WriteError(w, http.StatusInternalServerError, message, details)
}
