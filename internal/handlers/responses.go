package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ShaydeNofziger/skynav-api/internal/validation"
)

// errorBody is the error response envelope. Fields carries per-field
// validation messages and is omitted for other error kinds.
type errorBody struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeValidationError(w http.ResponseWriter, result validation.Result) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: apiError{
		Code:    "validation_error",
		Message: "request body failed validation",
		Fields:  result.Errors,
	}})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: apiError{
		Code:    "bad_request",
		Message: message,
	}})
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, errorBody{Error: apiError{
		Code:    "unauthorized",
		Message: "authentication required",
	}})
}

func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorBody{Error: apiError{
		Code:    "not_found",
		Message: message,
	}})
}

// writeServerError hides upstream detail from the caller; the full error is
// recorded in telemetry by the handler.
func writeServerError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: apiError{
		Code:    "internal_error",
		Message: "something went wrong, please try again",
	}})
}
