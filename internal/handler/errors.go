package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tripweaver/backend/internal/domain"
)

// errorResponse is the JSON body for every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response", "error", err)
	}
}

// writeError maps a service error to an HTTP status and JSON body.
// notFound supplies the human-readable message for 404s because the handler
// is the layer that knows what was being looked up.
func writeError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: notFound},
		})
	case errors.Is(err, domain.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error: errorDetail{Code: "conflict", Message: conflictMessage(err)},
		})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	default:
		slog.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// writeBadRequest rejects a request before it reaches the service layer
// (missing or malformed body).
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error: errorDetail{Code: "validation_error", Message: message},
	})
}

// writeNotFound responds 404 with the given message.
func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, errorResponse{
		Error: errorDetail{Code: "not_found", Message: message},
	})
}

// decodeBody parses the request body into v. Unknown fields are rejected so
// typos in payload keys surface as errors rather than silently ignored input.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// unwrapMessage extracts the human-readable part from a wrapped validation
// error, e.g.
// "service.TripService.Create: validation error: name is required" → "name is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// conflictMessage maps a conflict error back to which uniqueness rule fired.
// The wrapped repo prefix tells us which table rejected the write.
func conflictMessage(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UserRepo"):
		return "email already exists"
	case strings.Contains(msg, "ItineraryRepo"):
		return "itinerary day already exists for this date"
	case strings.Contains(msg, "BudgetCategoryRepo"):
		return "category name already exists for this trip"
	}
	return "resource already exists"
}
