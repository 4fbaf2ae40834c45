package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data"`
}

// listResponse wraps a slice with its length
func listResponse[T any](items []T) DataResponse {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	return DataResponse{Success: true, Count: &n, Data: items}
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	ErrMsgEventNotFoundError     = "Event not found"
	ErrMsgInvalidEventTypeError  = "Invalid event type"
	ErrMsgInvalidEventRangeError = "Upcoming window must be at most 365 days"
	ErrMsgCropNotFoundError      = "Crop not found"
	ErrMsgInvalidPriceUnitError  = "Unit must be one of quintal, kg, ton"
	ErrMsgInvalidCurrencyError   = "Currency must be INR or USD"
	ErrMsgNegativePriceError     = "Price cannot be negative"
)

// mapServiceErrorToUserMessage converts domain errors to HTTP status codes and
// messages users can act on. Unknown errors become a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, ErrMsgEventNotFoundError
	case errors.Is(err, domain.ErrCropNotFound):
		return http.StatusNotFound, ErrMsgCropNotFoundError
	case errors.Is(err, domain.ErrInvalidEventType):
		return http.StatusBadRequest, ErrMsgInvalidEventTypeError
	case errors.Is(err, domain.ErrInvalidEventRange):
		return http.StatusBadRequest, ErrMsgInvalidEventRangeError
	case errors.Is(err, domain.ErrInvalidPriceUnit):
		return http.StatusBadRequest, ErrMsgInvalidPriceUnitError
	case errors.Is(err, domain.ErrInvalidCurrency):
		return http.StatusBadRequest, ErrMsgInvalidCurrencyError
	case errors.Is(err, domain.ErrNegativePrice):
		return http.StatusBadRequest, ErrMsgNegativePriceError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrConnectionTimeout):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
