package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/betpulse/betpulse/internal/domain"
	"github.com/betpulse/betpulse/internal/logger"
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
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and sends the mapped
// user-facing error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	log.Error(opName, "error", err)

	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgSignInRequired      = "Please sign in to continue"
	ErrMsgGuestsCannotWrite   = "Guests cannot use social features. Please create an account."
	ErrMsgAdminOnly           = "Admin access required"
	ErrMsgNotYourMessage      = "You can only delete your own messages"
	ErrMsgNotYourCode         = "You can only update your own booking codes"
	ErrMsgMatchNotFoundHTTP   = "Match not found"
	ErrMsgPredictionNotFound  = "Prediction not found"
	ErrMsgMessageNotFoundHTTP = "Message not found"
	ErrMsgCodeNotFoundHTTP    = "Booking code not found"
	ErrMsgUserNotFoundHTTP    = "User not found"
	ErrMsgMatchNotFinished    = "Match has not finished yet"
	ErrMsgScoresMissing       = "Match scores are not recorded"
	ErrMsgBadStatusChange     = "Invalid status value"
	ErrMsgFeedNotConfigured   = "Fixture feed is not configured"
	ErrMsgModelUnavailable    = "Prediction model is temporarily unavailable"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, ErrMsgSignInRequired
	case errors.Is(err, domain.ErrGuestForbidden):
		return http.StatusForbidden, ErrMsgGuestsCannotWrite
	case errors.Is(err, domain.ErrAdminRequired):
		return http.StatusForbidden, ErrMsgAdminOnly
	case errors.Is(err, domain.ErrNotMessageOwner):
		return http.StatusForbidden, ErrMsgNotYourMessage
	case errors.Is(err, domain.ErrNotCodeOwner):
		return http.StatusForbidden, ErrMsgNotYourCode
	case errors.Is(err, domain.ErrMatchNotFound):
		return http.StatusNotFound, ErrMsgMatchNotFoundHTTP
	case errors.Is(err, domain.ErrPredictionNotFound):
		return http.StatusNotFound, ErrMsgPredictionNotFound
	case errors.Is(err, domain.ErrMessageNotFound):
		return http.StatusNotFound, ErrMsgMessageNotFoundHTTP
	case errors.Is(err, domain.ErrBookingCodeNotFound):
		return http.StatusNotFound, ErrMsgCodeNotFoundHTTP
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundHTTP
	case errors.Is(err, domain.ErrMatchNotFinished):
		return http.StatusBadRequest, ErrMsgMatchNotFinished
	case errors.Is(err, domain.ErrScoresRequired):
		return http.StatusBadRequest, ErrMsgScoresMissing
	case errors.Is(err, domain.ErrInvalidStatusChange):
		return http.StatusBadRequest, ErrMsgBadStatusChange
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrFeedKeyMissing):
		return http.StatusServiceUnavailable, ErrMsgFeedNotConfigured
	case errors.Is(err, domain.ErrLLMUnavailable):
		return http.StatusServiceUnavailable, ErrMsgModelUnavailable
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
