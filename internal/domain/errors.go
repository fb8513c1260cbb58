package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Authorization errors
	ErrMsgNotAuthenticated = "must be logged in"
	ErrMsgAdminRequired    = "admin access required"
	ErrMsgGuestForbidden   = "guest users cannot perform this action"
	ErrMsgNotMessageOwner  = "you can only delete your own messages"
	ErrMsgNotCodeOwner     = "you can only update your own booking codes"

	// Not-found errors
	ErrMsgMatchNotFound       = "match not found"
	ErrMsgPredictionNotFound  = "prediction not found"
	ErrMsgMessageNotFound     = "message not found"
	ErrMsgBookingCodeNotFound = "booking code not found"
	ErrMsgUserNotFound        = "user not found"

	// State errors
	ErrMsgMatchNotFinished    = "match is not finished"
	ErrMsgInvalidStatusChange = "invalid status transition"
	ErrMsgScoresRequired      = "match scores are not set"

	// External dependency errors
	ErrMsgFeedKeyMissing = "football feed API key not configured"
	ErrMsgLLMUnavailable = "prediction model unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Authorization errors
	ErrNotAuthenticated = errors.New(ErrMsgNotAuthenticated)
	ErrAdminRequired    = errors.New(ErrMsgAdminRequired)
	ErrGuestForbidden   = errors.New(ErrMsgGuestForbidden)
	ErrNotMessageOwner  = errors.New(ErrMsgNotMessageOwner)
	ErrNotCodeOwner     = errors.New(ErrMsgNotCodeOwner)

	// Not-found errors
	ErrMatchNotFound       = errors.New(ErrMsgMatchNotFound)
	ErrPredictionNotFound  = errors.New(ErrMsgPredictionNotFound)
	ErrMessageNotFound     = errors.New(ErrMsgMessageNotFound)
	ErrBookingCodeNotFound = errors.New(ErrMsgBookingCodeNotFound)
	ErrUserNotFound        = errors.New(ErrMsgUserNotFound)

	// State errors
	ErrMatchNotFinished    = errors.New(ErrMsgMatchNotFinished)
	ErrInvalidStatusChange = errors.New(ErrMsgInvalidStatusChange)
	ErrScoresRequired      = errors.New(ErrMsgScoresRequired)

	// External dependency errors
	ErrFeedKeyMissing = errors.New(ErrMsgFeedKeyMissing)
	ErrLLMUnavailable = errors.New(ErrMsgLLMUnavailable)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
