package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/betpulse/betpulse/internal/admin"
	"github.com/betpulse/betpulse/internal/bookingcode"
	"github.com/betpulse/betpulse/internal/chat"
	"github.com/betpulse/betpulse/internal/domain"
	"github.com/betpulse/betpulse/internal/sportsfeed"
)

type ImportFixturesRequest struct {
	Date   string `json:"date" validate:"required"`
	League string `json:"league" validate:"max=20"`
}

// HandleImportFixtures pulls fixtures from the football feed
// @Summary Import fixtures
// @Description Import a day's fixtures from the feed, skipping ones already present
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ImportFixturesRequest true "Import parameters"
// @Success 200 {object} admin.ImportResult
// @Failure 400 {object} ErrorResponse
// @Router /admin/fixtures/import [post]
func HandleImportFixtures(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportFixturesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Import fixtures"); err != nil {
			return
		}

		date, err := time.Parse(sportsfeed.DateLayout, req.Date)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDate)
			return
		}

		result, err := svc.ImportFixtures(r.Context(), date, req.League)
		if err != nil {
			respondServiceError(w, r, ErrMsgImportFixturesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandlePollLiveUpdates refreshes in-play data from the feed
// @Summary Poll live updates
// @Description Refresh live scores and finalize finished fixtures
// @Tags admin
// @Produce json
// @Success 200 {object} admin.PollResult
// @Router /admin/live/poll [post]
func HandlePollLiveUpdates(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.PollLiveUpdates(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgPollLiveFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleListUsers lists all users with their roles
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {array} domain.UserWithRole
// @Router /admin/users [get]
func HandleListUsers(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListUsersFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, users)
	}
}

// HandlePromoteUser grants the admin role
// @Summary Promote user
// @Tags admin
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/users/{userID}/promote [post]
func HandlePromoteUser(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		if err := svc.PromoteUser(r.Context(), userID); err != nil {
			respondServiceError(w, r, ErrMsgPromoteUserFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgUserPromotedSuccess})
	}
}

// HandleAdminListBookingCodes lists slips by status without the expiry filter
// @Summary List booking codes by status
// @Tags admin
// @Produce json
// @Param status query string false "Status filter" default(active)
// @Success 200 {array} domain.BookingCode
// @Router /admin/booking-codes [get]
func HandleAdminListBookingCodes(svc bookingcode.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := GetOptionalQueryParam(r, "status", string(domain.BookingCodeStatusActive))

		codes, err := svc.ListByStatus(r.Context(), domain.BookingCodeStatus(status))
		if err != nil {
			respondServiceError(w, r, ErrMsgListCodesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, codes)
	}
}

// CleanupResponse reports how many presence rows were removed
type CleanupResponse struct {
	Deleted int `json:"deleted"`
}

// HandleCleanupPresence manually triggers the presence cleanup pass
// @Summary Clean up stale presence
// @Tags admin
// @Produce json
// @Success 200 {object} CleanupResponse
// @Router /admin/chat/presence/cleanup [post]
func HandleCleanupPresence(svc chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := svc.CleanupPresence(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgCleanupFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, CleanupResponse{Deleted: deleted})
	}
}
