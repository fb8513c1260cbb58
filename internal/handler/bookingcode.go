package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/betpulse/betpulse/internal/auth"
	"github.com/betpulse/betpulse/internal/bookingcode"
	"github.com/betpulse/betpulse/internal/domain"
)

type CreateBookingCodeRequest struct {
	Code        string   `json:"code" validate:"required,max=50"`
	Platform    string   `json:"platform" validate:"required,max=50"`
	Matches     []string `json:"matches" validate:"max=20,dive,uuid4"`
	Description string   `json:"description" validate:"max=500"`
	Odds        float64  `json:"odds" validate:"required,gt=1"`
	Stake       float64  `json:"stake" validate:"required,gt=0"`
	ExpiresAt   string   `json:"expires_at" validate:"required"`
}

// HandleCreateBookingCode shares a new betting slip
// @Summary Create booking code
// @Description Share a multi-match betting slip. Requires a full account.
// @Tags booking-codes
// @Accept json
// @Produce json
// @Param request body CreateBookingCodeRequest true "Slip details"
// @Success 201 {object} domain.BookingCode
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /booking-codes [post]
func HandleCreateBookingCode(svc bookingcode.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := auth.RequireMember(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgCreateCodeFailed, err)
			return
		}

		var req CreateBookingCodeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create booking code"); err != nil {
			return
		}

		expiresAt, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDate)
			return
		}

		code := &domain.BookingCode{
			Code:        req.Code,
			Platform:    req.Platform,
			MatchIDs:    req.Matches,
			Description: req.Description,
			Odds:        req.Odds,
			Stake:       req.Stake,
			ExpiresAt:   expiresAt,
		}
		if err := svc.Create(r.Context(), identity, code); err != nil {
			respondServiceError(w, r, ErrMsgCreateCodeFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, code)
	}
}

// HandleListActiveBookingCodes lists active unexpired slips
// @Summary List active booking codes
// @Description Active slips that have not expired, newest first, with resolved matches
// @Tags booking-codes
// @Produce json
// @Param limit query int false "Max rows"
// @Success 200 {array} domain.EnrichedBookingCode
// @Router /booking-codes [get]
func HandleListActiveBookingCodes(svc bookingcode.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		codes, err := svc.GetActive(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgListCodesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, codes)
	}
}

// HandleGetBookingCode fetches one slip with its matches
// @Summary Get booking code
// @Tags booking-codes
// @Produce json
// @Param codeID path string true "Booking code ID"
// @Success 200 {object} domain.EnrichedBookingCode
// @Failure 404 {object} ErrorResponse
// @Router /booking-codes/{codeID} [get]
func HandleGetBookingCode(svc bookingcode.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codeID := chi.URLParam(r, "codeID")

		code, err := svc.Get(r.Context(), codeID)
		if err != nil {
			respondServiceError(w, r, ErrMsgListCodesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, code)
	}
}

// HandleListMyBookingCodes lists the caller's own slips
// @Summary List my booking codes
// @Description The caller's slips regardless of status or expiry
// @Tags booking-codes
// @Produce json
// @Param limit query int false "Max rows"
// @Success 200 {array} domain.BookingCode
// @Failure 403 {object} ErrorResponse
// @Router /booking-codes/mine [get]
func HandleListMyBookingCodes(svc bookingcode.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := auth.RequireMember(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListCodesFailed, err)
			return
		}

		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		codes, err := svc.GetMine(r.Context(), identity, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgListCodesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, codes)
	}
}

type UpdateCodeStatusRequest struct {
	Status string `json:"status" validate:"required,codestatus"`
}

// HandleUpdateBookingCodeStatus flips a slip's lifecycle state
// @Summary Update booking code status
// @Description Mark a slip won, lost, or expired. Creator or admin only.
// @Tags booking-codes
// @Accept json
// @Produce json
// @Param codeID path string true "Booking code ID"
// @Param request body UpdateCodeStatusRequest true "New status"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /booking-codes/{codeID}/status [patch]
func HandleUpdateBookingCodeStatus(svc bookingcode.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := auth.RequireIdentity(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgUpdateCodeFailed, err)
			return
		}

		codeID := chi.URLParam(r, "codeID")

		var req UpdateCodeStatusRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update booking code status"); err != nil {
			return
		}

		status := domain.BookingCodeStatus(req.Status)
		if err := svc.UpdateStatus(r.Context(), identity, codeID, status); err != nil {
			respondServiceError(w, r, ErrMsgUpdateCodeFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCodeStatusSuccess})
	}
}
