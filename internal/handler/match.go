package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/betpulse/betpulse/internal/auth"
	"github.com/betpulse/betpulse/internal/domain"
	"github.com/betpulse/betpulse/internal/logger"
	"github.com/betpulse/betpulse/internal/match"
)

// isGuest reports whether the request carries no full account.
// Unauthenticated and anonymous sessions both count as guests.
func isGuest(r *http.Request) bool {
	id, ok := auth.IdentityFromContext(r.Context())
	return !ok || id.IsAnonymous
}

type CreateMatchRequest struct {
	HomeTeam  string  `json:"home_team" validate:"required,max=100"`
	AwayTeam  string  `json:"away_team" validate:"required,max=100"`
	League    string  `json:"league" validate:"required,max=100"`
	KickoffAt string  `json:"kickoff_at" validate:"required"`
	HomeOdds  float64 `json:"home_odds" validate:"gt=1"`
	DrawOdds  float64 `json:"draw_odds" validate:"gt=1"`
	AwayOdds  float64 `json:"away_odds" validate:"gt=1"`
	Venue     string  `json:"venue" validate:"max=200"`
}

// HandleCreateMatch creates a new fixture
// @Summary Create match
// @Description Create a new upcoming fixture (admin only)
// @Tags matches
// @Accept json
// @Produce json
// @Param request body CreateMatchRequest true "Match details"
// @Success 201 {object} domain.Match
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/matches [post]
func HandleCreateMatch(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateMatchRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create match"); err != nil {
			return
		}

		kickoff, err := time.Parse(time.RFC3339, req.KickoffAt)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDate)
			return
		}

		m := &domain.Match{
			HomeTeam:  req.HomeTeam,
			AwayTeam:  req.AwayTeam,
			League:    req.League,
			KickoffAt: kickoff,
			Odds:      domain.Odds{Home: req.HomeOdds, Draw: req.DrawOdds, Away: req.AwayOdds},
			Venue:     req.Venue,
		}
		if err := svc.Create(r.Context(), m); err != nil {
			respondServiceError(w, r, ErrMsgCreateMatchFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, m)
	}
}

// HandleGetMatch fetches one fixture
// @Summary Get match
// @Description Get a single match; live data is redacted for guests
// @Tags matches
// @Produce json
// @Param matchID path string true "Match ID"
// @Success 200 {object} domain.Match
// @Failure 404 {object} ErrorResponse
// @Router /matches/{matchID} [get]
func HandleGetMatch(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "matchID")

		m, err := svc.Get(r.Context(), matchID, isGuest(r))
		if err != nil {
			respondServiceError(w, r, ErrMsgGetMatchFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, m)
	}
}

// HandleListUpcomingMatches lists upcoming fixtures
// @Summary List upcoming matches
// @Description List upcoming fixtures ascending by kickoff, optionally filtered by league
// @Tags matches
// @Produce json
// @Param league query string false "League filter"
// @Param limit query int false "Max rows"
// @Success 200 {array} domain.Match
// @Router /matches/upcoming [get]
func HandleListUpcomingMatches(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}
		league := GetOptionalQueryParam(r, "league", "")

		matches, err := svc.ListUpcoming(r.Context(), league, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgListMatchesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, matches)
	}
}

// HandleListTodaysMatches lists fixtures kicking off today
// @Summary List today's matches
// @Tags matches
// @Produce json
// @Success 200 {array} domain.Match
// @Router /matches/today [get]
func HandleListTodaysMatches(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := svc.ListToday(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgListMatchesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, matches)
	}
}

// HandleListLiveMatches lists in-play fixtures
// @Summary List live matches
// @Description List in-play fixtures; live data is redacted for guests
// @Tags matches
// @Produce json
// @Success 200 {array} domain.Match
// @Router /matches/live [get]
func HandleListLiveMatches(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := svc.ListLive(r.Context(), isGuest(r))
		if err != nil {
			respondServiceError(w, r, ErrMsgListMatchesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, matches)
	}
}

type UpdateMatchRequest struct {
	HomeTeam  *string  `json:"home_team,omitempty" validate:"omitempty,max=100"`
	AwayTeam  *string  `json:"away_team,omitempty" validate:"omitempty,max=100"`
	League    *string  `json:"league,omitempty" validate:"omitempty,max=100"`
	KickoffAt *string  `json:"kickoff_at,omitempty"`
	Venue     *string  `json:"venue,omitempty" validate:"omitempty,max=200"`
	HomeOdds  *float64 `json:"home_odds,omitempty" validate:"omitempty,gt=1"`
	DrawOdds  *float64 `json:"draw_odds,omitempty" validate:"omitempty,gt=1"`
	AwayOdds  *float64 `json:"away_odds,omitempty" validate:"omitempty,gt=1"`
}

// HandleUpdateMatch applies a partial update to a fixture
// @Summary Update match
// @Description Patch fixture fields (admin only)
// @Tags matches
// @Accept json
// @Produce json
// @Param matchID path string true "Match ID"
// @Param request body UpdateMatchRequest true "Fields to update"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/matches/{matchID} [patch]
func HandleUpdateMatch(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "matchID")

		var req UpdateMatchRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update match"); err != nil {
			return
		}

		patch := domain.MatchPatch{
			HomeTeam: req.HomeTeam,
			AwayTeam: req.AwayTeam,
			League:   req.League,
			Venue:    req.Venue,
		}
		if req.KickoffAt != nil {
			kickoff, err := time.Parse(time.RFC3339, *req.KickoffAt)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidDate)
				return
			}
			patch.KickoffAt = &kickoff
		}
		if req.HomeOdds != nil || req.DrawOdds != nil || req.AwayOdds != nil {
			m, err := svc.Get(r.Context(), matchID, false)
			if err != nil {
				respondServiceError(w, r, ErrMsgUpdateMatchFailed, err)
				return
			}
			odds := m.Odds
			if req.HomeOdds != nil {
				odds.Home = *req.HomeOdds
			}
			if req.DrawOdds != nil {
				odds.Draw = *req.DrawOdds
			}
			if req.AwayOdds != nil {
				odds.Away = *req.AwayOdds
			}
			patch.Odds = &odds
		}

		if err := svc.Update(r.Context(), matchID, patch); err != nil {
			respondServiceError(w, r, ErrMsgUpdateMatchFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Match updated"})
	}
}

type RecordResultRequest struct {
	HomeScore *int `json:"home_score" validate:"required,min=0,max=99"`
	AwayScore *int `json:"away_score" validate:"required,min=0,max=99"`
}

// HandleRecordResult finalizes a fixture with its result
// @Summary Record match result
// @Description Mark a match finished and schedule prediction settlement (admin only)
// @Tags matches
// @Accept json
// @Produce json
// @Param matchID path string true "Match ID"
// @Param request body RecordResultRequest true "Final score"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/matches/{matchID}/result [post]
func HandleRecordResult(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		matchID := chi.URLParam(r, "matchID")

		var req RecordResultRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Record result"); err != nil {
			return
		}

		if err := svc.RecordResult(r.Context(), matchID, *req.HomeScore, *req.AwayScore); err != nil {
			respondServiceError(w, r, ErrMsgRecordResultFailed, err)
			return
		}

		log.Info("Result recorded via API", "match_id", matchID,
			"home_score", *req.HomeScore, "away_score", *req.AwayScore)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgResultRecordedSuccess})
	}
}

// HandleDeleteMatch removes a fixture and its predictions
// @Summary Delete match
// @Tags matches
// @Produce json
// @Param matchID path string true "Match ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/matches/{matchID} [delete]
func HandleDeleteMatch(svc match.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "matchID")

		if err := svc.Delete(r.Context(), matchID); err != nil {
			respondServiceError(w, r, ErrMsgDeleteMatchFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMatchDeletedSuccess})
	}
}
