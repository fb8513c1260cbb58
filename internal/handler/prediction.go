package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/betpulse/betpulse/internal/prediction"
)

type GeneratePredictionsRequest struct {
	MatchID string `json:"match_id" validate:"required"`
}

// HandleGeneratePredictions generates predictions for a match
// @Summary Generate predictions
// @Description Produce three model predictions for a match, falling back to odds-implied picks when the model is unavailable
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body GeneratePredictionsRequest true "Match reference"
// @Success 201 {array} domain.Prediction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /predictions/generate [post]
func HandleGeneratePredictions(svc prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GeneratePredictionsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Generate predictions"); err != nil {
			return
		}

		predictions, err := svc.Generate(r.Context(), req.MatchID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGeneratePredictionsFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, predictions)
	}
}

// HandleGetMatchPredictions lists predictions for one match
// @Summary Get match predictions
// @Tags predictions
// @Produce json
// @Param matchID path string true "Match ID"
// @Success 200 {array} domain.Prediction
// @Router /predictions/match/{matchID} [get]
func HandleGetMatchPredictions(svc prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "matchID")

		predictions, err := svc.GetForMatch(r.Context(), matchID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPredictionsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, predictions)
	}
}

// HandleGetTodaysPredictions lists predictions for today's matches
// @Summary Get today's predictions
// @Description Predictions grouped by match for fixtures kicking off today
// @Tags predictions
// @Produce json
// @Success 200 {array} domain.MatchPredictions
// @Router /predictions/today [get]
func HandleGetTodaysPredictions(svc prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		grouped, err := svc.GetTodays(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPredictionsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, grouped)
	}
}

// HandleGetTopPredictions lists high-confidence predictions
// @Summary Get top predictions
// @Description High-confidence predictions joined with their matches, highest confidence first
// @Tags predictions
// @Produce json
// @Param limit query int false "Max rows"
// @Success 200 {array} domain.EnrichedPrediction
// @Router /predictions/top [get]
func HandleGetTopPredictions(svc prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		predictions, err := svc.GetTop(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetPredictionsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, predictions)
	}
}
