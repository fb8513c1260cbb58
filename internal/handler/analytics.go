package handler

import (
	"net/http"

	"github.com/betpulse/betpulse/internal/analytics"
)

// HandleGetOverallStats returns accuracy and ROI across settled predictions
// @Summary Overall performance stats
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.OverallStats
// @Router /analytics/overall [get]
func HandleGetOverallStats(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.GetOverallStats(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetAnalyticsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, stats)
	}
}

// HandleGetWeeklyPerformance returns the trailing-week daily breakdown
// @Summary Weekly performance
// @Tags analytics
// @Produce json
// @Success 200 {array} domain.DailyPerformance
// @Router /analytics/weekly [get]
func HandleGetWeeklyPerformance(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekly, err := svc.GetWeeklyPerformance(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetAnalyticsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, weekly)
	}
}

// HandleGetLeaguePerformance returns per-league accuracy
// @Summary League performance
// @Tags analytics
// @Produce json
// @Success 200 {array} domain.LeaguePerformance
// @Router /analytics/leagues [get]
func HandleGetLeaguePerformance(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := svc.GetLeaguePerformance(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetAnalyticsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, leagues)
	}
}

// HandleGetConfidenceAnalysis returns accuracy per confidence bucket
// @Summary Confidence analysis
// @Tags analytics
// @Produce json
// @Success 200 {array} domain.ConfidenceBucket
// @Router /analytics/confidence [get]
func HandleGetConfidenceAnalysis(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buckets, err := svc.GetConfidenceAnalysis(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetAnalyticsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, buckets)
	}
}
