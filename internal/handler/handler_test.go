package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betpulse/betpulse/internal/auth"
	"github.com/betpulse/betpulse/internal/domain"
	"github.com/betpulse/betpulse/internal/handler"
)

// stubMatchService implements match.Service with canned responses
type stubMatchService struct {
	match       *domain.Match
	matches     []domain.Match
	err         error
	lastGuest   bool
	resultCalls []string
}

func (s *stubMatchService) Create(_ context.Context, m *domain.Match) error {
	if s.err != nil {
		return s.err
	}
	m.ID = "match-new"
	m.Status = domain.MatchStatusUpcoming
	return nil
}

func (s *stubMatchService) Get(_ context.Context, _ string, guest bool) (*domain.Match, error) {
	s.lastGuest = guest
	if s.err != nil {
		return nil, s.err
	}
	return s.match, nil
}

func (s *stubMatchService) ListUpcoming(_ context.Context, _ string, _ int) ([]domain.Match, error) {
	return s.matches, s.err
}

func (s *stubMatchService) ListToday(_ context.Context) ([]domain.Match, error) {
	return s.matches, s.err
}

func (s *stubMatchService) ListLive(_ context.Context, guest bool) ([]domain.Match, error) {
	s.lastGuest = guest
	return s.matches, s.err
}

func (s *stubMatchService) Update(_ context.Context, _ string, _ domain.MatchPatch) error {
	return s.err
}

func (s *stubMatchService) UpdateLiveData(_ context.Context, _ string, _ domain.LiveUpdate) error {
	return s.err
}

func (s *stubMatchService) RecordResult(_ context.Context, matchID string, _, _ int) error {
	if s.err != nil {
		return s.err
	}
	s.resultCalls = append(s.resultCalls, matchID)
	return nil
}

func (s *stubMatchService) Delete(_ context.Context, _ string) error {
	return s.err
}

func newRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	return httptest.NewRequest(method, target, &buf)
}

func withMember(r *http.Request, userID string) *http.Request {
	ctx := auth.WithIdentity(r.Context(), auth.Identity{UserID: userID, Name: "Test User"})
	return r.WithContext(ctx)
}

func withGuest(r *http.Request) *http.Request {
	ctx := auth.WithIdentity(r.Context(), auth.Identity{UserID: "guest-1", IsAnonymous: true})
	return r.WithContext(ctx)
}

func TestHandleGetMatch_GuestFlagFromIdentity(t *testing.T) {
	svc := &stubMatchService{match: &domain.Match{ID: "m1", Status: domain.MatchStatusLive}}

	router := chi.NewRouter()
	router.Get("/matches/{matchID}", handler.HandleGetMatch(svc))

	// No identity at all counts as guest.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newRequest(t, http.MethodGet, "/matches/m1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.lastGuest)

	// Anonymous identity counts as guest.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, withGuest(newRequest(t, http.MethodGet, "/matches/m1", nil)))
	assert.True(t, svc.lastGuest)

	// Full account is not a guest.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, withMember(newRequest(t, http.MethodGet, "/matches/m1", nil), "u1"))
	assert.False(t, svc.lastGuest)
}

func TestHandleGetMatch_NotFound(t *testing.T) {
	svc := &stubMatchService{err: domain.ErrMatchNotFound}

	router := chi.NewRouter()
	router.Get("/matches/{matchID}", handler.HandleGetMatch(svc))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newRequest(t, http.MethodGet, "/matches/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handler.ErrMsgMatchNotFoundHTTP, resp.Error)
}

func TestHandleCreateMatch_Validation(t *testing.T) {
	handler.InitValidator()
	svc := &stubMatchService{}

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name: "Success",
			body: handler.CreateMatchRequest{
				HomeTeam:  "Arsenal",
				AwayTeam:  "Chelsea",
				League:    "Premier League",
				KickoffAt: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
				HomeOdds:  2.1,
				DrawOdds:  3.3,
				AwayOdds:  3.4,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Missing home team",
			body: handler.CreateMatchRequest{
				AwayTeam:  "Chelsea",
				League:    "Premier League",
				KickoffAt: time.Now().Format(time.RFC3339),
				HomeOdds:  2.1,
				DrawOdds:  3.3,
				AwayOdds:  3.4,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Bad kickoff timestamp",
			body: handler.CreateMatchRequest{
				HomeTeam:  "Arsenal",
				AwayTeam:  "Chelsea",
				League:    "Premier League",
				KickoffAt: "next tuesday",
				HomeOdds:  2.1,
				DrawOdds:  3.3,
				AwayOdds:  3.4,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			body:           "not json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := newRequest(t, http.MethodPost, "/admin/matches", tt.body)
			handler.HandleCreateMatch(svc)(rec, req)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHandleRecordResult_ZeroScoresAreValid(t *testing.T) {
	handler.InitValidator()
	svc := &stubMatchService{}

	router := chi.NewRouter()
	router.Post("/admin/matches/{matchID}/result", handler.HandleRecordResult(svc))

	home, away := 0, 0
	rec := httptest.NewRecorder()
	req := newRequest(t, http.MethodPost, "/admin/matches/m1/result",
		handler.RecordResultRequest{HomeScore: &home, AwayScore: &away})
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"m1"}, svc.resultCalls)
}

func TestHandleRecordResult_MissingScores(t *testing.T) {
	handler.InitValidator()
	svc := &stubMatchService{}

	router := chi.NewRouter()
	router.Post("/admin/matches/{matchID}/result", handler.HandleRecordResult(svc))

	rec := httptest.NewRecorder()
	req := newRequest(t, http.MethodPost, "/admin/matches/m1/result", map[string]int{"home_score": 2})
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.resultCalls)
}

func TestHandleListUpcomingMatches_InvalidLimit(t *testing.T) {
	svc := &stubMatchService{}
	rec := httptest.NewRecorder()

	handler.HandleListUpcomingMatches(svc)(rec, newRequest(t, http.MethodGet, "/matches/upcoming?limit=abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
