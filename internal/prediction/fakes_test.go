package prediction

import (
	"context"
	"fmt"
	"time"

	"github.com/betpulse/betpulse/internal/domain"
)

type fakeMatchRepo struct {
	matches map[string]*domain.Match
}

func newFakeMatchRepo(matches ...*domain.Match) *fakeMatchRepo {
	repo := &fakeMatchRepo{matches: make(map[string]*domain.Match)}
	for _, m := range matches {
		repo.matches[m.ID] = m
	}
	return repo
}

func (r *fakeMatchRepo) CreateMatch(_ context.Context, match *domain.Match) error {
	if match.ID == "" {
		match.ID = fmt.Sprintf("match-%d", len(r.matches)+1)
	}
	r.matches[match.ID] = match
	return nil
}

func (r *fakeMatchRepo) GetMatchByID(_ context.Context, matchID string) (*domain.Match, error) {
	m, ok := r.matches[matchID]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMatchRepo) GetMatchByExternalID(_ context.Context, externalID string) (*domain.Match, error) {
	for _, m := range r.matches {
		if m.ExternalID == externalID {
			copied := *m
			return &copied, nil
		}
	}
	return nil, domain.ErrMatchNotFound
}

func (r *fakeMatchRepo) UpdateMatch(_ context.Context, matchID string, patch domain.MatchPatch) error {
	m, ok := r.matches[matchID]
	if !ok {
		return domain.ErrMatchNotFound
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.HomeScore != nil {
		m.HomeScore = patch.HomeScore
	}
	if patch.AwayScore != nil {
		m.AwayScore = patch.AwayScore
	}
	return nil
}

func (r *fakeMatchRepo) DeleteMatch(_ context.Context, matchID string) error {
	if _, ok := r.matches[matchID]; !ok {
		return domain.ErrMatchNotFound
	}
	delete(r.matches, matchID)
	return nil
}

func (r *fakeMatchRepo) GetUpcomingMatches(_ context.Context, _ time.Time, _ string, _ int) ([]domain.Match, error) {
	return nil, nil
}

func (r *fakeMatchRepo) GetMatchesInWindow(_ context.Context, from, to time.Time) ([]domain.Match, error) {
	var out []domain.Match
	for _, m := range r.matches {
		if !m.KickoffAt.Before(from) && m.KickoffAt.Before(to) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) GetMatchesByStatus(_ context.Context, status domain.MatchStatus) ([]domain.Match, error) {
	var out []domain.Match
	for _, m := range r.matches {
		if m.Status == status {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMatchRepo) GetAllMatches(_ context.Context) ([]domain.Match, error) {
	var out []domain.Match
	for _, m := range r.matches {
		out = append(out, *m)
	}
	return out, nil
}

type fakePredictionRepo struct {
	rows []domain.Prediction
}

func (r *fakePredictionRepo) CreatePrediction(_ context.Context, p *domain.Prediction) error {
	p.ID = fmt.Sprintf("pred-%d", len(r.rows)+1)
	p.Status = domain.PredictionStatusPending
	p.CreatedAt = time.Now()
	r.rows = append(r.rows, *p)
	return nil
}

func (r *fakePredictionRepo) GetPredictionsForMatch(_ context.Context, matchID string) ([]domain.Prediction, error) {
	var out []domain.Prediction
	for _, p := range r.rows {
		if p.MatchID == matchID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePredictionRepo) GetTopPredictions(_ context.Context, minConfidence, limit int) ([]domain.Prediction, error) {
	var out []domain.Prediction
	for _, p := range r.rows {
		if p.Confidence >= minConfidence && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePredictionRepo) GetAllPredictions(_ context.Context) ([]domain.Prediction, error) {
	return append([]domain.Prediction(nil), r.rows...), nil
}

func (r *fakePredictionRepo) SettlePrediction(_ context.Context, predictionID string, status domain.PredictionStatus, actualResult string) error {
	for i := range r.rows {
		if r.rows[i].ID == predictionID && r.rows[i].Status == domain.PredictionStatusPending {
			r.rows[i].Status = status
			r.rows[i].ActualResult = actualResult
		}
	}
	return nil
}

type fakeLLM struct {
	content string
	err     error
	model   string
}

func (f *fakeLLM) Complete(_ context.Context, _, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

func (f *fakeLLM) Model() string {
	if f.model == "" {
		return "gpt-4.1-nano"
	}
	return f.model
}
