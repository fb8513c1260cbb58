package prediction

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betpulse/betpulse/internal/domain"
)

func sampleMatch() *domain.Match {
	return &domain.Match{
		ID:        "match-1",
		HomeTeam:  "Manchester United",
		AwayTeam:  "Liverpool",
		League:    "Premier League",
		KickoffAt: time.Now().Add(24 * time.Hour),
		Status:    domain.MatchStatusUpcoming,
		Odds:      domain.Odds{Home: 2.0, Draw: 3.0, Away: 2.5},
	}
}

const validModelOutput = `{"predictions":[
	{"type":"match_result","prediction":"Home","confidence":75,"reasoning":"Strong home form"},
	{"type":"over_under","prediction":"Over 2.5","confidence":68,"reasoning":"Both teams attacking"},
	{"type":"both_teams_score","prediction":"Yes","confidence":72,"reasoning":"Weak defenses"}]}`

func TestGenerate_ModelPath(t *testing.T) {
	matchRepo := newFakeMatchRepo(sampleMatch())
	predRepo := &fakePredictionRepo{}
	svc := NewService(matchRepo, predRepo, &fakeLLM{content: validModelOutput})

	created, err := svc.Generate(context.Background(), "match-1")
	require.NoError(t, err)
	require.Len(t, created, 3)

	byType := map[domain.PredictionType]domain.Prediction{}
	for _, p := range created {
		assert.Equal(t, "gpt-4.1-nano", p.AIModel)
		assert.Equal(t, domain.PredictionStatusPending, p.Status)
		byType[p.Type] = p
	}

	// Match-result pick carries its moneyline price; other markets get
	// the placeholder.
	result := byType[domain.PredictionTypeMatchResult]
	assert.Equal(t, "Home", result.Predicted)
	assert.Equal(t, 2.0, result.Odds)
	assert.Equal(t, 20.0, result.PotentialReturn)

	overUnder := byType[domain.PredictionTypeOverUnder]
	assert.Equal(t, domain.PlaceholderOdds, overUnder.Odds)
	assert.Equal(t, domain.PlaceholderOdds*10, overUnder.PotentialReturn)
}

func TestGenerate_FallbackPath(t *testing.T) {
	matchRepo := newFakeMatchRepo(sampleMatch())
	predRepo := &fakePredictionRepo{}
	svc := NewService(matchRepo, predRepo, &fakeLLM{err: domain.ErrLLMUnavailable})

	created, err := svc.Generate(context.Background(), "match-1")
	require.NoError(t, err)
	require.Len(t, created, 3)

	byType := map[domain.PredictionType]domain.Prediction{}
	for _, p := range created {
		assert.Equal(t, FallbackModelName, p.AIModel)
		byType[p.Type] = p
	}

	// Home odds 2.0 give the largest implied probability (0.5).
	result := byType[domain.PredictionTypeMatchResult]
	assert.Equal(t, domain.ResultHome, result.Predicted)
	assert.Equal(t, 50, result.Confidence)
	assert.Equal(t, FallbackResultReasoning, result.Reasoning)

	overUnder := byType[domain.PredictionTypeOverUnder]
	assert.Equal(t, FallbackOverUnderLabel, overUnder.Predicted)
	assert.Equal(t, FallbackOverUnderScore, overUnder.Confidence)

	btts := byType[domain.PredictionTypeBothTeamsScore]
	assert.Equal(t, FallbackBTTSLabel, btts.Predicted)
	assert.Equal(t, FallbackBTTSScore, btts.Confidence)
}

func TestGenerate_AlwaysThreeRows(t *testing.T) {
	tests := []struct {
		name string
		llm  *fakeLLM
	}{
		{"model ok", &fakeLLM{content: validModelOutput}},
		{"network error", &fakeLLM{err: domain.ErrLLMUnavailable}},
		{"non-JSON content", &fakeLLM{content: "I think the home side wins"}},
		{"wrong count", &fakeLLM{content: `{"predictions":[{"type":"match_result","prediction":"Home","confidence":75,"reasoning":"x"}]}`}},
		{"unknown type", &fakeLLM{content: `{"predictions":[
			{"type":"correct_score","prediction":"2-1","confidence":70,"reasoning":"x"},
			{"type":"over_under","prediction":"Over 2.5","confidence":68,"reasoning":"x"},
			{"type":"both_teams_score","prediction":"Yes","confidence":72,"reasoning":"x"}]}`}},
		{"confidence out of range", &fakeLLM{content: `{"predictions":[
			{"type":"match_result","prediction":"Home","confidence":120,"reasoning":"x"},
			{"type":"over_under","prediction":"Over 2.5","confidence":68,"reasoning":"x"},
			{"type":"both_teams_score","prediction":"Yes","confidence":72,"reasoning":"x"}]}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matchRepo := newFakeMatchRepo(sampleMatch())
			predRepo := &fakePredictionRepo{}
			svc := NewService(matchRepo, predRepo, tt.llm)

			created, err := svc.Generate(context.Background(), "match-1")
			require.NoError(t, err)
			assert.Len(t, created, 3)

			stored, err := predRepo.GetPredictionsForMatch(context.Background(), "match-1")
			require.NoError(t, err)
			assert.Len(t, stored, 3)
		})
	}
}

func TestGenerate_AppendsOnRepeat(t *testing.T) {
	matchRepo := newFakeMatchRepo(sampleMatch())
	predRepo := &fakePredictionRepo{}
	svc := NewService(matchRepo, predRepo, &fakeLLM{err: domain.ErrLLMUnavailable})

	_, err := svc.Generate(context.Background(), "match-1")
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), "match-1")
	require.NoError(t, err)

	stored, _ := predRepo.GetPredictionsForMatch(context.Background(), "match-1")
	assert.Len(t, stored, 6)
}

func TestGenerate_MatchNotFound(t *testing.T) {
	svc := NewService(newFakeMatchRepo(), &fakePredictionRepo{}, &fakeLLM{content: validModelOutput})

	_, err := svc.Generate(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}

func TestFallbackCandidates_PicksMaxImpliedProbability(t *testing.T) {
	tests := []struct {
		name       string
		odds       domain.Odds
		want       string
		confidence int
	}{
		{"home favourite", domain.Odds{Home: 2.0, Draw: 3.0, Away: 2.5}, domain.ResultHome, 50},
		{"away favourite", domain.Odds{Home: 4.0, Draw: 3.5, Away: 1.8}, domain.ResultAway, 56},
		{"draw favourite", domain.Odds{Home: 3.5, Draw: 2.2, Away: 3.5}, domain.ResultDraw, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sampleMatch()
			m.Odds = tt.odds

			candidates := fallbackCandidates(m)
			require.Len(t, candidates, 3)
			assert.Equal(t, tt.want, candidates[0].Prediction)
			assert.Equal(t, tt.confidence, candidates[0].Confidence)
		})
	}
}
