package prediction

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/betpulse/betpulse/internal/domain"
)

// candidate is one prediction as proposed by the model or the fallback,
// before odds and return are attached
type candidate struct {
	Type       domain.PredictionType `json:"type"`
	Prediction string                `json:"prediction"`
	Confidence int                   `json:"confidence"`
	Reasoning  string                `json:"reasoning"`
}

type modelResponse struct {
	Predictions []candidate `json:"predictions"`
}

// buildPrompt renders the analysis request for one match
func buildPrompt(match *domain.Match) string {
	return fmt.Sprintf(`Analyze: %s vs %s (%s)
Odds: H%g D%g A%g

Provide 3 predictions as JSON:
1. Match result: Home/Draw/Away
2. Goals: "Over 1.5"/"Over 2.5"/"Over 3.5"/"Under 3.5"/"Under 4.5"
3. Both teams score: Yes/No

Format:
{"predictions":[{"type":"match_result","prediction":"Home","confidence":75,"reasoning":"Strong home form"},{"type":"over_under","prediction":"Over 2.5","confidence":68,"reasoning":"Both teams attacking"},{"type":"both_teams_score","prediction":"Yes","confidence":72,"reasoning":"Weak defenses"}]}`,
		match.HomeTeam, match.AwayTeam, match.League,
		match.Odds.Home, match.Odds.Draw, match.Odds.Away)
}

// parseModelResponse decodes the completion and enforces the output
// contract: exactly three well-formed predictions
func parseModelResponse(content string) ([]candidate, error) {
	var parsed modelResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &parsed); err != nil {
		return nil, fmt.Errorf("malformed prediction payload: %w", err)
	}
	if len(parsed.Predictions) != PredictionsPerMatch {
		return nil, fmt.Errorf("expected %d predictions, got %d", PredictionsPerMatch, len(parsed.Predictions))
	}
	for _, c := range parsed.Predictions {
		switch c.Type {
		case domain.PredictionTypeMatchResult, domain.PredictionTypeOverUnder, domain.PredictionTypeBothTeamsScore:
		default:
			return nil, fmt.Errorf("unknown prediction type %q", c.Type)
		}
		if c.Prediction == "" {
			return nil, fmt.Errorf("empty prediction label for type %s", c.Type)
		}
		if c.Confidence < 0 || c.Confidence > 100 {
			return nil, fmt.Errorf("confidence %d out of range for type %s", c.Confidence, c.Type)
		}
	}
	return parsed.Predictions, nil
}

// fallbackCandidates derives deterministic predictions from the moneyline.
// The highest implied probability (1/odds) picks the match-result label;
// the goals and BTTS markets get fixed league-average picks.
func fallbackCandidates(match *domain.Match) []candidate {
	homeProb := 1 / match.Odds.Home
	drawProb := 1 / match.Odds.Draw
	awayProb := 1 / match.Odds.Away

	maxProb := math.Max(homeProb, math.Max(drawProb, awayProb))
	result := domain.ResultDraw
	if maxProb == homeProb {
		result = domain.ResultHome
	} else if maxProb == awayProb {
		result = domain.ResultAway
	}

	return []candidate{
		{
			Type:       domain.PredictionTypeMatchResult,
			Prediction: result,
			Confidence: int(math.Round(maxProb * 100)),
			Reasoning:  FallbackResultReasoning,
		},
		{
			Type:       domain.PredictionTypeOverUnder,
			Prediction: FallbackOverUnderLabel,
			Confidence: FallbackOverUnderScore,
			Reasoning:  FallbackOverUnderReasoning,
		},
		{
			Type:       domain.PredictionTypeBothTeamsScore,
			Prediction: FallbackBTTSLabel,
			Confidence: FallbackBTTSScore,
			Reasoning:  FallbackBTTSReasoning,
		},
	}
}

// impliedOdds selects the stored odds for a candidate: the matching
// moneyline price for match-result picks, a placeholder for the rest
func impliedOdds(c candidate, match *domain.Match) float64 {
	if c.Type != domain.PredictionTypeMatchResult {
		return domain.PlaceholderOdds
	}
	switch c.Prediction {
	case domain.ResultHome:
		return match.Odds.Home
	case domain.ResultDraw:
		return match.Odds.Draw
	default:
		return match.Odds.Away
	}
}

// generate resolves candidates for a match, preferring the model and
// falling back on any failure. The second return reports which path ran.
func (s *service) generate(ctx context.Context, match *domain.Match) ([]candidate, string) {
	content, err := s.llm.Complete(ctx, systemPrompt, buildPrompt(match))
	if err != nil {
		return fallbackCandidates(match), FallbackModelName
	}
	candidates, err := parseModelResponse(content)
	if err != nil {
		return fallbackCandidates(match), FallbackModelName
	}
	return candidates, s.llm.Model()
}
