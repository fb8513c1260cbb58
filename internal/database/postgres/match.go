package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/betpulse/betpulse/internal/domain"
)

// MatchRepository implements the match repository for PostgreSQL
type MatchRepository struct {
	db *pgxpool.Pool
}

// NewMatchRepository creates a new MatchRepository
func NewMatchRepository(db *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{db: db}
}

const matchColumns = `match_id, home_team, away_team, league, kickoff_at, status,
	home_score, away_score, odds_home, odds_draw, odds_away, external_id,
	venue, home_team_logo, away_team_logo, minute, half_time, extra_time,
	penalties, last_updated, created_at`

func scanMatch(row pgx.Row) (*domain.Match, error) {
	var m domain.Match
	var externalID, venue, homeLogo, awayLogo *string
	err := row.Scan(
		&m.ID, &m.HomeTeam, &m.AwayTeam, &m.League, &m.KickoffAt, &m.Status,
		&m.HomeScore, &m.AwayScore, &m.Odds.Home, &m.Odds.Draw, &m.Odds.Away,
		&externalID, &venue, &homeLogo, &awayLogo, &m.Minute, &m.HalfTime,
		&m.ExtraTime, &m.Penalties, &m.LastUpdated, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if externalID != nil {
		m.ExternalID = *externalID
	}
	if venue != nil {
		m.Venue = *venue
	}
	if homeLogo != nil {
		m.HomeTeamLogo = *homeLogo
	}
	if awayLogo != nil {
		m.AwayTeamLogo = *awayLogo
	}
	return &m, nil
}

func collectMatches(rows pgx.Rows) ([]domain.Match, error) {
	defer rows.Close()
	var matches []domain.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, *m)
	}
	return matches, rows.Err()
}

// CreateMatch inserts a new fixture and fills in the generated ID
func (r *MatchRepository) CreateMatch(ctx context.Context, match *domain.Match) error {
	query := `
		INSERT INTO matches (home_team, away_team, league, kickoff_at, status,
			odds_home, odds_draw, odds_away, external_id, venue,
			home_team_logo, away_team_logo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''),
			NULLIF($11, ''), NULLIF($12, ''))
		RETURNING match_id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		match.HomeTeam, match.AwayTeam, match.League, match.KickoffAt, match.Status,
		match.Odds.Home, match.Odds.Draw, match.Odds.Away, match.ExternalID,
		match.Venue, match.HomeTeamLogo, match.AwayTeamLogo,
	).Scan(&match.ID, &match.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

// GetMatchByID fetches a single fixture
func (r *MatchRepository) GetMatchByID(ctx context.Context, matchID string) (*domain.Match, error) {
	query := fmt.Sprintf("SELECT %s FROM matches WHERE match_id = $1", matchColumns)
	m, err := scanMatch(r.db.QueryRow(ctx, query, matchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

// GetMatchByExternalID looks up a fixture by its feed identifier
func (r *MatchRepository) GetMatchByExternalID(ctx context.Context, externalID string) (*domain.Match, error) {
	query := fmt.Sprintf("SELECT %s FROM matches WHERE external_id = $1", matchColumns)
	m, err := scanMatch(r.db.QueryRow(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match by external id: %w", err)
	}
	return m, nil
}

// UpdateMatch applies a partial patch and stamps last_updated
func (r *MatchRepository) UpdateMatch(ctx context.Context, matchID string, patch domain.MatchPatch) error {
	sets := []string{"last_updated = NOW()"}
	args := []interface{}{matchID}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.HomeTeam != nil {
		add("home_team", *patch.HomeTeam)
	}
	if patch.AwayTeam != nil {
		add("away_team", *patch.AwayTeam)
	}
	if patch.League != nil {
		add("league", *patch.League)
	}
	if patch.KickoffAt != nil {
		add("kickoff_at", *patch.KickoffAt)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.HomeScore != nil {
		add("home_score", *patch.HomeScore)
	}
	if patch.AwayScore != nil {
		add("away_score", *patch.AwayScore)
	}
	if patch.Odds != nil {
		add("odds_home", patch.Odds.Home)
		add("odds_draw", patch.Odds.Draw)
		add("odds_away", patch.Odds.Away)
	}
	if patch.Venue != nil {
		add("venue", *patch.Venue)
	}
	if patch.Minute != nil {
		add("minute", *patch.Minute)
	}
	if patch.HalfTime != nil {
		add("half_time", *patch.HalfTime)
	}
	if patch.ExtraTime != nil {
		add("extra_time", *patch.ExtraTime)
	}
	if patch.Penalties != nil {
		add("penalties", *patch.Penalties)
	}

	query := fmt.Sprintf("UPDATE matches SET %s WHERE match_id = $1", strings.Join(sets, ", "))
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

// DeleteMatch removes a fixture and, via cascade, its predictions
func (r *MatchRepository) DeleteMatch(ctx context.Context, matchID string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM matches WHERE match_id = $1", matchID)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

// GetUpcomingMatches lists upcoming fixtures sorted ascending by kickoff
func (r *MatchRepository) GetUpcomingMatches(ctx context.Context, after time.Time, league string, limit int) ([]domain.Match, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM matches
		WHERE status = 'upcoming' AND kickoff_at >= $1
		  AND ($2 = '' OR league = $2)
		ORDER BY kickoff_at ASC
		LIMIT $3
	`, matchColumns)
	rows, err := r.db.Query(ctx, query, after, league, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming matches: %w", err)
	}
	return collectMatches(rows)
}

// GetMatchesInWindow lists fixtures with kickoff inside [from, to)
func (r *MatchRepository) GetMatchesInWindow(ctx context.Context, from, to time.Time) ([]domain.Match, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM matches
		WHERE kickoff_at >= $1 AND kickoff_at < $2
		ORDER BY kickoff_at ASC
	`, matchColumns)
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches in window: %w", err)
	}
	return collectMatches(rows)
}

// GetMatchesByStatus lists fixtures in a given lifecycle state
func (r *MatchRepository) GetMatchesByStatus(ctx context.Context, status domain.MatchStatus) ([]domain.Match, error) {
	query := fmt.Sprintf("SELECT %s FROM matches WHERE status = $1 ORDER BY kickoff_at ASC", matchColumns)
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches by status: %w", err)
	}
	return collectMatches(rows)
}

// GetAllMatches lists every fixture (analytics scan)
func (r *MatchRepository) GetAllMatches(ctx context.Context) ([]domain.Match, error) {
	query := fmt.Sprintf("SELECT %s FROM matches", matchColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	return collectMatches(rows)
}
