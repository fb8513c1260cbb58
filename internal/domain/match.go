package domain

import "time"

// MatchStatus is the lifecycle state of a fixture
type MatchStatus string

const (
	MatchStatusUpcoming MatchStatus = "upcoming"
	MatchStatusLive     MatchStatus = "live"
	MatchStatusFinished MatchStatus = "finished"
)

// Odds holds the moneyline prices for a match
type Odds struct {
	Home float64 `json:"home"`
	Draw float64 `json:"draw"`
	Away float64 `json:"away"`
}

// Match represents a scheduled or played fixture
type Match struct {
	ID           string      `json:"id"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	League       string      `json:"league"`
	KickoffAt    time.Time   `json:"kickoff_at"`
	Status       MatchStatus `json:"status"`
	HomeScore    *int        `json:"home_score,omitempty"`
	AwayScore    *int        `json:"away_score,omitempty"`
	Odds         Odds        `json:"odds"`
	ExternalID   string      `json:"external_id,omitempty"`
	Venue        string      `json:"venue,omitempty"`
	HomeTeamLogo string      `json:"home_team_logo,omitempty"`
	AwayTeamLogo string      `json:"away_team_logo,omitempty"`
	Minute       *int        `json:"minute,omitempty"`
	HalfTime     *bool       `json:"half_time,omitempty"`
	ExtraTime    *bool       `json:"extra_time,omitempty"`
	Penalties    *bool       `json:"penalties,omitempty"`
	Restricted   bool        `json:"restricted,omitempty"`
	LastUpdated  *time.Time  `json:"last_updated,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// MatchPatch is a partial update applied by admins.
// Nil fields are left unchanged.
type MatchPatch struct {
	HomeTeam  *string
	AwayTeam  *string
	League    *string
	KickoffAt *time.Time
	Status    *MatchStatus
	HomeScore *int
	AwayScore *int
	Odds      *Odds
	Venue     *string
	Minute    *int
	HalfTime  *bool
	ExtraTime *bool
	Penalties *bool
}

// LiveUpdate carries in-play data for a live match
type LiveUpdate struct {
	HomeScore int
	AwayScore int
	Minute    *int
	HalfTime  *bool
	ExtraTime *bool
	Penalties *bool
}

// RedactLiveData clears in-play fields for restricted callers.
// This is a display-layer redaction; the stored row is unchanged.
func (m *Match) RedactLiveData() {
	m.HomeScore = nil
	m.AwayScore = nil
	m.Minute = nil
	m.HalfTime = nil
	m.ExtraTime = nil
	m.Penalties = nil
	m.Restricted = true
}

// TotalGoals returns the combined score, or false if scores are unset
func (m *Match) TotalGoals() (int, bool) {
	if m.HomeScore == nil || m.AwayScore == nil {
		return 0, false
	}
	return *m.HomeScore + *m.AwayScore, true
}
