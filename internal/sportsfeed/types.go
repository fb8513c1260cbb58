package sportsfeed

import "time"

// Fixture is a normalized feed fixture
type Fixture struct {
	ExternalID string
	HomeTeam   string
	AwayTeam   string
	League     string
	KickoffAt  time.Time
	Venue      string
	HomeLogo   string
	AwayLogo   string

	// In-play data. Goals are nil before kickoff.
	Status    string
	Elapsed   *int
	HomeGoals *int
	AwayGoals *int
}

// Finished reports whether the feed considers the fixture over
func (f *Fixture) Finished() bool {
	return f.Status == StatusFullTime || f.Status == StatusExtraTime || f.Status == StatusPenalties
}

// apiResponse is the wire shape of the fixtures endpoint
type apiResponse struct {
	Response []apiFixture `json:"response"`
}

type apiFixture struct {
	Fixture struct {
		ID     int64  `json:"id"`
		Date   string `json:"date"`
		Status struct {
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
		Venue struct {
			Name string `json:"name"`
		} `json:"venue"`
	} `json:"fixture"`
	League struct {
		Name string `json:"name"`
	} `json:"league"`
	Teams struct {
		Home apiTeam `json:"home"`
		Away apiTeam `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

type apiTeam struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}
