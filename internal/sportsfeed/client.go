package sportsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/betpulse/betpulse/internal/domain"
	"github.com/betpulse/betpulse/internal/logger"
)

// Client defines the interface for the football fixtures feed
type Client interface {
	// FixturesByDate lists fixtures kicking off on the given calendar day,
	// optionally filtered to one league.
	FixturesByDate(ctx context.Context, date time.Time, leagueID string) ([]Fixture, error)

	// FixtureByID fetches one fixture by its feed identifier.
	FixtureByID(ctx context.Context, externalID string) (*Fixture, error)
}

// HTTPClient talks to the api-football v3 fixtures endpoint
type HTTPClient struct {
	apiKey     string
	host       string
	httpClient *http.Client
	titler     cases.Caser
}

// NewHTTPClient creates a feed client. An empty API key is allowed;
// requests then fail with domain.ErrFeedKeyMissing so callers can
// degrade gracefully.
func NewHTTPClient(apiKey, host string) *HTTPClient {
	return &HTTPClient{
		apiKey:     apiKey,
		host:       host,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		titler:     cases.Title(language.English, cases.NoLower),
	}
}

// FixturesByDate lists fixtures for one calendar day
func (c *HTTPClient) FixturesByDate(ctx context.Context, date time.Time, leagueID string) ([]Fixture, error) {
	params := url.Values{"date": {date.Format(DateLayout)}}
	if leagueID != "" {
		params.Set("league", leagueID)
	}
	return c.fetchFixtures(ctx, params)
}

// FixtureByID fetches a single fixture
func (c *HTTPClient) FixtureByID(ctx context.Context, externalID string) (*Fixture, error) {
	fixtures, err := c.fetchFixtures(ctx, url.Values{"id": {externalID}})
	if err != nil {
		return nil, err
	}
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("%w: fixture %s", domain.ErrMatchNotFound, externalID)
	}
	return &fixtures[0], nil
}

func (c *HTTPClient) fetchFixtures(ctx context.Context, params url.Values) ([]Fixture, error) {
	log := logger.FromContext(ctx)

	if c.apiKey == "" {
		return nil, domain.ErrFeedKeyMissing
	}

	endpoint := fmt.Sprintf("https://%s/fixtures?%s", c.host, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	req.Header.Set(HeaderAPIKey, c.apiKey)
	req.Header.Set(HeaderAPIHost, c.host)

	log.Debug(LogMsgFeedRequest, "params", params.Encode())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach football feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("football feed returned status %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	fixtures := make([]Fixture, 0, len(payload.Response))
	for _, raw := range payload.Response {
		fixtures = append(fixtures, c.normalize(raw))
	}
	return fixtures, nil
}

// normalize converts a wire fixture, title-casing team and league names
// which the feed occasionally delivers in inconsistent casing.
func (c *HTTPClient) normalize(raw apiFixture) Fixture {
	kickoff, _ := time.Parse(time.RFC3339, raw.Fixture.Date)
	return Fixture{
		ExternalID: strconv.FormatInt(raw.Fixture.ID, 10),
		HomeTeam:   c.normalizeName(raw.Teams.Home.Name),
		AwayTeam:   c.normalizeName(raw.Teams.Away.Name),
		League:     c.normalizeName(raw.League.Name),
		KickoffAt:  kickoff,
		Venue:      raw.Fixture.Venue.Name,
		HomeLogo:   raw.Teams.Home.Logo,
		AwayLogo:   raw.Teams.Away.Logo,
		Status:     raw.Fixture.Status.Short,
		Elapsed:    raw.Fixture.Status.Elapsed,
		HomeGoals:  raw.Goals.Home,
		AwayGoals:  raw.Goals.Away,
	}
}

func (c *HTTPClient) normalizeName(name string) string {
	return c.titler.String(strings.TrimSpace(name))
}
