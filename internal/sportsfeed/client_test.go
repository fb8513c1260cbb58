package sportsfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betpulse/betpulse/internal/domain"
)

const fixturePayload = `{
	"response": [
		{
			"fixture": {
				"id": 1035045,
				"date": "2026-09-01T19:00:00+00:00",
				"status": {"short": "FT", "elapsed": 90},
				"venue": {"name": "Emirates Stadium"}
			},
			"league": {"name": "premier league"},
			"teams": {
				"home": {"name": " arsenal ", "logo": "https://media.example/arsenal.png"},
				"away": {"name": "chelsea", "logo": "https://media.example/chelsea.png"}
			},
			"goals": {"home": 2, "away": 1}
		}
	]
}`

// testClient points an HTTPClient at a local test server.
func testClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewHTTPClient("test-key", strings.TrimPrefix(server.URL, "http://"))
	client.httpClient = server.Client()
	// The feed is https-only in production; the test server is not.
	client.httpClient.Transport = &schemeRewriter{inner: http.DefaultTransport}
	return client
}

type schemeRewriter struct {
	inner http.RoundTripper
}

func (s *schemeRewriter) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	return s.inner.RoundTrip(req)
}

func TestFixturesByDate_NormalizesNames(t *testing.T) {
	var gotKey, gotQuery string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get(HeaderAPIKey)
		gotQuery = r.URL.RawQuery
		w.Write([]byte(fixturePayload))
	})

	fixtures, err := client.FixturesByDate(context.Background(), mustDate(t, "2026-09-01"), "39")
	require.NoError(t, err)
	require.Len(t, fixtures, 1)

	assert.Equal(t, "test-key", gotKey)
	assert.Contains(t, gotQuery, "date=2026-09-01")
	assert.Contains(t, gotQuery, "league=39")

	f := fixtures[0]
	assert.Equal(t, "1035045", f.ExternalID)
	assert.Equal(t, "Arsenal", f.HomeTeam)
	assert.Equal(t, "Chelsea", f.AwayTeam)
	assert.Equal(t, "Premier League", f.League)
	assert.Equal(t, "Emirates Stadium", f.Venue)
	assert.True(t, f.Finished())
	require.NotNil(t, f.HomeGoals)
	assert.Equal(t, 2, *f.HomeGoals)
}

func TestFixtureByID_NotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"response": []}`))
	})

	_, err := client.FixtureByID(context.Background(), "999")
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}

func TestFetchFixtures_MissingKey(t *testing.T) {
	client := NewHTTPClient("", "v3.football.api-sports.io")

	_, err := client.FixturesByDate(context.Background(), mustDate(t, "2026-09-01"), "")
	assert.ErrorIs(t, err, domain.ErrFeedKeyMissing)
}

func TestFetchFixtures_UpstreamError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.FixturesByDate(context.Background(), mustDate(t, "2026-09-01"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(DateLayout, value)
	require.NoError(t, err)
	return parsed
}
