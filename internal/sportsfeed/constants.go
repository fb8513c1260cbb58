package sportsfeed

import "time"

// Feed request settings
const (
	HeaderAPIKey  = "x-rapidapi-key"
	HeaderAPIHost = "x-rapidapi-host"

	DefaultTimeout = 15 * time.Second
	DateLayout     = "2006-01-02"
)

// Fixture status codes from the feed
const (
	StatusFullTime   = "FT"
	StatusExtraTime  = "AET"
	StatusPenalties  = "PEN"
	StatusHalfTime   = "HT"
	StatusNotStarted = "NS"
)

// Log message constants
const (
	LogMsgFeedRequest = "football feed request"
)
