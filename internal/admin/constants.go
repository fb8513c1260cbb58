package admin

// MaxImportPerRun caps how many fixtures one import call will create
const MaxImportPerRun = 20

// Default moneyline prices for imported fixtures. The feed's fixture
// endpoint carries no odds; admins adjust these after import.
const (
	DefaultHomeOdds = 2.0
	DefaultDrawOdds = 3.0
	DefaultAwayOdds = 2.5
)

// Log message constants
const (
	LogMsgImportStarted    = "fixture import started"
	LogMsgImportFinished   = "fixture import finished"
	LogMsgFixtureSkipped   = "fixture already imported"
	LogMsgLivePollStarted  = "live update poll started"
	LogMsgLivePollFinished = "live update poll finished"
	LogMsgLivePollFailed   = "live update failed for match"
	LogMsgUserPromoted     = "user promoted to admin"
)

// ErrMsg constants for soft-failure import results
const (
	MsgFeedUnavailable = "fixture feed is not configured"
	MsgImportComplete  = "fixtures imported"
)
