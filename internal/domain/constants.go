package domain

import "time"

// AnonymousDisplayName is the fallback chat display name
const AnonymousDisplayName = "Anonymous"

// Prediction economics
const (
	// NotionalStake is the fixed stake basis used for potential-return
	// display figures and the analytics ROI proxy.
	NotionalStake = 10.0

	// PlaceholderOdds is assigned to over/under and both-teams-score
	// predictions, which have no moneyline price of their own.
	PlaceholderOdds = 2.0
)

// Presence windows
const (
	// PresenceOnlineWindow bounds the "online now" view.
	PresenceOnlineWindow = 5 * time.Minute

	// PresenceRetention is how long stale presence rows are kept
	// before the cleanup job removes them.
	PresenceRetention = time.Hour
)

// Query caps
const (
	DefaultMatchListLimit   = 20
	DefaultMessageLimit     = 50
	DefaultBookingCodeLimit = 10
	DefaultTopPredictions   = 10
	MaxOnlineUsers          = 50
	PresenceCleanupBatch    = 100
)
