package bookingcode

// DefaultMineLimit caps the creator's own-codes listing
const DefaultMineLimit = 20

// Log message constants
const (
	LogMsgCodeCreated       = "booking code created"
	LogMsgCodeStatusUpdated = "booking code status updated"
)
