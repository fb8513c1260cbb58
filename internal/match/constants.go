package match

// Log messages
const (
	LogMsgMatchCreated       = "Match created"
	LogMsgMatchUpdated       = "Match updated"
	LogMsgMatchDeleted       = "Match deleted"
	LogMsgResultRecorded     = "Match result recorded"
	LogMsgLiveDataUpdated    = "Live match data updated"
	LogMsgSettlementEnqueued = "Settlement scheduled"
)
