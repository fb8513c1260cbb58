package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidDate       = "Invalid date parameter, expected YYYY-MM-DD"

	// Match error messages
	ErrMsgListMatchesFailed  = "Failed to list matches"
	ErrMsgGetMatchFailed     = "Failed to get match"
	ErrMsgCreateMatchFailed  = "Failed to create match"
	ErrMsgUpdateMatchFailed  = "Failed to update match"
	ErrMsgRecordResultFailed = "Failed to record result"
	ErrMsgDeleteMatchFailed  = "Failed to delete match"

	// Prediction error messages
	ErrMsgGeneratePredictionsFailed = "Failed to generate predictions"
	ErrMsgGetPredictionsFailed      = "Failed to get predictions"

	// Analytics error messages
	ErrMsgGetAnalyticsFailed = "Failed to compute analytics"

	// Booking code error messages
	ErrMsgCreateCodeFailed = "Failed to create booking code"
	ErrMsgListCodesFailed  = "Failed to list booking codes"
	ErrMsgUpdateCodeFailed = "Failed to update booking code"

	// Chat error messages
	ErrMsgSendMessageFailed   = "Failed to send message"
	ErrMsgGetMessagesFailed   = "Failed to get messages"
	ErrMsgDeleteMessageFailed = "Failed to delete message"
	ErrMsgHeartbeatFailed     = "Failed to record presence"
	ErrMsgGetOnlineFailed     = "Failed to get online users"

	// Admin error messages
	ErrMsgImportFixturesFailed = "Failed to import fixtures"
	ErrMsgPollLiveFailed       = "Failed to poll live updates"
	ErrMsgListUsersFailed      = "Failed to list users"
	ErrMsgPromoteUserFailed    = "Failed to promote user"
	ErrMsgCleanupFailed        = "Failed to clean up presence"
)

// Success messages for API responses
const (
	MsgResultRecordedSuccess = "Result recorded, settlement scheduled"
	MsgMatchDeletedSuccess   = "Match deleted"
	MsgMessageDeletedSuccess = "Message deleted"
	MsgHeartbeatSuccess      = "Presence recorded"
	MsgUserPromotedSuccess   = "User promoted to admin"
	MsgCodeStatusSuccess     = "Booking code status updated"
)
