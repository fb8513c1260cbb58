package llm

// Chat completion request parameters
const (
	RoleSystem = "system"
	RoleUser   = "user"

	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1024
)

// Log messages
const (
	LogMsgRequestSent    = "LLM request sent"
	LogMsgRequestFailed  = "LLM request failed"
	LogMsgEmptyResponse  = "LLM returned no choices"
	LogMsgUnexpectedCode = "LLM returned non-200 status"
)
