package prediction

// Generator output shape
const (
	PredictionsPerMatch = 3

	FallbackModelName = "fallback"

	FallbackResultReasoning    = "Based on odds analysis"
	FallbackOverUnderLabel     = "Over 2.5"
	FallbackOverUnderScore     = 65
	FallbackOverUnderReasoning = "Average goal expectation"
	FallbackBTTSLabel          = "Yes"
	FallbackBTTSScore          = 60
	FallbackBTTSReasoning      = "Competitive matchup"
)

// BTTS labels
const (
	BTTSYes = "Yes"
	BTTSNo  = "No"
)

// Over/under label prefixes
const (
	LinePrefixOver  = "Over"
	LinePrefixUnder = "Under"
)

// Top-prediction defaults
const (
	TopPredictionMinConfidence = 70
)

// Log messages
const (
	LogMsgLLMFellBack             = "LLM prediction unavailable, using odds-implied fallback"
	LogMsgPredictionsCreated      = "Predictions created"
	LogMsgSettlementStarted       = "Settlement pass started"
	LogMsgSettlementDone          = "Settlement pass complete"
	LogMsgUngradableLabel         = "Prediction label cannot be graded"
	LogMsgPredictionPersistFailed = "Failed to persist prediction"
)

const systemPrompt = "You are a football match analyst. Respond with JSON only, no prose."
