package worker

// Log Messages - Worker Pool
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for settlement jobs
const (
	LogMsgSettlementEnqueued  = "Settlement job enqueued"
	LogMsgSettlementQueueFull = "Settlement queue full, job dropped"
	LogMsgSettlementFailed    = "Settlement job failed"
)

// Log messages for the presence cleanup worker
const (
	LogMsgPresenceCleanupStarted = "Presence cleanup worker started"
	LogMsgPresenceCleanupStopped = "Presence cleanup worker stopped"
	LogMsgPresenceCleanupFailed  = "Presence cleanup run failed"
)

// SettlementQueueSize bounds how many pending settlement jobs can queue
const SettlementQueueSize = 64
