package chat

// DefaultRoom is the room used when a client does not name one
const DefaultRoom = "general"

// Log message constants
const (
	LogMsgMessageSent     = "chat message sent"
	LogMsgMessageDeleted  = "chat message deleted"
	LogMsgPresenceCleanup = "stale presence rows removed"
)
