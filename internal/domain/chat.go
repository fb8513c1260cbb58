package domain

import "time"

// Reaction is a single emoji reaction attached to a message
type Reaction struct {
	Emoji    string `json:"emoji"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
}

// Message is a chat message in a room.
// UserName is a snapshot of the author's display name at write time;
// it does not update if the user later renames.
type Message struct {
	ID        string     `json:"id"`
	RoomID    string     `json:"room_id"`
	UserID    string     `json:"user_id"`
	UserName  string     `json:"user_name"`
	Content   string     `json:"content"`
	Reactions []Reaction `json:"reactions,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// PresenceRecord tracks when a user was last seen in a room.
// There is exactly one row per (user, room) pair.
type PresenceRecord struct {
	UserID   string    `json:"user_id"`
	UserName string    `json:"user_name"`
	RoomID   string    `json:"room_id"`
	LastSeen time.Time `json:"last_seen"`
}
