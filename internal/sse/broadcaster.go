package sse

import (
	"github.com/betpulse/betpulse/internal/domain"
)

// Broadcaster adapts the hub to the service-layer broadcast interfaces
type Broadcaster struct {
	hub *Hub
}

// NewBroadcaster creates a broadcaster over a hub
func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

// BroadcastMatchUpdate fans out a match change to connected clients
func (b *Broadcaster) BroadcastMatchUpdate(match *domain.Match) {
	b.hub.Broadcast(EventTypeMatchUpdate, match)
}

// BroadcastMessage fans out a chat message to connected clients
func (b *Broadcaster) BroadcastMessage(msg *domain.Message) {
	b.hub.Broadcast(EventTypeChatMessage, msg)
}
