package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCollectionCreated EventType = "collection_created"
	EventCollectionDeleted EventType = "collection_deleted"
	EventItemCreated       EventType = "item_created"
	EventUserBlocked       EventType = "user_blocked"
	EventUserUnblocked     EventType = "user_unblocked"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CollectionCreatedPayload payload.
type CollectionCreatedPayload struct {
	CollectionID string `json:"collection_id"`
	Title        string `json:"title"`
	Theme        string `json:"theme"`
}

// ItemCreatedPayload payload.
type ItemCreatedPayload struct {
	ItemID       string `json:"item_id"`
	CollectionID string `json:"collection_id"`
	Name         string `json:"name"`
}

// UserBlockedPayload payload.
type UserBlockedPayload struct {
	UserID  string `json:"user_id"`
	Blocked bool   `json:"blocked"`
}
