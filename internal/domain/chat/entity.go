package chat

import (
	"errors"
	"strings"
	"time"
)

// MessageKind represents the kind of a chat message
type MessageKind string

// Message kinds. Only plain text exists today; the column is typed so new
// kinds can be added without a schema change.
const (
	KindText MessageKind = "text"
)

// Validation errors
var (
	ErrMissingRoom   = errors.New("message room is required")
	ErrMissingSender = errors.New("message sender is required")
	ErrEmptyBody     = errors.New("message body is empty")
)

// Room represents a chat room grouping an ordered sequence of messages.
// Rooms are provisioned administratively and are immutable once referenced
// by messages.
type Room struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsPrivate   bool      `json:"is_private"`
	CreatedAt   time.Time `json:"created_at"`
}

// Message represents a single chat message. Messages are immutable once
// created and belong to exactly one room and one sender.
type Message struct {
	ID        string      `json:"id"`
	RoomID    string      `json:"room_id"`
	SenderID  string      `json:"sender_id"`
	Body      string      `json:"body"`
	Kind      MessageKind `json:"kind"`
	CreatedAt time.Time   `json:"created_at"`
}

// Validate checks the fields required before a message can be stored
func (m *Message) Validate() error {
	if m.RoomID == "" {
		return ErrMissingRoom
	}
	if m.SenderID == "" {
		return ErrMissingSender
	}
	if strings.TrimSpace(m.Body) == "" {
		return ErrEmptyBody
	}
	return nil
}
