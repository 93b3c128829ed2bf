package chat

import (
	"context"
)

// Repository defines the persistence contract for rooms and messages
type Repository interface {
	// CreateRoom stores a new chat room
	CreateRoom(ctx context.Context, r *Room) error

	// FindRoomByID looks up a room by its ID
	FindRoomByID(ctx context.Context, id string) (*Room, error)

	// ListRooms lists the shared (non-private) rooms, oldest first
	ListRooms(ctx context.Context) ([]*Room, error)

	// SaveMessage appends a message to its room. The store assigns the
	// ID and creation timestamp when they are not set.
	SaveMessage(ctx context.Context, m *Message) error

	// ListMessages returns the full message history of a room ordered by
	// creation time ascending, oldest first.
	ListMessages(ctx context.Context, roomID string) ([]*Message, error)
}
