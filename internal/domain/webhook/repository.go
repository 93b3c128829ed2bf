package webhook

import (
	"context"
)

// Repository defines the persistence contract for webhook chat messages
type Repository interface {
	// Save stores an inbound or AI-generated webhook message. The store
	// assigns the ID when it is not set.
	Save(ctx context.Context, m *ChatMessage) error

	// List returns the most recent webhook messages, newest first
	List(ctx context.Context, limit int) ([]*ChatMessage, error)
}
