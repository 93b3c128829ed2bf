package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SurajNaik1502/TPC/internal/domain/webhook"
)

// WebhookRepository is the pgx implementation of webhook.Repository
type WebhookRepository struct {
	db *pgxpool.Pool
}

// NewWebhookRepository creates a new WebhookRepository
func NewWebhookRepository(db *pgxpool.Pool) webhook.Repository {
	return &WebhookRepository{db: db}
}

// Save stores an inbound or AI-generated webhook message
func (r *WebhookRepository) Save(ctx context.Context, m *webhook.ChatMessage) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Sender == "" {
		m.Sender = webhook.SenderWebhook
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if m.Metadata == nil {
		m.Metadata = map[string]interface{}{}
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO chat_messages (id, user_id, message, sender, created_at, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, m.ID, m.UserID, m.Message, m.Sender, m.CreatedAt, m.Metadata)
	if err != nil {
		return fmt.Errorf("error saving webhook message: %w", err)
	}

	return nil
}

// List returns the most recent webhook messages, newest first
func (r *WebhookRepository) List(ctx context.Context, limit int) ([]*webhook.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, message, sender, created_at, metadata
		FROM chat_messages
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing webhook messages: %w", err)
	}
	defer rows.Close()

	var messages []*webhook.ChatMessage
	for rows.Next() {
		var m webhook.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message, &m.Sender, &m.CreatedAt, &m.Metadata); err != nil {
			return nil, fmt.Errorf("error reading webhook message: %w", err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading webhook message rows: %w", err)
	}

	return messages, nil
}
