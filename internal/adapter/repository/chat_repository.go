package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SurajNaik1502/TPC/internal/domain/chat"
)

// Chat repository errors
var (
	ErrRoomNotFound = errors.New("chat room not found")
)

// ChatRepository is the pgx implementation of chat.Repository
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *pgxpool.Pool) chat.Repository {
	return &ChatRepository{db: db}
}

// CreateRoom stores a new chat room
func (r *ChatRepository) CreateRoom(ctx context.Context, room *chat.Room) error {
	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO chat_rooms (id, name, description, is_private, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, room.ID, room.Name, room.Description, room.IsPrivate, room.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating chat room: %w", err)
	}

	return nil
}

// FindRoomByID looks up a room by its ID
func (r *ChatRepository) FindRoomByID(ctx context.Context, id string) (*chat.Room, error) {
	var room chat.Room
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, is_private, created_at
		FROM chat_rooms
		WHERE id = $1
	`, id).Scan(&room.ID, &room.Name, &room.Description, &room.IsPrivate, &room.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("error finding chat room: %w", err)
	}

	return &room, nil
}

// ListRooms lists the shared rooms, oldest first
func (r *ChatRepository) ListRooms(ctx context.Context) ([]*chat.Room, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, is_private, created_at
		FROM chat_rooms
		WHERE is_private = false
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("error listing chat rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*chat.Room
	for rows.Next() {
		var room chat.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Description, &room.IsPrivate, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("error reading chat room: %w", err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading chat room rows: %w", err)
	}

	return rooms, nil
}

// SaveMessage appends a message to its room, assigning the server-side
// identifier and timestamp.
func (r *ChatRepository) SaveMessage(ctx context.Context, m *chat.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.Kind == "" {
		m.Kind = chat.KindText
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO messages (id, room_id, sender_id, body, kind, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, m.ID, m.RoomID, m.SenderID, m.Body, m.Kind, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("error saving message: %w", err)
	}

	return nil
}

// ListMessages returns the full history of a room, oldest first
func (r *ChatRepository) ListMessages(ctx context.Context, roomID string) ([]*chat.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, room_id, sender_id, body, kind, created_at
		FROM messages
		WHERE room_id = $1
		ORDER BY created_at ASC, id ASC
	`, roomID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	defer rows.Close()

	var messages []*chat.Message
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.RoomID, &m.SenderID, &m.Body, &m.Kind, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error reading message: %w", err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading message rows: %w", err)
	}

	return messages, nil
}
