package dto

import (
	"time"

	"github.com/SurajNaik1502/TPC/internal/domain/chat"
	"github.com/SurajNaik1502/TPC/internal/domain/profile"
)

// RoomResponse is the API representation of a chat room
type RoomResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsPrivate   bool      `json:"is_private"`
	CreatedAt   time.Time `json:"created_at"`
}

// MessageResponse is the API representation of a chat message, decorated
// with the sender's profile projection.
type MessageResponse struct {
	ID           string    `json:"id"`
	RoomID       string    `json:"room_id"`
	SenderID     string    `json:"sender_id"`
	SenderName   string    `json:"sender_name"`
	SenderAvatar string    `json:"sender_avatar,omitempty"`
	Body         string    `json:"body"`
	Kind         string    `json:"kind"`
	CreatedAt    time.Time `json:"created_at"`
}

// SendMessageRequest is the payload for posting a message to a room
type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// ToRoomResponse converts a domain room to its API representation
func ToRoomResponse(r *chat.Room) RoomResponse {
	return RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		IsPrivate:   r.IsPrivate,
		CreatedAt:   r.CreatedAt,
	}
}

// ToRoomResponses converts a slice of domain rooms
func ToRoomResponses(rooms []*chat.Room) []RoomResponse {
	responses := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		responses = append(responses, ToRoomResponse(r))
	}
	return responses
}

// ToMessageResponse converts a domain message, decorating it with the
// sender's profile. A nil profile degrades to the generic label.
func ToMessageResponse(m *chat.Message, p *profile.Profile) MessageResponse {
	resp := MessageResponse{
		ID:         m.ID,
		RoomID:     m.RoomID,
		SenderID:   m.SenderID,
		SenderName: p.Name(),
		Body:       m.Body,
		Kind:       string(m.Kind),
		CreatedAt:  m.CreatedAt,
	}
	if p != nil {
		resp.SenderAvatar = p.AvatarURL
	}
	return resp
}
