package webhook

import "time"

// Sender labels for webhook-originated chat messages
const (
	SenderWebhook   = "webhook"
	SenderAssistant = "assistant"
)

// ChatMessage is a message received over the inbound webhook, or an AI
// reply generated for one. It is stored separately from the room-based
// chat log and carries no referential integrity towards it.
type ChatMessage struct {
	ID        string                 `json:"id"`
	UserID    *string                `json:"user_id"`
	Message   string                 `json:"message"`
	Sender    string                 `json:"sender"`
	CreatedAt time.Time              `json:"created_at"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// ProcessWithAI reports whether the message should be run through the AI
// assistant. Processing is opt-out: only an explicit metadata flag of
// false disables it.
func (m *ChatMessage) ProcessWithAI() bool {
	if m.Metadata == nil {
		return true
	}
	v, ok := m.Metadata["processWithAI"]
	if !ok {
		return true
	}
	b, ok := v.(bool)
	return !ok || b
}
