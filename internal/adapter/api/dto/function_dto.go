package dto

import (
	"github.com/SurajNaik1502/TPC/internal/domain/webhook"
	"github.com/SurajNaik1502/TPC/pkg/gemini"
)

// ChatbotRequest is the payload of the chatbot relay function
type ChatbotRequest struct {
	Message             string                `json:"message" binding:"required"`
	ConversationHistory []gemini.HistoryEntry `json:"conversationHistory"`
}

// ChatbotResponse is the single payload shape of the chatbot relay:
// success and failure both carry a response string.
type ChatbotResponse struct {
	Response string `json:"response"`
}

// ResumeScanRequest is the payload of the resume-scanner relay function
type ResumeScanRequest struct {
	FileContent string `json:"fileContent" binding:"required"`
	FileName    string `json:"fileName"`
	MimeType    string `json:"mimeType" binding:"required"`
}

// ResumeScanResponse is the success envelope of the resume scanner
type ResumeScanResponse struct {
	Analysis gemini.Analysis `json:"analysis"`
}

// ResumeScanError is the failure envelope of the resume scanner. Unlike
// the chatbot this is a different shape from success: callers branch on
// the HTTP status, not the payload shape.
type ResumeScanError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// WebhookRequest is the inbound webhook payload
type WebhookRequest struct {
	UserID    *string                `json:"user_id"`
	Message   string                 `json:"message"`
	Sender    string                 `json:"sender"`
	Timestamp string                 `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// WebhookData carries the stored message and the optional AI reply
type WebhookData struct {
	OriginalMessage *webhook.ChatMessage `json:"originalMessage"`
	AIResponse      *string              `json:"aiResponse"`
}

// WebhookResponse is the acknowledgement returned to the webhook sender
type WebhookResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    WebhookData `json:"data"`
}
