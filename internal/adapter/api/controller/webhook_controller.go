package controller

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SurajNaik1502/TPC/internal/adapter/api/dto"
	"github.com/SurajNaik1502/TPC/internal/domain/webhook"
	"github.com/SurajNaik1502/TPC/pkg/broker"
	"github.com/SurajNaik1502/TPC/pkg/gemini"
	"github.com/SurajNaik1502/TPC/pkg/logger"
	"github.com/SurajNaik1502/TPC/pkg/realtime"
)

// webhookChannel is the fan-out room used for webhook traffic
const webhookChannel = "chat_messages"

// webhookApology is stored as the AI reply when the endpoint answered
// but carried no candidate.
const webhookApology = "I apologize, but I could not process your message at this time."

// WebhookController accepts external chat messages, optionally runs them
// through the AI assistant, and relays everything to the live channel.
// Persistence and broadcast are best effort: acknowledging the sender
// wins over guaranteeing either side effect.
type WebhookController struct {
	webhookRepository webhook.Repository
	ai                *gemini.Client
	hub               *realtime.Hub
	publisher         broker.Publisher
	log               logger.Logger
}

// NewWebhookController creates a new WebhookController. publisher may be
// nil when the broker bridge is disabled.
func NewWebhookController(webhookRepository webhook.Repository, ai *gemini.Client, hub *realtime.Hub, publisher broker.Publisher, log logger.Logger) *WebhookController {
	return &WebhookController{
		webhookRepository: webhookRepository,
		ai:                ai,
		hub:               hub,
		publisher:         publisher,
		log:               log,
	}
}

// Receive handles an inbound webhook POST
// @Summary Inbound chat webhook
// @Description Stores the message, optionally generates and stores an AI reply, and broadcasts both on the live channel
// @Tags functions
// @Accept json
// @Produce json
// @Param message body dto.WebhookRequest true "Webhook payload"
// @Success 200 {object} dto.WebhookResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /functions/chat-webhook [post]
func (c *WebhookController) Receive(ctx *gin.Context) {
	var payload dto.WebhookRequest
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": err.Error(),
		})
		return
	}

	if payload.Message == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	message := &webhook.ChatMessage{
		UserID:    payload.UserID,
		Message:   payload.Message,
		Sender:    payload.Sender,
		CreatedAt: parseTimestamp(payload.Timestamp),
		Metadata:  payload.Metadata,
	}
	if message.Sender == "" {
		message.Sender = webhook.SenderWebhook
	}
	if message.Metadata == nil {
		message.Metadata = map[string]interface{}{}
	}

	// storage failure is logged and swallowed; processing continues
	if err := c.webhookRepository.Save(ctx, message); err != nil {
		c.log.Error("error storing webhook message", "error", err)
	}

	var aiResponse *string
	if message.ProcessWithAI() {
		aiResponse = c.processWithAI(ctx, message)
	}

	c.broadcast(message, aiResponse)

	ctx.JSON(http.StatusOK, dto.WebhookResponse{
		Success: true,
		Message: "Webhook processed successfully",
		Data: dto.WebhookData{
			OriginalMessage: message,
			AIResponse:      aiResponse,
		},
	})
}

// Verify answers the webhook handshake GET
// @Summary Webhook verification
// @Description Echoes the challenge when the verify token matches the configured secret
// @Tags functions
// @Produce plain
// @Param challenge query string false "Handshake challenge"
// @Param verify_token query string false "Shared verification token"
// @Success 200 {string} string
// @Router /functions/chat-webhook [get]
func (c *WebhookController) Verify(ctx *gin.Context) {
	challenge := ctx.Query("challenge")
	verifyToken := ctx.Query("verify_token")

	expectedToken := os.Getenv("WEBHOOK_VERIFY_TOKEN")
	if expectedToken == "" {
		expectedToken = "your_verify_token"
	}

	if verifyToken == expectedToken && challenge != "" {
		ctx.String(http.StatusOK, challenge)
		return
	}

	ctx.String(http.StatusOK, "Webhook endpoint is active")
}

// processWithAI generates a reply for the inbound message and persists
// it. Every failure class leaves the request on its success path.
func (c *WebhookController) processWithAI(ctx *gin.Context, message *webhook.ChatMessage) *string {
	// near-duplicate of the chatbot persona on purpose: the webhook path
	// answers a single message without a conversation window
	prompt := fmt.Sprintf(`You are PlacementPro's AI assistant. Respond to this message in a helpful and professional manner:

Message: %s
Sender: %s

Provide a concise, relevant response focused on career guidance, job placement, or training assistance.`,
		message.Message, message.Sender)

	text, err := c.ai.Generate(ctx, []gemini.Content{
		{Parts: []gemini.Part{{Text: prompt}}},
	}, gemini.GenerationConfig{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1000,
	})

	switch {
	case err == nil:
		// keep text as is
	case errors.Is(err, gemini.ErrMissingAPIKey):
		// no key configured: skip AI processing entirely
		return nil
	case errors.Is(err, gemini.ErrInvalidResponse):
		text = webhookApology
	default:
		c.log.Error("error processing AI response", "error", err)
		return nil
	}

	aiMessage := &webhook.ChatMessage{
		UserID:  message.UserID,
		Message: text,
		Sender:  webhook.SenderAssistant,
		Metadata: map[string]interface{}{
			"isAIResponse":      true,
			"originalMessage":   message.Message,
			"responseToWebhook": true,
		},
	}
	if err := c.webhookRepository.Save(ctx, aiMessage); err != nil {
		c.log.Error("error storing AI reply", "error", err)
	}

	return &text
}

// broadcast relays the message pair over the live channel and the
// optional broker bridge, swallowing errors on both.
func (c *WebhookController) broadcast(message *webhook.ChatMessage, aiResponse *string) {
	payload := gin.H{
		"message":    message,
		"aiResponse": aiResponse,
	}

	c.hub.Broadcast(webhookChannel, realtime.Event{
		Room:    webhookChannel,
		Type:    realtime.EventNewMessage,
		Payload: payload,
	})

	if c.publisher != nil {
		if err := c.publisher.Publish("webhook.message", payload); err != nil {
			c.log.Error("error broadcasting webhook message", "error", err)
		}
	}
}

func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Now().UTC()
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Now().UTC()
	}
	return ts.UTC()
}
