package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SurajNaik1502/TPC/internal/adapter/api/dto"
	"github.com/SurajNaik1502/TPC/pkg/gemini"
	"github.com/SurajNaik1502/TPC/pkg/logger"
)

// ChatbotController relays chat messages to the generative endpoint
type ChatbotController struct {
	ai  *gemini.Client
	log logger.Logger
}

// NewChatbotController creates a new ChatbotController
func NewChatbotController(ai *gemini.Client, log logger.Logger) *ChatbotController {
	return &ChatbotController{ai: ai, log: log}
}

// Process answers a user message with the assistant persona
// @Summary Chatbot relay
// @Description Builds the persona prompt from the message and conversation window and relays it to the generative endpoint. Failures return the fixed apology in the same payload shape as a success.
// @Tags functions
// @Accept json
// @Produce json
// @Param message body dto.ChatbotRequest true "Message and conversation window"
// @Success 200 {object} dto.ChatbotResponse
// @Failure 500 {object} dto.ChatbotResponse
// @Router /functions/chatbot [post]
func (c *ChatbotController) Process(ctx *gin.Context) {
	var request dto.ChatbotRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		// failures keep the success shape; the reason is logged, never
		// surfaced to the end user
		c.log.Error("error in chatbot function", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ChatbotResponse{Response: gemini.ChatbotApology})
		return
	}

	prompt := gemini.BuildChatbotPrompt(request.Message, request.ConversationHistory)

	text, err := c.ai.Generate(ctx, []gemini.Content{
		{Parts: []gemini.Part{{Text: prompt}}},
	}, gemini.ChatbotGenerationConfig())
	if err != nil {
		c.log.Error("error in chatbot function", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ChatbotResponse{Response: gemini.ChatbotApology})
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatbotResponse{Response: text})
}
