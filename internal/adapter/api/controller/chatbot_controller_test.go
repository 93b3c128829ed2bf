package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/SurajNaik1502/TPC/internal/adapter/api/dto"
	"github.com/SurajNaik1502/TPC/pkg/gemini"
	"github.com/SurajNaik1502/TPC/pkg/logger"
)

func chatbotRouter(ai *gemini.Client) *gin.Engine {
	router := gin.New()
	controller := NewChatbotController(ai, logger.NewLogger())
	router.POST("/functions/chatbot", controller.Process)
	return router
}

func TestChatbotController_Process(t *testing.T) {
	_, ai := fakeGenerativeServer(t, "Practice common interview questions and research the company.")
	router := chatbotRouter(ai)

	rec := performJSON(t, router, http.MethodPost, "/functions/chatbot", dto.ChatbotRequest{
		Message: "How do I prepare for interviews?",
		ConversationHistory: []gemini.HistoryEntry{
			{IsBot: false, Content: "Hi"},
			{IsBot: true, Content: "Hello!"},
		},
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ChatbotResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Practice common interview questions and research the company.", resp.Response)
}

func TestChatbotController_FailureReturnsApologyInSuccessShape(t *testing.T) {
	router := chatbotRouter(unconfiguredClient())

	rec := performJSON(t, router, http.MethodPost, "/functions/chatbot", dto.ChatbotRequest{
		Message: "hello",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// the failure payload is shaped exactly like a success
	var resp dto.ChatbotResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, gemini.ChatbotApology, resp.Response)
}

func TestChatbotController_MissingMessage(t *testing.T) {
	_, ai := fakeGenerativeServer(t, "unused")
	router := chatbotRouter(ai)

	rec := performJSON(t, router, http.MethodPost, "/functions/chatbot", map[string]interface{}{
		"conversationHistory": []gemini.HistoryEntry{},
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.ChatbotResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, gemini.ChatbotApology, resp.Response)
}
