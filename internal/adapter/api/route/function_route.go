package route

import (
	"github.com/gin-gonic/gin"

	"github.com/SurajNaik1502/TPC/internal/adapter/api/controller"
)

// RegisterFunctionRoutes registers the serverless-style relay routes.
// These stay unauthenticated: the chatbot widget and external webhook
// senders call them without a platform session.
func RegisterFunctionRoutes(r *gin.RouterGroup, chatbotController *controller.ChatbotController, resumeController *controller.ResumeController, webhookController *controller.WebhookController) {
	functions := r.Group("/functions")
	{
		functions.POST("/chatbot", chatbotController.Process)
		functions.POST("/resume-scanner", resumeController.Scan)
		functions.POST("/chat-webhook", webhookController.Receive)
		functions.GET("/chat-webhook", webhookController.Verify)
	}
}
