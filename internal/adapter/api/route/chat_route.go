package route

import (
	"github.com/gin-gonic/gin"

	"github.com/SurajNaik1502/TPC/internal/adapter/api/controller"
	"github.com/SurajNaik1502/TPC/pkg/auth"
)

// RegisterChatRoutes registers the chat module routes
func RegisterChatRoutes(r *gin.RouterGroup, chatController *controller.ChatController) {
	chat := r.Group("/chat")
	{
		chat.GET("/rooms", chatController.ListRooms)
		chat.GET("/rooms/:id/messages", chatController.ListMessages)
		chat.GET("/rooms/:id/ws", chatController.Subscribe)

		// sending needs an authenticated sender
		chat.POST("/rooms/:id/messages", auth.JWTAuthMiddleware(), chatController.SendMessage)
	}
}
