package chatbot

import "github.com/gin-gonic/gin"

func RegisterChatbotRoutes(router *gin.RouterGroup, bot *Bot) {
	chatbotController := NewChatbotController(bot)

	router.POST("/chat", chatbotController.Chat)
}
