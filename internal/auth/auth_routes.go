package auth

import "github.com/gin-gonic/gin"

func RegisterAuthRoutes(router *gin.RouterGroup, authn Authenticator) {
	authController := NewAuthController(authn)
	router.POST("/admin/login", authController.Login)
}
