package team

import "github.com/gin-gonic/gin"

// RegisterTeamRoutes mounts the read-only team endpoints.
func RegisterTeamRoutes(router *gin.RouterGroup) {
	teamController := NewTeamController()

	router.GET("/teams", teamController.GetAllTeams)
	router.GET("/teams/:code", teamController.GetTeam)
}
