package player

import (
	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/gin-gonic/gin"
)

// RegisterPlayerRoutes mounts reads on public and writes on admin.
func RegisterPlayerRoutes(public, admin *gin.RouterGroup, repo PlayerRepository, appConfig *config.Config) {
	playerController := NewPlayerController(repo, appConfig)

	public.GET("/admin/players", playerController.GetPlayers)

	admin.POST("/players", playerController.SavePlayers)
	admin.PUT("/players/:team/:name", playerController.UpdatePlayer)
	admin.DELETE("/players", playerController.DeletePlayers)
}
