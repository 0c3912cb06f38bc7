package points

import "github.com/gin-gonic/gin"

func RegisterPointsRoutes(public, admin *gin.RouterGroup, repo PointsRepository) {
	pointsController := NewPointsController(repo)

	public.GET("/admin/points", pointsController.GetPoints)

	admin.POST("/points", pointsController.ReplacePoints)
	admin.DELETE("/points", pointsController.ClearPoints)
}
