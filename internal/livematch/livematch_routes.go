package livematch

import (
	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

func RegisterLiveMatchRoutes(public, admin *gin.RouterGroup, repo LiveMatchRepository, appConfig *config.Config, clock clockwork.Clock) {
	liveController := NewLiveMatchController(repo, appConfig, clock)

	public.GET("/admin/live-match", liveController.GetLiveMatch)
	public.GET("/live/commentary", liveController.GetCommentary)
	public.GET("/live/moments", liveController.GetMoments)

	admin.POST("/live-match", liveController.SaveLiveMatch)
	admin.DELETE("/live-match", liveController.ClearLiveMatch)
	admin.POST("/live-match/status", liveController.SetStatus)

	admin.POST("/live/commentary", liveController.AddCommentary)
	admin.DELETE("/live/commentary/:id", liveController.DeleteCommentary)
	admin.DELETE("/live/commentary", liveController.ClearCommentary)

	admin.POST("/live/moments", liveController.AddMoment)
	admin.DELETE("/live/moments/:id", liveController.DeleteMoment)
	admin.DELETE("/live/moments", liveController.ClearMoments)
}
