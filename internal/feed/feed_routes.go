package feed

import (
	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

// RegisterFeedRoutes mounts the event stream on root and dismissal on api.
func RegisterFeedRoutes(root, api *gin.RouterGroup, source CommentarySource, registry *Registry, appConfig *config.Config, clock clockwork.Clock) {
	feedController := NewFeedController(source, registry, appConfig, clock)

	root.GET("/live/stream", feedController.Stream)
	api.POST("/live/sessions/:id/dismiss", feedController.Dismiss)
}
