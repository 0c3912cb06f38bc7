package community

import (
	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

func RegisterCommunityRoutes(public, admin *gin.RouterGroup, repo CommunityRepository, appConfig *config.Config, clock clockwork.Clock) {
	communityController := NewCommunityController(repo, appConfig, clock)

	public.POST("/users/sign-in", communityController.SignIn)
	public.GET("/comments", communityController.GetComments)
	public.POST("/comments", communityController.PostComment)

	admin.GET("/users", communityController.GetUsers)
	admin.POST("/users/block", communityController.BlockUser)
	admin.POST("/users/unblock", communityController.UnblockUser)
	admin.GET("/users/export", communityController.ExportUsers)
	admin.DELETE("/comments/:id", communityController.DeleteComment)
	admin.DELETE("/comments", communityController.DeleteComments)
}
