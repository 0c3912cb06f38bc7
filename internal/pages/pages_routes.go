package pages

import (
	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

// RegisterPageRoutes installs the page templates on the engine and mounts the
// public pages.
func RegisterPageRoutes(router *gin.Engine, src Sources, appConfig *config.Config, clock clockwork.Clock) {
	router.SetHTMLTemplate(Templates())
	pageController := NewPageController(src, appConfig, clock)

	router.GET("/", pageController.Home)
	router.GET("/teams/:code", pageController.Team)
	router.GET("/fixtures", pageController.Fixtures)
	router.GET("/points", pageController.Points)
	router.GET("/live", pageController.Live)
}
