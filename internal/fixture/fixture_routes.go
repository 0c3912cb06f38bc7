package fixture

import (
	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

func RegisterFixtureRoutes(public, admin *gin.RouterGroup, repo FixtureRepository, appConfig *config.Config, clock clockwork.Clock) {
	fixtureController := NewFixtureController(repo, appConfig, clock)

	public.GET("/admin/fixtures", fixtureController.GetFixtures)

	admin.POST("/fixtures", fixtureController.ReplaceFixtures)
	admin.POST("/fixtures/item", fixtureController.AddFixture)
	admin.PATCH("/fixtures/:id/override", fixtureController.SetOverride)
	admin.DELETE("/fixtures/:id", fixtureController.DeleteFixture)
	admin.DELETE("/fixtures", fixtureController.ClearFixtures)
}
