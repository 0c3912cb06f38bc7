package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/DhavalSuthar-24/crickethub/config"
	"github.com/DhavalSuthar-24/crickethub/internal/auth"
	"github.com/DhavalSuthar-24/crickethub/internal/chatbot"
	"github.com/DhavalSuthar-24/crickethub/internal/community"
	"github.com/DhavalSuthar-24/crickethub/internal/feed"
	"github.com/DhavalSuthar-24/crickethub/internal/fixture"
	"github.com/DhavalSuthar-24/crickethub/internal/livematch"
	"github.com/DhavalSuthar-24/crickethub/internal/middleware"
	"github.com/DhavalSuthar-24/crickethub/internal/pages"
	"github.com/DhavalSuthar-24/crickethub/internal/player"
	"github.com/DhavalSuthar-24/crickethub/internal/points"
	"github.com/DhavalSuthar-24/crickethub/internal/store"
	"github.com/DhavalSuthar-24/crickethub/internal/team"
	"github.com/DhavalSuthar-24/crickethub/pkg/rmiddleware"
)

// SetupRoutes wires every repository over s and mounts the pages, the
// JSON API under /api and the admin API under /api/admin.
func SetupRoutes(cfg *config.Config, s store.Store, clock clockwork.Clock) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", middleware.AdminPasswordHeader},
	}))

	r.Static("/assets", "./assets")
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": cfg.Store.Backend})
	})

	playerRepo := player.NewPlayerRepository(s)
	fixtureRepo := fixture.NewFixtureRepository(s)
	pointsRepo := points.NewPointsRepository(s)
	liveRepo := livematch.NewLiveMatchRepository(s, clock)
	communityRepo := community.NewCommunityRepository(s, clock)
	authn := auth.NewAuthenticator(cfg)

	api := r.Group("/api")
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authn), rmiddleware.AdminMiddleware())

	auth.RegisterAuthRoutes(api, authn)
	team.RegisterTeamRoutes(api)
	player.RegisterPlayerRoutes(api, admin, playerRepo, cfg)
	fixture.RegisterFixtureRoutes(api, admin, fixtureRepo, cfg, clock)
	points.RegisterPointsRoutes(api, admin, pointsRepo)
	livematch.RegisterLiveMatchRoutes(api, admin, liveRepo, cfg, clock)
	community.RegisterCommunityRoutes(api, admin, communityRepo, cfg, clock)

	var backend chatbot.Backend
	if cfg.Chatbot.BackendURL != "" {
		backend = chatbot.NewHTTPBackend(cfg.Chatbot.BackendURL, cfg.ChatbotTimeout())
	}
	chatbot.RegisterChatbotRoutes(api, chatbot.NewBot(backend))

	feed.RegisterFeedRoutes(&r.RouterGroup, api, liveRepo, feed.NewRegistry(), cfg, clock)

	pages.RegisterPageRoutes(r, pages.Sources{
		Players:   playerRepo,
		Fixtures:  fixtureRepo,
		Points:    pointsRepo,
		LiveMatch: liveRepo,
		Community: communityRepo,
	}, cfg, clock)

	return r
}
