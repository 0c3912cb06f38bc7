package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/DhavalSuthar-24/crickethub/config"
	_ "github.com/DhavalSuthar-24/crickethub/docs"
	"github.com/DhavalSuthar-24/crickethub/internal/logger"
	"github.com/DhavalSuthar-24/crickethub/internal/store"
	"github.com/DhavalSuthar-24/crickethub/routes"
	"github.com/DhavalSuthar-24/crickethub/utils"
)

// @title IPL Cricket Hub API
// @version 1.0
// @description Teams, squads, fixtures, the points table, live commentary and the fan community.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		hashPassword(os.Args[2:])
		return
	}

	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	cfg := config.GetConfig()
	logger.SetLevel(logger.ParseLevel(cfg.App.LogLevel))
	logger.SetColor(cfg.App.Env == "development")

	s, err := store.Open(cfg, config.DB)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Backend, err)
	}
	defer s.Close()

	r := routes.SetupRoutes(cfg, s, clockwork.NewRealClock())

	logger.Info("Starting server on port %s in %s mode", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// hashPassword prints a bcrypt hash for ADMIN_PASSWORD_HASH.
func hashPassword(args []string) {
	if len(args) != 1 || args[0] == "" {
		fmt.Fprintln(os.Stderr, "usage: crickethub hash-password <password>")
		os.Exit(2)
	}
	hash, err := utils.HashPassword(args[0])
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Println(hash)
}
