package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"statwizard/adapters/profileconfig"
	"statwizard/app"
	"statwizard/internal/config"
	"statwizard/internal/logging"
	"statwizard/internal/session"
	"statwizard/profiles"
	"statwizard/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewDefaultLogger()

	registry, err := loadRegistry(cfg, logger)
	if err != nil {
		// Malformed configuration aborts startup; a selector running on a
		// broken decision tree would hand out wrong recommendations.
		log.Fatalf("Failed to load profiles: %v", err)
	}

	sess := session.NewSession()
	logger.Info("answer session %s ready", sess.ID())

	service := app.NewSelectorService(registry, sess, logger)

	gin.SetMode(cfg.Server.GinMode)
	server := ui.NewServer(service, logger)
	if err := server.Start("127.0.0.1:" + cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func loadRegistry(cfg *config.Config, logger *logging.Logger) (*profileconfig.Registry, error) {
	if cfg.Profiles.Dir != "" {
		logger.Info("loading profiles from %s", cfg.Profiles.Dir)
		return profileconfig.LoadDir(cfg.Profiles.Dir, cfg.Profiles.Default, logger)
	}
	return profileconfig.LoadFS(profiles.FS, cfg.Profiles.Default, logger)
}
