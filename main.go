package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/thepromise/ordering-platform/config"
	"github.com/thepromise/ordering-platform/router"
	"github.com/thepromise/ordering-platform/store"
	"github.com/thepromise/ordering-platform/utils"
)

func init() {
	// Load .env before anything reads the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Single process-wide order store; all state lives here for the
	// lifetime of the process.
	orderStore := store.NewOrderStore()

	r := router.SetupRouter(cfg, orderStore)

	r.SetTrustedProxies([]string{"127.0.0.1"})

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
