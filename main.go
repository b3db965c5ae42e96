package main

import (
	"log"

	"github.com/hagi-aesthetics/hagi-store/config"
	"github.com/hagi-aesthetics/hagi-store/controllers"
	"github.com/hagi-aesthetics/hagi-store/middleware"
	"github.com/hagi-aesthetics/hagi-store/routes"
	"github.com/hagi-aesthetics/hagi-store/store"
	"github.com/hagi-aesthetics/hagi-store/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Wire stores into controllers and middleware
	profiles := store.NewGormProfileStore(config.DB)
	controllers.SetupStores(
		store.NewGormOrderStore(config.DB),
		profiles,
		store.NewGormProductStore(config.DB),
		store.NewGormTopupStore(config.DB),
	)
	middleware.Profiles = profiles

	// Entitlement cache and gated file location
	controllers.EntitlementResults = controllers.NewEntitlementCache(cfg.EntitlementCacheTTL)
	controllers.VendorListPDFPath = cfg.VendorListPDFPath

	// Set up router
	router := routes.SetupRouter()

	// Add middleware
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	utils.LogInfo("Server starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
