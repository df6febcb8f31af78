package main

import (
	"log"

	"github.com/croplens/fieldsim-backend-go/internal/api"
	"github.com/croplens/fieldsim-backend-go/internal/config"
	"github.com/croplens/fieldsim-backend-go/internal/handler"
	"github.com/croplens/fieldsim-backend-go/internal/region"
	"github.com/croplens/fieldsim-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	// Imagery archive lookups are optional; the simulator runs fine without.
	var archive service.ArchiveChecker
	if cfg.ArchiveEndpoint != "" {
		checker, err := service.NewMinioArchiveChecker(
			cfg.ArchiveEndpoint,
			cfg.ArchiveAccessKey,
			cfg.ArchiveSecretKey,
			cfg.ArchiveBucket,
			cfg.ArchiveUseSSL,
		)
		if err != nil {
			log.Printf("Imagery archive disabled: %v", err)
		} else {
			archive = checker
		}
	}

	fieldService := service.NewFieldService(region.NewResolver(), archive)
	fieldHandler := handler.NewFieldHandler(fieldService)

	router := api.SetupRouter(cfg, fieldHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
