package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nurpe/rentals-service/internal/auth"
	"github.com/nurpe/rentals-service/internal/config"
	"github.com/nurpe/rentals-service/internal/db"
	"github.com/nurpe/rentals-service/internal/excel"
	httphandler "github.com/nurpe/rentals-service/internal/http"
	"github.com/nurpe/rentals-service/internal/http/middleware"
	"github.com/nurpe/rentals-service/internal/logger"
	"github.com/nurpe/rentals-service/internal/pdf"
	"github.com/nurpe/rentals-service/internal/pricing"
	"github.com/nurpe/rentals-service/internal/repository"
	"github.com/nurpe/rentals-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	planRepo := repository.NewPlanRepository(database)
	rentalRepo := repository.NewRentalRepository(database)
	driverRepo := repository.NewDriverRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)
	eventRepo := repository.NewEventRepository(database)

	engine := pricing.NewEngine()
	publisher := service.NewOutboxPublisher(eventRepo, log)

	planService := service.NewPlanService(planRepo, log)
	rentalService := service.NewRentalService(rentalRepo, planRepo, driverRepo, vehicleRepo, publisher, engine, cfg, log)
	fleetService := service.NewFleetService(driverRepo, vehicleRepo, log)
	documentService := service.NewDocumentService(rentalRepo, planRepo, driverRepo, vehicleRepo, engine, pdf.NewGenerator(), excel.NewGenerator())

	if cfg.Rentals.SeedPlans {
		created, err := planService.InitializeDefaultPlans(context.Background())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed default plans")
		}
		if created {
			log.Info().Msg("default plans created")
		}
	}

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(planService, rentalService, fleetService, documentService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting rentals service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
