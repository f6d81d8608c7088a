package main

import (
	"fmt"
	"os"

	"rental-service/internal/auth"
	"rental-service/internal/config"
	"rental-service/internal/db"
	httphandler "rental-service/internal/http"
	"rental-service/internal/http/middleware"
	"rental-service/internal/logger"
	"rental-service/internal/repository"
	"rental-service/internal/service"
	"rental-service/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	customerRepo := repository.NewCustomerRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)
	contractRepo := repository.NewContractRepository(database)
	reservationRepo := repository.NewReservationRepository(database)
	billingRepo := repository.NewBillingRepository(database)
	fleetRepo := repository.NewFleetRepository(database)
	userRepo := repository.NewUserRepository(database)

	fileStore := storage.NewLocal(cfg.Files.UploadDir)

	tokenIssuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)
	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	authService := service.NewAuthService(userRepo, tokenIssuer, log)
	customerService := service.NewCustomerService(customerRepo, fileStore, log)
	vehicleService := service.NewVehicleService(vehicleRepo, fileStore, log)
	contractService := service.NewContractService(contractRepo, customerRepo, vehicleRepo, fileStore, log)
	reservationService := service.NewReservationService(reservationRepo, customerRepo, vehicleRepo)
	billingService := service.NewBillingService(billingRepo, customerRepo, fileStore, log)
	fleetService := service.NewFleetService(fleetRepo, fileStore, log)
	dashboardService := service.NewDashboardService(vehicleRepo, reservationRepo, billingRepo, fleetRepo, log)

	intakes := httphandler.NewIntakes(fileStore, cfg.Files)

	handler := httphandler.NewHandler(
		authService,
		customerService,
		vehicleService,
		contractService,
		reservationService,
		billingService,
		fleetService,
		dashboardService,
		intakes,
		log,
	)
	router := httphandler.NewRouter(handler, middleware.Auth(tokenParser), cfg.Environment, cfg.Files.UploadDir)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting rental service")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
