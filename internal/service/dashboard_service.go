package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"rental-service/internal/model"
	"rental-service/internal/repository"
)

// DashboardService pulls the full collections each call and recomputes
// alerts and rollups from scratch. A collection that fails to load degrades
// to empty rather than failing the whole dashboard.
type DashboardService struct {
	vehicleRepo     *repository.VehicleRepository
	reservationRepo *repository.ReservationRepository
	billingRepo     *repository.BillingRepository
	fleetRepo       *repository.FleetRepository
	log             zerolog.Logger
}

func NewDashboardService(
	vehicleRepo *repository.VehicleRepository,
	reservationRepo *repository.ReservationRepository,
	billingRepo *repository.BillingRepository,
	fleetRepo *repository.FleetRepository,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		vehicleRepo:     vehicleRepo,
		reservationRepo: reservationRepo,
		billingRepo:     billingRepo,
		fleetRepo:       fleetRepo,
		log:             log,
	}
}

func collect[T any](log zerolog.Logger, name string, load func() ([]T, error)) []T {
	records, err := load()
	if err != nil {
		log.Warn().Err(err).Str("collection", name).Msg("dashboard collection load failed")
		return nil
	}
	return records
}

func (s *DashboardService) Alerts(ctx context.Context) ([]model.VehicleAlert, error) {
	vehicles, err := s.vehicleRepo.List(ctx, repository.VehicleFilter{Limit: repository.ListAll})
	if err != nil {
		return nil, err
	}
	inspections := collect(s.log, "inspections", func() ([]model.VehicleInspection, error) {
		return s.fleetRepo.ListInspections(ctx, repository.FleetFilter{Limit: repository.ListAll})
	})
	insurances := collect(s.log, "insurances", func() ([]model.VehicleInsurance, error) {
		return s.fleetRepo.ListInsurances(ctx, repository.FleetFilter{Limit: repository.ListAll})
	})
	interventions := collect(s.log, "interventions", func() ([]model.Intervention, error) {
		return s.fleetRepo.ListInterventions(ctx, repository.FleetFilter{Limit: repository.ListAll})
	})
	return ComputeVehicleAlerts(vehicles, inspections, insurances, interventions, time.Now()), nil
}

func (s *DashboardService) MonthlySummary(ctx context.Context, year int, window SummaryRange) (*model.MonthlySummary, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	reservations := collect(s.log, "reservations", func() ([]model.Reservation, error) {
		return s.reservationRepo.List(ctx, repository.ReservationFilter{Limit: repository.ListAll})
	})
	factures := collect(s.log, "factures", func() ([]model.Facture, error) {
		return s.billingRepo.ListFactures(ctx, repository.FactureFilter{Limit: repository.ListAll})
	})
	traites := collect(s.log, "traites", func() ([]model.Traite, error) {
		return s.billingRepo.ListTraites(ctx, repository.TraiteFilter{Limit: repository.ListAll})
	})
	charges := collect(s.log, "charges", func() ([]model.Charge, error) {
		return s.fleetRepo.ListCharges(ctx, repository.FleetFilter{Limit: repository.ListAll})
	})
	interventions := collect(s.log, "interventions", func() ([]model.Intervention, error) {
		return s.fleetRepo.ListInterventions(ctx, repository.FleetFilter{Limit: repository.ListAll})
	})
	inspections := collect(s.log, "inspections", func() ([]model.VehicleInspection, error) {
		return s.fleetRepo.ListInspections(ctx, repository.FleetFilter{Limit: repository.ListAll})
	})
	insurances := collect(s.log, "insurances", func() ([]model.VehicleInsurance, error) {
		return s.fleetRepo.ListInsurances(ctx, repository.FleetFilter{Limit: repository.ListAll})
	})

	summary := ComputeMonthlySummary(year, window, reservations, factures, traites, charges, interventions, inspections, insurances)
	return &summary, nil
}
