package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"rental-service/internal/config"
	"rental-service/internal/service"
	"rental-service/internal/storage"
)

type Handler struct {
	authService        *service.AuthService
	customerService    *service.CustomerService
	vehicleService     *service.VehicleService
	contractService    *service.ContractService
	reservationService *service.ReservationService
	billingService     *service.BillingService
	fleetService       *service.FleetService
	dashboardService   *service.DashboardService
	intakes            *Intakes
	log                zerolog.Logger
}

func NewHandler(
	authService *service.AuthService,
	customerService *service.CustomerService,
	vehicleService *service.VehicleService,
	contractService *service.ContractService,
	reservationService *service.ReservationService,
	billingService *service.BillingService,
	fleetService *service.FleetService,
	dashboardService *service.DashboardService,
	intakes *Intakes,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		authService:        authService,
		customerService:    customerService,
		vehicleService:     vehicleService,
		contractService:    contractService,
		reservationService: reservationService,
		billingService:     billingService,
		fleetService:       fleetService,
		dashboardService:   dashboardService,
		intakes:            intakes,
		log:                log,
	}
}

// Intakes groups the per-entity upload components; each one writes to its
// own subdirectory of the upload root.
type Intakes struct {
	Customers     *Intake
	Vehicles      *Intake
	Contracts     *Intake
	Payments      *Intake
	Factures      *Intake
	Traites       *Intake
	Infractions   *Intake
	Accidents     *Intake
	Charges       *Intake
	Interventions *Intake
	Inspections   *Intake
	Insurances    *Intake
}

func NewIntakes(store *storage.Local, files config.FilesConfig) *Intakes {
	return &Intakes{
		Customers:     NewIntake(store, files, "customers"),
		Vehicles:      NewIntake(store, files, "vehicles"),
		Contracts:     NewIntake(store, files, "contracts"),
		Payments:      NewIntake(store, files, "payments"),
		Factures:      NewIntake(store, files, "factures"),
		Traites:       NewIntake(store, files, "traites"),
		Infractions:   NewIntake(store, files, "infractions"),
		Accidents:     NewIntake(store, files, "accidents"),
		Charges:       NewIntake(store, files, "charges"),
		Interventions: NewIntake(store, files, "interventions"),
		Inspections:   NewIntake(store, files, "inspections"),
		Insurances:    NewIntake(store, files, "insurances"),
	}
}

// bindPayload reads the request body into req. Multipart requests carry the
// JSON payload in a form field named "data" next to the uploaded files.
func bindPayload(c *gin.Context, req interface{}) error {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/") {
		raw := c.PostForm("data")
		if raw == "" {
			return errors.New("missing data field")
		}
		return json.Unmarshal([]byte(raw), req)
	}
	return c.ShouldBindJSON(req)
}

func parseID(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Param("id")))
}

func parseOptionalUUID(value string) (*uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseDate accepts RFC3339 timestamps and bare dates.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", value)
}

func parseOptionalDate(value string) (*time.Time, error) {
	ts, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	if ts.IsZero() {
		return nil, nil
	}
	return &ts, nil
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		// Persistence errors carry the driver detail and the attempted
		// record through to the client.
		var persistErr *service.PersistError
		if errors.As(err, &persistErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   persistErr.Error(),
				"payload": persistErr.Payload,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}
}

type responseEnvelope struct {
	Data interface{} `json:"data"`
}

func successResponse(data interface{}) responseEnvelope {
	return responseEnvelope{Data: data}
}

func errorResponse(msg string) gin.H {
	return gin.H{"error": msg}
}
