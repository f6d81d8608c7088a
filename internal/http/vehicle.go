package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"rental-service/internal/model"
	"rental-service/internal/repository"
	"rental-service/internal/service"
)

type vehiclePayload struct {
	ChassisNumber        string                 `json:"chassis_number"`
	LicensePlate         string                 `json:"license_plate"`
	Brand                string                 `json:"brand"`
	Model                string                 `json:"model"`
	Year                 int                    `json:"year"`
	FuelType             string                 `json:"fuel_type"`
	Mileage              int                    `json:"mileage"`
	DailyRate            float64                `json:"daily_rate"`
	Equipment            model.VehicleEquipment `json:"equipment"`
	AutorisationValidity string                 `json:"autorisation_validity"`
	CarteGriseValidity   string                 `json:"carte_grise_validity"`
	Status               string                 `json:"status"`
	KeepDocuments        []string               `json:"keep_documents"`
}

func (p vehiclePayload) toInput() (service.VehicleInput, error) {
	autorisation, err := parseOptionalDate(p.AutorisationValidity)
	if err != nil {
		return service.VehicleInput{}, err
	}
	carteGrise, err := parseOptionalDate(p.CarteGriseValidity)
	if err != nil {
		return service.VehicleInput{}, err
	}
	return service.VehicleInput{
		ChassisNumber:        p.ChassisNumber,
		LicensePlate:         p.LicensePlate,
		Brand:                p.Brand,
		Model:                p.Model,
		Year:                 p.Year,
		FuelType:             p.FuelType,
		Mileage:              p.Mileage,
		DailyRate:            p.DailyRate,
		Equipment:            p.Equipment,
		AutorisationValidity: autorisation,
		CarteGriseValidity:   carteGrise,
		Status:               p.Status,
	}, nil
}

func (h *Handler) listVehicles(c *gin.Context) {
	filter := repository.VehicleFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Status: model.VehicleStatus(c.Query("status")),
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		filter.Offset = v
	}

	vehicles, err := h.vehicleService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"items": vehicles}))
}

func (h *Handler) getVehicle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle id"))
		return
	}
	vehicle, err := h.vehicleService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(vehicle))
}

func (h *Handler) createVehicle(c *gin.Context) {
	var req vehiclePayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid validity date"))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Vehicles)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(vehicle))
}

func (h *Handler) updateVehicle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle id"))
		return
	}
	var req vehiclePayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid validity date"))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Vehicles)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := h.vehicleService.Update(c.Request.Context(), id, input, req.KeepDocuments, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(vehicle))
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle id"))
		return
	}
	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) removeVehicleDocument(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle id"))
		return
	}
	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := h.vehicleService.RemoveDocument(c.Request.Context(), id, req.URL)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(vehicle))
}
