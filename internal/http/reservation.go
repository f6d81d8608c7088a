package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rental-service/internal/model"
	"rental-service/internal/repository"
	"rental-service/internal/service"
)

type reservationPayload struct {
	CustomerID      string  `json:"customer_id"`
	VehicleID       string  `json:"vehicle_id"`
	ReservationDate string  `json:"reservation_date"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalAmount     float64 `json:"total_amount"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes"`
}

func (p reservationPayload) toInput() (service.ReservationInput, error) {
	customerID, err := uuid.Parse(p.CustomerID)
	if err != nil {
		return service.ReservationInput{}, err
	}
	vehicleID, err := uuid.Parse(p.VehicleID)
	if err != nil {
		return service.ReservationInput{}, err
	}
	reservationDate, err := parseDate(p.ReservationDate)
	if err != nil {
		return service.ReservationInput{}, err
	}
	startDate, err := parseDate(p.StartDate)
	if err != nil {
		return service.ReservationInput{}, err
	}
	endDate, err := parseDate(p.EndDate)
	if err != nil {
		return service.ReservationInput{}, err
	}
	return service.ReservationInput{
		CustomerID:      customerID,
		VehicleID:       vehicleID,
		ReservationDate: reservationDate,
		StartDate:       startDate,
		EndDate:         endDate,
		TotalAmount:     p.TotalAmount,
		Status:          p.Status,
		Notes:           p.Notes,
	}, nil
}

func (h *Handler) listReservations(c *gin.Context) {
	var filter repository.ReservationFilter
	var err error
	if filter.CustomerID, err = parseOptionalUUID(c.Query("customer_id")); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid customer_id"))
		return
	}
	if filter.VehicleID, err = parseOptionalUUID(c.Query("vehicle_id")); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle_id"))
		return
	}
	filter.Status = model.ReservationStatus(c.Query("status"))
	if filter.DateFrom, err = parseOptionalDate(c.Query("date_from")); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid date_from"))
		return
	}
	if filter.DateTo, err = parseOptionalDate(c.Query("date_to")); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid date_to"))
		return
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		filter.Offset = v
	}

	reservations, err := h.reservationService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"items": reservations}))
}

func (h *Handler) getReservation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid reservation id"))
		return
	}
	reservation, err := h.reservationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(reservation))
}

func (h *Handler) createReservation(c *gin.Context) {
	var req reservationPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(reservation))
}

func (h *Handler) updateReservation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid reservation id"))
		return
	}
	var req reservationPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	reservation, err := h.reservationService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(reservation))
}

func (h *Handler) deleteReservation(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid reservation id"))
		return
	}
	if err := h.reservationService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}
