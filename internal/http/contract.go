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

type contractPayload struct {
	CustomerID    string                    `json:"customer_id"`
	VehicleID     string                    `json:"vehicle_id"`
	StartDate     string                    `json:"start_date"`
	EndDate       string                    `json:"end_date"`
	DailyRate     float64                   `json:"daily_rate"`
	TotalAmount   float64                   `json:"total_amount"`
	Guarantee     float64                   `json:"guarantee"`
	PaymentMethod string                    `json:"payment_method"`
	DeliveryPlace string                    `json:"delivery_place"`
	ReturnPlace   string                    `json:"return_place"`
	SecondDriver  *model.SecondDriver       `json:"second_driver"`
	Equipment     model.VehicleEquipment    `json:"equipment"`
	Extension     *model.ContractExtension  `json:"extension"`
	KeepDocuments []string                  `json:"keep_documents"`
}

func (p contractPayload) toInput() (service.ContractInput, error) {
	customerID, err := uuid.Parse(p.CustomerID)
	if err != nil {
		return service.ContractInput{}, err
	}
	vehicleID, err := uuid.Parse(p.VehicleID)
	if err != nil {
		return service.ContractInput{}, err
	}
	startDate, err := parseDate(p.StartDate)
	if err != nil {
		return service.ContractInput{}, err
	}
	endDate, err := parseDate(p.EndDate)
	if err != nil {
		return service.ContractInput{}, err
	}
	return service.ContractInput{
		CustomerID:    customerID,
		VehicleID:     vehicleID,
		StartDate:     startDate,
		EndDate:       endDate,
		DailyRate:     p.DailyRate,
		TotalAmount:   p.TotalAmount,
		Guarantee:     p.Guarantee,
		PaymentMethod: p.PaymentMethod,
		DeliveryPlace: p.DeliveryPlace,
		ReturnPlace:   p.ReturnPlace,
		SecondDriver:  p.SecondDriver,
		Equipment:     p.Equipment,
		Extension:     p.Extension,
	}, nil
}

func (h *Handler) listContracts(c *gin.Context) {
	var filter repository.ContractFilter
	var err error
	if filter.CustomerID, err = parseOptionalUUID(c.Query("customer_id")); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid customer_id"))
		return
	}
	if filter.VehicleID, err = parseOptionalUUID(c.Query("vehicle_id")); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle_id"))
		return
	}
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

	contracts, err := h.contractService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"items": contracts}))
}

func (h *Handler) getContract(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid contract id"))
		return
	}
	contract, err := h.contractService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(contract))
}

func (h *Handler) createContract(c *gin.Context) {
	var req contractPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Contracts)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	contract, err := h.contractService.Create(c.Request.Context(), input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(contract))
}

func (h *Handler) updateContract(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid contract id"))
		return
	}
	var req contractPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Contracts)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	contract, err := h.contractService.Update(c.Request.Context(), id, input, req.KeepDocuments, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(contract))
}

func (h *Handler) deleteContract(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid contract id"))
		return
	}
	if err := h.contractService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) removeContractDocument(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid contract id"))
		return
	}
	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	contract, err := h.contractService.RemoveDocument(c.Request.Context(), id, req.URL)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(contract))
}
