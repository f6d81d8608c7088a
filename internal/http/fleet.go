package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rental-service/internal/repository"
	"rental-service/internal/service"
)

func (h *Handler) parseFleetFilter(c *gin.Context) (repository.FleetFilter, error) {
	var filter repository.FleetFilter
	var err error
	if filter.VehicleID, err = parseOptionalUUID(c.Query("vehicle_id")); err != nil {
		return filter, err
	}
	filter.Status = c.Query("status")
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		filter.Offset = v
	}
	return filter, nil
}

type infractionPayload struct {
	VehicleID   string  `json:"vehicle_id"`
	CustomerID  string  `json:"customer_id"`
	Date        string  `json:"date"`
	Place       string  `json:"place"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
}

func (p infractionPayload) toInput() (service.InfractionInput, error) {
	vehicleID, err := parseOptionalUUID(p.VehicleID)
	if err != nil {
		return service.InfractionInput{}, err
	}
	customerID, err := parseOptionalUUID(p.CustomerID)
	if err != nil {
		return service.InfractionInput{}, err
	}
	date, err := parseDate(p.Date)
	if err != nil {
		return service.InfractionInput{}, err
	}
	return service.InfractionInput{
		VehicleID:   vehicleID,
		CustomerID:  customerID,
		Date:        date,
		Place:       p.Place,
		Amount:      p.Amount,
		Status:      p.Status,
		Description: p.Description,
	}, nil
}

func (h *Handler) listInfractions(c *gin.Context) {
	filter, err := h.parseFleetFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle_id"))
		return
	}
	records, err := h.fleetService.ListInfractions(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"items": records}))
}

func (h *Handler) getInfraction(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid infraction id"))
		return
	}
	record, err := h.fleetService.GetInfraction(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) createInfraction(c *gin.Context) {
	var req infractionPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Infractions)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.fleetService.CreateInfraction(c.Request.Context(), input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(record))
}

func (h *Handler) updateInfraction(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid infraction id"))
		return
	}
	var req infractionPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Infractions)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.fleetService.UpdateInfraction(c.Request.Context(), id, input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) deleteInfraction(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid infraction id"))
		return
	}
	if err := h.fleetService.DeleteInfraction(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) removeInfractionDocument(c *gin.Context) {
	h.removeDocumentByURL(c, func(ctx *gin.Context, id uuid.UUID, url string) (interface{}, error) {
		return h.fleetService.RemoveInfractionDocument(ctx.Request.Context(), id, url)
	})
}

type accidentPayload struct {
	VehicleID   string  `json:"vehicle_id"`
	CustomerID  string  `json:"customer_id"`
	Date        string  `json:"date"`
	Place       string  `json:"place"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	RepairCost  float64 `json:"repair_cost"`
}

func (p accidentPayload) toInput() (service.AccidentInput, error) {
	vehicleID, err := parseOptionalUUID(p.VehicleID)
	if err != nil {
		return service.AccidentInput{}, err
	}
	customerID, err := parseOptionalUUID(p.CustomerID)
	if err != nil {
		return service.AccidentInput{}, err
	}
	date, err := parseDate(p.Date)
	if err != nil {
		return service.AccidentInput{}, err
	}
	return service.AccidentInput{
		VehicleID:   vehicleID,
		CustomerID:  customerID,
		Date:        date,
		Place:       p.Place,
		Description: p.Description,
		Status:      p.Status,
		RepairCost:  p.RepairCost,
	}, nil
}

func (h *Handler) listAccidents(c *gin.Context) {
	filter, err := h.parseFleetFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle_id"))
		return
	}
	records, err := h.fleetService.ListAccidents(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"items": records}))
}

func (h *Handler) getAccident(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid accident id"))
		return
	}
	record, err := h.fleetService.GetAccident(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) createAccident(c *gin.Context) {
	var req accidentPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Accidents)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.fleetService.CreateAccident(c.Request.Context(), input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(record))
}

func (h *Handler) updateAccident(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid accident id"))
		return
	}
	var req accidentPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Accidents)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.fleetService.UpdateAccident(c.Request.Context(), id, input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) deleteAccident(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid accident id"))
		return
	}
	if err := h.fleetService.DeleteAccident(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) removeAccidentDocument(c *gin.Context) {
	h.removeDocumentByURL(c, func(ctx *gin.Context, id uuid.UUID, url string) (interface{}, error) {
		return h.fleetService.RemoveAccidentDocument(ctx.Request.Context(), id, url)
	})
}

type chargePayload struct {
	Label    string  `json:"label"`
	Montant  float64 `json:"montant"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Notes    string  `json:"notes"`
}

func (p chargePayload) toInput() (service.ChargeInput, error) {
	date, err := parseOptionalDate(p.Date)
	if err != nil {
		return service.ChargeInput{}, err
	}
	return service.ChargeInput{
		Label:    p.Label,
		Montant:  p.Montant,
		Date:     date,
		Category: p.Category,
		Notes:    p.Notes,
	}, nil
}

func (h *Handler) listCharges(c *gin.Context) {
	filter, err := h.parseFleetFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle_id"))
		return
	}
	records, err := h.fleetService.ListCharges(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"items": records}))
}

func (h *Handler) getCharge(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid charge id"))
		return
	}
	record, err := h.fleetService.GetCharge(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) createCharge(c *gin.Context) {
	var req chargePayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Charges)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.fleetService.CreateCharge(c.Request.Context(), input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(record))
}

func (h *Handler) updateCharge(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid charge id"))
		return
	}
	var req chargePayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Charges)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.fleetService.UpdateCharge(c.Request.Context(), id, input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) deleteCharge(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid charge id"))
		return
	}
	if err := h.fleetService.DeleteCharge(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) removeChargeDocument(c *gin.Context) {
	h.removeDocumentByURL(c, func(ctx *gin.Context, id uuid.UUID, url string) (interface{}, error) {
		return h.fleetService.RemoveChargeDocument(ctx.Request.Context(), id, url)
	})
}

type interventionPayload struct {
	VehicleID   string  `json:"vehicle_id"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Cost        float64 `json:"cost"`
	Mileage     int     `json:"mileage"`
	NextMileage int     `json:"next_mileage"`
	Garage      string  `json:"garage"`
	Notes       string  `json:"notes"`
}

func (p interventionPayload) toInput() (service.InterventionInput, error) {
	vehicleID, err := parseOptionalUUID(p.VehicleID)
	if err != nil {
		return service.InterventionInput{}, err
	}
	date, err := parseDate(p.Date)
	if err != nil {
		return service.InterventionInput{}, err
	}
	return service.InterventionInput{
		VehicleID:   vehicleID,
		Type:        p.Type,
		Date:        date,
		Cost:        p.Cost,
		Mileage:     p.Mileage,
		NextMileage: p.NextMileage,
		Garage:      p.Garage,
		Notes:       p.Notes,
	}, nil
}

func (h *Handler) listInterventions(c *gin.Context) {
	filter, err := h.parseFleetFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle_id"))
		return
	}
	records, err := h.fleetService.ListInterventions(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"items": records}))
}

func (h *Handler) getIntervention(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid intervention id"))
		return
	}
	record, err := h.fleetService.GetIntervention(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) createIntervention(c *gin.Context) {
	var req interventionPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Interventions)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.fleetService.CreateIntervention(c.Request.Context(), input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(record))
}

func (h *Handler) updateIntervention(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid intervention id"))
		return
	}
	var req interventionPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Interventions)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.fleetService.UpdateIntervention(c.Request.Context(), id, input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) deleteIntervention(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid intervention id"))
		return
	}
	if err := h.fleetService.DeleteIntervention(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) removeInterventionDocument(c *gin.Context) {
	h.removeDocumentByURL(c, func(ctx *gin.Context, id uuid.UUID, url string) (interface{}, error) {
		return h.fleetService.RemoveInterventionDocument(ctx.Request.Context(), id, url)
	})
}

type inspectionPayload struct {
	VehicleID      string  `json:"vehicle_id"`
	Center         string  `json:"center"`
	InspectionDate string  `json:"inspection_date"`
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Price          float64 `json:"price"`
	Result         string  `json:"result"`
}

func (p inspectionPayload) toInput() (service.InspectionInput, error) {
	vehicleID, err := parseOptionalUUID(p.VehicleID)
	if err != nil {
		return service.InspectionInput{}, err
	}
	inspectionDate, err := parseDate(p.InspectionDate)
	if err != nil {
		return service.InspectionInput{}, err
	}
	startDate, err := parseDate(p.StartDate)
	if err != nil {
		return service.InspectionInput{}, err
	}
	endDate, err := parseDate(p.EndDate)
	if err != nil {
		return service.InspectionInput{}, err
	}
	return service.InspectionInput{
		VehicleID:      vehicleID,
		Center:         p.Center,
		InspectionDate: inspectionDate,
		StartDate:      startDate,
		EndDate:        endDate,
		Price:          p.Price,
		Result:         p.Result,
	}, nil
}

func (h *Handler) listInspections(c *gin.Context) {
	filter, err := h.parseFleetFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle_id"))
		return
	}
	records, err := h.fleetService.ListInspections(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"items": records}))
}

func (h *Handler) getInspection(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid inspection id"))
		return
	}
	record, err := h.fleetService.GetInspection(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) createInspection(c *gin.Context) {
	var req inspectionPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Inspections)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.fleetService.CreateInspection(c.Request.Context(), input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(record))
}

func (h *Handler) updateInspection(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid inspection id"))
		return
	}
	var req inspectionPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Inspections)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.fleetService.UpdateInspection(c.Request.Context(), id, input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) deleteInspection(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid inspection id"))
		return
	}
	if err := h.fleetService.DeleteInspection(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) removeInspectionDocument(c *gin.Context) {
	h.removeDocumentByURL(c, func(ctx *gin.Context, id uuid.UUID, url string) (interface{}, error) {
		return h.fleetService.RemoveInspectionDocument(ctx.Request.Context(), id, url)
	})
}

type insurancePayload struct {
	VehicleID     string  `json:"vehicle_id"`
	Company       string  `json:"company"`
	PolicyNumber  string  `json:"policy_number"`
	OperationDate string  `json:"operation_date"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Price         float64 `json:"price"`
}

func (p insurancePayload) toInput() (service.InsuranceInput, error) {
	vehicleID, err := parseOptionalUUID(p.VehicleID)
	if err != nil {
		return service.InsuranceInput{}, err
	}
	operationDate, err := parseDate(p.OperationDate)
	if err != nil {
		return service.InsuranceInput{}, err
	}
	startDate, err := parseDate(p.StartDate)
	if err != nil {
		return service.InsuranceInput{}, err
	}
	endDate, err := parseDate(p.EndDate)
	if err != nil {
		return service.InsuranceInput{}, err
	}
	return service.InsuranceInput{
		VehicleID:     vehicleID,
		Company:       p.Company,
		PolicyNumber:  p.PolicyNumber,
		OperationDate: operationDate,
		StartDate:     startDate,
		EndDate:       endDate,
		Price:         p.Price,
	}, nil
}

func (h *Handler) listInsurances(c *gin.Context) {
	filter, err := h.parseFleetFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid vehicle_id"))
		return
	}
	records, err := h.fleetService.ListInsurances(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"items": records}))
}

func (h *Handler) getInsurance(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid insurance id"))
		return
	}
	record, err := h.fleetService.GetInsurance(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) createInsurance(c *gin.Context) {
	var req insurancePayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Insurances)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.fleetService.CreateInsurance(c.Request.Context(), input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(record))
}

func (h *Handler) updateInsurance(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid insurance id"))
		return
	}
	var req insurancePayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Insurances)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := h.fleetService.UpdateInsurance(c.Request.Context(), id, input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(record))
}

func (h *Handler) deleteInsurance(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid insurance id"))
		return
	}
	if err := h.fleetService.DeleteInsurance(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) removeInsuranceDocument(c *gin.Context) {
	h.removeDocumentByURL(c, func(ctx *gin.Context, id uuid.UUID, url string) (interface{}, error) {
		return h.fleetService.RemoveInsuranceDocument(ctx.Request.Context(), id, url)
	})
}
