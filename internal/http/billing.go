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

type facturePayload struct {
	CustomerID    string              `json:"customer_id"`
	ContractID    string              `json:"contract_id"`
	InvoiceDate   string              `json:"invoice_date"`
	TotalHT       float64             `json:"total_ht"`
	TVARate       float64             `json:"tva_rate"`
	TotalTTC      float64             `json:"total_ttc"`
	Status        string              `json:"status"`
	Lines         []model.FactureLine `json:"lines"`
	KeepDocuments []string            `json:"keep_documents"`
}

func (p facturePayload) toInput() (service.FactureInput, error) {
	customerID, err := uuid.Parse(p.CustomerID)
	if err != nil {
		return service.FactureInput{}, err
	}
	contractID, err := parseOptionalUUID(p.ContractID)
	if err != nil {
		return service.FactureInput{}, err
	}
	invoiceDate, err := parseDate(p.InvoiceDate)
	if err != nil {
		return service.FactureInput{}, err
	}
	return service.FactureInput{
		CustomerID:  customerID,
		ContractID:  contractID,
		InvoiceDate: invoiceDate,
		TotalHT:     p.TotalHT,
		TVARate:     p.TVARate,
		TotalTTC:    p.TotalTTC,
		Status:      p.Status,
		Lines:       p.Lines,
	}, nil
}

func (h *Handler) listFactures(c *gin.Context) {
	var filter repository.FactureFilter
	var err error
	if filter.CustomerID, err = parseOptionalUUID(c.Query("customer_id")); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid customer_id"))
		return
	}
	filter.Status = c.Query("status")
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

	factures, err := h.billingService.ListFactures(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"items": factures}))
}

func (h *Handler) getFacture(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid facture id"))
		return
	}
	facture, err := h.billingService.GetFacture(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(facture))
}

func (h *Handler) createFacture(c *gin.Context) {
	var req facturePayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Factures)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	facture, err := h.billingService.CreateFacture(c.Request.Context(), input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(facture))
}

func (h *Handler) updateFacture(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid facture id"))
		return
	}
	var req facturePayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Factures)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	facture, err := h.billingService.UpdateFacture(c.Request.Context(), id, input, req.KeepDocuments, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(facture))
}

func (h *Handler) deleteFacture(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid facture id"))
		return
	}
	if err := h.billingService.DeleteFacture(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) removeFactureDocument(c *gin.Context) {
	h.removeDocumentByURL(c, func(ctx *gin.Context, id uuid.UUID, url string) (interface{}, error) {
		return h.billingService.RemoveFactureDocument(ctx.Request.Context(), id, url)
	})
}

type paymentPayload struct {
	CustomerID  string  `json:"customer_id"`
	PaymentFor  string  `json:"payment_for"`
	ContractID  string  `json:"contract_id"`
	FactureID   string  `json:"facture_id"`
	AccidentID  string  `json:"accident_id"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	PaymentDate string  `json:"payment_date"`
	Notes       string  `json:"notes"`
}

func (p paymentPayload) toInput() (service.PaymentInput, error) {
	customerID, err := uuid.Parse(p.CustomerID)
	if err != nil {
		return service.PaymentInput{}, err
	}
	contractID, err := parseOptionalUUID(p.ContractID)
	if err != nil {
		return service.PaymentInput{}, err
	}
	factureID, err := parseOptionalUUID(p.FactureID)
	if err != nil {
		return service.PaymentInput{}, err
	}
	accidentID, err := parseOptionalUUID(p.AccidentID)
	if err != nil {
		return service.PaymentInput{}, err
	}
	paymentDate, err := parseDate(p.PaymentDate)
	if err != nil {
		return service.PaymentInput{}, err
	}
	return service.PaymentInput{
		CustomerID:  customerID,
		PaymentFor:  model.PaymentTarget(p.PaymentFor),
		ContractID:  contractID,
		FactureID:   factureID,
		AccidentID:  accidentID,
		Amount:      p.Amount,
		Method:      p.Method,
		PaymentDate: paymentDate,
		Notes:       p.Notes,
	}, nil
}

func (h *Handler) listPayments(c *gin.Context) {
	var filter repository.PaymentFilter
	var err error
	if filter.CustomerID, err = parseOptionalUUID(c.Query("customer_id")); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid customer_id"))
		return
	}
	filter.PaymentFor = model.PaymentTarget(c.Query("payment_for"))
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

	payments, err := h.billingService.ListPayments(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"items": payments}))
}

func (h *Handler) getPayment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid payment id"))
		return
	}
	payment, err := h.billingService.GetPayment(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(payment))
}

func (h *Handler) createPayment(c *gin.Context) {
	var req paymentPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Payments)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	payment, err := h.billingService.CreatePayment(c.Request.Context(), input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(payment))
}

func (h *Handler) updatePayment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid payment id"))
		return
	}
	var req paymentPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Payments)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	payment, err := h.billingService.UpdatePayment(c.Request.Context(), id, input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(payment))
}

func (h *Handler) deletePayment(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid payment id"))
		return
	}
	if err := h.billingService.DeletePayment(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) removePaymentDocument(c *gin.Context) {
	h.removeDocumentByURL(c, func(ctx *gin.Context, id uuid.UUID, url string) (interface{}, error) {
		return h.billingService.RemovePaymentDocument(ctx.Request.Context(), id, url)
	})
}

type traitePayload struct {
	ContractID   string  `json:"contract_id"`
	Montant      float64 `json:"montant"`
	DatePaiement string  `json:"date_paiement"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes"`
}

func (p traitePayload) toInput() (service.TraiteInput, error) {
	contractID, err := parseOptionalUUID(p.ContractID)
	if err != nil {
		return service.TraiteInput{}, err
	}
	datePaiement, err := parseOptionalDate(p.DatePaiement)
	if err != nil {
		return service.TraiteInput{}, err
	}
	return service.TraiteInput{
		ContractID:   contractID,
		Montant:      p.Montant,
		DatePaiement: datePaiement,
		Status:       p.Status,
		Notes:        p.Notes,
	}, nil
}

func (h *Handler) listTraites(c *gin.Context) {
	var filter repository.TraiteFilter
	var err error
	if filter.ContractID, err = parseOptionalUUID(c.Query("contract_id")); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid contract_id"))
		return
	}
	filter.Status = c.Query("status")
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		filter.Offset = v
	}

	traites, err := h.billingService.ListTraites(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"items": traites}))
}

func (h *Handler) getTraite(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid traite id"))
		return
	}
	traite, err := h.billingService.GetTraite(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(traite))
}

func (h *Handler) createTraite(c *gin.Context) {
	var req traitePayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Traites)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	traite, err := h.billingService.CreateTraite(c.Request.Context(), input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(traite))
}

func (h *Handler) updateTraite(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid traite id"))
		return
	}
	var req traitePayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Traites)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	traite, err := h.billingService.UpdateTraite(c.Request.Context(), id, input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(traite))
}

func (h *Handler) deleteTraite(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid traite id"))
		return
	}
	if err := h.billingService.DeleteTraite(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) removeTraiteDocument(c *gin.Context) {
	h.removeDocumentByURL(c, func(ctx *gin.Context, id uuid.UUID, url string) (interface{}, error) {
		return h.billingService.RemoveTraiteDocument(ctx.Request.Context(), id, url)
	})
}

// removeDocumentByURL factors the shared shape of the URL-addressed
// document-delete endpoints.
func (h *Handler) removeDocumentByURL(c *gin.Context, remove func(*gin.Context, uuid.UUID, string) (interface{}, error)) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid id"))
		return
	}
	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	record, err := remove(c, id, req.URL)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(record))
}
