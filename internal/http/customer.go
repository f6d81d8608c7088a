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

type customerPayload struct {
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	CIN           *string  `json:"cin"`
	LicenseNumber *string  `json:"license_number"`
	PassportNo    *string  `json:"passport_no"`
	BirthDate     string   `json:"birth_date"`
	Nationality   string   `json:"nationality"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Status        string   `json:"status"`
	KeepDocuments []string `json:"keep_documents"`
}

func (p customerPayload) toInput() (service.CustomerInput, error) {
	birthDate, err := parseOptionalDate(p.BirthDate)
	if err != nil {
		return service.CustomerInput{}, err
	}
	return service.CustomerInput{
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		CIN:           p.CIN,
		LicenseNumber: p.LicenseNumber,
		PassportNo:    p.PassportNo,
		BirthDate:     birthDate,
		Nationality:   p.Nationality,
		Address:       p.Address,
		Phone:         p.Phone,
		Email:         p.Email,
		Status:        p.Status,
	}, nil
}

func (h *Handler) listCustomers(c *gin.Context) {
	filter := repository.CustomerFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Status: model.CustomerStatus(c.Query("status")),
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		filter.Offset = v
	}

	customers, err := h.customerService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"items": customers}))
}

func (h *Handler) getCustomer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid customer id"))
		return
	}
	customer, err := h.customerService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(customer))
}

func (h *Handler) createCustomer(c *gin.Context) {
	var req customerPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid birth_date"))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Customers)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), input, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(customer))
}

func (h *Handler) updateCustomer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid customer id"))
		return
	}
	var req customerPayload
	if err := bindPayload(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid birth_date"))
		return
	}
	uploaded, err := collectUploads(c, h.intakes.Customers)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), id, input, req.KeepDocuments, uploaded)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(customer))
}

func (h *Handler) deleteCustomer(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid customer id"))
		return
	}
	if err := h.customerService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

// Customer documents are addressed by name, unlike every other entity.
func (h *Handler) removeCustomerDocument(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid customer id"))
		return
	}
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	customer, err := h.customerService.RemoveDocument(c.Request.Context(), id, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(customer))
}
