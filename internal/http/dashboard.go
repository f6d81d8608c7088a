package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rental-service/internal/report"
	"rental-service/internal/service"
)

func (h *Handler) dashboardAlerts(c *gin.Context) {
	alerts, err := h.dashboardService.Alerts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"items": alerts}))
}

func (h *Handler) parseSummaryQuery(c *gin.Context) (int, service.SummaryRange, error) {
	var window service.SummaryRange
	year := 0
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, window, fmt.Errorf("invalid year")
		}
		year = v
	}
	from, err := parseOptionalDate(c.Query("start_date"))
	if err != nil {
		return 0, window, fmt.Errorf("invalid start_date")
	}
	to, err := parseOptionalDate(c.Query("end_date"))
	if err != nil {
		return 0, window, fmt.Errorf("invalid end_date")
	}
	window.From = from
	window.To = to
	return year, window, nil
}

func (h *Handler) dashboardSummary(c *gin.Context) {
	year, window, err := h.parseSummaryQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	summary, err := h.dashboardService.MonthlySummary(c.Request.Context(), year, window)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(summary))
}

// dashboardSummaryExport streams the rollup as an xlsx download.
func (h *Handler) dashboardSummaryExport(c *gin.Context) {
	year, window, err := h.parseSummaryQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	summary, err := h.dashboardService.MonthlySummary(c.Request.Context(), year, window)
	if err != nil {
		h.handleError(c, err)
		return
	}

	buf, err := report.MonthlySummaryXLSX(*summary)
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("bilan-%d.xlsx", summary.Year)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
