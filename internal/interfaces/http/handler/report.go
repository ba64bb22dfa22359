package handler

import (
	"strconv"

	"github.com/condo/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles management report HTTP requests
type ReportHandler struct {
	BaseHandler
	service *report.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(service *report.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// BillingSummary godoc
// @Summary      Billing summary
// @Description  Billed, collected and overdue totals for a period
// @Tags         report
// @Produce      json
// @Param        period_start query string true "Period start (RFC3339)"
// @Param        period_end   query string true "Period end (RFC3339)"
// @Success      200 {object} dto.Response{data=report.BillingSummaryResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/billing-summary [get]
func (h *ReportHandler) BillingSummary(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var filter report.PeriodFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid period parameters")
		return
	}

	summary, err := h.service.GetBillingSummary(c.Request.Context(), condominiumID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// Delinquency godoc
// @Summary      Delinquency report
// @Description  Units with overdue boletos, worst first
// @Tags         report
// @Produce      json
// @Param        limit query int false "Max units"
// @Success      200 {object} dto.Response{data=report.DelinquencyReport}
// @Security     BearerAuth
// @Router       /reports/delinquency [get]
func (h *ReportHandler) Delinquency(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	delinquency, err := h.service.GetDelinquencyReport(c.Request.Context(), condominiumID, limit)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, delinquency)
}

// ReservationUsage godoc
// @Summary      Reservation usage report
// @Description  Common-area usage counts for a period
// @Tags         report
// @Produce      json
// @Param        period_start query string true "Period start (RFC3339)"
// @Param        period_end   query string true "Period end (RFC3339)"
// @Success      200 {object} dto.Response{data=report.ReservationUsageReport}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/reservation-usage [get]
func (h *ReportHandler) ReservationUsage(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	var filter report.PeriodFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid period parameters")
		return
	}

	usage, err := h.service.GetReservationUsage(c.Request.Context(), condominiumID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, usage)
}

// TicketSummary godoc
// @Summary      Ticket summary
// @Description  Occurrence ticket counts per status and category
// @Tags         report
// @Produce      json
// @Success      200 {object} dto.Response{data=report.TicketSummary}
// @Security     BearerAuth
// @Router       /reports/ticket-summary [get]
func (h *ReportHandler) TicketSummary(c *gin.Context) {
	condominiumID, err := getCondominiumID(c)
	if err != nil {
		h.Unauthorized(c, "Condominium context required")
		return
	}

	summary, err := h.service.GetTicketSummary(c.Request.Context(), condominiumID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}
