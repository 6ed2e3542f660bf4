package handlers

import (
	"time"

	"cobbler_crm/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func periodParam(c *gin.Context) string {
	period := c.Query("period")
	if period == "" {
		period = "month"
	}
	return period
}

func (h *ReportHandler) Data(c *gin.Context) {
	data, err := h.reportService.GetReportData(periodParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, data)
}

func (h *ReportHandler) Metrics(c *gin.Context) {
	metrics, err := h.reportService.GetMetrics(periodParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, metrics)
}

func (h *ReportHandler) RevenueChart(c *gin.Context) {
	points, err := h.reportService.GetRevenueChart(periodParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, points)
}

func (h *ReportHandler) ExportData(c *gin.Context) {
	rows, err := h.reportService.GetExportData(periodParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, rows)
}

func (h *ReportHandler) Custom(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		respondBadRequest(c, "from and to dates are required")
		return
	}

	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		respondBadRequest(c, "invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		respondBadRequest(c, "invalid to date, expected YYYY-MM-DD")
		return
	}

	data, err := h.reportService.GetCustomReport(from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, data)
}
