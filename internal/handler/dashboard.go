package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/krish-027/safar-guardian-pilot/internal/service"
)

// DashboardHandler backs the officer dashboard views.
type DashboardHandler struct {
	officer *service.OfficerService
	reports *service.ReportService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(officer *service.OfficerService, reports *service.ReportService) *DashboardHandler {
	return &DashboardHandler{officer: officer, reports: reports}
}

// Stats returns the dashboard summary.
func (h *DashboardHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.officer.Stats(c.Request.Context()))
}

// AlertReport streams the alert log as an Excel workbook.
func (h *DashboardHandler) AlertReport(c *gin.Context) {
	data, err := h.reports.AlertReportXLSX(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := "safar_alerts_" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
