package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krish-027/safar-guardian-pilot/internal/model"
	"github.com/krish-027/safar-guardian-pilot/internal/service"
	"github.com/krish-027/safar-guardian-pilot/internal/store"
)

// AlertHandler exposes the alert feed and officer resolution.
type AlertHandler struct {
	store   *store.Store
	officer *service.OfficerService
}

// NewAlertHandler creates a new alert handler.
func NewAlertHandler(st *store.Store, officer *service.OfficerService) *AlertHandler {
	return &AlertHandler{store: st, officer: officer}
}

// List returns alerts newest first, optionally filtered by tourist or
// resolution state.
func (h *AlertHandler) List(c *gin.Context) {
	alerts := h.store.ListAlerts(c.Request.Context())

	if touristID := c.Query("touristId"); touristID != "" {
		alerts = filterAlerts(alerts, func(a model.Alert) bool { return a.TouristID == touristID })
	}
	switch c.Query("resolved") {
	case "true":
		alerts = filterAlerts(alerts, func(a model.Alert) bool { return a.Resolved })
	case "false":
		alerts = filterAlerts(alerts, func(a model.Alert) bool { return !a.Resolved })
	}

	c.JSON(http.StatusOK, alerts)
}

// Resolve marks an alert handled.
func (h *AlertHandler) Resolve(c *gin.Context) {
	if err := h.officer.Resolve(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resolved": true})
}

func filterAlerts(alerts []model.Alert, keep func(model.Alert) bool) []model.Alert {
	out := make([]model.Alert, 0, len(alerts))
	for _, a := range alerts {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
