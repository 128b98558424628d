package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krish-027/safar-guardian-pilot/internal/store"
)

// ZoneHandler serves the geofence zone reference data.
type ZoneHandler struct {
	store *store.Store
}

// NewZoneHandler creates a new zone handler.
func NewZoneHandler(st *store.Store) *ZoneHandler {
	return &ZoneHandler{store: st}
}

// List returns the seeded zones in evaluation order. Overlaps are resolved
// by this order, so it is part of the contract, not presentation detail.
func (h *ZoneHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Read(c.Request.Context()).GeofenceZones)
}
