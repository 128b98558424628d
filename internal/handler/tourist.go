package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krish-027/safar-guardian-pilot/internal/model"
	"github.com/krish-027/safar-guardian-pilot/internal/service"
	"github.com/krish-027/safar-guardian-pilot/internal/store"
)

// TouristHandler exposes registration, tourist reads and event simulation.
type TouristHandler struct {
	registration *service.RegistrationService
	tracker      *service.TrackerService
	store        *store.Store
}

// NewTouristHandler creates a new tourist handler.
func NewTouristHandler(reg *service.RegistrationService, tracker *service.TrackerService, st *store.Store) *TouristHandler {
	return &TouristHandler{registration: reg, tracker: tracker, store: st}
}

// Register creates a tourist with a fresh digital ID.
func (h *TouristHandler) Register(c *gin.Context) {
	var req model.RegisterTouristRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tourist, err := h.registration.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tourist)
}

// List returns all registered tourists.
func (h *TouristHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListTourists(c.Request.Context()))
}

// Get returns one tourist by ID.
func (h *TouristHandler) Get(c *gin.Context) {
	tourist, err := h.store.GetTourist(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tourist)
}

// Alerts returns one tourist's alert history, newest first.
func (h *TouristHandler) Alerts(c *gin.Context) {
	alerts := h.store.AlertsByTourist(c.Request.Context(), c.Param("id"))
	if alerts == nil {
		alerts = []model.Alert{}
	}
	c.JSON(http.StatusOK, alerts)
}

// QRCode renders the tourist's digital ID as a PNG.
func (h *TouristHandler) QRCode(c *gin.Context) {
	png, err := h.registration.QRCodePNG(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// UpdateLocation moves a tourist and runs the geofence check. The response
// carries the entry alert when the move crossed into a zone.
func (h *TouristHandler) UpdateLocation(c *gin.Context) {
	var req model.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.tracker.UpdateLocation(c.Request.Context(), c.Param("id"), model.Location{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alert": alert})
}

// Panic fires an emergency SOS for the tourist.
func (h *TouristHandler) Panic(c *gin.Context) {
	alert, err := h.tracker.Panic(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// Anomaly fires an anomaly alert for the tourist.
func (h *TouristHandler) Anomaly(c *gin.Context) {
	// An empty body is fine and defaults the severity to low; anything else
	// must parse.
	var req model.AnomalyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.tracker.Anomaly(c.Request.Context(), c.Param("id"), req.Severity, req.Description)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, alert)
}
