package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krish-027/safar-guardian-pilot/internal/model"
	"github.com/krish-027/safar-guardian-pilot/internal/store"
)

// SettingsHandler reads and patches the process-wide settings record.
type SettingsHandler struct {
	store *store.Store
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

// Get returns the current settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetSettings(c.Request.Context()))
}

// Patch shallow-merges the supplied fields into the settings record.
func (h *SettingsHandler) Patch(c *gin.Context) {
	var req model.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.store.UpdateSettings(c.Request.Context(), req))
}
