package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krish-027/safar-guardian-pilot/internal/service"
)

// DemoHandler starts the scripted demo sequence.
type DemoHandler struct {
	demo *service.DemoService
}

// NewDemoHandler creates a new demo handler.
func NewDemoHandler(demo *service.DemoService) *DemoHandler {
	return &DemoHandler{demo: demo}
}

// Run kicks off the demo script in the background; once started it runs to
// completion.
func (h *DemoHandler) Run(c *gin.Context) {
	go func() {
		if err := h.demo.Run(context.Background()); err != nil {
			log.Printf("[Demo] Script failed: %v", err)
		}
	}()
	c.JSON(http.StatusAccepted, gin.H{"status": "started"})
}
