package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/krish-027/safar-guardian-pilot/internal/bus"
	"github.com/krish-027/safar-guardian-pilot/internal/config"
	"github.com/krish-027/safar-guardian-pilot/internal/handler"
	"github.com/krish-027/safar-guardian-pilot/internal/service"
	"github.com/krish-027/safar-guardian-pilot/internal/store"
)

// Server wires the engine behind the HTTP API.
type Server struct {
	router  *gin.Engine
	config  *config.Config
	store   *store.Store
	bus     bus.Bus
	tracker *service.TrackerService
	archive *service.AlertArchive
	wsHub   *handler.WSHub
	http    *http.Server
}

// NewServer creates a new server instance. archive may be nil.
func NewServer(cfg *config.Config, st *store.Store, b bus.Bus, tracker *service.TrackerService, archive *service.AlertArchive) *Server {
	return &Server{
		config:  cfg,
		store:   st,
		bus:     b,
		tracker: tracker,
		archive: archive,
	}
}

// Setup initializes services, handlers and routes.
func (s *Server) Setup() error {
	authService, err := service.NewAuthService(s.config)
	if err != nil {
		return err
	}
	registrationService := service.NewRegistrationService(s.store)
	officerService := service.NewOfficerService(s.store)
	reportService := service.NewReportService(s.store)
	demoService := service.NewDemoService(s.store, s.tracker, s.config.DemoStepDelay)

	s.wsHub = handler.NewWSHub(s.bus)
	wsHandler := handler.NewWSHandler(s.wsHub)

	authHandler := handler.NewAuthHandler(authService)
	touristHandler := handler.NewTouristHandler(registrationService, s.tracker, s.store)
	alertHandler := handler.NewAlertHandler(s.store, officerService)
	zoneHandler := handler.NewZoneHandler(s.store)
	settingsHandler := handler.NewSettingsHandler(s.store)
	dashboardHandler := handler.NewDashboardHandler(officerService, reportService)
	demoHandler := handler.NewDemoHandler(demoService)

	go s.wsHub.Run()
	log.Println("[Server] WebSocket hub started")

	s.router = gin.Default()

	// CORS middleware
	s.router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"archive": s.archive != nil,
		})
	})
	s.router.POST("/api/v1/auth/login", authHandler.Login)

	// WebSocket routes
	s.router.GET("/ws/updates", wsHandler.HandleUpdates)
	s.router.GET("/ws/stats", wsHandler.GetStats)

	api := s.router.Group("/api/v1")
	{
		// Tourist-facing routes
		api.POST("/tourists", touristHandler.Register)
		api.GET("/tourists", touristHandler.List)
		api.GET("/tourists/:id", touristHandler.Get)
		api.GET("/tourists/:id/alerts", touristHandler.Alerts)
		api.GET("/tourists/:id/qr", touristHandler.QRCode)
		api.PUT("/tourists/:id/location", touristHandler.UpdateLocation)
		api.POST("/tourists/:id/panic", touristHandler.Panic)
		api.POST("/tourists/:id/anomaly", touristHandler.Anomaly)

		api.GET("/alerts", alertHandler.List)
		api.GET("/zones", zoneHandler.List)
		api.GET("/settings", settingsHandler.Get)
		api.PATCH("/settings", settingsHandler.Patch)
		api.POST("/demo/run", demoHandler.Run)

		// Officer routes
		officer := api.Group("")
		officer.Use(authHandler.Middleware())
		{
			officer.GET("/dashboard/stats", dashboardHandler.Stats)
			officer.GET("/reports/alerts.xlsx", dashboardHandler.AlertReport)
			officer.POST("/alerts/:id/resolve", alertHandler.Resolve)
		}
	}

	return nil
}

// Run starts the HTTP server.
func (s *Server) Run(addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.router}
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server and its background workers.
func (s *Server) Shutdown() {
	if s.wsHub != nil {
		s.wsHub.Stop()
	}
	if s.http != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.http.Shutdown(ctx); err != nil {
			log.Printf("[Server] Shutdown error: %v", err)
		}
	}
}
