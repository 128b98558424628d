package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"github.com/krish-027/safar-guardian-pilot/internal/bus"
	"github.com/krish-027/safar-guardian-pilot/internal/config"
	"github.com/krish-027/safar-guardian-pilot/internal/server"
	"github.com/krish-027/safar-guardian-pilot/internal/service"
	"github.com/krish-027/safar-guardian-pilot/internal/store"
)

func main() {
	log.Println("[API] Starting Safar Guardian API Server...")

	cfg := config.Load()

	// Connect to Redis (document persistence)
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
		DB:   0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("[API] Failed to connect to Redis: %v", err)
	}
	log.Println("[API] Connected to Redis")
	defer redisClient.Close()

	// Connect to NATS (cross-context change notification + location feed)
	natsConn, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		log.Fatalf("[API] Failed to connect to NATS: %v", err)
	}
	log.Println("[API] Connected to NATS")
	defer natsConn.Close()

	changeBus := bus.NewNATS(natsConn)
	safetyStore := store.New(store.NewRedisKV(redisClient), cfg.StoreKey, changeBus)

	// Seed on first run so every view starts from the same document.
	doc := safetyStore.Read(ctx)
	log.Printf("[API] Store ready: %d tourists, %d alerts, %d zones",
		len(doc.Tourists), len(doc.Alerts), len(doc.GeofenceZones))

	// Optional SQL archive for historical reporting
	var archive *service.AlertArchive
	if cfg.DatabaseURL != "" {
		archive, err = service.NewAlertArchive(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("[API] Failed to open alert archive: %v", err)
		}
		log.Println("[API] Alert archive enabled")
	}

	tracker := service.NewTrackerService(safetyStore, archive)
	if err := tracker.Start(natsConn); err != nil {
		log.Fatalf("[API] Failed to start tracker: %v", err)
	}
	defer tracker.Stop()
	log.Println("[API] Tracker started")

	srv := server.NewServer(cfg, safetyStore, changeBus, tracker, archive)
	if err := srv.Setup(); err != nil {
		log.Fatalf("[API] Failed to set up server: %v", err)
	}

	addr := fmt.Sprintf(":%d", cfg.APIPort)
	go func() {
		if err := srv.Run(addr); err != nil {
			log.Fatalf("[API] Failed to start server: %v", err)
		}
	}()
	log.Printf("[API] Server ready on %s", addr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	log.Println("[API] Shutting down...")

	srv.Shutdown()
	log.Println("[API] Server stopped")
}
