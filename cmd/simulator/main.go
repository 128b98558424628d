// The simulator stands in for a real tracking device: it walks a tourist
// around Himachal Pradesh and publishes location updates over NATS, the same
// feed the tracker consumes from any source.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/krish-027/safar-guardian-pilot/internal/config"
	"github.com/krish-027/safar-guardian-pilot/internal/model"
	"github.com/krish-027/safar-guardian-pilot/internal/service"
)

func main() {
	touristID := flag.String("tourist", "tourist-1", "tourist to move")
	interval := flag.Duration("interval", 3*time.Second, "time between updates")
	lat := flag.Float64("lat", 31.1048, "starting latitude")
	lng := flag.Float64("lng", 77.1734, "starting longitude")
	drift := flag.Bool("drift-north", false, "drift steadily toward the restricted zone")
	flag.Parse()

	log.Println("[Simulator] Starting movement simulator...")

	cfg := config.Load()
	natsConn, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		log.Fatalf("[Simulator] Failed to connect to NATS: %v", err)
	}
	log.Println("[Simulator] Connected to NATS")
	defer natsConn.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	curLat, curLng := *lat, *lng
	log.Printf("[Simulator] Moving %s from (%.4f, %.4f) every %s", *touristID, curLat, curLng, *interval)

	for {
		select {
		case <-ticker.C:
			// Jittered walk; roughly 100-500m per step at this latitude.
			curLat += (rand.Float64() - 0.5) * 0.01
			curLng += (rand.Float64() - 0.5) * 0.01
			if *drift {
				curLat += 0.02
				curLng += 0.008
			}

			msg := model.LocationMessage{
				TouristID: *touristID,
				Lat:       curLat,
				Lng:       curLng,
				Timestamp: time.Now().Unix(),
			}
			data, err := json.Marshal(msg)
			if err != nil {
				log.Printf("[Simulator] Failed to marshal update: %v", err)
				continue
			}
			if err := natsConn.Publish(service.SubjectLocation, data); err != nil {
				log.Printf("[Simulator] Failed to publish update: %v", err)
				continue
			}
			log.Printf("[Simulator] %s -> (%.4f, %.4f)", *touristID, curLat, curLng)

		case <-sigChan:
			log.Println("[Simulator] Stopped")
			return
		}
	}
}
