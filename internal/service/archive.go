package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/krish-027/safar-guardian-pilot/internal/model"
)

// ArchivedAlert is the SQL mirror of an alert, written once at creation for
// historical reporting. The KV document stays the source of truth for live
// state; the archive is append-only.
type ArchivedAlert struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	TouristID   string          `json:"tourist_id" gorm:"index;not null"`
	Type        model.AlertType `json:"type" gorm:"size:20;not null"`
	Title       string          `json:"title" gorm:"size:200;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Lat         float64         `json:"lat"`
	Lng         float64         `json:"lng"`
	Severity    model.Severity  `json:"severity" gorm:"size:10;not null"`
	Timestamp   time.Time       `json:"timestamp" gorm:"index;not null"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (ArchivedAlert) TableName() string {
	return "alert_archive"
}

// AlertArchive mirrors created alerts into Postgres.
type AlertArchive struct {
	db *gorm.DB
}

// NewAlertArchive connects to Postgres and migrates the archive table.
func NewAlertArchive(databaseURL string) (*AlertArchive, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect archive database: %w", err)
	}
	if err := db.AutoMigrate(&ArchivedAlert{}); err != nil {
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return &AlertArchive{db: db}, nil
}

// Record appends an alert to the archive. Failures are logged, not raised:
// the alert is already durable in the document store.
func (a *AlertArchive) Record(ctx context.Context, alert model.Alert) {
	row := ArchivedAlert{
		ID:          alert.ID,
		TouristID:   alert.TouristID,
		Type:        alert.Type,
		Title:       alert.Title,
		Description: alert.Description,
		Lat:         alert.Location.Lat,
		Lng:         alert.Location.Lng,
		Severity:    alert.Severity,
		Timestamp:   alert.Timestamp,
	}
	if err := a.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("[Archive] Failed to record alert %s: %v", alert.ID, err)
	}
}

// History returns archived alerts in a time range, newest first.
func (a *AlertArchive) History(ctx context.Context, start, end time.Time) ([]ArchivedAlert, error) {
	var rows []ArchivedAlert
	err := a.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp <= ?", start, end).
		Order("timestamp DESC").
		Find(&rows).Error
	return rows, err
}
