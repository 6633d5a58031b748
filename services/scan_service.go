package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/ellekaen/VanityOS-Api/models"
)

// ScanHistory persists photo analyses.
type ScanHistory interface {
	Record(ctx context.Context, scan *models.Scan) error
	Recent(ctx context.Context, limit int) ([]models.Scan, error)
}

type GormScanHistory struct {
	db *gorm.DB
}

func NewGormScanHistory(db *gorm.DB) *GormScanHistory {
	return &GormScanHistory{db: db}
}

func (h *GormScanHistory) Record(ctx context.Context, scan *models.Scan) error {
	return h.db.WithContext(ctx).Create(scan).Error
}

// Recent returns the newest scans first.
func (h *GormScanHistory) Recent(ctx context.Context, limit int) ([]models.Scan, error) {
	var scans []models.Scan
	err := h.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&scans).Error
	return scans, err
}

// NoScanHistory is used when no database is configured.
type NoScanHistory struct{}

func (NoScanHistory) Record(context.Context, *models.Scan) error { return nil }

func (NoScanHistory) Recent(context.Context, int) ([]models.Scan, error) {
	return nil, ErrHistoryDisabled
}
