package models

import "gorm.io/gorm"

// Scan is one photo analysis, kept for the history endpoint.
type Scan struct {
	gorm.Model
	ScanID        string  `gorm:"type:varchar(36);uniqueIndex;not null" json:"scan_id"`
	Endpoint      string  `gorm:"type:varchar(64);not null" json:"endpoint"`
	DetectedLabel string  `json:"detected_label"`
	Confidence    float64 `json:"confidence"`
	MatchedFood   string  `json:"matched_food"`
	Rating        int     `json:"rating"`
	Recognized    bool    `json:"recognized"`
	ImageURL      string  `json:"image_url,omitempty"`
}
