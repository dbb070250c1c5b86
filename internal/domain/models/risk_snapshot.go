package models

import "time"

// RiskSnapshot holds per-day risk level counts for one property, or for an
// owner's whole portfolio when PropertyID is nil. Written once per day by
// the recompute job and read by the trend endpoint.
type RiskSnapshot struct {
	BaseModel
	OwnerID    uint      `gorm:"index;not null" json:"owner_id"`
	PropertyID *uint     `gorm:"index" json:"property_id,omitempty"`
	Date       time.Time `gorm:"index;not null" json:"date"` // midnight UTC

	SafeCount     int `json:"safe_count"`
	WarningCount  int `json:"warning_count"`
	DangerCount   int `json:"danger_count"`
	CriticalCount int `json:"critical_count"`
	LegalCount    int `json:"legal_count"`
	TotalCount    int `json:"total_count"`
}
