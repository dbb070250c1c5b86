package models

import "time"

// MaintenanceLog records a completed maintenance event. Append-only.
type MaintenanceLog struct {
	BaseModel
	ComponentID uint      `gorm:"index;not null" json:"component_id"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
	Note        string    `gorm:"type:varchar(500)" json:"note,omitempty"`
	LoggedBy    uint      `json:"logged_by"` // owner ID
}
