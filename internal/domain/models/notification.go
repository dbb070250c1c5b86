package models

// Notification represents a delivered or pending alert for an owner.
// Created by the dispatcher when a risk transition crosses a notify-worthy
// threshold; only the read flag is ever mutated afterwards.
type Notification struct {
	BaseModel
	OwnerID     uint   `gorm:"index;not null" json:"owner_id"`
	ComponentID *uint  `gorm:"index" json:"component_id,omitempty"`
	Type        string `gorm:"type:varchar(10);not null" json:"type"` // critical, warning, info, success
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Message     string `gorm:"type:text" json:"message"`
	URL         string `gorm:"type:varchar(500)" json:"url,omitempty"` // deep link into the app
	Read        bool   `gorm:"default:false" json:"read"`
}
