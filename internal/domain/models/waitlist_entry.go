package models

import "time"

// WaitlistEntry represents a pre-launch signup with double opt-in
type WaitlistEntry struct {
	BaseModel
	Email        string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Name         string     `gorm:"type:varchar(100)" json:"name,omitempty"`
	Source       string     `gorm:"type:varchar(50)" json:"source,omitempty"` // landing_page, referral, ...
	ConfirmToken string     `gorm:"type:varchar(36);index" json:"-"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
}
