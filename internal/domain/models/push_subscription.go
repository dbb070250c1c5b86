package models

// PushSubscription stores a Web Push endpoint with its delivery keys.
// Owned by exactly one owner; deleted on opt-out or when the push service
// reports the endpoint as expired.
type PushSubscription struct {
	BaseModel
	OwnerID   uint   `gorm:"index;not null" json:"owner_id"`
	Endpoint  string `gorm:"type:varchar(500);uniqueIndex;not null" json:"endpoint"`
	P256dh    string `gorm:"type:varchar(255);not null" json:"p256dh"`
	Auth      string `gorm:"type:varchar(255);not null" json:"auth"`
	UserAgent string `gorm:"type:varchar(255)" json:"user_agent,omitempty"`
}
