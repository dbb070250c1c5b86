package models

// Owner represents a registered property owner account
type Owner struct {
	BaseModel
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(100);not null" json:"-"`
	Name         string `gorm:"type:varchar(100)" json:"name"`
	Phone        string `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Role         string `gorm:"type:varchar(20);default:'owner'" json:"role"` // owner, admin

	// Notification preferences
	PushEnabled    bool `gorm:"default:true" json:"push_enabled"`
	EmailEnabled   bool `gorm:"default:true" json:"email_enabled"`
	NotifyResolved bool `gorm:"default:false" json:"notify_resolved"` // opt-in "all clear" notifications

	// Relations
	Properties        []Property         `gorm:"foreignKey:OwnerID" json:"properties,omitempty"`
	Notifications     []Notification     `gorm:"foreignKey:OwnerID" json:"notifications,omitempty"`
	PushSubscriptions []PushSubscription `gorm:"foreignKey:OwnerID" json:"push_subscriptions,omitempty"`
}

// NotificationPrefs is the mutable preference subset of an owner
type NotificationPrefs struct {
	PushEnabled    bool `json:"push_enabled"`
	EmailEnabled   bool `json:"email_enabled"`
	NotifyResolved bool `json:"notify_resolved"`
}

// Prefs returns the owner's notification preferences
func (o *Owner) Prefs() NotificationPrefs {
	return NotificationPrefs{
		PushEnabled:    o.PushEnabled,
		EmailEnabled:   o.EmailEnabled,
		NotifyResolved: o.NotifyResolved,
	}
}
