package models

import "time"

// Component represents a serviceable building element, e.g. a heating
// system or a fire extinguisher. NextMaintenance is always LastMaintenance
// plus the regulatory interval for the component's type and the property's
// jurisdiction; DaysOverdue and RiskLevel are recomputed whenever a
// maintenance event is logged and cached here for listings. A negative
// DaysOverdue means the component is not yet due.
type Component struct {
	BaseModel
	PropertyID      uint      `gorm:"index;not null" json:"property_id"`
	Type            string    `gorm:"type:varchar(30);not null" json:"type"` // heating, electrical, fire_safety, elevator, plumbing, chimney
	CustomName      string    `gorm:"type:varchar(100)" json:"custom_name"`  // display name, e.g. "Gastherme Keller"
	LastMaintenance time.Time `gorm:"not null" json:"last_maintenance"`
	NextMaintenance time.Time `json:"next_maintenance"`
	DaysOverdue     int       `json:"days_overdue"`
	RiskLevel       string    `gorm:"type:varchar(10);default:'safe'" json:"risk_level"`

	// Relations
	Property        *Property        `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	MaintenanceLogs []MaintenanceLog `gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE" json:"maintenance_logs,omitempty"`
}

// DisplayName returns the custom name or the raw type as fallback
func (c *Component) DisplayName() string {
	if c.CustomName != "" {
		return c.CustomName
	}
	return c.Type
}
