package models

// Property represents a building owned by an owner
type Property struct {
	BaseModel
	OwnerID      uint   `gorm:"index;not null" json:"owner_id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"` // display name, e.g. "Haus Graz"
	Address      string `gorm:"type:varchar(200)" json:"address"`
	PostalCode   string `gorm:"type:varchar(10)" json:"postal_code"`
	City         string `gorm:"type:varchar(100)" json:"city"`
	Jurisdiction string `gorm:"type:varchar(2);default:'AT'" json:"jurisdiction"` // ISO country code

	// Relations. Components are removed together with their property.
	Components []Component `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"components,omitempty"`
}
