package models

// ConsequenceRecord is static reference data describing the legal,
// financial and safety fallout of neglecting a component type in a
// jurisdiction. An empty jurisdiction means the record applies everywhere
// and serves as fallback when no country-specific record exists.
type ConsequenceRecord struct {
	BaseModel
	ComponentType string `gorm:"type:varchar(30);not null;uniqueIndex:idx_type_jurisdiction" json:"component_type"`
	Jurisdiction  string `gorm:"type:varchar(2);default:'';uniqueIndex:idx_type_jurisdiction" json:"jurisdiction"`

	DeathRisk         bool `json:"death_risk"`
	InjuryRisk        bool `json:"injury_risk"`
	InsuranceVoid     bool `json:"insurance_void"`
	CriminalLiability bool `json:"criminal_liability"`

	DamageMinEUR int `json:"damage_min_eur"`
	DamageMaxEUR int `json:"damage_max_eur"`

	// Narrative warning text per severity tier
	WarningText  string `gorm:"type:text" json:"warning_text"`
	DangerText   string `gorm:"type:text" json:"danger_text"`
	CriticalText string `gorm:"type:text" json:"critical_text"`
	LegalText    string `gorm:"type:text" json:"legal_text"`

	// Optional illustrative material
	RealCase  string `gorm:"type:text" json:"real_case,omitempty"`
	Statistic string `gorm:"type:varchar(500)" json:"statistic,omitempty"`
}
