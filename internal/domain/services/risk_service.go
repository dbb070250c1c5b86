package services

import (
	"errors"
	"time"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/domain/risk"
	"immowaechter-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceRiskService defines the risk evaluation service interface
type InterfaceRiskService interface {
	Evaluate(component *models.Component, jurisdiction string, asOf time.Time) (risk.Assessment, int, error)
	RecomputeAll(asOf time.Time) (int, error)
	WriteDailySnapshots(asOf time.Time) error
}

// RiskService orchestrates the maintenance clock and the classifier over
// persisted components. Classification itself is pure; this service only
// feeds it and stores the cached results.
type RiskService struct {
	DB           *gorm.DB
	Config       *config.Config
	Consequences risk.ConsequenceSource
	Notifier     InterfaceNotificationService
}

// NewRiskService creates a new risk service
func NewRiskService(db *gorm.DB, cfg *config.Config, consequences risk.ConsequenceSource, notifier InterfaceNotificationService) InterfaceRiskService {
	return &RiskService{
		DB:           db,
		Config:       cfg,
		Consequences: consequences,
		Notifier:     notifier,
	}
}

// 1. Evaluate classifies one component as of the given instant. The
// component row is not modified. Unknown component types degrade to the
// conservative generic profile and are logged for operator visibility.
func (s *RiskService) Evaluate(component *models.Component, jurisdiction string, asOf time.Time) (risk.Assessment, int, error) {
	componentType, known := risk.NormalizeType(component.Type)
	if !known {
		config.Warning("component %d has unknown type %q, using generic profile", component.ID, component.Type)
	}

	interval := risk.IntervalDaysFor(componentType, jurisdiction)
	daysOverdue := risk.DaysOverdue(component.LastMaintenance, interval, asOf)

	assessment, err := risk.Classify(componentType, daysOverdue, jurisdiction, s.Consequences)
	if err != nil {
		return risk.Assessment{}, 0, err
	}
	return assessment, daysOverdue, nil
}

// 2. RecomputeAll re-evaluates every component, refreshes the cached
// days-overdue and risk-level columns and dispatches notifications for
// level transitions. Returns the number of components whose level changed.
// Classification is idempotent, so running this on every batch job is safe.
func (s *RiskService) RecomputeAll(asOf time.Time) (int, error) {
	var components []models.Component
	if err := s.DB.Preload("Property").Find(&components).Error; err != nil {
		return 0, err
	}

	changed := 0
	for i := range components {
		component := &components[i]
		jurisdiction := s.Config.DefaultJurisdiction
		if component.Property != nil && component.Property.Jurisdiction != "" {
			jurisdiction = component.Property.Jurisdiction
		}

		assessment, daysOverdue, err := s.Evaluate(component, jurisdiction, asOf)
		if err != nil {
			config.Error("failed to evaluate component %d: %v", component.ID, err)
			continue
		}

		previous := risk.ParseLevel(component.RiskLevel)
		componentType, _ := risk.NormalizeType(component.Type)
		next := models.Component{
			NextMaintenance: risk.NextMaintenance(component.LastMaintenance, risk.IntervalDaysFor(componentType, jurisdiction)),
			DaysOverdue:     daysOverdue,
			RiskLevel:       assessment.Level.String(),
		}
		if err := s.DB.Model(component).Select("NextMaintenance", "DaysOverdue", "RiskLevel").
			Updates(next).Error; err != nil {
			config.Error("failed to update component %d: %v", component.ID, err)
			continue
		}

		if assessment.Level != previous {
			changed++
			if s.Notifier != nil {
				if err := s.Notifier.OnRiskChange(component, previous, assessment.Level); err != nil {
					// Notification problems never abort the batch
					config.Error("failed to dispatch risk change for component %d: %v", component.ID, err)
				}
			}
		}
	}
	return changed, nil
}

// 3. WriteDailySnapshots records one snapshot per property and one
// portfolio-wide snapshot per owner for the as-of day. Re-running for the
// same day overwrites that day's rows so the job stays idempotent.
func (s *RiskService) WriteDailySnapshots(asOf time.Time) error {
	day := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)

	var properties []models.Property
	if err := s.DB.Preload("Components").Find(&properties).Error; err != nil {
		return err
	}

	ownerLevels := make(map[uint][]risk.Level)
	for _, property := range properties {
		levels := make([]risk.Level, 0, len(property.Components))
		for _, component := range property.Components {
			levels = append(levels, risk.ParseLevel(component.RiskLevel))
		}
		ownerLevels[property.OwnerID] = append(ownerLevels[property.OwnerID], levels...)

		propertyID := property.ID
		if err := s.upsertSnapshot(property.OwnerID, &propertyID, day, risk.Summarize(levels)); err != nil {
			return err
		}
	}

	for ownerID, levels := range ownerLevels {
		if err := s.upsertSnapshot(ownerID, nil, day, risk.Summarize(levels)); err != nil {
			return err
		}
	}
	return nil
}

func (s *RiskService) upsertSnapshot(ownerID uint, propertyID *uint, day time.Time, stats risk.Stats) error {
	query := s.DB.Where("owner_id = ? AND date = ?", ownerID, day)
	if propertyID == nil {
		query = query.Where("property_id IS NULL")
	} else {
		query = query.Where("property_id = ?", *propertyID)
	}

	snapshot := models.RiskSnapshot{
		OwnerID:       ownerID,
		PropertyID:    propertyID,
		Date:          day,
		SafeCount:     stats.Safe,
		WarningCount:  stats.Warning,
		DangerCount:   stats.Danger,
		CriticalCount: stats.Critical,
		LegalCount:    stats.Legal,
		TotalCount:    stats.Total,
	}

	var existing models.RiskSnapshot
	err := query.First(&existing).Error
	if err == nil {
		snapshot.ID = existing.ID
		return s.DB.Model(&existing).Updates(map[string]interface{}{
			"safe_count":     stats.Safe,
			"warning_count":  stats.Warning,
			"danger_count":   stats.Danger,
			"critical_count": stats.Critical,
			"legal_count":    stats.Legal,
			"total_count":    stats.Total,
		}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.DB.Create(&snapshot).Error
}
