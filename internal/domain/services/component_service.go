package services

import (
	"errors"
	"time"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/domain/risk"
	"immowaechter-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceComponentService defines the component service interface
type InterfaceComponentService interface {
	GetComponents(propertyID, ownerID uint, page, pageSize int) ([]models.Component, int64, error)
	GetComponentByID(id, ownerID uint) (*models.Component, error)
	CreateComponent(ownerID uint, component *models.Component) error
	UpdateComponent(id, ownerID uint, updates map[string]interface{}) (*models.Component, error)
	DeleteComponent(id, ownerID uint) error
	LogMaintenance(id, ownerID uint, completedAt time.Time, note string) (*models.Component, error)
	GetMaintenanceHistory(id, ownerID uint, page, pageSize int) ([]models.MaintenanceLog, int64, error)
	JurisdictionOf(component *models.Component) string
}

// ComponentService provides component related services
type ComponentService struct {
	DB       *gorm.DB
	Config   *config.Config
	Notifier InterfaceNotificationService
}

// NewComponentService creates a new component service
func NewComponentService(db *gorm.DB, cfg *config.Config, notifier InterfaceNotificationService) InterfaceComponentService {
	return &ComponentService{
		DB:       db,
		Config:   cfg,
		Notifier: notifier,
	}
}

// 1. GetComponents lists a property's components with pagination
func (s *ComponentService) GetComponents(propertyID, ownerID uint, page, pageSize int) ([]models.Component, int64, error) {
	if err := s.checkPropertyOwnership(propertyID, ownerID); err != nil {
		return nil, 0, err
	}

	var components []models.Component
	var total int64

	base := s.DB.Model(&models.Component{}).Where("property_id = ?", propertyID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Where("property_id = ?", propertyID).
		Limit(pageSize).Offset(offset).
		Find(&components).Error; err != nil {
		return nil, 0, err
	}

	return components, total, nil
}

// 2. GetComponentByID fetches a component, enforcing ownership through its
// property
func (s *ComponentService) GetComponentByID(id, ownerID uint) (*models.Component, error) {
	var component models.Component
	if err := s.DB.Preload("Property").First(&component, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("component not found")
		}
		return nil, err
	}
	if component.Property == nil || component.Property.OwnerID != ownerID {
		return nil, ErrNotOwned
	}
	return &component, nil
}

// 3. CreateComponent registers a component and computes its initial due
// date, overdue days and risk level
func (s *ComponentService) CreateComponent(ownerID uint, component *models.Component) error {
	if err := s.checkPropertyOwnership(component.PropertyID, ownerID); err != nil {
		return err
	}
	if component.LastMaintenance.IsZero() {
		return errors.New("last maintenance date is required")
	}

	componentType, known := risk.NormalizeType(component.Type)
	if !known {
		config.Warning("registering component with unknown type %q, using generic profile", component.Type)
	}

	jurisdiction := s.jurisdictionOfProperty(component.PropertyID)
	s.refreshDerivedFields(component, componentType, jurisdiction, time.Now())

	return s.DB.Create(component).Error
}

// 4. UpdateComponent applies partial updates and recomputes the derived
// fields when the maintenance date or type changed
func (s *ComponentService) UpdateComponent(id, ownerID uint, updates map[string]interface{}) (*models.Component, error) {
	component, err := s.GetComponentByID(id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(component).Updates(updates).Error; err != nil {
		return nil, err
	}

	componentType, _ := risk.NormalizeType(component.Type)
	jurisdiction := s.JurisdictionOf(component)
	s.refreshDerivedFields(component, componentType, jurisdiction, time.Now())
	if err := s.DB.Model(component).
		Select("NextMaintenance", "DaysOverdue", "RiskLevel").
		Updates(*component).Error; err != nil {
		return nil, err
	}
	return component, nil
}

// 5. DeleteComponent removes a component and its maintenance history
func (s *ComponentService) DeleteComponent(id, ownerID uint) error {
	component, err := s.GetComponentByID(id, ownerID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("component_id = ?", component.ID).
			Delete(&models.MaintenanceLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(component).Error
	})
}

// 6. LogMaintenance records a completed maintenance event: one
// read-modify-write that appends the log entry, resets the maintenance
// dates, recomputes overdue and risk, and lets the dispatcher observe the
// transition.
func (s *ComponentService) LogMaintenance(id, ownerID uint, completedAt time.Time, note string) (*models.Component, error) {
	component, err := s.GetComponentByID(id, ownerID)
	if err != nil {
		return nil, err
	}
	if completedAt.IsZero() {
		return nil, errors.New("completion date is required")
	}
	if completedAt.After(time.Now().Add(24 * time.Hour)) {
		return nil, errors.New("completion date must not be in the future")
	}

	previous := risk.ParseLevel(component.RiskLevel)
	componentType, _ := risk.NormalizeType(component.Type)
	jurisdiction := s.JurisdictionOf(component)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		entry := models.MaintenanceLog{
			ComponentID: component.ID,
			CompletedAt: completedAt,
			Note:        note,
			LoggedBy:    ownerID,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		component.LastMaintenance = completedAt
		s.refreshDerivedFields(component, componentType, jurisdiction, time.Now())
		return tx.Model(component).
			Select("LastMaintenance", "NextMaintenance", "DaysOverdue", "RiskLevel").
			Updates(*component).Error
	})
	if err != nil {
		return nil, err
	}

	next := risk.ParseLevel(component.RiskLevel)
	if next != previous && s.Notifier != nil {
		if err := s.Notifier.OnRiskChange(component, previous, next); err != nil {
			// The maintenance entry is already committed; notification
			// trouble must not fail the operation
			config.Warning("failed to dispatch risk change for component %d: %v", component.ID, err)
		}
	}
	return component, nil
}

// 7. GetMaintenanceHistory lists a component's maintenance log entries
func (s *ComponentService) GetMaintenanceHistory(id, ownerID uint, page, pageSize int) ([]models.MaintenanceLog, int64, error) {
	component, err := s.GetComponentByID(id, ownerID)
	if err != nil {
		return nil, 0, err
	}

	var logs []models.MaintenanceLog
	var total int64

	base := s.DB.Model(&models.MaintenanceLog{}).Where("component_id = ?", component.ID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Where("component_id = ?", component.ID).
		Order("completed_at DESC").Limit(pageSize).Offset(offset).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// 8. JurisdictionOf resolves the jurisdiction applying to a component
func (s *ComponentService) JurisdictionOf(component *models.Component) string {
	if component.Property != nil && component.Property.Jurisdiction != "" {
		return component.Property.Jurisdiction
	}
	return s.jurisdictionOfProperty(component.PropertyID)
}

func (s *ComponentService) jurisdictionOfProperty(propertyID uint) string {
	var property models.Property
	if err := s.DB.First(&property, propertyID).Error; err == nil && property.Jurisdiction != "" {
		return property.Jurisdiction
	}
	return s.Config.DefaultJurisdiction
}

// refreshDerivedFields recomputes the cached clock and risk columns
func (s *ComponentService) refreshDerivedFields(component *models.Component, componentType risk.ComponentType, jurisdiction string, asOf time.Time) {
	interval := risk.IntervalDaysFor(componentType, jurisdiction)
	component.NextMaintenance = risk.NextMaintenance(component.LastMaintenance, interval)
	component.DaysOverdue = risk.DaysOverdue(component.LastMaintenance, interval, asOf)
	component.RiskLevel = risk.LevelFor(componentType, component.DaysOverdue, jurisdiction).String()
}

// checkPropertyOwnership verifies the property exists and belongs to the
// owner
func (s *ComponentService) checkPropertyOwnership(propertyID, ownerID uint) error {
	var property models.Property
	if err := s.DB.First(&property, propertyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("property not found")
		}
		return err
	}
	if property.OwnerID != ownerID {
		return ErrNotOwned
	}
	return nil
}
