package services

import (
	"errors"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrNotOwned is returned when a property belongs to another owner
var ErrNotOwned = errors.New("property belongs to another owner")

// InterfacePropertyService defines the property service interface
type InterfacePropertyService interface {
	GetProperties(ownerID uint, page, pageSize int) ([]models.Property, int64, error)
	GetPropertyByID(id, ownerID uint) (*models.Property, error)
	CreateProperty(property *models.Property) error
	UpdateProperty(id, ownerID uint, updates map[string]interface{}) (*models.Property, error)
	DeleteProperty(id, ownerID uint) error
}

// PropertyService provides property related services
type PropertyService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPropertyService creates a new property service
func NewPropertyService(db *gorm.DB, cfg *config.Config) InterfacePropertyService {
	return &PropertyService{
		DB:     db,
		Config: cfg,
	}
}

// 1. GetProperties lists an owner's properties with pagination
func (s *PropertyService) GetProperties(ownerID uint, page, pageSize int) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	base := s.DB.Model(&models.Property{}).Where("owner_id = ?", ownerID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Where("owner_id = ?", ownerID).
		Preload("Components").
		Limit(pageSize).Offset(offset).
		Find(&properties).Error; err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// 2. GetPropertyByID fetches a property, enforcing ownership
func (s *PropertyService) GetPropertyByID(id, ownerID uint) (*models.Property, error) {
	var property models.Property
	if err := s.DB.Preload("Components").First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("property not found")
		}
		return nil, err
	}
	if property.OwnerID != ownerID {
		return nil, ErrNotOwned
	}
	return &property, nil
}

// 3. CreateProperty creates a new property
func (s *PropertyService) CreateProperty(property *models.Property) error {
	if property.Jurisdiction == "" {
		property.Jurisdiction = s.Config.DefaultJurisdiction
	}
	return s.DB.Create(property).Error
}

// 4. UpdateProperty applies partial updates, enforcing ownership
func (s *PropertyService) UpdateProperty(id, ownerID uint, updates map[string]interface{}) (*models.Property, error) {
	property, err := s.GetPropertyByID(id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(property).Updates(updates).Error; err != nil {
		return nil, err
	}
	return property, nil
}

// 5. DeleteProperty removes a property and cascades to its components
func (s *PropertyService) DeleteProperty(id, ownerID uint) error {
	property, err := s.GetPropertyByID(id, ownerID)
	if err != nil {
		return err
	}

	// Cascade inside one transaction; sqlite in tests has no FK cascade by
	// default and MySQL only cascades when the constraint was migrated.
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var componentIDs []uint
		if err := tx.Model(&models.Component{}).
			Where("property_id = ?", property.ID).
			Pluck("id", &componentIDs).Error; err != nil {
			return err
		}
		if len(componentIDs) > 0 {
			if err := tx.Where("component_id IN ?", componentIDs).
				Delete(&models.MaintenanceLog{}).Error; err != nil {
				return err
			}
			if err := tx.Where("property_id = ?", property.ID).
				Delete(&models.Component{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(property).Error
	})
}
