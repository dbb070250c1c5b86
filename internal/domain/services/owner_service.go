package services

import (
	"errors"
	"strings"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/infrastructure/config"
	"immowaechter-http-service/utils"

	"gorm.io/gorm"
)

// InterfaceOwnerService defines the owner account service interface
type InterfaceOwnerService interface {
	Register(email, password, name, phone string) (*models.Owner, error)
	GetOwnerByID(id uint) (*models.Owner, error)
	GetAllOwners(page, pageSize int) ([]models.Owner, int64, error)
	UpdatePreferences(id uint, prefs models.NotificationPrefs) (*models.Owner, error)
}

// OwnerService provides owner account services
type OwnerService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewOwnerService creates a new owner service
func NewOwnerService(db *gorm.DB, cfg *config.Config) InterfaceOwnerService {
	return &OwnerService{
		DB:     db,
		Config: cfg,
	}
}

// 1. Register creates a new owner account
func (s *OwnerService) Register(email, password, name, phone string) (*models.Owner, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	// Reject duplicate registrations
	var count int64
	if err := s.DB.Model(&models.Owner{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("owner already registered")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	owner := models.Owner{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Phone:        phone,
		Role:         "owner",
		PushEnabled:  true,
		EmailEnabled: true,
	}
	if err := s.DB.Create(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

// 2. GetOwnerByID fetches an owner by ID
func (s *OwnerService) GetOwnerByID(id uint) (*models.Owner, error) {
	var owner models.Owner
	if err := s.DB.First(&owner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("owner not found")
		}
		return nil, err
	}
	return &owner, nil
}

// 3. GetAllOwners lists owners with pagination (admin)
func (s *OwnerService) GetAllOwners(page, pageSize int) ([]models.Owner, int64, error) {
	var owners []models.Owner
	var total int64

	if err := s.DB.Model(&models.Owner{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Limit(pageSize).Offset(offset).Find(&owners).Error; err != nil {
		return nil, 0, err
	}

	return owners, total, nil
}

// 4. UpdatePreferences updates an owner's notification preferences
func (s *OwnerService) UpdatePreferences(id uint, prefs models.NotificationPrefs) (*models.Owner, error) {
	owner, err := s.GetOwnerByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"push_enabled":    prefs.PushEnabled,
		"email_enabled":   prefs.EmailEnabled,
		"notify_resolved": prefs.NotifyResolved,
	}
	if err := s.DB.Model(owner).Updates(updates).Error; err != nil {
		return nil, err
	}
	return owner, nil
}
