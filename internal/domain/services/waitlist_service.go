package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/infrastructure/config"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InterfaceWaitlistService defines the waitlist service interface
type InterfaceWaitlistService interface {
	Join(email, name, source string) (*models.WaitlistEntry, error)
	Confirm(token string) (*models.WaitlistEntry, error)
	GetAllEntries(page, pageSize int) ([]models.WaitlistEntry, int64, error)
}

// WaitlistService handles the pre-launch signup flow
type WaitlistService struct {
	DB     *gorm.DB
	Config *config.Config
	Email  InterfaceEmailService
}

// NewWaitlistService creates a new waitlist service
func NewWaitlistService(db *gorm.DB, cfg *config.Config, email InterfaceEmailService) InterfaceWaitlistService {
	return &WaitlistService{
		DB:     db,
		Config: cfg,
		Email:  email,
	}
}

// 1. Join adds an email to the waitlist and sends the double-opt-in mail.
// Mail trouble does not fail the signup.
func (s *WaitlistService) Join(email, name, source string) (*models.WaitlistEntry, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("a valid email is required")
	}

	var count int64
	if err := s.DB.Model(&models.WaitlistEntry{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already on the waitlist")
	}

	entry := models.WaitlistEntry{
		Email:        email,
		Name:         name,
		Source:       source,
		ConfirmToken: uuid.NewString(),
	}
	if err := s.DB.Create(&entry).Error; err != nil {
		return nil, err
	}

	if s.Email != nil {
		confirmURL := fmt.Sprintf("%s/api/waitlist/confirm?token=%s", s.Config.AppBaseURL, entry.ConfirmToken)
		if err := s.Email.SendWaitlistConfirmation(entry.Email, entry.Name, confirmURL); err != nil {
			config.Warning("failed to send waitlist confirmation to %s: %v", entry.Email, err)
		}
	}
	return &entry, nil
}

// 2. Confirm completes the double opt-in for a token
func (s *WaitlistService) Confirm(token string) (*models.WaitlistEntry, error) {
	if token == "" {
		return nil, errors.New("token is required")
	}

	var entry models.WaitlistEntry
	if err := s.DB.Where("confirm_token = ?", token).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("unknown confirmation token")
		}
		return nil, err
	}

	if entry.ConfirmedAt == nil {
		now := time.Now()
		if err := s.DB.Model(&entry).Update("confirmed_at", &now).Error; err != nil {
			return nil, err
		}
		entry.ConfirmedAt = &now
	}
	return &entry, nil
}

// 3. GetAllEntries lists waitlist entries with pagination (admin)
func (s *WaitlistService) GetAllEntries(page, pageSize int) ([]models.WaitlistEntry, int64, error) {
	var entries []models.WaitlistEntry
	var total int64

	if err := s.DB.Model(&models.WaitlistEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Order("created_at DESC").Limit(pageSize).Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
