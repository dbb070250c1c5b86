package services

import (
	"errors"
	"fmt"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/domain/risk"
	"immowaechter-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceNotificationService defines the notification dispatcher
// interface
type InterfaceNotificationService interface {
	OnRiskChange(component *models.Component, previous, next risk.Level) error
	GetNotifications(ownerID uint, page, pageSize int, unreadOnly bool) ([]models.Notification, int64, error)
	MarkRead(id, ownerID uint) error
	MarkAllRead(ownerID uint) (int64, error)
}

// NotificationService decides whether a risk transition is notify-worthy,
// stores the resulting notification and fans it out to the delivery
// channels. Delivery failures are logged per channel and never escalate:
// the triggering operation still reports success.
type NotificationService struct {
	DB     *gorm.DB
	Config *config.Config
	Push   InterfacePushService
	Email  InterfaceEmailService
}

// NewNotificationService creates a new notification service
func NewNotificationService(db *gorm.DB, cfg *config.Config, push InterfacePushService, email InterfaceEmailService) InterfaceNotificationService {
	return &NotificationService{
		DB:     db,
		Config: cfg,
		Push:   push,
		Email:  email,
	}
}

// 1. OnRiskChange observes a risk transition for a component and, when the
// transition warrants it, creates a notification and delivers it.
func (s *NotificationService) OnRiskChange(component *models.Component, previous, next risk.Level) error {
	owner, err := s.ownerOf(component)
	if err != nil {
		return err
	}

	intent := risk.DecideTransition(previous, next, risk.Prefs{NotifyResolved: owner.NotifyResolved})
	if intent == nil {
		return nil
	}

	title, message := s.composeMessage(component, intent)
	url := fmt.Sprintf("%s/components/%d", s.Config.AppBaseURL, component.ID)

	componentID := component.ID
	notification := models.Notification{
		OwnerID:     owner.ID,
		ComponentID: &componentID,
		Type:        intent.Type,
		Title:       title,
		Message:     message,
		URL:         url,
	}
	if err := s.DB.Create(&notification).Error; err != nil {
		return err
	}

	// Channel deliveries are independent of each other and of the stored
	// notification. Failures are logged, never propagated.
	if owner.PushEnabled && s.Push != nil {
		payload := PushPayload{
			Title:    title,
			Body:     message,
			URL:      url,
			Severity: intent.Type,
		}
		if err := s.Push.SendToOwner(owner.ID, payload); err != nil {
			config.Warning("push fan-out for notification %d failed: %v", notification.ID, err)
		}
	}
	if owner.EmailEnabled && s.Email != nil {
		if err := s.Email.SendNotificationEmail(owner.Email, intent.Type, component.DisplayName(), message, url); err != nil {
			config.Warning("email delivery for notification %d failed: %v", notification.ID, err)
		}
	}
	return nil
}

// 2. GetNotifications lists an owner's notifications, newest first
func (s *NotificationService) GetNotifications(ownerID uint, page, pageSize int, unreadOnly bool) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	query := s.DB.Model(&models.Notification{}).Where("owner_id = ?", ownerID)
	if unreadOnly {
		query = query.Where("`read` = ?", false)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").Limit(pageSize).Offset(offset).
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// 3. MarkRead flags one notification as read
func (s *NotificationService) MarkRead(id, ownerID uint) error {
	result := s.DB.Model(&models.Notification{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("notification not found")
	}
	return nil
}

// 4. MarkAllRead flags all of an owner's notifications as read
func (s *NotificationService) MarkAllRead(ownerID uint) (int64, error) {
	result := s.DB.Model(&models.Notification{}).
		Where("owner_id = ? AND `read` = ?", ownerID, false).
		Update("read", true)
	return result.RowsAffected, result.Error
}

// ownerOf resolves the owner of a component through its property
func (s *NotificationService) ownerOf(component *models.Component) (*models.Owner, error) {
	var property models.Property
	if err := s.DB.First(&property, component.PropertyID).Error; err != nil {
		return nil, err
	}
	var owner models.Owner
	if err := s.DB.First(&owner, property.OwnerID).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

// composeMessage builds the user-facing title and body for an intent
func (s *NotificationService) composeMessage(component *models.Component, intent *risk.Intent) (string, string) {
	name := component.DisplayName()
	if intent.Kind == risk.KindResolved {
		return fmt.Sprintf("✅ %s: Wartung wieder aktuell", name),
			fmt.Sprintf("Die Wartung von %q ist wieder auf dem aktuellen Stand.", name)
	}

	display := intent.Level.Display()
	title := fmt.Sprintf("%s %s: Risikostufe %s", display.Emoji, name, intent.Level.String())
	var body string
	if component.DaysOverdue > 0 {
		body = fmt.Sprintf("Die Wartung von %q ist seit %d Tagen überfällig. %s",
			name, component.DaysOverdue, intent.Level.DefaultMessage())
	} else {
		body = fmt.Sprintf("Die Wartung von %q steht an. %s", name, intent.Level.DefaultMessage())
	}
	return title, body
}
