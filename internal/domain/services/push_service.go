package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/infrastructure/config"

	webpush "github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"
)

// PushPayload is the JSON document delivered to the browser
type PushPayload struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	URL      string `json:"url,omitempty"`
	Severity string `json:"severity"` // notification type: critical, warning, info, success
}

// WebPushSender abstracts the actual Web Push call so delivery can be
// faked in tests. Returns the HTTP status reported by the push service.
type WebPushSender interface {
	Send(subscription *models.PushSubscription, payload []byte) (int, error)
}

// InterfacePushService defines the push service interface
type InterfacePushService interface {
	Subscribe(ownerID uint, endpoint, p256dh, auth, userAgent string) (*models.PushSubscription, error)
	Unsubscribe(ownerID uint, endpoint string) error
	VAPIDPublicKey() string
	SendToOwner(ownerID uint, payload PushPayload) error
}

// PushService delivers Web Push notifications
type PushService struct {
	DB     *gorm.DB
	Config *config.Config
	Sender WebPushSender
}

// NewPushService creates a new push service
func NewPushService(db *gorm.DB, cfg *config.Config) *PushService {
	service := &PushService{
		DB:     db,
		Config: cfg,
	}
	service.Sender = &vapidSender{cfg: cfg}
	return service
}

// vapidSender is the production sender backed by webpush-go
type vapidSender struct {
	cfg *config.Config
}

func (v *vapidSender) Send(subscription *models.PushSubscription, payload []byte) (int, error) {
	sub := &webpush.Subscription{
		Endpoint: subscription.Endpoint,
		Keys: webpush.Keys{
			P256dh: subscription.P256dh,
			Auth:   subscription.Auth,
		},
	}
	resp, err := webpush.SendNotification(payload, sub, &webpush.Options{
		Subscriber:      v.cfg.VAPIDSubject,
		VAPIDPublicKey:  v.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: v.cfg.VAPIDPrivateKey,
		TTL:             3600,
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// 1. Subscribe stores a push subscription for an owner. Re-subscribing an
// existing endpoint moves it to the new owner and refreshes the keys.
func (s *PushService) Subscribe(ownerID uint, endpoint, p256dh, auth, userAgent string) (*models.PushSubscription, error) {
	if endpoint == "" || p256dh == "" || auth == "" {
		return nil, errors.New("endpoint, p256dh and auth are required")
	}

	var existing models.PushSubscription
	err := s.DB.Where("endpoint = ?", endpoint).First(&existing).Error
	if err == nil {
		updates := map[string]interface{}{
			"owner_id":   ownerID,
			"p256dh":     p256dh,
			"auth":       auth,
			"user_agent": userAgent,
		}
		if err := s.DB.Model(&existing).Updates(updates).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	subscription := models.PushSubscription{
		OwnerID:   ownerID,
		Endpoint:  endpoint,
		P256dh:    p256dh,
		Auth:      auth,
		UserAgent: userAgent,
	}
	if err := s.DB.Create(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

// 2. Unsubscribe removes a subscription by endpoint
func (s *PushService) Unsubscribe(ownerID uint, endpoint string) error {
	result := s.DB.Where("owner_id = ? AND endpoint = ?", ownerID, endpoint).
		Delete(&models.PushSubscription{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("push subscription not found")
	}
	return nil
}

// 3. VAPIDPublicKey exposes the key the browser needs to subscribe
func (s *PushService) VAPIDPublicKey() string {
	return s.Config.VAPIDPublicKey
}

// 4. SendToOwner delivers a payload to every subscription of an owner.
// Deliveries run concurrently and are isolated: one failing endpoint never
// prevents delivery to the others, failures are logged and the call
// reports success as long as the fan-out itself ran. Subscriptions the
// push service reports as gone are removed.
func (s *PushService) SendToOwner(ownerID uint, payload PushPayload) error {
	var subscriptions []models.PushSubscription
	if err := s.DB.Where("owner_id = ?", ownerID).Find(&subscriptions).Error; err != nil {
		return err
	}
	if len(subscriptions) == 0 {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	for i := range subscriptions {
		subscription := subscriptions[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, err := s.Sender.Send(&subscription, body)
			if err != nil {
				config.Warning("push delivery to subscription %d failed: %v", subscription.ID, err)
				return
			}
			if status == http.StatusNotFound || status == http.StatusGone {
				// Endpoint expired, drop the subscription
				if err := s.DB.Delete(&models.PushSubscription{}, subscription.ID).Error; err != nil {
					config.Warning("failed to remove expired subscription %d: %v", subscription.ID, err)
				} else {
					config.Info("removed expired push subscription %d", subscription.ID)
				}
			}
		}()
	}
	wg.Wait()
	return nil
}
