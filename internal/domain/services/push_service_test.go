package services

import (
	"errors"
	"net/http"
	"sync"
	"testing"

	"immowaechter-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeWebPushSender records deliveries and returns a canned status per
// endpoint
type fakeWebPushSender struct {
	mu       sync.Mutex
	statuses map[string]int
	errs     map[string]error
	sent     []string
}

func (f *fakeWebPushSender) Send(subscription *models.PushSubscription, payload []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, subscription.Endpoint)
	if err, ok := f.errs[subscription.Endpoint]; ok {
		return 0, err
	}
	if status, ok := f.statuses[subscription.Endpoint]; ok {
		return status, nil
	}
	return http.StatusCreated, nil
}

func (f *fakeWebPushSender) sentEndpoints() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func newPushFixture(t *testing.T) (*gorm.DB, *PushService, *fakeWebPushSender) {
	t.Helper()
	db := newTestDB(t)
	sender := &fakeWebPushSender{statuses: map[string]int{}, errs: map[string]error{}}
	service := NewPushService(db, newTestConfig())
	service.Sender = sender
	return db, service, sender
}

func TestSubscribeCreatesSubscription(t *testing.T) {
	db, service, _ := newPushFixture(t)
	owner := seedOwner(t, db, "owner@example.test", false)

	subscription, err := service.Subscribe(owner.ID, "https://push.example/ep1", "p256dh-key", "auth-key", "Firefox")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, subscription.OwnerID)

	var count int64
	require.NoError(t, db.Model(&models.PushSubscription{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubscribeUpsertsByEndpoint(t *testing.T) {
	db, service, _ := newPushFixture(t)
	first := seedOwner(t, db, "first@example.test", false)
	second := seedOwner(t, db, "second@example.test", false)

	_, err := service.Subscribe(first.ID, "https://push.example/ep1", "old-key", "old-auth", "Firefox")
	require.NoError(t, err)
	_, err = service.Subscribe(second.ID, "https://push.example/ep1", "new-key", "new-auth", "Chrome")
	require.NoError(t, err)

	var subscriptions []models.PushSubscription
	require.NoError(t, db.Find(&subscriptions).Error)
	require.Len(t, subscriptions, 1)
	assert.Equal(t, second.ID, subscriptions[0].OwnerID)
	assert.Equal(t, "new-key", subscriptions[0].P256dh)
	assert.Equal(t, "Chrome", subscriptions[0].UserAgent)
}

func TestSubscribeRequiresKeys(t *testing.T) {
	_, service, _ := newPushFixture(t)

	_, err := service.Subscribe(1, "https://push.example/ep1", "", "auth", "")
	assert.Error(t, err)
	_, err = service.Subscribe(1, "", "key", "auth", "")
	assert.Error(t, err)
}

func TestUnsubscribe(t *testing.T) {
	db, service, _ := newPushFixture(t)
	owner := seedOwner(t, db, "owner@example.test", false)
	_, err := service.Subscribe(owner.ID, "https://push.example/ep1", "key", "auth", "")
	require.NoError(t, err)

	require.NoError(t, service.Unsubscribe(owner.ID, "https://push.example/ep1"))

	err = service.Unsubscribe(owner.ID, "https://push.example/ep1")
	assert.EqualError(t, err, "push subscription not found")
}

func TestVAPIDPublicKey(t *testing.T) {
	_, service, _ := newPushFixture(t)
	assert.Equal(t, "test-public-key", service.VAPIDPublicKey())
}

func TestSendToOwnerFanOut(t *testing.T) {
	db, service, sender := newPushFixture(t)
	owner := seedOwner(t, db, "owner@example.test", false)
	_, err := service.Subscribe(owner.ID, "https://push.example/ep1", "key", "auth", "")
	require.NoError(t, err)
	_, err = service.Subscribe(owner.ID, "https://push.example/ep2", "key", "auth", "")
	require.NoError(t, err)

	sender.errs["https://push.example/ep1"] = errors.New("connection refused")

	err = service.SendToOwner(owner.ID, PushPayload{Title: "t", Body: "b", Severity: "warning"})
	require.NoError(t, err)

	sent := sender.sentEndpoints()
	assert.Len(t, sent, 2)
	assert.Contains(t, sent, "https://push.example/ep1")
	assert.Contains(t, sent, "https://push.example/ep2")

	// The failed delivery must not remove the subscription
	var count int64
	require.NoError(t, db.Model(&models.PushSubscription{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSendToOwnerRemovesExpiredSubscriptions(t *testing.T) {
	db, service, sender := newPushFixture(t)
	owner := seedOwner(t, db, "owner@example.test", false)
	_, err := service.Subscribe(owner.ID, "https://push.example/gone", "key", "auth", "")
	require.NoError(t, err)
	_, err = service.Subscribe(owner.ID, "https://push.example/alive", "key", "auth", "")
	require.NoError(t, err)

	sender.statuses["https://push.example/gone"] = http.StatusGone

	require.NoError(t, service.SendToOwner(owner.ID, PushPayload{Title: "t", Severity: "critical"}))

	var remaining []models.PushSubscription
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "https://push.example/alive", remaining[0].Endpoint)
}

func TestSendToOwnerWithoutSubscriptions(t *testing.T) {
	db, service, sender := newPushFixture(t)
	owner := seedOwner(t, db, "owner@example.test", false)

	require.NoError(t, service.SendToOwner(owner.ID, PushPayload{Title: "t"}))
	assert.Empty(t, sender.sentEndpoints())
}
