package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"immowaechter-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// confirmationRecorder captures waitlist confirmation mails
type confirmationRecorder struct {
	fakeEmail
	mu          sync.Mutex
	confirmURLs []string
}

func (c *confirmationRecorder) SendWaitlistConfirmation(to, name, confirmURL string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.confirmURLs = append(c.confirmURLs, confirmURL)
	return c.err
}

func TestJoinCreatesEntryAndSendsConfirmation(t *testing.T) {
	db := newTestDB(t)
	email := &confirmationRecorder{}
	service := NewWaitlistService(db, newTestConfig(), email)

	entry, err := service.Join(" Interessent@Example.Test ", "Maria", "landing_page")
	require.NoError(t, err)

	assert.Equal(t, "interessent@example.test", entry.Email)
	assert.NotEmpty(t, entry.ConfirmToken)
	assert.Nil(t, entry.ConfirmedAt)

	require.Len(t, email.confirmURLs, 1)
	assert.Contains(t, email.confirmURLs[0], entry.ConfirmToken)
	assert.Contains(t, email.confirmURLs[0], "https://app.example.test/api/waitlist/confirm")
}

func TestJoinRejectsDuplicateAndInvalidEmails(t *testing.T) {
	db := newTestDB(t)
	service := NewWaitlistService(db, newTestConfig(), nil)

	_, err := service.Join("interessent@example.test", "", "")
	require.NoError(t, err)

	_, err = service.Join("INTERESSENT@example.test", "", "")
	assert.EqualError(t, err, "email already on the waitlist")

	_, err = service.Join("keine-adresse", "", "")
	assert.Error(t, err)
	_, err = service.Join("", "", "")
	assert.Error(t, err)
}

func TestJoinSurvivesMailFailure(t *testing.T) {
	db := newTestDB(t)
	email := &confirmationRecorder{}
	email.err = errors.New("smtp down")
	service := NewWaitlistService(db, newTestConfig(), email)

	entry, err := service.Join("interessent@example.test", "", "")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.WaitlistEntry{}).
		Where("email = ?", entry.Email).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestConfirmCompletesOptIn(t *testing.T) {
	db := newTestDB(t)
	service := NewWaitlistService(db, newTestConfig(), nil)

	entry, err := service.Join("interessent@example.test", "", "")
	require.NoError(t, err)

	confirmed, err := service.Confirm(entry.ConfirmToken)
	require.NoError(t, err)
	require.NotNil(t, confirmed.ConfirmedAt)

	// Confirming again keeps the original timestamp
	again, err := service.Confirm(entry.ConfirmToken)
	require.NoError(t, err)
	require.NotNil(t, again.ConfirmedAt)
	assert.WithinDuration(t, *confirmed.ConfirmedAt, *again.ConfirmedAt, time.Second)
}

func TestConfirmRejectsUnknownToken(t *testing.T) {
	db := newTestDB(t)
	service := NewWaitlistService(db, newTestConfig(), nil)

	_, err := service.Confirm("no-such-token")
	assert.EqualError(t, err, "unknown confirmation token")

	_, err = service.Confirm("")
	assert.EqualError(t, err, "token is required")
}

func TestGetAllEntriesPagination(t *testing.T) {
	db := newTestDB(t)
	service := NewWaitlistService(db, newTestConfig(), nil)

	for _, address := range []string{"a@example.test", "b@example.test", "c@example.test"} {
		_, err := service.Join(address, "", "")
		require.NoError(t, err)
	}

	entries, total, err := service.GetAllEntries(1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, entries, 2)
}
