package services

import (
	"testing"
	"time"

	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/domain/risk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRiskFixture(t *testing.T) (*gorm.DB, InterfaceRiskService, *stubNotifier) {
	t.Helper()
	db := newTestDB(t)
	cfg := newTestConfig()
	notifier := &stubNotifier{}
	consequences := NewConsequenceService(db, cfg)
	require.NoError(t, consequences.Seed())
	service := NewRiskService(db, cfg, consequences, notifier)
	return db, service, notifier
}

func TestEvaluateClassifiesComponent(t *testing.T) {
	db, service, _ := newRiskFixture(t)
	owner := seedOwner(t, db, "owner@example.test", false)
	property := seedProperty(t, db, owner.ID, "AT")

	asOf := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	component := seedComponent(t, db, property.ID, "heating",
		asOf.AddDate(0, 0, -400), "safe")

	assessment, daysOverdue, err := service.Evaluate(component, "AT", asOf)
	require.NoError(t, err)
	assert.Equal(t, 35, daysOverdue)
	assert.Equal(t, risk.LevelDanger, assessment.Level)
	assert.Equal(t, "🔶", assessment.Emoji)
	assert.Contains(t, assessment.Message, "überfällig")
	assert.True(t, assessment.Consequences.DeathRisk)
}

func TestRecomputeAllRefreshesStaleLevels(t *testing.T) {
	db, service, notifier := newRiskFixture(t)
	owner := seedOwner(t, db, "owner@example.test", false)
	property := seedProperty(t, db, owner.ID, "AT")

	asOf := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	// Stored level is stale, the clock says critical
	stale := seedComponent(t, db, property.ID, "heating", asOf.AddDate(0, 0, -460), "warning")
	// Already up to date, no transition expected
	seedComponent(t, db, property.ID, "heating", asOf.AddDate(0, 0, -100), "safe")

	changed, err := service.RecomputeAll(asOf)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	var reloaded models.Component
	require.NoError(t, db.First(&reloaded, stale.ID).Error)
	assert.Equal(t, "critical", reloaded.RiskLevel)
	assert.Equal(t, 95, reloaded.DaysOverdue)

	require.Len(t, notifier.changes, 1)
	assert.Equal(t, stale.ID, notifier.changes[0].componentID)
	assert.Equal(t, risk.LevelWarning, notifier.changes[0].previous)
	assert.Equal(t, risk.LevelCritical, notifier.changes[0].next)
}

func TestRecomputeAllIsIdempotent(t *testing.T) {
	db, service, notifier := newRiskFixture(t)
	owner := seedOwner(t, db, "owner@example.test", false)
	property := seedProperty(t, db, owner.ID, "AT")

	asOf := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	seedComponent(t, db, property.ID, "heating", asOf.AddDate(0, 0, -460), "warning")

	changed, err := service.RecomputeAll(asOf)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	changed, err = service.RecomputeAll(asOf)
	require.NoError(t, err)
	assert.Zero(t, changed)
	assert.Len(t, notifier.changes, 1)
}

func TestWriteDailySnapshots(t *testing.T) {
	db, service, _ := newRiskFixture(t)
	owner := seedOwner(t, db, "owner@example.test", false)
	first := seedProperty(t, db, owner.ID, "AT")
	second := seedProperty(t, db, owner.ID, "AT")

	asOf := time.Date(2026, 8, 31, 15, 30, 0, 0, time.UTC)
	seedComponent(t, db, first.ID, "heating", asOf.AddDate(0, 0, -460), "critical")
	seedComponent(t, db, first.ID, "chimney", asOf.AddDate(0, 0, -10), "safe")
	seedComponent(t, db, second.ID, "elevator", asOf.AddDate(0, 0, -500), "legal")

	require.NoError(t, service.WriteDailySnapshots(asOf))

	// One snapshot per property plus one portfolio row
	var snapshots []models.RiskSnapshot
	require.NoError(t, db.Find(&snapshots).Error)
	assert.Len(t, snapshots, 3)

	var portfolio models.RiskSnapshot
	require.NoError(t, db.Where("owner_id = ? AND property_id IS NULL", owner.ID).
		First(&portfolio).Error)
	assert.Equal(t, 1, portfolio.CriticalCount)
	assert.Equal(t, 1, portfolio.LegalCount)
	assert.Equal(t, 3, portfolio.TotalCount)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), portfolio.Date.UTC())
}

func TestWriteDailySnapshotsIsIdempotent(t *testing.T) {
	db, service, _ := newRiskFixture(t)
	owner := seedOwner(t, db, "owner@example.test", false)
	property := seedProperty(t, db, owner.ID, "AT")
	asOf := time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC)
	component := seedComponent(t, db, property.ID, "heating", asOf.AddDate(0, 0, -460), "critical")

	require.NoError(t, service.WriteDailySnapshots(asOf))

	// The component recovers during the day, the rerun overwrites
	require.NoError(t, db.Model(component).Update("risk_level", "safe").Error)
	require.NoError(t, service.WriteDailySnapshots(asOf.Add(8*time.Hour)))

	var snapshots []models.RiskSnapshot
	require.NoError(t, db.Find(&snapshots).Error)
	assert.Len(t, snapshots, 2)

	var portfolio models.RiskSnapshot
	require.NoError(t, db.Where("owner_id = ? AND property_id IS NULL", owner.ID).
		First(&portfolio).Error)
	assert.Zero(t, portfolio.CriticalCount)
	assert.Equal(t, 1, portfolio.SafeCount)
}
