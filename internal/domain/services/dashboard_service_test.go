package services

import (
	"testing"
	"time"

	"immowaechter-http-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardFixture(t *testing.T) (*gorm.DB, InterfaceDashboardService, *models.Owner) {
	t.Helper()
	db := newTestDB(t)
	cfg := newTestConfig()
	// No redis in tests, the dashboard treats a nil cache as always-miss
	service := NewDashboardService(db, cfg, nil, nil)
	owner := seedOwner(t, db, "owner@example.test", false)
	return db, service, owner
}

func TestRiskSummaryCountsLevelsLive(t *testing.T) {
	db, service, owner := newDashboardFixture(t)
	property := seedProperty(t, db, owner.ID, "AT")

	asOf := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	// Levels are evaluated live against asOf, the stored column is ignored
	seedComponent(t, db, property.ID, "heating", asOf.AddDate(0, 0, -100), "legal")  // safe
	seedComponent(t, db, property.ID, "heating", asOf.AddDate(0, 0, -400), "safe")   // danger
	critical := seedComponent(t, db, property.ID, "heating", asOf.AddDate(0, 0, -460), "safe") // critical

	summary, err := service.RiskSummary(owner.ID, asOf)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Stats.Total)
	assert.Equal(t, 1, summary.Stats.Safe)
	assert.Equal(t, 1, summary.Stats.Danger)
	assert.Equal(t, 1, summary.Stats.Critical)

	require.Len(t, summary.CriticalComponents, 1)
	row := summary.CriticalComponents[0]
	assert.Equal(t, critical.ID, row.ComponentID)
	assert.Equal(t, property.Name, row.PropertyName)
	assert.Equal(t, 95, row.DaysOverdue)
	assert.Equal(t, "critical", row.RiskLevel)
	assert.Equal(t, "🚨", row.Emoji)
}

func TestRiskSummaryScopedToOwner(t *testing.T) {
	db, service, owner := newDashboardFixture(t)
	other := seedOwner(t, db, "other@example.test", false)
	otherProperty := seedProperty(t, db, other.ID, "AT")
	seedComponent(t, db, otherProperty.ID, "heating", time.Now().AddDate(0, 0, -500), "legal")

	summary, err := service.RiskSummary(owner.ID, time.Now())
	require.NoError(t, err)
	assert.Zero(t, summary.Stats.Total)
	assert.Empty(t, summary.CriticalComponents)
}

func TestRiskTrendBuildsDailySeries(t *testing.T) {
	db, service, owner := newDashboardFixture(t)

	asOf := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 3; i++ {
		require.NoError(t, db.Create(&models.RiskSnapshot{
			OwnerID:       owner.ID,
			Date:          time.Date(2026, 8, 31-i, 0, 0, 0, 0, time.UTC),
			CriticalCount: i,
			TotalCount:    5,
		}).Error)
	}

	points, err := service.RiskTrend(owner.ID, nil, "7d", asOf)
	require.NoError(t, err)
	require.Len(t, points, 7)

	// Oldest first, days without a snapshot are zero-filled
	assert.Zero(t, points[0].Critical)
	assert.Zero(t, points[len(points)-1].Critical)
	assert.Equal(t, 1, points[len(points)-2].Critical)
	assert.Equal(t, 3, points[len(points)-4].Critical)
}

func TestRiskTrendFiltersByProperty(t *testing.T) {
	db, service, owner := newDashboardFixture(t)
	property := seedProperty(t, db, owner.ID, "AT")

	asOf := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	propertyID := property.ID
	require.NoError(t, db.Create(&models.RiskSnapshot{
		OwnerID: owner.ID, PropertyID: &propertyID, Date: day, LegalCount: 2,
	}).Error)
	require.NoError(t, db.Create(&models.RiskSnapshot{
		OwnerID: owner.ID, Date: day, LegalCount: 7,
	}).Error)

	points, err := service.RiskTrend(owner.ID, &propertyID, "7d", asOf)
	require.NoError(t, err)
	require.Len(t, points, 7)
	assert.Equal(t, 2, points[len(points)-2].Legal)

	portfolio, err := service.RiskTrend(owner.ID, nil, "7d", asOf)
	require.NoError(t, err)
	assert.Equal(t, 7, portfolio[len(portfolio)-2].Legal)
}

func TestRiskTrendRejectsUnknownTimeframe(t *testing.T) {
	_, service, owner := newDashboardFixture(t)

	_, err := service.RiskTrend(owner.ID, nil, "14d", time.Now())
	assert.ErrorIs(t, err, ErrInvalidTimeframe)
}
